package sheets

import "context"

// ColumnReader is the read side of the spreadsheet gateway.
type ColumnReader interface {
	ReadColumn(ctx context.Context, readRange string) ([][]interface{}, error)
}

// Appender is the write side of the spreadsheet gateway.
type Appender interface {
	Append(ctx context.Context, appendRange string, row []interface{}) error
}

// Gateway is the full spreadsheet surface. *Client satisfies it.
type Gateway interface {
	ColumnReader
	Appender
}

// Ledger answers whether a display name already has a recorded row.
//
// The check is an exact-string scan of the name column with no
// normalization. It is a read-then-append without any lock: two
// near-simultaneous submissions by the same name can both pass before
// either append lands. That race is inherited behavior and left in place.
type Ledger struct {
	Reader    ColumnReader
	NameRange string
}

// HasSubmitted reports whether displayName appears in the name column.
func (l Ledger) HasSubmitted(ctx context.Context, displayName string) (bool, error) {
	rows, err := l.Reader.ReadColumn(ctx, l.NameRange)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		if name, ok := row[0].(string); ok && name == displayName {
			return true, nil
		}
	}
	return false, nil
}
