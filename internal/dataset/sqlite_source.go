package dataset

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// SQLiteSource reads listing rows from a sqlite database file holding the
// same tabular schema as the CSV export. The table is read once at load
// and the connection closed again; the store never writes back.
type SQLiteSource struct {
	path  string
	table string
}

// NewSQLiteSource creates a sqlite row source for the given database file
// and table name.
func NewSQLiteSource(path, table string) *SQLiteSource {
	return &SQLiteSource{path: path, table: table}
}

// Rows reads the whole table into raw rows, preserving rowid order.
// Optional columns missing from the schema degrade to empty values.
func (s *SQLiteSource) Rows() ([]RawRow, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT * FROM " + quoteIdent(s.table))
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", s.table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[strings.ToLower(name)] = i
	}

	col := func(values []any, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok {
				return cellString(values[i])
			}
		}
		return ""
	}

	var out []RawRow
	for rows.Next() {
		values := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range values {
			scan[i] = &values[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		out = append(out, RawRow{
			Price:          col(values, "price"),
			Bedrooms:       col(values, "bedrooms"),
			Bathrooms:      col(values, "bathrooms"),
			Latitude:       col(values, "coordinates/latitude", "latitude"),
			Longitude:      col(values, "coordinates/longitude", "longitude"),
			DisplayAddress: col(values, "displayaddress", "display_address"),
			AddedOn:        col(values, "addedon", "added_on"),
			PropertyType:   col(values, "propertytype", "property_type"),
			URL:            col(values, "url"),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// cellString renders a scanned sqlite value as the raw string the cleaner
// expects. NULL becomes the empty string, i.e. a missing field.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
