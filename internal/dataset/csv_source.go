package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// CSVSource reads listing rows from a scraper CSV export. The file must
// carry price, bedrooms, bathrooms and coordinate columns; the remaining
// columns are optional and degrade to empty values when absent.
type CSVSource struct {
	path string
}

// NewCSVSource creates a CSV row source for the given file path.
func NewCSVSource(path string) *CSVSource {
	return &CSVSource{path: path}
}

// Rows reads the whole file into raw rows, preserving file order.
func (s *CSVSource) Rows() ([]RawRow, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	// col returns the first present column among the given names.
	col := func(record []string, names ...string) string {
		for _, name := range names {
			if i, ok := index[name]; ok && i < len(record) {
				return record[i]
			}
		}
		return ""
	}

	var rows []RawRow
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv record: %w", err)
		}

		rows = append(rows, RawRow{
			Price:          col(record, "price"),
			Bedrooms:       col(record, "bedrooms"),
			Bathrooms:      col(record, "bathrooms"),
			Latitude:       col(record, "coordinates/latitude", "latitude"),
			Longitude:      col(record, "coordinates/longitude", "longitude"),
			DisplayAddress: col(record, "displayaddress"),
			AddedOn:        col(record, "addedon"),
			PropertyType:   col(record, "propertytype"),
			URL:            col(record, "url"),
		})
	}
	return rows, nil
}
