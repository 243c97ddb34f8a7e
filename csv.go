package qfxconvert

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// WriteCSV writes the transaction records to path and, when position records
// exist, writes them to a sibling file with a .positions suffix before the
// extension. Returns every file written.
func WriteCSV(path string, transactions, positions []Record) ([]string, error) {
	if err := writeRecordsCSV(path, transactions); err != nil {
		return nil, err
	}
	written := []string{path}
	if len(positions) > 0 {
		p := positionsPath(path)
		if err := writeRecordsCSV(p, positions); err != nil {
			return nil, err
		}
		written = append(written, p)
	}
	return written, nil
}

// positionsPath derives the sibling positions file path, out.csv becomes
// out.positions.csv.
func positionsPath(path string) string {
	ext := filepath.Ext(path)
	if ext == "" {
		ext = ".csv"
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".positions" + ext
}

func writeRecordsCSV(path string, records []Record) error {
	header := headerFields(records)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	row := make([]string, len(header))
	for _, r := range records {
		// Fields outside the header union can not occur given the header is
		// computed over these same records, indexing by header drops them
		// regardless.
		for i, name := range header {
			row[i] = cellString(r[name])
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// headerFields returns the sorted union of field names across all records.
func headerFields(records []Record) []string {
	seen := make(map[string]struct{})
	for _, r := range records {
		for name := range r {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// cellString renders one normalized value as a CSV cell, absent fields as
// empty cells.
func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
