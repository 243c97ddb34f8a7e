package qfxconvert

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

// Format selects the serialization for converted records.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// Error kinds, matched with errors.Is.
var (
	ErrNotFound          = errors.New("error - input file not found")
	ErrParse             = errors.New("error - failed to parse OFX file")
	ErrNoTransactions    = errors.New("error - no transactions found in OFX file")
	ErrUnsupportedFormat = errors.New("error - unsupported output format")
)

// Options configure a conversion.
type Options struct {
	// Format defaults to FormatCSV.
	Format Format
	// OutputPath defaults to the input path with the format's extension.
	OutputPath string
	// Compact emits single line JSON. No effect on CSV.
	Compact bool
}

// ConvertFile converts one OFX/QFX file end to end and returns the paths of
// every file written. An OFX document yielding zero transaction records is
// an error, not an empty success, and writes nothing.
func ConvertFile(path string, opts Options) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}
	if opts.Format == "" {
		opts.Format = FormatCSV
	}
	switch opts.Format {
	case FormatCSV, FormatJSON:
	default:
		return nil, fmt.Errorf("%w: %q, use csv or json", ErrUnsupportedFormat, opts.Format)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ascii, err := DecodeToASCII(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}
	document, err := NewDocumentFromXML(bytes.NewReader(ascii), NewCleaner())
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrParse, err)
	}

	transactions, positions := ExtractRecords(document)
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}

	out := opts.OutputPath
	if out == "" {
		out = replaceExt(path, "."+string(opts.Format))
	}
	glog.V(1).Infof("converting %s to %s (%s)", path, out, opts.Format)
	if opts.Format == FormatJSON {
		if err := WriteJSON(out, transactions, positions, opts.Compact); err != nil {
			return nil, err
		}
		return []string{out}, nil
	}
	return WriteCSV(out, transactions, positions)
}

// replaceExt swaps the extension of path for ext.
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
