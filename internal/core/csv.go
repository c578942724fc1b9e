package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/JonMunkholm/permute/internal/logging"
)

func init() {
	RegisterFormat(Format{
		Name:  "csv",
		Label: "CSV",
		Load:  loadCSV,
		Write: writeCSV,
	})
}

// DefaultDelimiter is the csv field separator when none is given.
const DefaultDelimiter = ","

// parseDelimiter validates a delimiter string and returns it as a rune.
func parseDelimiter(delimiter string) (rune, error) {
	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDelimiter, delimiter)
	}

	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == 0 || r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || !utf8.ValidRune(r) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidDelimiter, delimiter)
	}
	return r, nil
}

// loadCSV parses a delimited text file.
//
// With opts.Header the first record names the columns; otherwise columns are
// labelled "0", "1", ... after the width of the first record. Records wider
// than the header are rejected, shorter ones are padded with empty fields.
// A stray quote inside an unquoted field is kept as a literal character.
func loadCSV(ctx context.Context, path string, opts LoadOptions) (*Table, error) {
	comma, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src := WrapForLoad(f)
	reader := csv.NewReader(src)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		columns []string
		rows    [][]string
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if columns == nil {
			if opts.Header {
				columns = uniqueColumns(record)
				continue
			}
			columns = positionalColumns(len(record))
		}

		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("expected %d fields in line %d, saw %d", len(columns), line, len(record))
		}

		rows = append(rows, padRow(record, len(columns)))
	}

	if columns == nil {
		return nil, ErrNoColumns
	}

	logging.FromContext(ctx).Debug("csv parsed",
		"path", path,
		"bytes", src.BytesRead,
		"header", opts.Header,
	)

	return NewTable(columns, rows), nil
}

// writeCSV writes the header row followed by every data row.
func writeCSV(_ context.Context, t *Table, path string, opts WriteOptions) error {
	comma, err := parseDelimiter(opts.Delimiter)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = comma

	if err := w.Write(t.Columns); err != nil {
		f.Close()
		return err
	}
	if err := w.WriteAll(t.Rows); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
