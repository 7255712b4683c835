package history

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"
)

// CSV columns, in persisted order.
const (
	colOperation = "operation"
	colOperandA  = "operand_a"
	colOperandB  = "operand_b"
	colResult    = "result"
	colTimestamp = "timestamp"
)

var columns = []string{colOperation, colOperandA, colOperandB, colResult, colTimestamp}

// SaveFile serializes all records to path as CSV.
// An empty store succeeds without touching the file.
func (s *Store) SaveFile(path string) error {
	records := s.All()
	if len(records) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		f.Close()
		return &Error{Op: "save", Path: path, Err: err}
	}
	for _, c := range records {
		row := []string{
			c.Operation,
			formatFloat(c.OperandA),
			formatFloat(c.OperandB),
			formatFloat(c.Result),
			c.Timestamp.Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			f.Close()
			return &Error{Op: "save", Path: path, Err: err}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return &Error{Op: "save", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "save", Path: path, Err: err}
	}
	return nil
}

// LoadFile replaces the store contents with the records read from path.
// A missing file returns (false, nil). An empty file empties the store and
// returns (true, nil). Any unparsable row aborts the whole load and leaves
// the store unchanged.
func (s *Store) LoadFile(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, &Error{Op: "load", Path: path, Err: err}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.Clear()
		return true, nil
	}

	r := csv.NewReader(bytes.NewReader(data))
	rows, err := r.ReadAll()
	if err != nil {
		return false, &Error{Op: "load", Path: path, Err: err}
	}

	index, err := columnIndex(rows[0])
	if err != nil {
		return false, &Error{Op: "load", Path: path, Err: err}
	}

	records := make([]Calculation, 0, len(rows)-1)
	for i, row := range rows[1:] {
		c, err := parseRow(row, index)
		if err != nil {
			return false, &Error{Op: "load", Path: path, Row: i + 1, Err: err}
		}
		records = append(records, c)
	}

	s.SetAll(records)
	return true, nil
}

// columnIndex maps column names to their positions in the header.
func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	for _, name := range columns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return index, nil
}

// parseRow converts one CSV data row into a Calculation.
func parseRow(row []string, index map[string]int) (Calculation, error) {
	field := func(name string) (string, error) {
		i := index[name]
		if i >= len(row) {
			return "", fmt.Errorf("%w: short row", ErrBadRow)
		}
		return row[i], nil
	}

	op, err := field(colOperation)
	if err != nil {
		return Calculation{}, err
	}

	floats := make(map[string]float64, 3)
	for _, name := range []string{colOperandA, colOperandB, colResult} {
		text, err := field(name)
		if err != nil {
			return Calculation{}, err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Calculation{}, fmt.Errorf("%w: %s %q", ErrBadRow, name, text)
		}
		floats[name] = v
	}

	tsText, err := field(colTimestamp)
	if err != nil {
		return Calculation{}, err
	}
	ts, err := time.Parse(time.RFC3339Nano, tsText)
	if err != nil {
		return Calculation{}, fmt.Errorf("%w: timestamp %q", ErrBadRow, tsText)
	}

	return Calculation{
		Operation: op,
		OperandA:  floats[colOperandA],
		OperandB:  floats[colOperandB],
		Result:    floats[colResult],
		Timestamp: ts,
	}, nil
}
