package db

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ColumnType is the storage class inferred for a CSV column
type ColumnType int

const (
	ColumnInteger ColumnType = iota
	ColumnReal
	ColumnBoolean
	ColumnText
)

// SQL returns the SQLite declared type for the column
func (c ColumnType) SQL() string {
	switch c {
	case ColumnInteger, ColumnBoolean:
		return "INTEGER"
	case ColumnReal:
		return "REAL"
	default:
		return "TEXT"
	}
}

// Frame is a parsed CSV file: header plus raw string cells
type Frame struct {
	Columns []string
	Rows    [][]string
}

// ReadFrame parses a CSV file with a header row
func ReadFrame(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%s: empty file", path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	frame := &Frame{Columns: header}
	line := 1
	for {
		line++
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("%s line %d: %w", path, line, err)
		}
		frame.Rows = append(frame.Rows, rec)
	}
	return frame, nil
}

// InferTypes picks the narrowest type that fits every non-empty cell of
// each column. Columns with no values at all are TEXT.
func (f *Frame) InferTypes() []ColumnType {
	types := make([]ColumnType, len(f.Columns))
	for i := range f.Columns {
		types[i] = inferColumn(f.Rows, i)
	}
	return types
}

func inferColumn(rows [][]string, col int) ColumnType {
	isInt, isReal, isBool := true, true, true
	seen := false
	for _, row := range rows {
		if col >= len(row) || row[col] == "" {
			continue
		}
		seen = true
		v := row[col]
		if isInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				isInt = false
			}
		}
		if isReal {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isReal = false
			}
		}
		if isBool {
			if _, ok := parseBool(v); !ok {
				isBool = false
			}
		}
		if !isInt && !isReal && !isBool {
			return ColumnText
		}
	}
	switch {
	case !seen:
		return ColumnText
	case isInt:
		return ColumnInteger
	case isReal:
		return ColumnReal
	case isBool:
		return ColumnBoolean
	default:
		return ColumnText
	}
}

// convert turns a raw cell into the value bound for its column type.
// Empty cells become NULL.
func convert(v string, t ColumnType) interface{} {
	if v == "" {
		return nil
	}
	switch t {
	case ColumnInteger:
		n, _ := strconv.ParseInt(v, 10, 64)
		return n
	case ColumnReal:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	case ColumnBoolean:
		b, _ := parseBool(v)
		if b {
			return 1
		}
		return 0
	default:
		return v
	}
}

// parseBool accepts only the literal true/false spellings, unlike
// strconv.ParseBool which also takes 0/1.
func parseBool(v string) (bool, bool) {
	switch strings.ToLower(v) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
