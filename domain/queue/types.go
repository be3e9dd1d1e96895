package queue

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"slviewer/internal/errors"
)

// Value is a single cell: string, int64, float64 or nil
type Value = interface{}

// Record is one row of the work queue, keyed by normalized column name.
// Column order follows the source header and is kept when marshalled.
type Record struct {
	columns []string
	values  map[string]Value
}

// NewRecord pairs columns with values. Missing trailing values are nil.
func NewRecord(columns []string, values []Value) Record {
	rec := Record{
		columns: columns,
		values:  make(map[string]Value, len(columns)),
	}
	for i, col := range columns {
		var v Value
		if i < len(values) {
			v = values[i]
		}
		rec.values[col] = v
	}
	return rec
}

// Columns returns the record's column names in order
func (r Record) Columns() []string {
	return r.columns
}

// Get returns the value for a column and whether the column exists
func (r Record) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Map returns a copy of the record as a plain map
func (r Record) Map() map[string]Value {
	out := make(map[string]Value, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// MarshalJSON writes the record as a flat object in column order
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.values[col])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Table is an ordered sequence of records sharing one header
type Table struct {
	Columns []string `json:"columns"`
	Records []Record `json:"records"`
}

// NewTable builds a table from a header and row values. Column names are
// normalized; a name seen before gets a ".N" suffix. Rows keep their order.
func NewTable(header []string, rows [][]Value) *Table {
	columns := make([]string, len(header))
	used := make(map[string]bool, len(header))
	for i, h := range header {
		name := NormalizeColumn(h)
		if used[name] {
			for n := 1; ; n++ {
				candidate := fmt.Sprintf("%s.%d", name, n)
				if !used[candidate] {
					name = candidate
					break
				}
			}
		}
		used[name] = true
		columns[i] = name
	}

	t := &Table{
		Columns: columns,
		Records: make([]Record, 0, len(rows)),
	}
	for _, row := range rows {
		t.Records = append(t.Records, NewRecord(columns, row))
	}
	return t
}

// NormalizeColumn lowercases and trims a header cell
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Len returns the number of records; a nil table has none
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HasColumn reports whether the table has the named column
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	for _, col := range t.Columns {
		if col == name {
			return true
		}
	}
	return false
}

// At returns the record at index, or an INDEX_OUT_OF_RANGE error
func (t *Table) At(index int) (Record, error) {
	if index < 0 || index >= t.Len() {
		return Record{}, errors.IndexOutOfRange(index, t.Len())
	}
	return t.Records[index], nil
}
