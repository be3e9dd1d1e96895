package queue

import (
	"fmt"
	"sort"
	"strings"
)

// Columns the index page offers dropdown filters for
const (
	FilterColumnProcess = "conceito_p"
	FilterColumnStatus  = "conceito_st"
)

// FilterOptions returns the sorted distinct non-nil values of a column.
// A nil table or unknown column yields an empty slice.
func FilterOptions(t *Table, column string) []Value {
	options := []Value{}
	if !t.HasColumn(column) {
		return options
	}

	for _, rec := range t.Records {
		if v, _ := rec.Get(column); v != nil {
			options = append(options, v)
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return compareValues(options[i], options[j]) < 0
	})

	// dedupe adjacent equals
	out := options[:0]
	for i, v := range options {
		if i == 0 || compareValues(out[len(out)-1], v) != 0 {
			out = append(out, v)
		}
	}
	return out
}

// FilterOptionStrings renders FilterOptions as display strings
func FilterOptionStrings(t *Table, column string) []string {
	options := FilterOptions(t, column)
	out := make([]string, len(options))
	for i, v := range options {
		out[i] = FormatValue(v)
	}
	return out
}

// FormatValue renders a cell for display; nil is the empty string
func FormatValue(v Value) string {
	if v == nil {
		return ""
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprint(v)
}

// compareValues is a total order over cell values: numbers (numerically)
// before strings (bytewise) before anything else (by formatted text).
func compareValues(a, b Value) int {
	ra, rb := valueRank(a), valueRank(b)
	if ra != rb {
		return ra - rb
	}

	switch ra {
	case rankNumber:
		fa, fb := toFloat(a), toFloat(b)
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case rankString:
		return strings.Compare(a.(string), b.(string))
	default:
		return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
	}
}

const (
	rankNumber = iota
	rankString
	rankOther
)

func valueRank(v Value) int {
	switch v.(type) {
	case int, int32, int64, float32, float64:
		return rankNumber
	case string:
		return rankString
	default:
		return rankOther
	}
}

func toFloat(v Value) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
