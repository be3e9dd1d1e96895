package excel

import (
	"math"
	"strconv"
	"strings"

	"slviewer/domain/queue"
)

// InferColumnKind decides a column's type from its non-empty cells. A column
// is numeric only when every non-empty cell parses; otherwise it is text.
func InferColumnKind(cells []string) ColumnKind {
	kind := ColumnEmpty
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
			if kind == ColumnEmpty {
				kind = ColumnInteger
			}
			continue
		}
		if f, err := strconv.ParseFloat(cell, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			kind = ColumnFloat
			continue
		}
		return ColumnText
	}
	return kind
}

// CoerceColumn converts raw cells into typed values. Empty cells become nil.
func CoerceColumn(cells []string) []queue.Value {
	kind := InferColumnKind(cells)
	out := make([]queue.Value, len(cells))
	for i, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		switch kind {
		case ColumnInteger:
			n, _ := strconv.ParseInt(cell, 10, 64)
			out[i] = n
		case ColumnFloat:
			f, _ := strconv.ParseFloat(cell, 64)
			out[i] = f
		default:
			out[i] = cell
		}
	}
	return out
}
