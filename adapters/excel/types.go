package excel

// File types understood by DataReader
const (
	FileTypeXLSX = "xlsx"
	FileTypeCSV  = "csv"
)

// ExcelData is a sheet as read from disk, before any typing
type ExcelData struct {
	Headers []string   // header row, untouched
	Rows    [][]string // data rows, blank rows removed
}

// ColumnKind is the inferred type of a column
type ColumnKind int

const (
	ColumnEmpty ColumnKind = iota
	ColumnInteger
	ColumnFloat
	ColumnText
)

func (k ColumnKind) String() string {
	switch k {
	case ColumnInteger:
		return "integer"
	case ColumnFloat:
		return "float"
	case ColumnText:
		return "text"
	default:
		return "empty"
	}
}
