package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"slviewer/domain/queue"
	"slviewer/internal/errors"
	"slviewer/internal/logging"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const utf8BOM = "\ufeff"

// DataReader reads one Excel or CSV file into a queue table
type DataReader struct {
	filePath string
	fileType string
	logger   *zap.Logger
}

// FileType returns the reader type for a path, or "" when unsupported
func FileType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return FileTypeXLSX
	case ".csv":
		return FileTypeCSV
	default:
		return ""
	}
}

// NewDataReader creates a reader for path
func NewDataReader(filePath string, logger *zap.Logger) *DataReader {
	return &DataReader{
		filePath: filePath,
		fileType: FileType(filePath),
		logger:   logging.OrNop(logger),
	}
}

// ReadTable reads the file and returns a typed table with normalized columns
func (r *DataReader) ReadTable(ctx context.Context) (*queue.Table, error) {
	data, err := r.ReadData(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTable(data), nil
}

// ReadData reads the raw header and rows of the file
func (r *DataReader) ReadData(ctx context.Context) (*ExcelData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.logger.Debug("reading data file", zap.String("path", r.filePath), zap.String("type", r.fileType))

	var (
		rows [][]string
		err  error
	)
	start := time.Now()
	switch r.fileType {
	case FileTypeXLSX:
		rows, err = r.readExcelRows()
	case FileTypeCSV:
		rows, err = r.readCSVRows()
	default:
		return nil, errors.UnsupportedFile(r.filePath)
	}
	if err != nil {
		return nil, errors.FileUnreadable(r.filePath, err)
	}

	if len(rows) == 0 {
		return nil, errors.FileUnreadable(r.filePath, fmt.Errorf("no header row"))
	}

	data := &ExcelData{
		Headers: rows[0],
		Rows:    make([][]string, 0, len(rows)-1),
	}
	for _, row := range rows[1:] {
		if !isBlankRow(row) {
			data.Rows = append(data.Rows, row)
		}
	}

	r.logger.Debug("data file read",
		zap.String("path", r.filePath),
		zap.Int("columns", len(data.Headers)),
		zap.Int("rows", len(data.Rows)),
		zap.Duration("elapsed", time.Since(start)))

	return data, nil
}

// readExcelRows reads the first sheet of the workbook
func (r *DataReader) readExcelRows() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return skipLeadingBlankRows(rows), nil
}

func (r *DataReader) readCSVRows() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV file: %w", err)
		}
		if len(rows) == 0 && len(row) > 0 {
			row[0] = strings.TrimPrefix(row[0], utf8BOM)
		}
		rows = append(rows, row)
	}
	return skipLeadingBlankRows(rows), nil
}

// BuildTable types each column and assembles the queue table
func BuildTable(data *ExcelData) *queue.Table {
	header := make([]string, len(data.Headers))
	for i, h := range data.Headers {
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		header[i] = h
	}

	values := make([][]queue.Value, len(data.Rows))
	for i := range values {
		values[i] = make([]queue.Value, len(header))
	}

	for col := range header {
		cells := make([]string, len(data.Rows))
		for i, row := range data.Rows {
			if col < len(row) {
				cells[i] = row[col]
			}
		}
		for i, v := range CoerceColumn(cells) {
			values[i][col] = v
		}
	}

	return queue.NewTable(header, values)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func skipLeadingBlankRows(rows [][]string) [][]string {
	for len(rows) > 0 && isBlankRow(rows[0]) {
		rows = rows[1:]
	}
	return rows
}
