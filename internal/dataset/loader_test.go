package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"slviewer/domain/queue"
	"slviewer/internal/config"
	"slviewer/internal/errors"
	"slviewer/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var _ ports.TableSource = (*Loader)(nil)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLocateEmptyDir(t *testing.T) {
	_, err := Locate(t.TempDir(), "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeNoDataFile, errors.GetCode(err))
}

func TestLocatePrefersWorkbook(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "ref\nSL1\n")
	writeFile(t, dir, "z.xlsx", "")
	writeFile(t, dir, "b.xlsx", "")

	path, err := Locate(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.xlsx"), path)
}

func TestLocateAlphabeticalCSV(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "")
	writeFile(t, dir, "fila_2.csv", "")
	writeFile(t, dir, "fila_1.CSV", "")

	path, err := Locate(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fila_1.CSV"), path)
}

func TestLocateSkipsHiddenLockAndDirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".hidden.csv", "")
	writeFile(t, dir, "~$fila.xlsx", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.xlsx"), 0o755))
	writeFile(t, dir, "fila.csv", "")

	path, err := Locate(dir, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "fila.csv"), path)
}

func TestLocateExplicit(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.xlsx", "")
	writeFile(t, dir, "chosen.csv", "")

	path, err := Locate(dir, "chosen.csv")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "chosen.csv"), path)

	abs := filepath.Join(dir, "chosen.csv")
	path, err = Locate("/elsewhere", abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)

	_, err = Locate(dir, "missing.csv")
	assert.Equal(t, errors.CodeNoDataFile, errors.GetCode(err))
}

func TestLocateMissingDir(t *testing.T) {
	_, err := Locate(filepath.Join(t.TempDir(), "nope"), "")
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileUnreadable, errors.GetCode(err))
}

func TestLoadTableFallsBackWithoutFile(t *testing.T) {
	loader := NewLoader(config.DataConfig{Dir: t.TempDir()}, nil)

	table, source := loader.LoadTable(context.Background())

	assert.True(t, source.IsSample())
	assert.NotEmpty(t, source.Reason)
	assert.Equal(t, queue.SampleTable(), table)

	_, _, err := loader.Load(context.Background())
	assert.Equal(t, errors.CodeNoDataFile, errors.GetCode(err))
}

func TestLoadTableFallsBackOnCorruptFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fila.xlsx", "not a workbook")
	loader := NewLoader(config.DataConfig{Dir: dir}, nil)

	_, _, err := loader.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeFileUnreadable, errors.GetCode(err))

	table, source := loader.LoadTable(context.Background())
	assert.Equal(t, queue.SourceSample, source.Kind)
	assert.Equal(t, 6, table.Len())
}

func TestLoadTableReadsCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "fila.csv", " REF ,Conceito_P\nSL9,PINTURA\nSL8,SOLDAGEM\n")
	loader := NewLoader(config.DataConfig{Dir: dir}, nil)

	table, source := loader.LoadTable(context.Background())

	assert.Equal(t, queue.Source{Kind: queue.SourceFile, Path: path}, source)
	assert.Equal(t, []string{"ref", "conceito_p"}, table.Columns)
	require.Equal(t, 2, table.Len())
	ref, _ := table.Records[0].Get("ref")
	assert.Equal(t, "SL9", ref)
}

func TestLoadTableReadsWorkbookFirst(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fila.csv", "ref\nFROM-CSV\n")
	writeWorkbook(t, dir, "fila.xlsx", [][]interface{}{
		{"Ref"},
		{"FROM-XLSX"},
	})

	table, source := NewLoader(config.DataConfig{Dir: dir}, nil).LoadTable(context.Background())

	require.Equal(t, queue.SourceFile, source.Kind)
	assert.Equal(t, filepath.Join(dir, "fila.xlsx"), source.Path)
	ref, _ := table.Records[0].Get("ref")
	assert.Equal(t, "FROM-XLSX", ref)
}

func TestLoadTableRereadsEachCall(t *testing.T) {
	dir := t.TempDir()
	loader := NewLoader(config.DataConfig{Dir: dir}, nil)

	_, source := loader.LoadTable(context.Background())
	require.True(t, source.IsSample())

	writeFile(t, dir, "fila.csv", "ref\nSL1\n")
	table, source := loader.LoadTable(context.Background())
	assert.False(t, source.IsSample())
	assert.Equal(t, 1, table.Len())
}
