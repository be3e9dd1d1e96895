package dataset

import (
	"os"
	"path/filepath"
	"strings"

	"slviewer/adapters/excel"
	"slviewer/internal/errors"
)

// filePriority orders candidate data files: workbooks before CSV
var filePriority = []string{excel.FileTypeXLSX, excel.FileTypeCSV}

// Locate picks the data file to read. An explicit file always wins (relative
// paths resolve against dir). Otherwise dir is listed without recursion and
// the alphabetically first .xlsx is used, then the first .csv. Hidden files
// and Office lock files (~$name.xlsx) are ignored.
func Locate(dir, explicit string) (string, error) {
	if explicit != "" {
		return locateExplicit(dir, explicit)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", errors.FileUnreadable(dir, err)
	}

	candidates := make(map[string]string, len(filePriority))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "~$") {
			continue
		}
		fileType := excel.FileType(name)
		if fileType == "" {
			continue
		}
		// os.ReadDir sorts by name, so the first hit per type is the alphabetical first
		if _, seen := candidates[fileType]; !seen {
			candidates[fileType] = filepath.Join(dir, name)
		}
	}

	for _, fileType := range filePriority {
		if path, ok := candidates[fileType]; ok {
			return path, nil
		}
	}
	return "", errors.NoDataFile("no .xlsx or .csv file in " + dir)
}

func locateExplicit(dir, explicit string) (string, error) {
	path := explicit
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", errors.WithCode(errors.CodeNoDataFile, err)
	}
	if info.IsDir() {
		return "", errors.NoDataFile(path + " is a directory")
	}
	return path, nil
}
