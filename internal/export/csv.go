package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// File permissions for written sheets
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteCSV writes the sheet header and rows to w
func WriteCSV(w io.Writer, s Sheet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(s.Header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", s.Name, err)
	}
	if err := cw.WriteAll(s.Rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", s.Name, err)
	}
	return nil
}

// FileName returns the CSV file name used for a sheet
func FileName(s Sheet) string {
	return strings.ToLower(s.Name) + ".csv"
}

// WriteDir writes every sheet to dir as <sheet>.csv and returns the paths
func WriteDir(dir string, sheets []Sheet) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	paths := make([]string, 0, len(sheets))
	for _, s := range sheets {
		path := filepath.Join(dir, FileName(s))
		if err := writeFile(path, s); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, s Sheet) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return WriteCSV(f, s)
}
