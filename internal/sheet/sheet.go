// Package sheet loads the first worksheet of an xlsx export (or a CSV export
// of the same table) into a header-normalized string table.
package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/h2non/filetype"
	"github.com/jfyne/csvd"
	"github.com/tealeg/xlsx"
)

var (
	ErrEmptyFile = errors.New("sheet: file is empty")
	ErrNoSheet   = errors.New("sheet: workbook has no worksheet")
)

type Table struct {
	Name    string
	Headers []string
	Rows    [][]string
	index   map[string]int
}

// Read opens path and parses it, sniffing xlsx vs csv from the content.
func Read(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(filepath.Base(path), data)
}

func Parse(name string, data []byte) (*Table, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}

	var all [][]string
	if isWorkbook(data) {
		f, err := xlsx.OpenBinary(data)
		if err != nil {
			return nil, fmt.Errorf("parse xlsx %s: %w", name, err)
		}
		sheets, err := f.ToSlice()
		if err != nil {
			return nil, fmt.Errorf("read xlsx %s: %w", name, err)
		}
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		all = sheets[0]
	} else {
		r := csvd.NewReader(bytes.NewReader(data))
		r.FieldsPerRecord = -1
		records, err := r.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("parse csv %s: %w", name, err)
		}
		all = records
	}

	all = dropBlankRows(all)
	if len(all) == 0 {
		return nil, ErrEmptyFile
	}

	t := &Table{Name: name, Headers: NormalizeHeaders(all[0])}
	for _, raw := range all[1:] {
		row := make([]string, len(t.Headers))
		copy(row, raw)
		t.Rows = append(t.Rows, row)
	}
	t.reindex()
	return t, nil
}

func isWorkbook(data []byte) bool {
	kind, _ := filetype.Match(data)
	if kind != filetype.Unknown && (kind.Extension == "xlsx" || kind.Extension == "zip") {
		return true
	}
	return http.DetectContentType(data) == "application/zip"
}

func dropBlankRows(rows [][]string) [][]string {
	out := rows[:0]
	for _, r := range rows {
		for _, c := range r {
			if strings.TrimSpace(c) != "" {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// NormalizeHeaders lowercases and trims headers, names blank ones
// "unnamed: N" and suffixes repeats with ".1", ".2", ...
func NormalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	seen := map[string]int{}
	for i, h := range raw {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			h = "unnamed: " + strconv.Itoa(i)
		}
		if n, ok := seen[h]; ok {
			seen[h] = n + 1
			h = h + "." + strconv.Itoa(n+1)
		} else {
			seen[h] = 0
		}
		out[i] = h
	}
	return out
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		t.index[h] = i
	}
}

// Col returns the position of header h, or -1.
func (t *Table) Col(h string) int {
	if i, ok := t.index[h]; ok {
		return i
	}
	return -1
}

// Rename changes the header at position i.
func (t *Table) Rename(i int, name string) {
	t.Headers[i] = name
	t.reindex()
}

// Missing returns the required headers the table lacks, in the given order.
func (t *Table) Missing(required ...string) []string {
	var missing []string
	for _, h := range required {
		if t.Col(h) < 0 {
			missing = append(missing, h)
		}
	}
	return missing
}

// Get returns the trimmed cell of row under header h ("" when absent).
func (t *Table) Get(row []string, h string) string {
	i := t.Col(h)
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// Raw is Get without trimming.
func (t *Table) Raw(row []string, h string) string {
	i := t.Col(h)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
