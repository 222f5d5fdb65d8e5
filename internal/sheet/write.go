package sheet

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"
)

// WriteXLSX writes a single-sheet workbook. Cell values may be string, int,
// float64, *float64, bool or nil; a nil pointer leaves the cell blank.
func WriteXLSX(w io.Writer, sheetName string, headers []string, rows [][]any) error {
	f := xlsx.NewFile()
	sh, err := f.AddSheet(sheetName)
	if err != nil {
		return fmt.Errorf("add sheet %s: %w", sheetName, err)
	}

	hr := sh.AddRow()
	for _, h := range headers {
		hr.AddCell().SetString(h)
	}

	for _, values := range rows {
		r := sh.AddRow()
		for _, v := range values {
			setCell(r.AddCell(), v)
		}
	}
	return f.Write(w)
}

func setCell(c *xlsx.Cell, v any) {
	switch x := v.(type) {
	case nil:
	case string:
		c.SetString(x)
	case int:
		c.SetInt(x)
	case float64:
		c.SetFloat(x)
	case *float64:
		if x != nil {
			c.SetFloat(*x)
		}
	case bool:
		c.SetBool(x)
	default:
		c.SetString(fmt.Sprint(x))
	}
}
