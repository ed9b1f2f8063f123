package reportexport

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// maxSheetName is Excel's sheet name limit, counted in characters.
const maxSheetName = 31

// WriteXLSX writes t as the first sheet of a workbook, followed by one
// sheet per extra table. Every sheet gets a bold, frozen header row.
func WriteXLSX(w io.Writer, t Table, extra ...Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#2F5597"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	first := sheetName(t.Title)
	if err := f.SetSheetName(f.GetSheetName(0), first); err != nil {
		return fmt.Errorf("set sheet name: %w", err)
	}
	if err := writeSheet(f, first, t, headerStyle); err != nil {
		return err
	}

	for _, x := range extra {
		name := sheetName(x.Title)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("add sheet %q: %w", name, err)
		}
		if err := writeSheet(f, name, x, headerStyle); err != nil {
			return err
		}
	}

	return f.Write(w)
}

func sheetName(title string) string {
	if title == "" {
		return "Report"
	}
	if r := []rune(title); len(r) > maxSheetName {
		return string(r[:maxSheetName])
	}
	return title
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle int) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return fmt.Errorf("stream writer: %w", err)
	}
	if err := sw.SetPanes(&excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	header := make([]interface{}, len(t.Header))
	for i, h := range t.Header {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return fmt.Errorf("%s: write row %d: %w", sheet, i+1, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush sheet %s: %w", sheet, err)
	}
	return nil
}
