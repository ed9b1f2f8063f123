package reportexport

import (
	"fmt"
	"io"
	"strconv"

	"shgportal/internal/domain"
)

// Table is a rendered report: a title, a header row and typed cells.
// Cells hold string, int or float64 values.
type Table struct {
	Title  string
	Header []string
	Rows   [][]interface{}
}

var memberColumns = []string{
	"District",
	"Block",
	"Gram Panchayat",
	"Village",
	"SHG",
	"Member ID",
	"Name",
	"Age",
	"Occupation",
	"Savings",
}

// ProductSheet titles the product listing that accompanies a member
// workbook.
const ProductSheet = "Products"

var productColumns = []string{
	"District",
	"Block",
	"Gram Panchayat",
	"Village",
	"SHG",
	"Product",
}

var summaryColumns = []string{
	"Area",
	"SHGs",
	"Members",
	"Total Savings",
}

// MemberTable builds the SHG member listing.
func MemberTable(rows []domain.MemberReportRow) Table {
	t := Table{Title: "SHG Members", Header: memberColumns, Rows: make([][]interface{}, 0, len(rows))}
	for i := range rows {
		r := &rows[i]
		t.Rows = append(t.Rows, []interface{}{
			r.District, r.Block, r.GramPanchayat, r.Village, r.SHG,
			r.MemberID, r.Name, r.Age, r.Occupation, r.Savings,
		})
	}
	return t
}

// ProductTable builds the SHG product listing. A row with an empty
// product stands for an SHG that sells nothing.
func ProductTable(rows []domain.ProductReportRow) Table {
	t := Table{Title: ProductSheet, Header: productColumns, Rows: make([][]interface{}, 0, len(rows))}
	for _, r := range rows {
		t.Rows = append(t.Rows, []interface{}{
			r.District, r.Block, r.GramPanchayat, r.Village, r.SHG, r.Product,
		})
	}
	return t
}

// SummaryTable builds the per-area summary with a trailing total row.
func SummaryTable(title string, areas []domain.AreaSummary) Table {
	t := Table{Title: title, Header: summaryColumns, Rows: make([][]interface{}, 0, len(areas)+1)}
	var shgs, members int
	var savings float64
	for _, a := range areas {
		t.Rows = append(t.Rows, []interface{}{a.Name, a.SHGs, a.Members, a.TotalSavings})
		shgs += a.SHGs
		members += a.Members
		savings += a.TotalSavings
	}
	t.Rows = append(t.Rows, []interface{}{"Total", shgs, members, savings})
	return t
}

// Write renders t in the given format. Extra tables become additional
// sheets in XLSX and are dropped from CSV.
func Write(w io.Writer, format domain.ReportFormat, t Table, extra ...Table) error {
	switch format {
	case domain.ReportFormatCSV:
		return WriteCSV(w, t)
	case domain.ReportFormatXLSX:
		return WriteXLSX(w, t, extra...)
	default:
		return domain.ErrUnsupportedFormat
	}
}

func formatCell(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
