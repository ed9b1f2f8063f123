// Package seedimport builds a location tree from a member workbook, the
// same layout the SHG member report exports.
package seedimport

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"shgportal/internal/location"
	"shgportal/internal/reportexport"
)

// ProductsSheet is the optional sheet listing SHG products, one per row.
const ProductsSheet = reportexport.ProductSheet

// ErrMissingColumn is returned when a required header is absent.
var ErrMissingColumn = errors.New("missing column")

var (
	pathColumns   = []string{"District", "Block", "Gram Panchayat", "Village", "SHG"}
	memberColumns = []string{"Member ID", "Name", "Age", "Occupation", "Savings"}
)

// ReadXLSX reads members from the first sheet and products from the
// Products sheet when present. Column order is free; headers are matched
// case-insensitively.
func ReadXLSX(r io.Reader) (*location.Tree, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	raw := location.Districts{}

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read member sheet: %w", err)
	}
	if err := readMembers(raw, rows); err != nil {
		return nil, err
	}

	if idx, _ := f.GetSheetIndex(ProductsSheet); idx >= 0 {
		rows, err := f.GetRows(ProductsSheet)
		if err != nil {
			return nil, fmt.Errorf("read products sheet: %w", err)
		}
		if err := readProducts(raw, rows); err != nil {
			return nil, err
		}
	}

	return location.NewTree(raw)
}

func readMembers(raw location.Districts, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	cols, err := columnIndex(rows[0], append(pathColumns, memberColumns...))
	if err != nil {
		return err
	}

	for i, row := range rows[1:] {
		p := rowPath(row, cols)
		if p.District == "" {
			continue
		}
		age, err := strconv.Atoi(cellVal(row, cols["age"]))
		if err != nil {
			return fmt.Errorf("row %d: age: %w", i+2, err)
		}
		savings, err := parseAmount(cellVal(row, cols["savings"]))
		if err != nil {
			return fmt.Errorf("row %d: savings: %w", i+2, err)
		}
		shg := ensureSHG(raw, p)
		shg.Members = append(shg.Members, location.Member{
			ID:         cellVal(row, cols["member id"]),
			Name:       cellVal(row, cols["name"]),
			Age:        age,
			Occupation: cellVal(row, cols["occupation"]),
			Savings:    savings,
		})
		putSHG(raw, p, shg)
	}
	return nil
}

func readProducts(raw location.Districts, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	cols, err := columnIndex(rows[0], append(pathColumns, "Product"))
	if err != nil {
		return fmt.Errorf("products sheet: %w", err)
	}

	for _, row := range rows[1:] {
		p := rowPath(row, cols)
		product := cellVal(row, cols["product"])
		if p.District == "" || p.SHG == "" {
			continue
		}
		// An empty product still registers an SHG that has no members.
		shg := ensureSHG(raw, p)
		if product != "" {
			shg.Products = append(shg.Products, product)
		}
		putSHG(raw, p, shg)
	}
	return nil
}

func columnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := idx[strings.ToLower(name)]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func rowPath(row []string, cols map[string]int) location.Path {
	return location.Path{
		District:      cellVal(row, cols["district"]),
		Block:         cellVal(row, cols["block"]),
		GramPanchayat: cellVal(row, cols["gram panchayat"]),
		Village:       cellVal(row, cols["village"]),
		SHG:           cellVal(row, cols["shg"]),
	}
}

// ensureSHG creates the intermediate levels of p and returns the SHG stored
// there, or an empty one.
func ensureSHG(raw location.Districts, p location.Path) location.SHG {
	district, ok := raw[p.District]
	if !ok {
		district = location.District{}
		raw[p.District] = district
	}
	block, ok := district[p.Block]
	if !ok {
		block = location.Block{}
		district[p.Block] = block
	}
	gp, ok := block[p.GramPanchayat]
	if !ok {
		gp = location.GramPanchayat{}
		block[p.GramPanchayat] = gp
	}
	village, ok := gp[p.Village]
	if !ok {
		village = location.Village{SHGs: map[string]location.SHG{}}
		gp[p.Village] = village
	}
	return village.SHGs[p.SHG]
}

func putSHG(raw location.Districts, p location.Path, shg location.SHG) {
	raw[p.District][p.Block][p.GramPanchayat][p.Village].SHGs[p.SHG] = shg
}

func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}
