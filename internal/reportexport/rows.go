package reportexport

import (
	"shgportal/internal/domain"
	"shgportal/internal/location"
)

// MemberRows lists every member of every SHG under p.
func MemberRows(tree *location.Tree, p location.Path) []domain.MemberReportRow {
	var rows []domain.MemberReportRow
	tree.Walk(p, func(at location.Path, shg location.SHG) {
		for _, m := range shg.Members {
			rows = append(rows, domain.MemberReportRow{
				District:      at.District,
				Block:         at.Block,
				GramPanchayat: at.GramPanchayat,
				Village:       at.Village,
				SHG:           at.SHG,
				MemberID:      m.ID,
				Name:          m.Name,
				Age:           m.Age,
				Occupation:    m.Occupation,
				Savings:       m.Savings,
			})
		}
	})
	return rows
}

// ProductRows lists every product of every SHG under p. An SHG without
// products still gets one row so that it survives a re-import.
func ProductRows(tree *location.Tree, p location.Path) []domain.ProductReportRow {
	var rows []domain.ProductReportRow
	tree.Walk(p, func(at location.Path, shg location.SHG) {
		row := domain.ProductReportRow{
			District:      at.District,
			Block:         at.Block,
			GramPanchayat: at.GramPanchayat,
			Village:       at.Village,
			SHG:           at.SHG,
		}
		if len(shg.Products) == 0 {
			rows = append(rows, row)
			return
		}
		for _, product := range shg.Products {
			row.Product = product
			rows = append(rows, row)
		}
	})
	return rows
}
