package services

import (
	"fmt"
	"strconv"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GeneratePDF renders the cost sheet as a landscape PDF: one table per
// group with a trailing subtotal row, then the overall summary and a
// generation timestamp. It returns the raw PDF bytes or an error.
func GeneratePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addTitle(m, data)

	for _, group := range data.Groups {
		addGroupHeader(m, group.Name)
		addTableHeader(m)
		for _, item := range group.Items {
			addItemRow(m, item)
		}
		addGroupTotalRow(m, group)
		m.AddRows(row.New(4))
	}

	addSummary(m, data.Totals)
	addFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addTitle(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title(), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addGroupHeader(m core.Maroto, name string) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Group: "+name, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 47, Green: 79, Blue: 79},
				}),
			),
		),
	)
}

func addTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(
				text.New("Product Code", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(2).Add(
				text.New("Manufacturer", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Description", headerTextLeft),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Unit Cost (£)", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Discount (%)", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Discounted (£)", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Qty", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Total (£)", headerText),
			).WithStyle(&headerCell),
			col.New(1).Add(
				text.New("Pre-Disc (£)", headerText),
			).WithStyle(&headerCell),
		),
	)
}

func addItemRow(m core.Maroto, item LineItem) {
	baseText := props.Text{Size: 7, Align: align.Left}
	rightText := baseText
	rightText.Align = align.Right

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New(item.ProductCode, baseText)),
			col.New(2).Add(text.New(item.Manufacturer, baseText)),
			col.New(3).Add(text.New(item.Description, baseText)),
			col.New(1).Add(text.New(FormatMoney(item.UnitCost), rightText)),
			col.New(1).Add(text.New(FormatMoney(item.Discount), rightText)),
			col.New(1).Add(text.New(FormatMoney(item.DiscountedCost), rightText)),
			col.New(1).Add(text.New(strconv.Itoa(item.Quantity), rightText)),
			col.New(1).Add(text.New(FormatMoney(item.Total), rightText)),
			col.New(1).Add(text.New(FormatMoney(item.PreDiscountTotal), rightText)),
		),
	)
}

func addGroupTotalRow(m core.Maroto, group ItemGroup) {
	totalBg := &props.Color{Red: 235, Green: 235, Blue: 235}
	totalCell := &props.Cell{BackgroundColor: totalBg}
	totalText := props.Text{
		Size:  7,
		Style: fontstyle.Bold,
		Align: align.Right,
	}

	m.AddRows(
		row.New(7).Add(
			col.New(10).Add(
				text.New("Group Total:", totalText),
			).WithStyle(totalCell),
			col.New(1).Add(
				text.New(FormatMoney(group.Subtotal), totalText),
			).WithStyle(totalCell),
			col.New(1).Add(
				text.New(FormatMoney(group.PreDiscountSubtotal), totalText),
			).WithStyle(totalCell),
		),
	)
}

func addSummary(m core.Maroto, totals SheetTotals) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
	}
	valueStyle := labelStyle

	rows := []struct {
		label string
		value string
	}{
		{"Total Cost (After Discounts)", FormatGBP(totals.TotalCost)},
		{"Pre-Discount Total Cost", FormatGBP(totals.PreDiscountTotal)},
		{fmt.Sprintf("Total Savings (%.1f%%)", totals.SavingsPercent), FormatGBP(totals.Savings)},
	}
	for _, r := range rows {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(
					text.New(r.label, labelStyle),
				).WithStyle(summaryCell),
				col.New(4).Add(
					text.New(r.value, valueStyle),
				).WithStyle(summaryCell),
			),
		)
	}
}

func addFooter(m core.Maroto, data ExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					"Generated: "+data.GeneratedAt,
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}
