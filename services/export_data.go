package services

import "time"

// ExportData holds everything the CSV, Excel and PDF exporters need,
// decoupled from the live cost sheet.
type ExportData struct {
	ProjectName string
	GeneratedAt string
	Items       []LineItem
	Groups      []ItemGroup
	Totals      SheetTotals
}

// BuildExportData snapshots a cost sheet for export.
func BuildExportData(sheet *CostSheet, now time.Time) ExportData {
	return ExportData{
		ProjectName: sheet.ProjectName,
		GeneratedAt: now.Format("2006-01-02 15:04"),
		Items:       sheet.Items(),
		Groups:      sheet.Grouped(),
		Totals:      sheet.Totals(),
	}
}

// Title returns the document heading, including the project name when set.
func (d ExportData) Title() string {
	if d.ProjectName != "" {
		return "Cost Estimation: " + d.ProjectName
	}
	return "Cost Estimation"
}
