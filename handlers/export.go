package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"costestimation/services"
)

// HandleExportCSV downloads the current cost sheet as CSV. The file round
// trips through the restore upload.
func HandleExportCSV(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet := store.Sheet(e)
		data := services.BuildExportData(sheet, time.Now())

		out, err := services.ExportCSV(data)
		if err != nil {
			log.Printf("export: csv generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate CSV")
		}
		setDownloadHeaders(e, "text/csv", exportFilename(sheet.ProjectName, "csv"))
		e.Response.Write(out)
		return nil
	}
}

// HandleExportExcel downloads the current cost sheet as a styled workbook.
func HandleExportExcel(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet := store.Sheet(e)
		data := services.BuildExportData(sheet, time.Now())

		out, err := services.GenerateExcel(data)
		if err != nil {
			log.Printf("export: excel generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}
		setDownloadHeaders(e, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			exportFilename(sheet.ProjectName, "xlsx"))
		e.Response.Write(out)
		return nil
	}
}

// HandleExportPDF downloads the current cost sheet as a landscape PDF.
func HandleExportPDF(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sheet := store.Sheet(e)
		data := services.BuildExportData(sheet, time.Now())

		out, err := services.GeneratePDF(data)
		if err != nil {
			log.Printf("export: pdf generation failed: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF")
		}
		setDownloadHeaders(e, "application/pdf", exportFilename(sheet.ProjectName, "pdf"))
		e.Response.Write(out)
		return nil
	}
}

// HandleRestore replaces the session's cost sheet with one rebuilt from an
// uploaded CSV export.
func HandleRestore(store *SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Please choose a CSV file to restore")
		}
		defer file.Close()

		if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
			return ErrorToast(e, http.StatusBadRequest, "Restore expects a CSV export file")
		}

		sheet, err := services.RestoreSheet(file)
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, fmt.Sprintf("Restore failed: %v", err))
		}

		store.Replace(e, sheet)
		SetToast(e, "success", fmt.Sprintf("Restored %d line items", len(sheet.Items())))
		e.Response.Header().Set("HX-Refresh", "true")
		return e.String(http.StatusOK, "")
	}
}

func setDownloadHeaders(e *core.RequestEvent, contentType, filename string) {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"`, filename))
}

// exportFilename builds a safe download name from the project name, falling
// back to a generic one when no project name is set.
func exportFilename(projectName, ext string) string {
	base := sanitizeFilename(projectName)
	if base == "" {
		base = "cost-estimation"
	}
	return base + "." + ext
}

func sanitizeFilename(s string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
			lastDash = false
		case r == ' ' || r == '-':
			if b.Len() > 0 && !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
