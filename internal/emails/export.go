package emails

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/nuanu-wifi/backend/internal/models"
	"github.com/nuanu-wifi/backend/pkg/response"
)

// Export handles GET /dashboard/export (admin): streams the collected
// emails in csv, xlsx, or pdf, honoring the same date filters as List.
func (h *Handler) Export(c *gin.Context) {
	format := strings.ToLower(c.DefaultQuery("format", "csv"))
	dr := ComputeDateRange(c.Query("date_filter"), c.Query("start_date"), c.Query("end_date"), h.now())

	list, err := h.repo.ListAll(c.Request.Context(), dr)
	if err != nil {
		h.logger.Error("export emails failed", zap.Error(err))
		response.Internal(c, "could not export emails")
		return
	}

	filename := "emails"
	if !dr.All {
		filename = fmt.Sprintf("emails_%s_%s",
			dr.Start.Format(models.DateLayout), dr.End.Format(models.DateLayout))
	}

	switch format {
	case "csv":
		h.exportCSV(c, list, filename)
	case "xlsx":
		h.exportXLSX(c, list, filename)
	case "pdf":
		h.exportPDF(c, list, filename)
	default:
		response.BadRequest(c, "unsupported format: "+format)
	}
}

func (h *Handler) exportCSV(c *gin.Context, list []models.TrialEmail, filename string) {
	c.Header("Content-Disposition", "attachment; filename="+filename+".csv")
	c.Header("Content-Type", "text/csv")

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Email", "Consented", "Created At"})
	for _, e := range list {
		_ = w.Write([]string{e.Email, fmt.Sprintf("%t", e.Consented), e.CreatedAt.Format(models.DateLayout)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Error("write csv export failed", zap.Error(err))
	}
}

func (h *Handler) exportXLSX(c *gin.Context, list []models.TrialEmail, filename string) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Emails"
	index, err := f.NewSheet(sheet)
	if err != nil {
		response.Internal(c, "could not build workbook")
		return
	}
	f.SetActiveSheet(index)
	_ = f.DeleteSheet("Sheet1")

	_ = f.SetSheetRow(sheet, "A1", &[]any{"Email", "Consented", "Created At"})
	for i, e := range list {
		cell := fmt.Sprintf("A%d", i+2)
		_ = f.SetSheetRow(sheet, cell, &[]any{e.Email, e.Consented, e.CreatedAt.Format(models.DateLayout)})
	}

	c.Header("Content-Disposition", "attachment; filename="+filename+".xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("write xlsx export failed", zap.Error(err))
	}
}

func (h *Handler) exportPDF(c *gin.Context, list []models.TrialEmail, filename string) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Collected Emails", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(102, 126, 234)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(110, 8, "Email", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Consented", "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Created At", "1", 1, "L", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	for _, e := range list {
		pdf.CellFormat(110, 7, e.Email, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%t", e.Consented), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, e.CreatedAt.Format(models.DateLayout), "1", 1, "L", false, 0, "")
	}

	c.Header("Content-Disposition", "attachment; filename="+filename+".pdf")
	c.Header("Content-Type", "application/pdf")
	if err := pdf.Output(c.Writer); err != nil {
		h.logger.Error("write pdf export failed", zap.Error(err))
	}
}
