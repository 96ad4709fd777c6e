package documents

import (
	"fmt"
	"time"

	"github.com/byildiz78/td-invoice/internal/models"
	"github.com/byildiz78/td-invoice/internal/robotpos"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

var exportColumns = []string{
	"Belge No", "Belge Tarihi", "Şube", "Tür", "Müşteri", "Vergi No",
	"Tutar", "Aktarıldı",
}

// BuildExportWorkbook: filtrelenmiş belge listesini tek sayfalık bir Excel
// dosyasına yazar. Satırlar verilen sırada yazılır; sıralamayı çağıran yapar.
func BuildExportWorkbook(docs []models.InvoiceHeader) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := "Belgeler"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("sayfa adlandırılamadı: %w", err)
	}

	for i, col := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return nil, err
		}
	}

	for r, doc := range docs {
		transferred := "Hayır"
		if doc.Transferred() {
			transferred = "Evet"
		}
		values := []any{
			doc.OrderID,
			FormatDateTime(doc.InvoiceDateTime()),
			doc.BranchName,
			string(doc.Type),
			doc.CustomerName,
			doc.CustomerTaxNo,
			FormatCurrency(doc.InvoiceTotal),
			transferred,
		}
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f, nil
}

// GET /api/invoices/export?startDate&endDate&search&transfer&sortField&sortDir
// Filtrelenmiş listeyi xlsx olarak indirir; sayfalama uygulanmaz
func ExportHandler(client *robotpos.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, endDate, err := requireDateRange(c)
		if err != nil {
			return err
		}

		headers, err := fetchHeadersLogged(c, client, startDate, endDate)
		if err != nil {
			return err
		}

		state := viewStateFromQuery(c)
		filtered := Filter(headers, state.Search, state.TransferStatus)

		// Tüm satırlar tek sayfada
		page := SortAndPaginate(filtered, state.SortField, state.SortDirection, maxInt(len(filtered), 1), 1)

		f, err := BuildExportWorkbook(page.PageItems)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası oluşturulamadı")
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Excel dosyası yazılamadı")
		}

		fileName := fmt.Sprintf("belgeler_%s_%s_%s.xlsx", startDate, endDate, time.Now().Format("20060102150405"))
		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
		return c.Send(buf.Bytes())
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
