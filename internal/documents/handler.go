package documents

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/byildiz78/td-invoice/internal/audit"
	"github.com/byildiz78/td-invoice/internal/auth"
	"github.com/byildiz78/td-invoice/internal/models"
	"github.com/byildiz78/td-invoice/internal/robotpos"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func resolveUser(c *fiber.Ctx) (uint, string) {
	userID, _ := c.Locals(auth.CtxUserIDKey).(uint)
	userName, _ := c.Locals(auth.CtxUserNameKey).(string)
	return userID, userName
}

// Tarih aralığı her belge sorgusunda zorunlu; RobotPos tarafında tarihsiz
// sorgu tüm arşivi tarar
func requireDateRange(c *fiber.Ctx) (string, string, error) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		return "", "", fiber.NewError(fiber.StatusBadRequest, "startDate ve endDate zorunlu (YYYY-MM-DD)")
	}
	return startDate, endDate, nil
}

func fetchHeadersLogged(c *fiber.Ctx, client *robotpos.Client, startDate, endDate string) ([]models.InvoiceHeader, error) {
	userID, userName := resolveUser(c)

	began := time.Now()
	headers, err := client.FetchHeaders(c.UserContext(), startDate, endDate)

	if logErr := audit.WriteLog(audit.LogOptions{
		UserID:    userID,
		UserName:  userName,
		QueryType: models.QueryTypeHeaders,
		StartDate: startDate,
		EndDate:   endDate,
		RowCount:  len(headers),
		Duration:  time.Since(began),
		Err:       err,
	}); logErr != nil {
		log.Println("Fetch log yazılamadı:", logErr)
	}

	if err != nil {
		return nil, mapUpstreamError(err)
	}
	return headers, nil
}

func mapUpstreamError(err error) error {
	if errors.Is(err, robotpos.ErrInvalidParam) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	log.Println("RobotPos hatası:", err)
	return fiber.NewError(fiber.StatusBadGateway, "Belgeler alınamadı, POS servisine ulaşılamıyor")
}

// GET /api/invoices/headers?startDate=2023-07-01&endDate=2023-07-31
// Ham başlık listesi, upstream cevabı olduğu gibi döner
func ListHeadersHandler(client *robotpos.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, endDate, err := requireDateRange(c)
		if err != nil {
			return err
		}

		headers, err := fetchHeadersLogged(c, client, startDate, endDate)
		if err != nil {
			return err
		}

		return c.JSON(headers)
	}
}

// GET /api/invoices?startDate&endDate&search&transfer&sortField&sortDir&page&pageSize
// Filtrelenmiş, sıralanmış ve sayfalanmış tablo görünümü
func ListInvoicesHandler(client *robotpos.Client) fiber.Handler {
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
		page := SortAndPaginate(filtered, state.SortField, state.SortDirection, state.PageSize, state.Page)

		return c.JSON(fiber.Map{
			"state": state,
			"stats": Stats(filtered),
			"page":  page,
		})
	}
}

// GET /api/invoices/branches?startDate&endDate&search&transfer
// Şube bazlı görünüm; gruplar toplam tutara göre, üyeler tarihe göre azalan
func BranchSummaryHandler(client *robotpos.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		startDate, endDate, err := requireDateRange(c)
		if err != nil {
			return err
		}

		headers, err := fetchHeadersLogged(c, client, startDate, endDate)
		if err != nil {
			return err
		}

		filtered := Filter(headers, c.Query("search"), ParseTransferStatus(c.Query("transfer")))

		groups := GroupByBranch(filtered)
		for i := range groups {
			groups[i].Documents = SortDocumentsByDateDesc(groups[i].Documents)
		}

		return c.JSON(fiber.Map{
			"branch_count": len(groups),
			"stats":        Stats(filtered),
			"groups":       groups,
		})
	}
}

// GET /api/invoices/:orderKey
// Belge detayı; türetilmiş toplamlar ve combo ağacıyla birlikte
func GetInvoiceHandler(client *robotpos.Client) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderKey := c.Params("orderKey")
		if _, err := uuid.Parse(orderKey); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "orderKey UUID formatında olmalı")
		}

		userID, userName := resolveUser(c)

		began := time.Now()
		detail, err := client.FetchDetail(c.UserContext(), orderKey)

		rowCount := 0
		if detail != nil {
			rowCount = 1
		}
		if logErr := audit.WriteLog(audit.LogOptions{
			UserID:    userID,
			UserName:  userName,
			QueryType: models.QueryTypeDetail,
			OrderKey:  orderKey,
			RowCount:  rowCount,
			Duration:  time.Since(began),
			Err:       err,
		}); logErr != nil {
			log.Println("Fetch log yazılamadı:", logErr)
		}

		if err != nil {
			if errors.Is(err, robotpos.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("Belge bulunamadı: %s", orderKey))
			}
			return mapUpstreamError(err)
		}

		return c.JSON(fiber.Map{
			"invoice":  detail,
			"rendered": RenderDetail(*detail),
		})
	}
}

func viewStateFromQuery(c *fiber.Ctx) ViewState {
	state := DefaultViewState()
	state.Search = c.Query("search")
	state.TransferStatus = ParseTransferStatus(c.Query("transfer"))
	state.SortField = ParseSortField(c.Query("sortField"))
	state.SortDirection = ParseSortDirection(c.Query("sortDir"))

	if page := c.QueryInt("page"); page > 0 {
		state.Page = page
	}
	if size := c.QueryInt("pageSize"); size > 0 && size <= 200 {
		state.PageSize = size
	}
	return state
}
