package audit

import (
	"fmt"

	"github.com/byildiz78/td-invoice/internal/database"
	"github.com/byildiz78/td-invoice/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/admin/fetch-logs?query_type=headers&user_id=1&limit=50&offset=0
func ListFetchLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbq := database.DB.Model(&models.FetchLog{})

		if qt := c.Query("query_type"); qt != "" {
			dbq = dbq.Where("query_type = ?", qt)
		}

		if uidStr := c.Query("user_id"); uidStr != "" {
			var uid uint
			if _, err := fmt.Sscan(uidStr, &uid); err == nil && uid > 0 {
				dbq = dbq.Where("user_id = ?", uid)
			}
		}

		limit := 50
		if limStr := c.Query("limit"); limStr != "" {
			var lim int
			if _, err := fmt.Sscan(limStr, &lim); err == nil && lim > 0 && lim <= 500 {
				limit = lim
			}
		}

		offset := 0
		if offStr := c.Query("offset"); offStr != "" {
			var off int
			if _, err := fmt.Sscan(offStr, &off); err == nil && off > 0 {
				offset = off
			}
		}

		var total int64
		if err := dbq.Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sorgu kayıtları sayılamadı")
		}

		var logs []models.FetchLog
		if err := dbq.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Sorgu kayıtları alınamadı")
		}

		return c.JSON(fiber.Map{
			"total": total,
			"logs":  logs,
		})
	}
}
