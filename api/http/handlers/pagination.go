package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const maxPageSize = 200

// parseLimitOffset reads ?limit and ?offset, ignoring values out of range.
func parseLimitOffset(c *fiber.Ctx, defLimit int) (limit, offset int) {
	limit = defLimit
	if n, err := strconv.Atoi(strings.TrimSpace(c.Query("limit"))); err == nil && n > 0 && n <= maxPageSize {
		limit = n
	}
	if n, err := strconv.Atoi(strings.TrimSpace(c.Query("offset"))); err == nil && n >= 0 {
		offset = n
	}
	return limit, offset
}
