package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// pageParams reads the page and limit query parameters. Absent values are zero
// and left to the service defaults.
func pageParams(c *fiber.Ctx) (page, limit int, ok bool) {
	var err error
	if page, err = strconv.Atoi(c.Query("page", "0")); err != nil {
		return 0, 0, false
	}
	if limit, err = strconv.Atoi(c.Query("limit", "0")); err != nil {
		return 0, 0, false
	}
	return page, limit, true
}
