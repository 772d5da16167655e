package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ParseIDParam reads a positive decimal id from the route.
func ParseIDParam(c *fiber.Ctx, name string) (uint, error) {
	return parseID(c.Params(name), name)
}

// ParseIDQuery reads an optional positive decimal id from the query string.
// ok is false when the parameter is absent.
func ParseIDQuery(c *fiber.Ctx, name string) (id uint, ok bool, err error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return 0, false, nil
	}
	id, err = parseID(raw, name)
	return id, err == nil, err
}

func parseID(raw, name string) (uint, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || n == 0 {
		return 0, FieldError(name, "must be a positive integer")
	}
	return uint(n), nil
}
