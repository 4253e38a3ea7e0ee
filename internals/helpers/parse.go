// file: internals/helpers/parse.go
package helper

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ParseUUIDParam membaca path param sebagai UUID.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(strings.TrimSpace(c.Params(name)))
}

// ParseDateQuery membaca query param tanggal (YYYY-MM-DD atau RFC3339).
// Kosong → (nil, nil). Format salah → error, supaya caller bisa balas 400
// alih-alih diam-diam menjalankan query tanpa filter.
func ParseDateQuery(c *fiber.Ctx, name string) (*time.Time, error) {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return &t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return &t, nil
	}
	return nil, fmt.Errorf("%s: invalid date %q (expected YYYY-MM-DD or RFC3339)", name, v)
}
