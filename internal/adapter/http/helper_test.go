package http

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"seismic-catalog/internal/auth"
)

// ---- test helpers ----

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(b)
}

func withPrincipal(c echo.Context, p auth.Principal) {
	req := c.Request()
	c.SetRequest(req.WithContext(auth.WithPrincipal(req.Context(), p)))
}
