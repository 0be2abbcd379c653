package httpapi

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDGeneratesOneWhenAbsent(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(requestIDFrom(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Header.Get(requestIDHeader))
}

func TestRequestIDEchoesAnIncomingValue(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(requestIDFrom(c))
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "fixed-id", resp.Header.Get(requestIDHeader))
}
