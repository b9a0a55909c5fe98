package main

import (
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gyccsite/internal/config"
)

func TestMountSwagger_ServesConfiguredHost(t *testing.T) {
	app := fiber.New()
	mountSwagger(app, &config.AppConfig{AppHost: "api.gyccyouthlab.org", AppSchemes: []string{"https"}})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest("GET", "/swagger/doc.json", nil)
			req.Host = "internal:8080"
			req.Header.Set("X-Forwarded-Proto", "http")
			resp, err := app.Test(req)
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			var doc struct {
				Host    string   `json:"host"`
				Schemes []string `json:"schemes"`
			}
			if assert.NoError(t, json.NewDecoder(resp.Body).Decode(&doc)) {
				assert.Equal(t, "api.gyccyouthlab.org", doc.Host)
				assert.Equal(t, []string{"https"}, doc.Schemes)
			}
		}()
	}
	wg.Wait()

	resp, err := app.Test(httptest.NewRequest("GET", "/swagger/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
