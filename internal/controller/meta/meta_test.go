package meta_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergington.dev/backend/internal/pkg/bininfo"
	"mergington.dev/backend/internal/pkg/testentry"
)

func TestIndexRedirectsToFrontend(t *testing.T) {
	var app *fiber.App
	testentry.Populate(t, &app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/static/index.html", resp.Header.Get(fiber.HeaderLocation))
}

func TestStaticFrontend(t *testing.T) {
	var app *fiber.App
	testentry.Populate(t, &app)

	for _, path := range []string{"/static/index.html", "/static/app.js", "/static/styles.css"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/index.html", nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Mergington High School")
}

func TestHealth(t *testing.T) {
	var app *fiber.App
	testentry.Populate(t, &app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/_/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBinInfoIsCacheable(t *testing.T) {
	var app *fiber.App
	testentry.Populate(t, &app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/_/bininfo", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "public, max-age=300", resp.Header.Get(fiber.HeaderCacheControl))
	assert.Equal(t, bininfo.Built().Format(http.TimeFormat), resp.Header.Get(fiber.HeaderLastModified))
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderExpires))

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+bininfo.Version+`","build":"`+bininfo.BuildTime+`"}`, string(body))
}
