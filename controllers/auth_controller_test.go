package controllers_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func login(t *testing.T, app *fiber.App, username, password string) (int, map[string]interface{}) {
	t.Helper()

	resp := doJSON(t, app, fiber.MethodPost, "/api/auth/login", fiber.Map{
		"username": username,
		"password": password,
	})
	var body map[string]interface{}
	decodeBody(t, resp, &body)
	return resp.StatusCode, body
}

func TestLoginSeededAdmin(t *testing.T) {
	app, _ := newTestApp(t)

	status, body := login(t, app, "admin", "admin123")
	require.Equal(t, fiber.StatusOK, status)

	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginWrongPassword(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := login(t, app, "admin", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestLoginUnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := login(t, app, "nobody", "admin123")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMeRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	withBadToken, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, withBadToken.StatusCode)
	withBadToken.Body.Close()
}

func TestUsersRouteGuarded(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/users", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}
