package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"logitrack-api/config"
	"logitrack-api/database"
	"logitrack-api/models"
	"logitrack-api/routes"
	"logitrack-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.LoadConfig()

	db := utils.SetupTestDB(t)
	database.RunSeeders(db)

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func containerTypeIDByCode(t *testing.T, db *gorm.DB, code string) int {
	t.Helper()
	var ct models.ContainerType
	require.NoError(t, db.Where("container_code = ?", code).First(&ct).Error)
	return ct.ID
}

func TestCreateEnquiryEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	payload := fiber.Map{
		"issueDate":   "2024-03-15",
		"productCode": "SEA",
		"commodity":   "furniture",
		"containerLines": []fiber.Map{
			// "quantity" is the documented alias for "containerQty"
			{"containerTypeId": containerTypeIDByCode(t, db, "20GP"), "quantity": 2},
			{"containerTypeId": containerTypeIDByCode(t, db, "40HQ"), "containerQty": 1},
		},
	}

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", payload)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created models.Enquiry
	decodeBody(t, resp, &created)
	assert.Equal(t, "CN2403001-S", created.ReferenceNumber)
	assert.InDelta(t, 4.0, created.QuantityTeu, 0.001)
	assert.Equal(t, models.StatusNew, created.Status)
	assert.Len(t, created.ContainerLines, 2)
}

func TestGetEnquiriesPageEnvelope(t *testing.T) {
	app, _ := newTestApp(t)

	for i := 0; i < 3; i++ {
		resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{"issueDate": "2024-03-15"})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/enquiries?page=0&size=2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		Content       []models.Enquiry `json:"content"`
		TotalElements int64            `json:"totalElements"`
		TotalPages    int              `json:"totalPages"`
		Size          int              `json:"size"`
		Number        int              `json:"number"`
	}
	decodeBody(t, resp, &page)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 2, page.Size)
	assert.Equal(t, 0, page.Number)
	assert.Len(t, page.Content, 2)
}

func TestGetEnquiryByIDEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{"issueDate": "2024-03-15"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Enquiry
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/enquiries/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/enquiries/999999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/enquiries/not-a-number", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetEnquiriesByStatusEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{"issueDate": "2024-03-15"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/enquiries/status/new", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var enquiries []models.Enquiry
	decodeBody(t, resp, &enquiries)
	assert.Len(t, enquiries, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/api/enquiries/status/bogus", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestDeleteEnquiryEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{"issueDate": "2024-03-15"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Enquiry
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/enquiries/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/enquiries/%d", created.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestCopyEnquiryEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{
		"issueDate":   "2024-03-15",
		"productCode": "SEA",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Enquiry
	decodeBody(t, resp, &created)

	resp = doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/api/enquiries/%d/copy", created.ID), nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var copied models.Enquiry
	decodeBody(t, resp, &copied)

	assert.NotEqual(t, created.ID, copied.ID)
	assert.NotEqual(t, created.ReferenceNumber, copied.ReferenceNumber)
	assert.Equal(t, models.StatusNew, copied.Status)
}

func TestOfferEndpoints(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/enquiries", fiber.Map{"issueDate": "2024-03-15"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created models.Enquiry
	decodeBody(t, resp, &created)

	base := fmt.Sprintf("/api/enquiries/%d/offers", created.ID)

	resp = doJSON(t, app, fiber.MethodPost, base, fiber.Map{"offerType": "OCEAN", "priceText": "USD 900"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var offer models.Offer
	decodeBody(t, resp, &offer)
	assert.Equal(t, 1, offer.SequenceNo)
	assert.True(t, offer.IsLatest)

	resp = doJSON(t, app, fiber.MethodPost, base, fiber.Map{"offerType": "TRUCK"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, base, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var offers []models.Offer
	decodeBody(t, resp, &offers)
	assert.Len(t, offers, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/api/enquiries/999999/offers", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/api/offers/%d", offer.ID), fiber.Map{"priceText": "USD 850"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Offer
	decodeBody(t, resp, &updated)
	assert.Equal(t, "USD 850", updated.PriceText)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/offers/%d", offer.ID), nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/offers/%d", offer.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
