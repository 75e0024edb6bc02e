package controllers_test

import (
	"testing"

	"logitrack-api/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCountriesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dict/countries", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var countries []models.Country
	decodeBody(t, resp, &countries)
	assert.NotEmpty(t, countries)
	for _, c := range countries {
		assert.True(t, c.IsActive)
	}
}

func TestGetContainerTypesEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dict/container-types", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var types []models.ContainerType
	decodeBody(t, resp, &types)
	require.NotEmpty(t, types)

	byCode := map[string]float64{}
	for _, ct := range types {
		byCode[ct.ContainerCode] = ct.TeuValue
	}
	assert.InDelta(t, 1.0, byCode["20GP"], 0.001)
	assert.InDelta(t, 2.0, byCode["40HQ"], 0.001)
	assert.InDelta(t, 2.25, byCode["45HQ"], 0.001)
}

func TestGetCargoTypesByOfferType(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dict/cargo-types?offerType=OCEAN", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var cargoTypes []models.CargoType
	decodeBody(t, resp, &cargoTypes)
	require.NotEmpty(t, cargoTypes)
	for _, ct := range cargoTypes {
		assert.Equal(t, models.OfferTypeOcean, ct.OfferType)
	}

	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/cargo-types?offerType=TRUCK", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/cargo-types/offer-type/AIR", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var air []models.CargoType
	decodeBody(t, resp, &air)
	require.Len(t, air, 1)
	assert.Equal(t, "AIR", air[0].Code)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/cargo-types/offer-type/TRUCK", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestGetPortsEndpoint(t *testing.T) {
	app, db := newTestApp(t)

	ports := []models.Port{
		{PortCode: "SHA", PortName: "Shanghai", PortType: models.PortTypeSea, CountryCode: "CN", IsActive: true},
		{PortCode: "LEH", PortName: "Le Havre", PortType: models.PortTypeSea, CountryCode: "FR", IsActive: true},
		{PortCode: "CDG", PortName: "Paris Charles de Gaulle", PortType: models.PortTypeAir, CountryCode: "FR", IsActive: false},
	}
	for i := range ports {
		require.NoError(t, db.Create(&ports[i]).Error)
	}

	resp := doJSON(t, app, fiber.MethodGet, "/api/dict/ports?countryCode=FR", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var byCountry []models.Port
	decodeBody(t, resp, &byCountry)
	require.Len(t, byCountry, 1)
	assert.Equal(t, "LEH", byCountry[0].PortCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/ports?keyword=shang", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var byKeyword []models.Port
	decodeBody(t, resp, &byKeyword)
	require.Len(t, byKeyword, 1)
	assert.Equal(t, "SHA", byKeyword[0].PortCode)

	// path-style variants serve the same lookups
	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/ports/country/FR", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var byPath []models.Port
	decodeBody(t, resp, &byPath)
	assert.Len(t, byPath, 1)

	resp = doJSON(t, app, fiber.MethodGet, "/api/dict/ports/search?keyword=hav", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var searched []models.Port
	decodeBody(t, resp, &searched)
	require.Len(t, searched, 1)
	assert.Equal(t, "LEH", searched[0].PortCode)
}

func TestPortUploadRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/api/dict/ports/upload-excel", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestGetProductsEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, fiber.MethodGet, "/api/dict/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var products []models.Product
	decodeBody(t, resp, &products)
	require.NotEmpty(t, products)

	byCode := map[string]string{}
	for _, p := range products {
		byCode[p.Code] = p.Abbr
	}
	assert.Equal(t, "S", byCode["SEA"])
	assert.Equal(t, "SA", byCode["SEA-AIR"])
}
