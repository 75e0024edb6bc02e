package controllers

import (
	"fmt"
	"strings"

	"logitrack-api/models"
	"logitrack-api/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// DictController serves the read-mostly lookup dictionaries that back the
// enquiry form: countries, ports, sales offices and PICs, CN offices,
// container types, cargo types and products.
type DictController struct {
	DB   *gorm.DB
	Dict *repositories.DictRepository
}

func NewDictController(DB *gorm.DB) *DictController {
	return &DictController{DB: DB, Dict: repositories.NewDictRepository(DB)}
}

func (c *DictController) GetCountries(ctx *fiber.Ctx) error {
	countries, err := c.Dict.ActiveCountries()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(countries)
}

func (c *DictController) GetPorts(ctx *fiber.Ctx) error {
	if keyword := ctx.Query("keyword"); keyword != "" {
		ports, err := c.Dict.SearchPorts(keyword)
		if err != nil {
			return dictError(ctx, err)
		}
		return ctx.JSON(ports)
	}
	if countryCode := ctx.Query("countryCode"); countryCode != "" {
		ports, err := c.Dict.ActivePortsByCountry(countryCode)
		if err != nil {
			return dictError(ctx, err)
		}
		return ctx.JSON(ports)
	}
	ports, err := c.Dict.AllPorts()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(ports)
}

func (c *DictController) GetPortsByCountry(ctx *fiber.Ctx) error {
	ports, err := c.Dict.ActivePortsByCountry(ctx.Params("code"))
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(ports)
}

func (c *DictController) SearchPorts(ctx *fiber.Ctx) error {
	ports, err := c.Dict.SearchPorts(ctx.Query("keyword"))
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(ports)
}

func (c *DictController) GetSalesPics(ctx *fiber.Ctx) error {
	if countryCode := ctx.Query("countryCode"); countryCode != "" {
		pics, err := c.Dict.ActiveSalesPicsByCountry(countryCode)
		if err != nil {
			return dictError(ctx, err)
		}
		return ctx.JSON(pics)
	}
	pics, err := c.Dict.ActiveSalesPics()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(pics)
}

func (c *DictController) GetSalesOffices(ctx *fiber.Ctx) error {
	offices, err := c.Dict.ActiveSalesOffices()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(offices)
}

func (c *DictController) GetCnOffices(ctx *fiber.Ctx) error {
	offices, err := c.Dict.ActiveCnOffices()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(offices)
}

func (c *DictController) GetContainerTypes(ctx *fiber.Ctx) error {
	types, err := c.Dict.ActiveContainerTypes()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(types)
}

func (c *DictController) GetCargoTypes(ctx *fiber.Ctx) error {
	if offerType := ctx.Query("offerType"); offerType != "" {
		parsed, err := models.ParseOfferType(offerType)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid offer type: " + offerType,
			})
		}
		cargoTypes, err := c.Dict.ActiveCargoTypesByOfferType(parsed)
		if err != nil {
			return dictError(ctx, err)
		}
		return ctx.JSON(cargoTypes)
	}
	cargoTypes, err := c.Dict.ActiveCargoTypes()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(cargoTypes)
}

func (c *DictController) GetSalesPicsByCountry(ctx *fiber.Ctx) error {
	pics, err := c.Dict.ActiveSalesPicsByCountry(ctx.Params("code"))
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(pics)
}

func (c *DictController) GetCargoTypesByOfferType(ctx *fiber.Ctx) error {
	parsed, err := models.ParseOfferType(ctx.Params("offerType"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid offer type: " + ctx.Params("offerType"),
		})
	}
	cargoTypes, err := c.Dict.ActiveCargoTypesByOfferType(parsed)
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(cargoTypes)
}

func (c *DictController) GetProducts(ctx *fiber.Ctx) error {
	products, err := c.Dict.ActiveProducts()
	if err != nil {
		return dictError(ctx, err)
	}
	return ctx.JSON(products)
}

func dictError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// ============================================================================
// Begin upload ports from excel file
// ============================================================================

type PortUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

// CreatePortsFromExcel bulk-loads the port dictionary from an uploaded
// spreadsheet. Expected columns: PORT_CODE, PORT_NAME, PORT_TYPE,
// COUNTRY_CODE, CITY. Existing code+type pairs are skipped, bad rows are
// reported without aborting the batch.
func (c *DictController) CreatePortsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "File is required",
		})
	}

	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") &&
		!strings.HasSuffix(strings.ToLower(file.Filename), ".xls") {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Only Excel files (.xlsx, .xls) are allowed",
		})
	}

	fileContent, err := file.Open()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to open file",
		})
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read Excel file",
		})
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "No sheets found in Excel file",
		})
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to read rows",
		})
	}

	if len(rows) < 2 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Excel file must contain header and at least one data row",
		})
	}

	result := PortUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}

	tx := c.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for i, row := range rows[1:] {
		rowNum := i + 2 // header is row 1

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		if len(row) < 3 {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Insufficient columns (expected at least 3)", rowNum))
			continue
		}

		portCode := strings.ToUpper(strings.TrimSpace(row[0]))
		portName := strings.TrimSpace(row[1])
		portType := strings.ToUpper(strings.TrimSpace(row[2]))
		countryCode := ""
		if len(row) > 3 {
			countryCode = strings.ToUpper(strings.TrimSpace(row[3]))
		}
		city := ""
		if len(row) > 4 {
			city = strings.TrimSpace(row[4])
		}

		if portCode == "" || portName == "" {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: PORT_CODE and PORT_NAME are required", rowNum))
			continue
		}
		if portType != string(models.PortTypeAir) && portType != string(models.PortTypeSea) {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: Invalid port type '%s'", rowNum, portType))
			continue
		}

		var existing models.Port
		if err := tx.Where("port_code = ? AND port_type = ?", portCode, portType).
			First(&existing).Error; err == nil {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, portCode)
			continue
		}

		port := models.Port{
			PortCode:    portCode,
			PortName:    portName,
			PortType:    models.PortType(portType),
			CountryCode: countryCode,
			City:        city,
			IsActive:    true,
		}
		if err := tx.Create(&port).Error; err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages,
				fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		result.SuccessCount++
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to commit transaction",
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Port upload processed",
		"data":    result,
	})
}
