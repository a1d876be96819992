package drinks

import (
	"errors"
	"fmt"
	"io"

	"drinks-api/core/ingest"
	"drinks-api/core/logger"
	"drinks-api/core/utils"
	"drinks-api/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderArchiveID carries the archive id of an archived import.
const HeaderArchiveID = "X-Archive-ID"

// catalogRoutes maps reference catalog kinds to their insert path.
var catalogRoutes = []struct {
	path string
	kind ingest.SheetKind
}{
	{"/countries", ingest.KindCountries},
	{"/origins", ingest.KindOrigins},
	{"/brands", ingest.KindBrands},
	{"/categories", ingest.KindCategories},
	{"/packaging", ingest.KindPackaging},
	{"/beer-styles", ingest.KindBeerStyles},
	{"/spirit-types", ingest.KindSpiritTypes},
	{"/spirit-aging-containers", ingest.KindSpiritAgingContainers},
}

// Handler handles HTTP requests for catalog ingestion.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the ingestion routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/beers", h.HandleCreateBeer)
	app.Post("/spirits", h.HandleCreateSpirit)
	app.Post("/import-beers", h.HandleImportBeers)
	app.Post("/import-spirits", h.HandleImportSpirits)
	app.Post("/catalog", h.HandleImportCatalog)
	app.Get("/export-beers", h.HandleExportBeers)
	app.Get("/export-spirits", h.HandleExportSpirits)

	for _, r := range catalogRoutes {
		kind := r.kind
		app.Post(r.path, func(c *fiber.Ctx) error { return h.HandleCreateCatalogRow(c, kind) })
	}

	imports := app.Group("/imports")
	imports.Get("/:target", h.HandleListImports)
	imports.Get("/:target/:id", h.HandleGetImport)
}

// HandleCreateBeer ingests one beer.
// @Summary Create Beer
// @Description Validates a beer, reserves its identity and attaches the format to a new or existing product.
// @Tags drinks
// @Accept json
// @Produce json
// @Param beer body map[string]interface{} true "Beer record"
// @Success 201 {object} CreatedResponse "Created"
// @Failure 400 {object} map[string]interface{} "Field errors"
// @Failure 409 {object} map[string]string "Beer already exists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /beers [post]
func (h *Handler) HandleCreateBeer(c *fiber.Ctx) error {
	return h.createProduct(c, ingest.KindBeers)
}

// HandleCreateSpirit ingests one spirit.
// @Summary Create Spirit
// @Description Validates a spirit, reserves its identity and attaches the format to a new or existing product.
// @Tags drinks
// @Accept json
// @Produce json
// @Param spirit body map[string]interface{} true "Spirit record"
// @Success 201 {object} CreatedResponse "Created"
// @Failure 400 {object} map[string]interface{} "Field errors"
// @Failure 409 {object} map[string]string "Spirit already exists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /spirits [post]
func (h *Handler) HandleCreateSpirit(c *fiber.Ctx) error {
	return h.createProduct(c, ingest.KindSpirits)
}

// CreatedResponse is the body of a created product.
type CreatedResponse struct {
	Hash string      `json:"hash"`
	Data CreatedData `json:"data"`
}

type CreatedData struct {
	ProductID string `json:"productId"`
	FormatID  string `json:"formatId"`
}

func (h *Handler) createProduct(c *fiber.Ctx, kind ingest.SheetKind) error {
	raw, err := parseBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	out := h.service.Submit(c.UserContext(), kind, raw)
	if out.Status == ingest.StatusCreated {
		return c.Status(fiber.StatusCreated).JSON(CreatedResponse{
			Hash: out.Result.Hash,
			Data: CreatedData{ProductID: out.Result.ProductID, FormatID: out.Result.FormatID},
		})
	}
	return h.reject(c, kind, out)
}

// HandleCreateCatalogRow inserts one reference catalog row.
// @Summary Create Catalog Row
// @Description Inserts a country, origin, brand, category, packaging, beer style, spirit type or aging container. Styles, types and containers are keyed by the slug of their name.
// @Tags catalog
// @Accept json
// @Produce json
// @Param kind path string true "Catalog kind" Enums(countries, origins, brands, categories, packaging, beer-styles, spirit-types, spirit-aging-containers)
// @Param row body map[string]interface{} true "Catalog row"
// @Success 201 {object} map[string]interface{} "Created"
// @Failure 400 {object} map[string]interface{} "Field errors"
// @Failure 409 {object} map[string]string "Already exists"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /{kind} [post]
func (h *Handler) HandleCreateCatalogRow(c *fiber.Ctx, kind ingest.SheetKind) error {
	raw, err := parseBody(c)
	if err != nil {
		return badRequest(c, err.Error())
	}

	out := h.service.SubmitCatalog(c.UserContext(), kind, raw)
	if out.Status == ingest.StatusCreated {
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": out.Row})
	}
	return h.reject(c, kind, out)
}

func (h *Handler) reject(c *fiber.Ctx, kind ingest.SheetKind, out *ingest.Outcome) error {
	switch out.Status {
	case ingest.StatusInvalid:
		errs := out.Errors
		if len(errs) == 0 {
			errs = validation.FieldErrors{{Message: out.Message}}
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": errs})
	case ingest.StatusDuplicate:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": out.Message})
	default:
		logger.WithRayID(h.service.logger, c).Error("Submission failed",
			zap.String("kind", kind.String()), zap.Error(out.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func parseBody(c *fiber.Ctx) (map[string]any, error) {
	var raw map[string]any
	if err := c.BodyParser(&raw); err != nil {
		return nil, fmt.Errorf("invalid request body: %v", err)
	}
	if raw == nil {
		return nil, errors.New("request body must be a JSON object")
	}
	return raw, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": validation.FieldErrors{{Message: msg}}})
}

// HandleImportBeers imports a beer workbook.
// @Summary Import Beers
// @Description Imports every sheet except VALUES as beer rows. Invalid rows are reported and skipped; valid rows are upserted.
// @Tags drinks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or .csv)"
// @Param archive query boolean false "Archive the workbook and report"
// @Success 200 {object} ingest.Report "Import report"
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 413 {object} map[string]string "File too large"
// @Router /import-beers [post]
func (h *Handler) HandleImportBeers(c *fiber.Ctx) error {
	return h.importWorkbook(c, "beers")
}

// HandleImportSpirits imports a spirit workbook.
// @Summary Import Spirits
// @Description Imports every sheet except VALUES as spirit rows. Invalid rows are reported and skipped; valid rows are upserted.
// @Tags drinks
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx or .csv)"
// @Param archive query boolean false "Archive the workbook and report"
// @Success 200 {object} ingest.Report "Import report"
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 413 {object} map[string]string "File too large"
// @Router /import-spirits [post]
func (h *Handler) HandleImportSpirits(c *fiber.Ctx) error {
	return h.importWorkbook(c, "spirits")
}

// HandleImportCatalog imports a reference catalog workbook.
// @Summary Import Catalog
// @Description Imports sheets named after catalog kinds (Countries, Origins, Brands, Categories, Packaging, BeerStyles, SpiritTypes, SpiritAgingContainers), parents first.
// @Tags catalog
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Workbook (.xlsx)"
// @Param archive query boolean false "Archive the workbook and report"
// @Success 200 {object} ingest.Report "Import report"
// @Failure 400 {object} map[string]string "Missing or unreadable file"
// @Failure 413 {object} map[string]string "File too large"
// @Router /catalog [post]
func (h *Handler) HandleImportCatalog(c *fiber.Ctx) error {
	return h.importWorkbook(c, TargetCatalog)
}

func (h *Handler) importWorkbook(c *fiber.Ctx, target string) error {
	l := logger.WithRayID(h.service.logger, c)

	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	limit := h.service.MaxFileBytes()
	if fh.Size > limit {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
			"error": fmt.Sprintf("file exceeds %d MB", limit>>20),
		})
	}

	f, err := fh.Open()
	if err != nil {
		l.Error("Failed to open upload", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file could not be read"})
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file could not be read"})
	}

	archive := h.service.ShouldArchive(utils.ToBool(c.Query("archive")))
	res, err := h.service.ImportWorkbook(c.UserContext(), target, fh.Filename, data, archive, nil)
	switch {
	case errors.Is(err, ingest.ErrUnsupportedFile), errors.Is(err, ErrInvalidWorkbook):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Import failed", zap.String("target", target), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}

	if res.ArchiveID != "" {
		c.Set(HeaderArchiveID, res.ArchiveID)
	}
	return c.JSON(res.Report)
}

// HandleExportBeers downloads the beer import template.
// @Summary Export Beers
// @Description Returns a workbook with a VALUES sheet of valid reference ids and one sheet per brand holding its beers, one row per format.
// @Tags drinks
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export-beers [get]
func (h *Handler) HandleExportBeers(c *fiber.Ctx) error {
	return h.export(c, ingest.KindBeers, "beers.xlsx")
}

// HandleExportSpirits downloads the spirit import template.
// @Summary Export Spirits
// @Description Returns a workbook with a VALUES sheet of valid reference ids and one sheet per brand holding its spirits, one row per format.
// @Tags drinks
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "Workbook"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /export-spirits [get]
func (h *Handler) HandleExportSpirits(c *fiber.Ctx) error {
	return h.export(c, ingest.KindSpirits, "spirits.xlsx")
}

func (h *Handler) export(c *fiber.Ctx, kind ingest.SheetKind, filename string) error {
	data, err := h.service.Export(c.UserContext(), kind)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Export failed", zap.String("kind", kind.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
	}
	c.Attachment(filename)
	return c.Send(data)
}

// HandleListImports lists archived imports.
// @Summary List Archived Imports
// @Tags imports
// @Produce json
// @Param target path string true "Import target" Enums(beers, spirits, catalog)
// @Param limit query int false "Maximum number of entries, all when 0"
// @Success 200 {array} ingest.ArchiveEntry "Archived imports, newest first"
// @Failure 501 {object} map[string]string "Archive not configured"
// @Router /imports/{target} [get]
func (h *Handler) HandleListImports(c *fiber.Ctx) error {
	entries, err := h.service.Archives(c.UserContext(), c.Params("target"))
	if err != nil {
		return h.archiveError(c, err)
	}
	if entries == nil {
		entries = []ingest.ArchiveEntry{}
	}
	if limit := utils.ToInt(c.Query("limit")); limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return c.JSON(entries)
}

// HandleGetImport returns the report of an archived import.
// @Summary Get Archived Import Report
// @Tags imports
// @Produce json
// @Param target path string true "Import target" Enums(beers, spirits, catalog)
// @Param id path string true "Archive id"
// @Success 200 {object} ingest.Report "Import report"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 501 {object} map[string]string "Archive not configured"
// @Router /imports/{target}/{id} [get]
func (h *Handler) HandleGetImport(c *fiber.Ctx) error {
	report, err := h.service.ArchivedReport(c.UserContext(), c.Params("target"), c.Params("id"))
	if err != nil {
		return h.archiveError(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) archiveError(c *fiber.Ctx, err error) error {
	if errors.Is(err, ErrArchiveDisabled) {
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Warn("Archive read failed", zap.Error(err))
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "import not found"})
}
