package mapa

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/negocio"
)

type Handler struct {
	negocios    *negocio.Service
	variant     string
	countryCode string
	logger      *logging.Logger
}

func NewHandler(negocios *negocio.Service, variant, countryCode string, logger *logging.Logger) *Handler {
	return &Handler{negocios: negocios, variant: variant, countryCode: countryCode, logger: logger}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/mapa", h.getMapa)
}

// getMapa serves the map descriptor for the current filters. A failed sheet
// fetch renders an empty map, never an error page.
func (h *Handler) getMapa(c *fiber.Ctx) error {
	all, err := h.negocios.List(c.Context())
	if err != nil {
		h.logger.Error("[mapa] %v", err)
		all = nil
	}

	filtered := negocio.Filter(all, c.Query("provincia"), c.Query("categoria"), c.Query("q"))
	return c.JSON(Build(h.variant, h.countryCode, filtered))
}
