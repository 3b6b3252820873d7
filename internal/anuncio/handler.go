package anuncio

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kongaprog/zona-guira-app/internal/logging"
)

type Handler struct {
	service     *Service
	countryCode string
	logger      *logging.Logger
}

func NewHandler(service *Service, countryCode string, logger *logging.Logger) *Handler {
	return &Handler{service: service, countryCode: countryCode, logger: logger}
}

// View decorates an ad with the derived chip colors and contact link.
type View struct {
	Anuncio
	Color    ChipColor `json:"color"`
	Contacto string    `json:"contactoLink,omitempty"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/anuncios", h.getAnuncios)
	app.Get("/api/v1/anuncios/tipos", h.getTipos)
}

func (h *Handler) getAnuncios(c *fiber.Ctx) error {
	anuncios, err := h.service.List(c.Context())
	if err != nil {
		h.logger.Error("[muro] %v", err)
		return c.JSON([]View{})
	}

	filtered := FilterTipo(anuncios, c.Query("tipo"))
	out := make([]View, 0, len(filtered))
	for _, a := range filtered {
		v := View{Anuncio: a, Color: ColorTipo(a.Tipo)}
		if a.Contacto != "" {
			v.Contacto = ContactLink(h.countryCode, a)
		}
		out = append(out, v)
	}
	return c.JSON(out)
}

func (h *Handler) getTipos(c *fiber.Ctx) error {
	return c.JSON(Tipos)
}
