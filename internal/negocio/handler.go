package negocio

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/kongaprog/zona-guira-app/internal/category"
	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/nav"
	"github.com/kongaprog/zona-guira-app/internal/normalize"
)

type Handler struct {
	service     *Service
	countryCode string
	logger      *logging.Logger
}

func NewHandler(service *Service, countryCode string, logger *logging.Logger) *Handler {
	return &Handler{service: service, countryCode: countryCode, logger: logger}
}

// View decorates a record with the derived fields the client renders:
// canonical bucket, the wa.me contact link and whether the profile shows
// the catalog button.
type View struct {
	Negocio
	Bucket      string `json:"bucket"`
	Contacto    string `json:"contacto,omitempty"`
	TieneTienda bool   `json:"tieneTienda"`
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/negocios", h.getNegocios)
	app.Get("/api/v1/negocio/:id", h.getNegocio)
	app.Get("/api/v1/provincias", h.getProvincias)
}

func (h *Handler) getNegocios(c *fiber.Ctx) error {
	all, err := h.service.List(c.Context())
	if err != nil {
		// degrade to an empty directory; the sheet being unreachable is not
		// a client error
		h.logger.Error("[negocios] %v", err)
		return c.JSON([]View{})
	}

	filtered := Filter(all, c.Query("provincia"), c.Query("categoria"), c.Query("q"))
	return c.JSON(h.views(filtered))
}

func (h *Handler) getNegocio(c *fiber.Ctx) error {
	n, err := h.service.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Negocio not found")
		}
		// the sheet being unreachable says nothing about the id
		h.logger.Error("[negocios] %v", err)
		return c.Status(fiber.StatusServiceUnavailable).SendString("Directory unavailable")
	}
	return c.JSON(h.view(n))
}

func (h *Handler) getProvincias(c *fiber.Ctx) error {
	out := append([]string{category.All}, Provincias...)
	return c.JSON(out)
}

func (h *Handler) views(negocios []Negocio) []View {
	out := make([]View, 0, len(negocios))
	for _, n := range negocios {
		out = append(out, h.view(n))
	}
	return out
}

func (h *Handler) view(n Negocio) View {
	bucket := category.ClassifyNegocio(n.Categoria, n.Etiquetas, n.Nombre)
	v := View{
		Negocio:     n,
		Bucket:      string(bucket),
		TieneTienda: nav.TieneTienda(n.Web, bucket),
	}
	if n.Whatsapp != "" {
		v.Contacto = normalize.WhatsAppLink(h.countryCode, n.Whatsapp, "")
	}
	return v
}
