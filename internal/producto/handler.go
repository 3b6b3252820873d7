package producto

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

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/productos", h.getProductos)
	app.Post("/api/v1/pedido", h.postPedido)
}

func (h *Handler) getProductos(c *fiber.Ctx) error {
	nombreNegocio := c.Query("negocio")
	if nombreNegocio == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "negocio is required"})
	}

	productos, err := h.service.ListByNegocio(c.Context(), nombreNegocio)
	if err != nil {
		// empty catalog rather than an error page; the client shows its
		// "no ha subido productos" state
		h.logger.Error("[productos] %v", err)
		return c.JSON([]Producto{})
	}
	return c.JSON(productos)
}

func (h *Handler) postPedido(c *fiber.Ctx) error {
	p := new(Pedido)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(p.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "items is empty"})
	}
	if p.Whatsapp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "whatsapp is required"})
	}

	link, mensaje, total := OrderLink(h.countryCode, *p)
	return c.JSON(fiber.Map{
		"link":    link,
		"mensaje": mensaje,
		"total":   total,
	})
}
