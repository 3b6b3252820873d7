package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/kongaprog/zona-guira-app/internal/anuncio"
	"github.com/kongaprog/zona-guira-app/internal/category"
	"github.com/kongaprog/zona-guira-app/internal/config"
	"github.com/kongaprog/zona-guira-app/internal/logging"
	"github.com/kongaprog/zona-guira-app/internal/mapa"
	"github.com/kongaprog/zona-guira-app/internal/negocio"
	"github.com/kongaprog/zona-guira-app/internal/producto"
	"github.com/kongaprog/zona-guira-app/internal/sheet"
)

func main() {
	cfg := config.Load()
	logger := logging.New()

	app := fiber.New()
	setupCORS(app)
	app.Use(requestLogger(logger))

	fetcher := sheet.NewHTTPFetcher(cfg.FetchRatePerSec)

	// directory: snapshot repo so every request within the TTL shares one
	// sheet fetch
	negocioRepo := negocio.NewSnapshotRepository(cfg.SnapshotTTL)
	negocioService := negocio.NewService(negocioRepo, fetcher, cfg.NegociosCSVURL, logger)
	negocioHandler := negocio.NewHandler(negocioService, cfg.CountryCode, logger)
	negocioHandler.RegisterPublicRoutes(app)

	// product catalogs are fetched on demand per business
	productoService := producto.NewService(fetcher, cfg.ProductosCSVURL, cfg.SnapshotTTL, logger)
	productoHandler := producto.NewHandler(productoService, cfg.CountryCode, logger)
	productoHandler.RegisterPublicRoutes(app)

	// classifieds feed
	anuncioService := anuncio.NewService(fetcher, cfg.MuroCSVURL, logger)
	anuncioHandler := anuncio.NewHandler(anuncioService, cfg.CountryCode, logger)
	anuncioHandler.RegisterPublicRoutes(app)

	// filter buttons share the classifier table with the map markers
	categoryHandler := category.NewHandler(category.NewService())
	categoryHandler.RegisterPublicRoutes(app)

	mapaHandler := mapa.NewHandler(negocioService, cfg.Variant, cfg.CountryCode, logger)
	mapaHandler.RegisterPublicRoutes(app)

	// registration and ad posting are external Google Forms; the API only
	// hands out the links
	app.Get("/api/v1/meta", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"variant":         cfg.Variant,
			"registroFormUrl": cfg.RegistroFormURL,
			"publicarFormUrl": cfg.PublicarFormURL,
		})
	})

	logger.Info("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

func requestLogger(logger *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("%s %s (%v)", c.Method(), c.OriginalURL(), time.Since(start))
		return err
	}
}
