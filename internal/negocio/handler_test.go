package negocio

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kongaprog/zona-guira-app/internal/logging"
)

func makeApp(fetcher *stubFetcher) *fiber.App {
	app := fiber.New()
	svc := NewService(NewSnapshotRepository(time.Minute), fetcher, "http://sheet", nil)
	NewHandler(svc, "53", logging.New()).RegisterPublicRoutes(app)
	return app
}

func TestNegociosRoutes(t *testing.T) {
	app := makeApp(&stubFetcher{csv: directorioCSV})

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Path] = true
		}
	}
	for _, want := range []string{"/api/v1/negocios", "/api/v1/negocio/:id", "/api/v1/provincias"} {
		if !routes[want] {
			t.Errorf("expected route %q to be registered", want)
		}
	}
}

func TestGetNegociosEndToEnd(t *testing.T) {
	app := makeApp(&stubFetcher{csv: directorioCSV})

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/negocios", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)

	if !strings.Contains(body, `"nombre":"Pizza Pepe"`) {
		t.Errorf("missing Pizza Pepe: %s", body)
	}
	// derived fields: canonical bucket and contact deep link
	if !strings.Contains(body, `"bucket":"Comida"`) {
		t.Errorf("missing Comida bucket: %s", body)
	}
	if !strings.Contains(body, "https://wa.me/5355512345") {
		t.Errorf("missing contact link with phone: %s", body)
	}
	// record without coordinates must be gone
	if strings.Contains(body, "Sin Coordenadas") {
		t.Errorf("invalid record leaked into response: %s", body)
	}
}

func TestGetNegociosFiltersViaQuery(t *testing.T) {
	app := makeApp(&stubFetcher{csv: directorioCSV})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocios?categoria=Transporte", nil))
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "Taxi Juan") || strings.Contains(string(b), "Pizza Pepe") {
		t.Errorf("categoria filter wrong: %s", string(b))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocios?q=pelicula", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "El Rincón") || strings.Contains(string(b2), "Taxi Juan") {
		t.Errorf("search filter wrong: %s", string(b2))
	}
}

func TestGetNegociosDegradesToEmptyList(t *testing.T) {
	app := makeApp(&stubFetcher{err: errors.New("sheet down")})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocios", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("fetch failure must not become a client error, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if strings.TrimSpace(string(b)) != "[]" {
		t.Errorf("expected empty list, got %s", string(b))
	}
}

func TestGetNegocioByID(t *testing.T) {
	app := makeApp(&stubFetcher{csv: directorioCSV})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocio/t2", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "El Rincón") {
		t.Errorf("wrong record: %s", string(b))
	}

	res404, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocio/desconocido", nil))
	if res404.StatusCode != fiber.StatusNotFound {
		t.Errorf("expected 404, got %d", res404.StatusCode)
	}
}

func TestGetNegocioSheetFailure(t *testing.T) {
	app := makeApp(&stubFetcher{err: errors.New("sheet down")})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocio/t1", nil))
	if res.StatusCode != fiber.StatusServiceUnavailable {
		t.Errorf("unreachable sheet is not a missing id, expected 503, got %d", res.StatusCode)
	}
}

func TestViewTieneTienda(t *testing.T) {
	h := NewHandler(nil, "53", logging.New())

	if v := h.view(Negocio{Nombre: "Pizza Pepe", Categoria: "Restaurante"}); !v.TieneTienda {
		t.Error("catalog-bearing business without a web link should show the store")
	}
	if v := h.view(Negocio{Nombre: "Pizza Pepe", Categoria: "Restaurante", Web: "https://pepe.cu"}); v.TieneTienda {
		t.Error("business with an external site should link out, not show the store")
	}
	if v := h.view(Negocio{Nombre: "Cosa Rara", Categoria: "Varios"}); v.TieneTienda {
		t.Error("unclassifiable business has no catalog to show")
	}

	// and the field reaches the wire
	app := makeApp(&stubFetcher{csv: directorioCSV})
	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/negocio/t1", nil))
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"tieneTienda":true`) {
		t.Errorf("missing tieneTienda in response: %s", string(b))
	}
}

func TestGetProvincias(t *testing.T) {
	app := makeApp(&stubFetcher{csv: directorioCSV})

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/provincias", nil))
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, "Todas") || !strings.Contains(body, "Artemisa") {
		t.Errorf("province list incomplete: %s", body)
	}
	if !strings.HasPrefix(strings.TrimSpace(body), `["Todas"`) {
		t.Errorf("Todas should lead the list: %s", body)
	}
}
