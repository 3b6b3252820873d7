package producto

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kongaprog/zona-guira-app/internal/logging"
)

func makeApp(csv string) *fiber.App {
	app := fiber.New()
	svc := NewService(&stubFetcher{csv: csv}, "http://sheet", time.Minute, nil)
	NewHandler(svc, "53", logging.New()).RegisterPublicRoutes(app)
	return app
}

func TestGetProductosRequiresNegocio(t *testing.T) {
	app := makeApp(tiendaCSV)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/productos", nil))
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 without negocio param, got %d", res.StatusCode)
	}
}

func TestGetProductosScoped(t *testing.T) {
	app := makeApp(tiendaCSV)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/productos?negocio=El+Rinc%C3%B3n", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)
	if !strings.Contains(body, "Café molido") {
		t.Errorf("missing scoped product: %s", body)
	}
	if strings.Contains(body, "Croquetas") {
		t.Errorf("'El Rincón 2' product leaked: %s", body)
	}
}

func TestPostPedido(t *testing.T) {
	app := makeApp(tiendaCSV)

	payload := `{"negocio":"El Rincón","whatsapp":"55512345","items":[{"nombre":"Café molido","precio":250,"cantidad":2},{"nombre":"Refresco","precio":50}]}`
	req := httptest.NewRequest("POST", "/api/v1/pedido", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	body := string(b)

	if !strings.Contains(body, "wa.me/5355512345") {
		t.Errorf("link missing phone with country code: %s", body)
	}
	if !strings.Contains(body, `"total":550`) {
		t.Errorf("expected total 550 (2x250 + 1x50): %s", body)
	}
}

func TestPostPedidoValidation(t *testing.T) {
	app := makeApp(tiendaCSV)

	empty := httptest.NewRequest("POST", "/api/v1/pedido", strings.NewReader(`{"negocio":"X","whatsapp":"5","items":[]}`))
	empty.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(empty)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Errorf("empty cart should 400, got %d", res.StatusCode)
	}

	noPhone := httptest.NewRequest("POST", "/api/v1/pedido", strings.NewReader(`{"negocio":"X","items":[{"nombre":"a","precio":1}]}`))
	noPhone.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(noPhone)
	if res2.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing whatsapp should 400, got %d", res2.StatusCode)
	}
}

func TestOrderMessage(t *testing.T) {
	mensaje, total := OrderMessage(Pedido{
		Negocio:  "El Rincón",
		Whatsapp: "55512345",
		Items: []PedidoItem{
			{Nombre: "Café molido", Precio: 250, Cantidad: 2},
			{Nombre: "Refresco", Precio: 50},
		},
	})

	if total != 550 {
		t.Errorf("total = %v; want 550", total)
	}
	if !strings.HasPrefix(mensaje, "Hola *El Rincón*, pedido desde Zona Güira:") {
		t.Errorf("greeting wrong: %q", mensaje)
	}
	if !strings.Contains(mensaje, "▪️ 2x Café molido") {
		t.Errorf("line item wrong: %q", mensaje)
	}
	if !strings.Contains(mensaje, "▪️ 1x Refresco") {
		t.Errorf("zero cantidad should default to 1: %q", mensaje)
	}
	if !strings.Contains(mensaje, "💰 *Total: $550 CUP*") {
		t.Errorf("total line wrong: %q", mensaje)
	}
}
