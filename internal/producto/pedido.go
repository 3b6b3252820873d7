package producto

import (
	"strconv"

	"github.com/kongaprog/zona-guira-app/internal/normalize"
)

// PedidoItem is one cart line at checkout time. Cantidad defaults to 1.
type PedidoItem struct {
	Nombre   string  `json:"nombre"`
	Precio   float64 `json:"precio"`
	Cantidad int     `json:"cantidad"`
}

// Pedido is the transient cart a client checks out. Nothing is persisted;
// checkout is turned into a WhatsApp deep link and handed back.
type Pedido struct {
	Negocio  string       `json:"negocio"`
	Whatsapp string       `json:"whatsapp"`
	Items    []PedidoItem `json:"items"`
}

// OrderMessage renders the order summary sent to the business and its total.
func OrderMessage(p Pedido) (string, float64) {
	mensaje := "Hola *" + p.Negocio + "*, pedido desde Zona Güira: \n\n"
	total := 0.0
	for _, item := range p.Items {
		cantidad := item.Cantidad
		if cantidad <= 0 {
			cantidad = 1
		}
		mensaje += "▪️ " + strconv.Itoa(cantidad) + "x " + item.Nombre + "\n"
		total += item.Precio * float64(cantidad)
	}
	mensaje += "\n💰 *Total: $" + formatPrecio(total) + " CUP*"
	return mensaje, total
}

// OrderLink builds the checkout deep link for a cart.
func OrderLink(countryCode string, p Pedido) (link, mensaje string, total float64) {
	mensaje, total = OrderMessage(p)
	return normalize.WhatsAppLink(countryCode, p.Whatsapp, mensaje), mensaje, total
}

func formatPrecio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
