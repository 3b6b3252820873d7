package sheet

import (
	"strings"
	"testing"
)

func TestParseRowsHeaderKeyed(t *testing.T) {
	csv := "Nombre,Categoría,Ubicación\nPizza Pepe,Restaurante,\"22.79, -82.50\"\n,,\nEl Rincón,Cafetería,\"22.80, -82.51\"\n"

	rows, err := ParseRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseRows returned error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows (empty line skipped), got %d", len(rows))
	}
	if got := rows[0].Get("Nombre"); got != "Pizza Pepe" {
		t.Errorf("Get(Nombre) = %q; want %q", got, "Pizza Pepe")
	}
	if got := rows[0].Get("Ubicación"); got != "22.79, -82.50" {
		t.Errorf("quoted field mangled: got %q", got)
	}
}

func TestParseRowsPadsShortRecords(t *testing.T) {
	csv := "A,B,C\n1,2\n"
	rows, err := ParseRows(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ParseRows returned error: %v", err)
	}
	if got := rows[0].Get("C"); got != "" {
		t.Errorf("expected missing cell to read as empty string, got %q", got)
	}
}

func TestParseRowsEmptyInput(t *testing.T) {
	if _, err := ParseRows(strings.NewReader("")); err == nil {
		t.Fatal("expected an error for empty csv data")
	}
}

func TestFindFuzzyHeaderMatching(t *testing.T) {
	// the maintainer renames headers freely; lookup is substring based
	row := NewRow(
		[]string{"Marca temporal", "Nombre del Negocio:", "Número de WhatsApp", "Categoría principal"},
		[]string{"2024/05/01", "Pizza Pepe", "55512345", "Restaurante"},
	)

	tests := []struct {
		keywords []string
		want     string
	}{
		{[]string{"nombre", "negocio"}, "Pizza Pepe"},
		{[]string{"whatsapp", "numero"}, "55512345"},
		{[]string{"categoría", "categoria"}, "Restaurante"},
		{[]string{"marca", "timestamp"}, "2024/05/01"},
		{[]string{"provincia"}, ""},
	}
	for _, tt := range tests {
		if got := row.Find(tt.keywords...); got != tt.want {
			t.Errorf("Find(%v) = %q; want %q", tt.keywords, got, tt.want)
		}
	}
}

func TestFindFirstColumnWins(t *testing.T) {
	// "negocio" matches both columns; sheet order decides
	row := NewRow(
		[]string{"Nombre del Negocio", "Negocio asociado"},
		[]string{"Primero", "Segundo"},
	)
	if got := row.Find("negocio"); got != "Primero" {
		t.Errorf("expected leftmost matching column, got %q", got)
	}
}

func TestFindOrFallback(t *testing.T) {
	row := NewRow([]string{"Nombre"}, []string{""})
	if got := row.FindOr("Sin Nombre", "nombre"); got != "Sin Nombre" {
		t.Errorf("FindOr = %q; want fallback", got)
	}
}
