// Package nav models the client's screen flow as an explicit state stack:
// Bienvenida gates the session, Mapa and Muro are switchable tabs, Perfil
// overlays a tab and Tienda overlays Perfil. Closing an overlay pops back to
// the prior state; the session never terminates.
package nav

import (
	"errors"

	"github.com/kongaprog/zona-guira-app/internal/category"
)

type Screen string

const (
	Bienvenida Screen = "bienvenida"
	Mapa       Screen = "mapa"
	Muro       Screen = "muro"
	Perfil     Screen = "perfil"
	Tienda     Screen = "tienda"
)

var ErrTransition = errors.New("invalid screen transition")

// Stack is one session's view state. The zero value is not usable; start
// with New, which begins at the welcome gate.
type Stack struct {
	provincia string
	screens   []Screen
}

func New() *Stack {
	return &Stack{screens: []Screen{Bienvenida}}
}

func (s *Stack) Current() Screen {
	return s.screens[len(s.screens)-1]
}

// Provincia is the region chosen at the welcome gate ("Todas" for the whole
// island view).
func (s *Stack) Provincia() string {
	return s.provincia
}

// Comenzar dismisses the welcome gate with the chosen province and lands on
// the map tab. The gate is shown once per session and never returns.
func (s *Stack) Comenzar(provincia string) error {
	if s.Current() != Bienvenida {
		return ErrTransition
	}
	if provincia == "" {
		provincia = category.All
	}
	s.provincia = provincia
	s.screens = []Screen{Mapa}
	return nil
}

// SwitchTab moves between the Mapa and Muro tabs. Tabs replace each other;
// switching with an overlay open is not a valid gesture.
func (s *Stack) SwitchTab(tab Screen) error {
	if tab != Mapa && tab != Muro {
		return ErrTransition
	}
	cur := s.Current()
	if cur != Mapa && cur != Muro {
		return ErrTransition
	}
	s.screens[len(s.screens)-1] = tab
	return nil
}

// AbrirPerfil opens a business profile over the current tab.
func (s *Stack) AbrirPerfil() error {
	cur := s.Current()
	if cur != Mapa && cur != Muro {
		return ErrTransition
	}
	s.screens = append(s.screens, Perfil)
	return nil
}

// AbrirTienda opens the product catalog over an open profile. The catalog
// button only exists when the business has no external web link and its
// category classifies to a catalog-bearing bucket.
func (s *Stack) AbrirTienda(web string, bucket category.Bucket) error {
	if s.Current() != Perfil {
		return ErrTransition
	}
	if !TieneTienda(web, bucket) {
		return ErrTransition
	}
	s.screens = append(s.screens, Tienda)
	return nil
}

// Volver pops the top overlay. On a bare tab it is a no-op: the app never
// exits and never drops below the active tab.
func (s *Stack) Volver() {
	if len(s.screens) > 1 {
		s.screens = s.screens[:len(s.screens)-1]
	}
}

// TieneTienda reports whether a profile shows the catalog button: businesses
// with an external site link to it instead, and unclassifiable ones have no
// catalog to show.
func TieneTienda(web string, bucket category.Bucket) bool {
	return web == "" && bucket != category.Otros
}
