package category

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Item is the public DTO returned by the category API.
// JSON tags follow the camelCase convention used elsewhere in the project.
type Item struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// List returns the filter buttons in canonical order, prefixed by the
// "Todas" pass-through entry.
func (s *Service) List() []Item {
	items := make([]Item, 0, len(Buckets())+1)
	items = append(items, Item{Name: All, Emoji: "🗺️"})
	for _, b := range Buckets() {
		items = append(items, Item{Name: string(b), Emoji: b.Emoji()})
	}
	return items
}
