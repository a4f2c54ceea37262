// Package theme defines the color palettes the board can be rendered with.
package theme

// Theme ids
const (
	Light   = "light"
	Dark    = "dark"
	Brownie = "brownie"

	DefaultID = Light
)

// Palette defines all configurable color values of a theme
type Palette struct {
	// Theme id (e.g., "light", "dark"). In config files this selects the
	// base palette that the remaining fields override.
	ID   string `yaml:"preset"`
	Name string `yaml:"-"`

	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`

	Background    string `yaml:"background"`
	Surface       string `yaml:"surface"`
	Text          string `yaml:"text"`
	TextSecondary string `yaml:"text_secondary"`
	Border        string `yaml:"border"`

	// Semantic colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
	Info    string `yaml:"info"`
}

// IDs returns every theme id in display order
func IDs() []string {
	return []string{Light, Dark, Brownie}
}

// Valid reports whether id names a known theme
func Valid(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Lookup returns the palette for id
func Lookup(id string) (Palette, bool) {
	switch id {
	case Light:
		return lightPalette(), true
	case Dark:
		return darkPalette(), true
	case Brownie:
		return browniePalette(), true
	default:
		return Palette{}, false
	}
}

// Get returns the palette for id, falling back to the default theme
func Get(id string) Palette {
	if p, ok := Lookup(id); ok {
		return p
	}
	return lightPalette()
}

// ApplyDefaults fills in missing color values using the palette named by
// ID as base. An unknown or empty ID selects the default theme.
func (p *Palette) ApplyDefaults() {
	base := Get(p.ID)
	if !Valid(p.ID) {
		p.ID = base.ID
	}
	p.Name = base.Name

	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&p.Primary, base.Primary)
	fill(&p.Secondary, base.Secondary)
	fill(&p.Accent, base.Accent)
	fill(&p.Background, base.Background)
	fill(&p.Surface, base.Surface)
	fill(&p.Text, base.Text)
	fill(&p.TextSecondary, base.TextSecondary)
	fill(&p.Border, base.Border)
	fill(&p.Success, base.Success)
	fill(&p.Warning, base.Warning)
	fill(&p.Error, base.Error)
	fill(&p.Info, base.Info)
}

// MergeFrom overrides p with every non-empty color of other
func (p *Palette) MergeFrom(other Palette) {
	merge := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	merge(&p.ID, other.ID)
	merge(&p.Primary, other.Primary)
	merge(&p.Secondary, other.Secondary)
	merge(&p.Accent, other.Accent)
	merge(&p.Background, other.Background)
	merge(&p.Surface, other.Surface)
	merge(&p.Text, other.Text)
	merge(&p.TextSecondary, other.TextSecondary)
	merge(&p.Border, other.Border)
	merge(&p.Success, other.Success)
	merge(&p.Warning, other.Warning)
	merge(&p.Error, other.Error)
	merge(&p.Info, other.Info)
}
