// Package config holds chart configuration and theme settings.
package config

// ThemeType selects which theme palette is active.
type ThemeType string

const (
	Light ThemeType = "light"
	Dark  ThemeType = "dark"
	Mono  ThemeType = "mono"
)

// HouseSystem is the house system code handed to the ephemeris layer.
// Placidus and Porphyry share the code "P"; the encoding predates this
// library and is kept unchanged.
type HouseSystem string

const (
	Placidus      HouseSystem = "P"
	Koch          HouseSystem = "K"
	Equal         HouseSystem = "E"
	Campanus      HouseSystem = "C"
	Regiomontanus HouseSystem = "R"
	Porphyry      HouseSystem = "P"
	WholeSign     HouseSystem = "W"
)

// Orb holds the maximum orb per aspect kind, in degrees.
type Orb struct {
	Conjunction int `toml:"conjunction"`
	Opposition  int `toml:"opposition"`
	Trine       int `toml:"trine"`
	Square      int `toml:"square"`
	Sextile     int `toml:"sextile"`
	Quincunx    int `toml:"quincunx"`
}

// DefaultOrb returns the default natal chart orbs. Quincunx defaults to
// 0, which disables quincunx aspects.
func DefaultOrb() Orb {
	return Orb{
		Conjunction: 7,
		Opposition:  6,
		Trine:       6,
		Square:      6,
		Sextile:     5,
		Quincunx:    0,
	}
}

// Of returns the orb for an aspect kind, 0 for unknown kinds.
func (o Orb) Of(kind string) int {
	switch kind {
	case "conjunction":
		return o.Conjunction
	case "opposition":
		return o.Opposition
	case "trine":
		return o.Trine
	case "square":
		return o.Square
	case "sextile":
		return o.Sextile
	case "quincunx":
		return o.Quincunx
	}
	return 0
}

// Display toggles which bodies and angles appear on the chart.
type Display struct {
	Sun     bool `toml:"sun"`
	Moon    bool `toml:"moon"`
	Mercury bool `toml:"mercury"`
	Venus   bool `toml:"venus"`
	Mars    bool `toml:"mars"`
	Jupiter bool `toml:"jupiter"`
	Saturn  bool `toml:"saturn"`
	Uranus  bool `toml:"uranus"`
	Neptune bool `toml:"neptune"`
	Pluto   bool `toml:"pluto"`
	AscNode bool `toml:"asc_node"`
	Chiron  bool `toml:"chiron"`
	Ceres   bool `toml:"ceres"`
	Pallas  bool `toml:"pallas"`
	Juno    bool `toml:"juno"`
	Vesta   bool `toml:"vesta"`
	Asc     bool `toml:"asc"`
	IC      bool `toml:"ic"`
	Dsc     bool `toml:"dsc"`
	MC      bool `toml:"mc"`
}

// DefaultDisplay enables the primary planets, the ascending node, and
// the Asc/MC angles; minor bodies and the other angles start off.
func DefaultDisplay() Display {
	return Display{
		Sun:     true,
		Moon:    true,
		Mercury: true,
		Venus:   true,
		Mars:    true,
		Jupiter: true,
		Saturn:  true,
		Uranus:  true,
		Neptune: true,
		Pluto:   true,
		AscNode: true,
		Asc:     true,
		MC:      true,
	}
}

// Chart holds drawing constants for chart rendering.
type Chart struct {
	StrokeWidth           int     `toml:"stroke_width"`
	StrokeOpacity         float64 `toml:"stroke_opacity"`
	Font                  string  `toml:"font"`
	FontSizeFraction      float64 `toml:"font_size_fraction"`
	InnerMinDegree        float64 `toml:"inner_min_degree"`
	OuterMinDegree        float64 `toml:"outer_min_degree"`
	MarginFactor          float64 `toml:"margin_factor"`
	RingThicknessFraction float64 `toml:"ring_thickness_fraction"`
	// 600 and 2.2 compensate for the 20x20 symbol glyph size.
	ScaleAdjFactor float64 `toml:"scale_adj_factor"`
	PosAdjFactor   float64 `toml:"pos_adj_factor"`
}

// DefaultChart returns the default drawing constants.
func DefaultChart() Chart {
	return Chart{
		StrokeWidth:           1,
		StrokeOpacity:         1,
		Font:                  "sans-serif",
		FontSizeFraction:      0.55,
		InnerMinDegree:        9,
		OuterMinDegree:        8,
		MarginFactor:          0.04,
		RingThicknessFraction: 0.15,
		ScaleAdjFactor:        600,
		PosAdjFactor:          2.2,
	}
}

// Config gathers every chart-level setting. Values are not range
// checked; callers get back exactly what they set.
type Config struct {
	ThemeType ThemeType   `toml:"theme_type"`
	HouseSys  HouseSystem `toml:"house_sys"`
	Orb       Orb         `toml:"orb"`
	Light     Theme       `toml:"light_theme"`
	Dark      Theme       `toml:"dark_theme"`
	Display   Display     `toml:"display"`
	Chart     Chart       `toml:"chart"`
}

// Default returns a Config with the package defaults: dark theme and
// Placidus houses.
func Default() Config {
	return Config{
		ThemeType: Dark,
		HouseSys:  Placidus,
		Orb:       DefaultOrb(),
		Light:     LightTheme(),
		Dark:      DarkTheme(),
		Display:   DefaultDisplay(),
		Chart:     DefaultChart(),
	}
}

// Theme resolves the active palette from ThemeType. The mono palette is
// synthesized on every call rather than stored, so a later ThemeType
// change never returns a stale palette. Unknown theme types resolve to
// the dark palette.
func (c Config) Theme() Theme {
	switch c.ThemeType {
	case Light:
		return c.Light
	case Mono:
		return monoTheme(c.Light)
	}
	return c.Dark
}
