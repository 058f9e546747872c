package config

// Theme is a named color palette for chart rendering. The category
// colors double up: fire also colors squares and the ascendant, earth
// the MC, air trines, water oppositions, points the lunar nodes and
// sextiles, asteroids quincunxes, others conjunctions.
type Theme struct {
	Fire         string  `toml:"fire"`
	Earth        string  `toml:"earth"`
	Air          string  `toml:"air"`
	Water        string  `toml:"water"`
	Points       string  `toml:"points"`
	Asteroids    string  `toml:"asteroids"`
	Positive     string  `toml:"positive"`
	Negative     string  `toml:"negative"`
	Others       string  `toml:"others"`
	Foreground   string  `toml:"foreground"`
	Background   string  `toml:"background"`
	Dim          string  `toml:"dim"`
	Transparency float64 `toml:"transparency"`
}

// LightTheme returns the default light palette.
func LightTheme() Theme {
	return Theme{
		Fire:         "#ef476f",
		Earth:        "#ffd166",
		Air:          "#06d6a0",
		Water:        "#81bce7",
		Points:       "#118ab2",
		Asteroids:    "#AA96DA",
		Positive:     "#FFC0CB",
		Negative:     "#AD8B73",
		Others:       "#FFA500",
		Foreground:   "#758492",
		Background:   "#FFFDF1",
		Dim:          "#A4BACD",
		Transparency: 0.1,
	}
}

// DarkTheme returns the default dark palette.
func DarkTheme() Theme {
	return Theme{
		Fire:         "#ef476f",
		Earth:        "#ffd166",
		Air:          "#06d6a0",
		Water:        "#81bce7",
		Points:       "#118ab2",
		Asteroids:    "#AA96DA",
		Positive:     "#FFC0CB",
		Negative:     "#AD8B73",
		Others:       "#FFA500",
		Foreground:   "#F7F3F0",
		Background:   "#343a40",
		Dim:          "#515860",
		Transparency: 0.1,
	}
}

const monoGray = "#888888"

// monoTheme flattens the light palette to a single gray on white with
// no transparency. The light theme supplies the field set to flatten;
// the dark theme is never consulted.
func monoTheme(light Theme) Theme {
	t := light
	t.Fire = monoGray
	t.Earth = monoGray
	t.Air = monoGray
	t.Water = monoGray
	t.Points = monoGray
	t.Asteroids = monoGray
	t.Positive = monoGray
	t.Negative = monoGray
	t.Others = monoGray
	t.Foreground = monoGray
	t.Dim = monoGray
	t.Background = "#FFFFFF"
	t.Transparency = 0
	return t
}
