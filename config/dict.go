package config

// Key-based access over the settings structs, keyed by the TOML field
// names. Get reports false for unknown keys. Set reports false for
// unknown keys and for values of the wrong type; it never panics.
// Update applies every assignable entry and skips the rest.

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	}
	return 0, false
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func toString(value any) (string, bool) {
	v, ok := value.(string)
	return v, ok
}

func toBool(value any) (bool, bool) {
	v, ok := value.(bool)
	return v, ok
}

// Get returns the top-level field with the given key.
func (c *Config) Get(key string) (any, bool) {
	switch key {
	case "theme_type":
		return c.ThemeType, true
	case "house_sys":
		return c.HouseSys, true
	case "orb":
		return c.Orb, true
	case "light_theme":
		return c.Light, true
	case "dark_theme":
		return c.Dark, true
	case "display":
		return c.Display, true
	case "chart":
		return c.Chart, true
	}
	return nil, false
}

// Set assigns the top-level field with the given key.
func (c *Config) Set(key string, value any) bool {
	switch key {
	case "theme_type":
		if v, ok := value.(ThemeType); ok {
			c.ThemeType = v
			return true
		}
		if v, ok := toString(value); ok {
			c.ThemeType = ThemeType(v)
			return true
		}
	case "house_sys":
		if v, ok := value.(HouseSystem); ok {
			c.HouseSys = v
			return true
		}
		if v, ok := toString(value); ok {
			c.HouseSys = HouseSystem(v)
			return true
		}
	case "orb":
		if v, ok := value.(Orb); ok {
			c.Orb = v
			return true
		}
	case "light_theme":
		if v, ok := value.(Theme); ok {
			c.Light = v
			return true
		}
	case "dark_theme":
		if v, ok := value.(Theme); ok {
			c.Dark = v
			return true
		}
	case "display":
		if v, ok := value.(Display); ok {
			c.Display = v
			return true
		}
	case "chart":
		if v, ok := value.(Chart); ok {
			c.Chart = v
			return true
		}
	}
	return false
}

// Update assigns every known key from the mapping.
func (c *Config) Update(values map[string]any) {
	for key, value := range values {
		c.Set(key, value)
	}
}

// Get returns the orb for the given aspect key.
func (o *Orb) Get(key string) (any, bool) {
	switch key {
	case "conjunction":
		return o.Conjunction, true
	case "opposition":
		return o.Opposition, true
	case "trine":
		return o.Trine, true
	case "square":
		return o.Square, true
	case "sextile":
		return o.Sextile, true
	case "quincunx":
		return o.Quincunx, true
	}
	return nil, false
}

// Set assigns the orb for the given aspect key.
func (o *Orb) Set(key string, value any) bool {
	v, ok := toInt(value)
	if !ok {
		return false
	}
	switch key {
	case "conjunction":
		o.Conjunction = v
	case "opposition":
		o.Opposition = v
	case "trine":
		o.Trine = v
	case "square":
		o.Square = v
	case "sextile":
		o.Sextile = v
	case "quincunx":
		o.Quincunx = v
	default:
		return false
	}
	return true
}

// Update assigns every known key from the mapping.
func (o *Orb) Update(values map[string]any) {
	for key, value := range values {
		o.Set(key, value)
	}
}

// Get returns the color or transparency for the given key.
func (t *Theme) Get(key string) (any, bool) {
	switch key {
	case "fire":
		return t.Fire, true
	case "earth":
		return t.Earth, true
	case "air":
		return t.Air, true
	case "water":
		return t.Water, true
	case "points":
		return t.Points, true
	case "asteroids":
		return t.Asteroids, true
	case "positive":
		return t.Positive, true
	case "negative":
		return t.Negative, true
	case "others":
		return t.Others, true
	case "foreground":
		return t.Foreground, true
	case "background":
		return t.Background, true
	case "dim":
		return t.Dim, true
	case "transparency":
		return t.Transparency, true
	}
	return nil, false
}

// Set assigns the color or transparency for the given key.
func (t *Theme) Set(key string, value any) bool {
	if key == "transparency" {
		v, ok := toFloat(value)
		if !ok {
			return false
		}
		t.Transparency = v
		return true
	}
	v, ok := toString(value)
	if !ok {
		return false
	}
	switch key {
	case "fire":
		t.Fire = v
	case "earth":
		t.Earth = v
	case "air":
		t.Air = v
	case "water":
		t.Water = v
	case "points":
		t.Points = v
	case "asteroids":
		t.Asteroids = v
	case "positive":
		t.Positive = v
	case "negative":
		t.Negative = v
	case "others":
		t.Others = v
	case "foreground":
		t.Foreground = v
	case "background":
		t.Background = v
	case "dim":
		t.Dim = v
	default:
		return false
	}
	return true
}

// Update assigns every known key from the mapping.
func (t *Theme) Update(values map[string]any) {
	for key, value := range values {
		t.Set(key, value)
	}
}

// Get returns the display toggle for the given body key.
func (d *Display) Get(key string) (any, bool) {
	switch key {
	case "sun":
		return d.Sun, true
	case "moon":
		return d.Moon, true
	case "mercury":
		return d.Mercury, true
	case "venus":
		return d.Venus, true
	case "mars":
		return d.Mars, true
	case "jupiter":
		return d.Jupiter, true
	case "saturn":
		return d.Saturn, true
	case "uranus":
		return d.Uranus, true
	case "neptune":
		return d.Neptune, true
	case "pluto":
		return d.Pluto, true
	case "asc_node":
		return d.AscNode, true
	case "chiron":
		return d.Chiron, true
	case "ceres":
		return d.Ceres, true
	case "pallas":
		return d.Pallas, true
	case "juno":
		return d.Juno, true
	case "vesta":
		return d.Vesta, true
	case "asc":
		return d.Asc, true
	case "ic":
		return d.IC, true
	case "dsc":
		return d.Dsc, true
	case "mc":
		return d.MC, true
	}
	return nil, false
}

// Set assigns the display toggle for the given body key.
func (d *Display) Set(key string, value any) bool {
	v, ok := toBool(value)
	if !ok {
		return false
	}
	switch key {
	case "sun":
		d.Sun = v
	case "moon":
		d.Moon = v
	case "mercury":
		d.Mercury = v
	case "venus":
		d.Venus = v
	case "mars":
		d.Mars = v
	case "jupiter":
		d.Jupiter = v
	case "saturn":
		d.Saturn = v
	case "uranus":
		d.Uranus = v
	case "neptune":
		d.Neptune = v
	case "pluto":
		d.Pluto = v
	case "asc_node":
		d.AscNode = v
	case "chiron":
		d.Chiron = v
	case "ceres":
		d.Ceres = v
	case "pallas":
		d.Pallas = v
	case "juno":
		d.Juno = v
	case "vesta":
		d.Vesta = v
	case "asc":
		d.Asc = v
	case "ic":
		d.IC = v
	case "dsc":
		d.Dsc = v
	case "mc":
		d.MC = v
	default:
		return false
	}
	return true
}

// Update assigns every known key from the mapping.
func (d *Display) Update(values map[string]any) {
	for key, value := range values {
		d.Set(key, value)
	}
}

// Get returns the drawing constant for the given key.
func (c *Chart) Get(key string) (any, bool) {
	switch key {
	case "stroke_width":
		return c.StrokeWidth, true
	case "stroke_opacity":
		return c.StrokeOpacity, true
	case "font":
		return c.Font, true
	case "font_size_fraction":
		return c.FontSizeFraction, true
	case "inner_min_degree":
		return c.InnerMinDegree, true
	case "outer_min_degree":
		return c.OuterMinDegree, true
	case "margin_factor":
		return c.MarginFactor, true
	case "ring_thickness_fraction":
		return c.RingThicknessFraction, true
	case "scale_adj_factor":
		return c.ScaleAdjFactor, true
	case "pos_adj_factor":
		return c.PosAdjFactor, true
	}
	return nil, false
}

// Set assigns the drawing constant for the given key.
func (c *Chart) Set(key string, value any) bool {
	switch key {
	case "stroke_width":
		v, ok := toInt(value)
		if !ok {
			return false
		}
		c.StrokeWidth = v
	case "font":
		v, ok := toString(value)
		if !ok {
			return false
		}
		c.Font = v
	case "stroke_opacity", "font_size_fraction", "inner_min_degree",
		"outer_min_degree", "margin_factor", "ring_thickness_fraction",
		"scale_adj_factor", "pos_adj_factor":
		v, ok := toFloat(value)
		if !ok {
			return false
		}
		switch key {
		case "stroke_opacity":
			c.StrokeOpacity = v
		case "font_size_fraction":
			c.FontSizeFraction = v
		case "inner_min_degree":
			c.InnerMinDegree = v
		case "outer_min_degree":
			c.OuterMinDegree = v
		case "margin_factor":
			c.MarginFactor = v
		case "ring_thickness_fraction":
			c.RingThicknessFraction = v
		case "scale_adj_factor":
			c.ScaleAdjFactor = v
		case "pos_adj_factor":
			c.PosAdjFactor = v
		}
	default:
		return false
	}
	return true
}

// Update assigns every known key from the mapping.
func (c *Chart) Update(values map[string]any) {
	for key, value := range values {
		c.Set(key, value)
	}
}
