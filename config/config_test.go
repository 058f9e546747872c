package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ThemeType != Dark {
		t.Fatalf("expected dark theme type, got %q", cfg.ThemeType)
	}
	if cfg.HouseSys != Placidus {
		t.Fatalf("expected Placidus house system, got %q", cfg.HouseSys)
	}
	if cfg.Orb.Conjunction != 7 || cfg.Orb.Quincunx != 0 {
		t.Fatalf("unexpected default orbs: %+v", cfg.Orb)
	}
	if !cfg.Display.Sun || cfg.Display.Chiron || !cfg.Display.Asc || cfg.Display.IC {
		t.Fatalf("unexpected default display: %+v", cfg.Display)
	}
	if cfg.Chart.ScaleAdjFactor != 600 || cfg.Chart.PosAdjFactor != 2.2 {
		t.Fatalf("unexpected chart constants: %+v", cfg.Chart)
	}
}

func TestHouseSystemCodes(t *testing.T) {
	// Porphyry inherits the Placidus code; the two are indistinguishable
	// once encoded.
	if Placidus != Porphyry {
		t.Fatalf("Placidus and Porphyry codes diverged: %q vs %q", Placidus, Porphyry)
	}
	if WholeSign != "W" || Koch != "K" {
		t.Fatalf("unexpected codes: %q %q", WholeSign, Koch)
	}
}

func TestOrbOf(t *testing.T) {
	orb := DefaultOrb()
	if got := orb.Of("sextile"); got != 5 {
		t.Fatalf("expected sextile orb 5, got %d", got)
	}
	if got := orb.Of("novile"); got != 0 {
		t.Fatalf("expected 0 for unknown kind, got %d", got)
	}
}

func TestConfigGetSet(t *testing.T) {
	cfg := Default()
	if _, ok := cfg.Get("bogus"); ok {
		t.Fatalf("expected miss for unknown key")
	}
	value, ok := cfg.Get("theme_type")
	if !ok || value.(ThemeType) != Dark {
		t.Fatalf("unexpected theme_type: %v", value)
	}
	if !cfg.Set("theme_type", "light") {
		t.Fatalf("string assignment to theme_type rejected")
	}
	if cfg.ThemeType != Light {
		t.Fatalf("theme_type not updated: %q", cfg.ThemeType)
	}
	if cfg.Set("theme_type", 42) {
		t.Fatalf("expected type mismatch to be rejected")
	}
	if cfg.Set("bogus", "x") {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestConfigUpdate(t *testing.T) {
	cfg := Default()
	orb := cfg.Orb
	orb.Conjunction = 9
	cfg.Update(map[string]any{
		"house_sys": WholeSign,
		"orb":       orb,
		"bogus":     1,
	})
	if cfg.HouseSys != WholeSign {
		t.Fatalf("house_sys not updated: %q", cfg.HouseSys)
	}
	if cfg.Orb.Conjunction != 9 {
		t.Fatalf("orb not updated: %+v", cfg.Orb)
	}
	// Untouched keys keep their values.
	if cfg.ThemeType != Dark {
		t.Fatalf("theme_type clobbered: %q", cfg.ThemeType)
	}
}

func TestOrbDictAccess(t *testing.T) {
	orb := DefaultOrb()
	if !orb.Set("quincunx", 3) {
		t.Fatalf("quincunx assignment rejected")
	}
	value, ok := orb.Get("quincunx")
	if !ok || value.(int) != 3 {
		t.Fatalf("unexpected quincunx: %v", value)
	}
	// Out-of-range values are accepted as-is.
	orb.Update(map[string]any{"trine": -5})
	if orb.Trine != -5 {
		t.Fatalf("negative orb rejected: %d", orb.Trine)
	}
}

func TestThemeDictAccess(t *testing.T) {
	theme := LightTheme()
	if !theme.Set("transparency", 2) {
		t.Fatalf("int transparency rejected")
	}
	if theme.Transparency != 2 {
		t.Fatalf("transparency not updated: %v", theme.Transparency)
	}
	if theme.Set("fire", 1) {
		t.Fatalf("expected non-string color to be rejected")
	}
	theme.Update(map[string]any{"background": "#000000"})
	if theme.Background != "#000000" {
		t.Fatalf("background not updated: %q", theme.Background)
	}
}

func TestDisplayDictAccess(t *testing.T) {
	display := DefaultDisplay()
	if !display.Set("chiron", true) {
		t.Fatalf("chiron toggle rejected")
	}
	value, ok := display.Get("chiron")
	if !ok || value.(bool) != true {
		t.Fatalf("unexpected chiron: %v", value)
	}
	if display.Set("sun", "yes") {
		t.Fatalf("expected non-bool toggle to be rejected")
	}
}

func TestChartDictAccess(t *testing.T) {
	chart := DefaultChart()
	if !chart.Set("stroke_width", 2) {
		t.Fatalf("stroke_width assignment rejected")
	}
	if !chart.Set("margin_factor", 0.1) {
		t.Fatalf("margin_factor assignment rejected")
	}
	value, ok := chart.Get("margin_factor")
	if !ok || value.(float64) != 0.1 {
		t.Fatalf("unexpected margin_factor: %v", value)
	}
}
