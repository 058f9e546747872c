// Package stats assembles localized statistics reports from chart data.
package stats

import (
	"fmt"

	"github.com/verte-zerg/natal/chart"
	"github.com/verte-zerg/natal/i18n"
)

// DistKind selects a category distribution.
type DistKind string

const (
	Element  DistKind = "element"
	Modality DistKind = "modality"
	Polarity DistKind = "polarity"
)

// DistKinds lists the distribution kinds in report order.
var DistKinds = []DistKind{Element, Modality, Polarity}

// ReportKind selects which report TableOf generates.
type ReportKind string

const (
	Full      ReportKind = "full"
	Composite ReportKind = "composite"
)

// StatData is one titled table of a report. A section header carries an
// empty grid.
type StatData struct {
	Title string
	Grid  [][]string
}

// Stats generates reports for one chart, or for two charts combined.
// It only reads from the Data sources and holds no mutable state beyond
// what New computes, so independent instances can be used concurrently.
type Stats struct {
	data1 chart.Data
	data2 chart.Data
	lang  string

	compositePairs   []chart.BodyPair
	compositeAspects []chart.Aspect
}

// New builds a Stats for data1 in the given language. A non-nil data2
// enables the composite report; the aspect pairs between both charts
// are computed once here and never recomputed.
func New(data1, data2 chart.Data, lang string) *Stats {
	s := &Stats{data1: data1, data2: data2, lang: lang}
	if data2 != nil {
		s.compositePairs = data1.CompositeAspectsPairs(data2)
	}
	s.compositeAspects = data1.CalculateAspects(s.compositePairs)
	return s
}

// CompositeAspects returns the precomputed aspects between the two
// charts. It is empty when no second chart was given.
func (s *Stats) CompositeAspects() []chart.Aspect {
	return s.compositeAspects
}

func (s *Stats) t(text string) string {
	return i18n.Translate(text, s.lang)
}

// DignityOf returns the translated dignity label for a body, or "" when
// none applies. Rulership wins over detriment, detriment over
// exaltation, exaltation over fall; modern and classical assignments
// both count for the first two.
func (s *Stats) DignityOf(body chart.Body) string {
	sign := body.Sign
	var dignity string
	switch {
	case sign.Ruler == body.Name || sign.ClassicRuler == body.Name:
		dignity = "ruler"
	case sign.Detriment == body.Name || sign.ClassicDetriment == body.Name:
		dignity = "detriment"
	case sign.Exaltation == body.Name:
		dignity = "exaltation"
	case sign.Fall == body.Name:
		dignity = "fall"
	}
	if dignity == "" {
		return ""
	}
	return s.t(dignity)
}

// BasicInfo lists every planet of a data source with its sign,
// position, house, and dignity.
func (s *Stats) BasicInfo(data chart.Data) StatData {
	planets := data.Planets()
	grid := make([][]string, 0, len(planets))
	for _, body := range planets {
		grid = append(grid, []string{
			s.t(body.Name),
			s.t(body.Sign.Name),
			body.DMS,
			fmt.Sprintf("h%d", data.HouseOf(body)),
			s.DignityOf(body),
		})
	}
	return StatData{Title: s.t("basic_info"), Grid: grid}
}

// Distribution counts data1 planets per category member along with each
// member's share of the total. An empty chart yields zero counts and
// 0.00% rows rather than a division by zero.
func (s *Stats) Distribution(kind DistKind) StatData {
	title := s.t(string(kind)) + " " + s.t("distribution")
	planets := s.data1.Planets()
	members := membersOf(kind)
	grid := make([][]string, 0, len(members))
	for _, member := range members {
		count := 0
		for _, planet := range planets {
			if categoryOf(planet.Sign, kind) == member {
				count++
			}
		}
		pct := 0.0
		if len(planets) > 0 {
			pct = float64(count) / float64(len(planets)) * 100
		}
		grid = append(grid, []string{
			s.t(member),
			fmt.Sprintf("%d", count),
			fmt.Sprintf("%.2f%%", pct),
		})
	}
	return StatData{Title: title, Grid: grid}
}

func membersOf(kind DistKind) []string {
	switch kind {
	case Element:
		return chart.Elements
	case Modality:
		return chart.Modalities
	case Polarity:
		return chart.Polarities
	}
	return nil
}

func categoryOf(sign chart.Sign, kind DistKind) string {
	switch kind {
	case Element:
		return sign.Element
	case Modality:
		return sign.Modality
	case Polarity:
		return sign.Polarity
	}
	return ""
}

// CelestialBody summarizes one data1 planet.
func (s *Stats) CelestialBody(body chart.Body) StatData {
	title := fmt.Sprintf("%s for %s", s.t("aspects"), s.t(body.Name))
	grid := [][]string{
		{s.t(body.Sign.Name), body.DMS},
		{fmt.Sprintf("h%d", s.data1.HouseOf(body)), s.DignityOf(body)},
	}
	return StatData{Title: title, Grid: grid}
}

// Data2CelestialBody summarizes one data2 planet; the house column is
// marked as a synastry placement.
func (s *Stats) Data2CelestialBody(body chart.Body) StatData {
	title := fmt.Sprintf("%s for %s", s.t("aspects"), s.t(body.Name))
	grid := [][]string{
		{s.t(body.Sign.Name), body.DMS},
		{fmt.Sprintf("h%d in synastry", s.data2.HouseOf(body)), s.DignityOf(body)},
	}
	return StatData{Title: title, Grid: grid}
}

// House reports the sign on a house cusp and the sign's ruler.
func (s *Stats) House(house chart.House) StatData {
	title := s.t(fmt.Sprintf("house %d", house.Value))
	grid := [][]string{
		{s.t(house.Sign.Name), fmt.Sprintf("%s: %s", s.t("ruler"), s.t(house.Ruler))},
	}
	return StatData{Title: title, Grid: grid}
}

// Quadrant lists the bodies in one of the four quadrants (1-based).
func (s *Stats) Quadrant(n int) StatData {
	title := s.t(fmt.Sprintf("quadrant %d", n))
	bodies := s.data1.Quadrants()[n-1]
	grid := make([][]string, 0, len(bodies))
	for _, body := range bodies {
		grid = append(grid, []string{s.t(body.Name), s.t(body.Sign.Name), body.DMS})
	}
	return StatData{Title: title, Grid: grid}
}

// Hemisphere lists the bodies in one half of the chart.
func (s *Stats) Hemisphere(h chart.Hemisphere) StatData {
	title := s.t(string(h)) + " " + s.t("hemisphere")
	bodies := s.data1.HemisphereBodies(h)
	grid := make([][]string, 0, len(bodies))
	for _, body := range bodies {
		grid = append(grid, []string{s.t(body.Name), s.t(body.Sign.Name), body.DMS})
	}
	return StatData{Title: title, Grid: grid}
}

// Aspect reports a single aspect: the two bodies and the orb.
func (s *Stats) Aspect(aspect chart.Aspect) StatData {
	return StatData{
		Title: s.t(aspect.Kind),
		Grid: [][]string{
			{s.t(aspect.Body1.Name), s.t(aspect.Body2.Name), fmt.Sprintf("%.2f°", aspect.Orb)},
		},
	}
}

// CompositeAspect reports a single aspect between the two charts.
func (s *Stats) CompositeAspect(aspect chart.Aspect) StatData {
	return StatData{
		Title: s.t(aspect.Kind),
		Grid: [][]string{
			{s.t(aspect.Body1.Name), s.t(aspect.Body2.Name), fmt.Sprintf("%.2f°", aspect.Orb)},
		},
	}
}

// CrossRef pairs the placements of one body from each chart.
func (s *Stats) CrossRef(body1, body2 chart.Body) StatData {
	title := s.t(body1.Name) + "-" + s.t(body2.Name)
	grid := [][]string{
		{s.t(body1.Sign.Name), body1.DMS},
		{s.t(body2.Sign.Name), body2.DMS},
	}
	return StatData{Title: title, Grid: grid}
}
