package stats

import "github.com/verte-zerg/natal/chart"

// FullReport generates the fixed report sequence for data1: basic info,
// the three distributions, then the celestial bodies, houses, quadrants,
// hemispheres, and aspects sections, each opened by a header-only entry.
func (s *Stats) FullReport() []StatData {
	report := []StatData{s.BasicInfo(s.data1)}
	for _, kind := range DistKinds {
		report = append(report, s.Distribution(kind))
	}
	report = append(report, StatData{Title: s.t("celestial_bodies")})
	for _, body := range s.data1.Planets() {
		report = append(report, s.CelestialBody(body))
	}
	report = append(report, StatData{Title: s.t("houses")})
	for _, house := range s.data1.Houses() {
		report = append(report, s.House(house))
	}
	report = append(report, StatData{Title: s.t("quadrants")})
	for n := 1; n <= 4; n++ {
		report = append(report, s.Quadrant(n))
	}
	report = append(report, StatData{Title: s.t("hemispheres")})
	for _, h := range chart.Hemispheres {
		report = append(report, s.Hemisphere(h))
	}
	report = append(report, StatData{Title: s.t("aspects")})
	for _, aspect := range s.data1.Aspects() {
		report = append(report, s.Aspect(aspect))
	}
	return report
}

// CompositeReport mirrors FullReport for the second chart: basic info
// of data2, its bodies placed in synastry, and the aspects between the
// two charts. It requires a Stats built with a non-nil data2.
func (s *Stats) CompositeReport() []StatData {
	report := []StatData{s.BasicInfo(s.data2)}
	report = append(report, StatData{Title: s.t("celestial_bodies")})
	for _, body := range s.data2.Planets() {
		report = append(report, s.Data2CelestialBody(body))
	}
	report = append(report, StatData{Title: s.t("composite_aspects")})
	for _, aspect := range s.compositeAspects {
		report = append(report, s.CompositeAspect(aspect))
	}
	return report
}

// TableOf dispatches on the report kind. Unknown kinds produce an empty
// report rather than an error.
func (s *Stats) TableOf(kind ReportKind) []StatData {
	switch kind {
	case Full:
		return s.FullReport()
	case Composite:
		return s.CompositeReport()
	}
	return nil
}
