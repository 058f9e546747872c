// Package chart defines shared natal chart data structures.
package chart

import "fmt"

// Body is a celestial body (or chart angle) placed on a chart.
type Body struct {
	Name string
	Sign Sign
	DMS  string
}

// House is one of the twelve chart houses.
type House struct {
	Value int
	Sign  Sign
	Ruler string
}

// Aspect is an angular relationship between two bodies.
type Aspect struct {
	Body1 Body
	Body2 Body
	Kind  string
	Orb   float64
}

// BodyPair is a candidate pair for aspect calculation.
type BodyPair [2]Body

// Hemisphere identifies one half of the chart.
type Hemisphere string

const (
	East  Hemisphere = "east"
	West  Hemisphere = "west"
	North Hemisphere = "north"
	South Hemisphere = "south"
)

// Hemispheres lists the hemispheres in report order.
var Hemispheres = []Hemisphere{East, West, North, South}

// AspectKinds lists the recognized aspect kinds.
var AspectKinds = []string{
	"conjunction",
	"opposition",
	"trine",
	"square",
	"sextile",
	"quincunx",
}

// Data exposes precomputed facts about one chart. Implementations own
// the astronomical side; this library only reads the results.
type Data interface {
	// Planets returns the displayed bodies in declaration order.
	Planets() []Body
	// Houses returns the twelve houses in order.
	Houses() []House
	// HouseOf returns the 1-based number of the house the body occupies.
	HouseOf(body Body) int
	// Quadrants returns four ordered groups of bodies.
	Quadrants() [][]Body
	// HemisphereBodies returns the ordered bodies in the given hemisphere.
	HemisphereBodies(h Hemisphere) []Body
	// Aspects returns the aspects between the chart's own bodies.
	Aspects() []Aspect
	// CompositeAspectsPairs returns candidate pairs between this chart's
	// bodies and another chart's bodies.
	CompositeAspectsPairs(other Data) []BodyPair
	// CalculateAspects computes aspects for the given pairs.
	CalculateAspects(pairs []BodyPair) []Aspect
}

// DMS formats an in-sign longitude as a degree-minute-second string.
func DMS(deg float64) string {
	if deg < 0 {
		deg = -deg
	}
	d := int(deg)
	rem := (deg - float64(d)) * 60
	m := int(rem)
	sec := int((rem-float64(m))*60 + 0.5)
	if sec == 60 {
		sec = 0
		m++
	}
	if m == 60 {
		m = 0
		d++
	}
	return fmt.Sprintf("%d°%02d'%02d\"", d, m, sec)
}
