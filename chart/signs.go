package chart

// Sign is a zodiac sign with its categories and rulership assignments.
type Sign struct {
	Name             string
	Element          string
	Modality         string
	Polarity         string
	Ruler            string
	ClassicRuler     string
	Detriment        string
	ClassicDetriment string
	Exaltation       string
	Fall             string
}

// Ordered category member lists. Each sign belongs to exactly one member
// of every list.
var (
	Elements   = []string{"fire", "earth", "air", "water"}
	Modalities = []string{"cardinal", "fixed", "mutable"}
	Polarities = []string{"positive", "negative"}
)

// Signs lists the twelve zodiac signs in zodiacal order. Rulerships
// carry both the modern and the classical assignment; exaltation and
// fall follow the traditional table and are empty where it has no entry.
var Signs = []Sign{
	{Name: "aries", Element: "fire", Modality: "cardinal", Polarity: "positive", Ruler: "mars", ClassicRuler: "mars", Detriment: "venus", ClassicDetriment: "venus", Exaltation: "sun", Fall: "saturn"},
	{Name: "taurus", Element: "earth", Modality: "fixed", Polarity: "negative", Ruler: "venus", ClassicRuler: "venus", Detriment: "pluto", ClassicDetriment: "mars", Exaltation: "moon", Fall: ""},
	{Name: "gemini", Element: "air", Modality: "mutable", Polarity: "positive", Ruler: "mercury", ClassicRuler: "mercury", Detriment: "jupiter", ClassicDetriment: "jupiter", Exaltation: "", Fall: ""},
	{Name: "cancer", Element: "water", Modality: "cardinal", Polarity: "negative", Ruler: "moon", ClassicRuler: "moon", Detriment: "saturn", ClassicDetriment: "saturn", Exaltation: "jupiter", Fall: "mars"},
	{Name: "leo", Element: "fire", Modality: "fixed", Polarity: "positive", Ruler: "sun", ClassicRuler: "sun", Detriment: "uranus", ClassicDetriment: "saturn", Exaltation: "", Fall: ""},
	{Name: "virgo", Element: "earth", Modality: "mutable", Polarity: "negative", Ruler: "mercury", ClassicRuler: "mercury", Detriment: "neptune", ClassicDetriment: "jupiter", Exaltation: "mercury", Fall: "venus"},
	{Name: "libra", Element: "air", Modality: "cardinal", Polarity: "positive", Ruler: "venus", ClassicRuler: "venus", Detriment: "mars", ClassicDetriment: "mars", Exaltation: "saturn", Fall: "sun"},
	{Name: "scorpio", Element: "water", Modality: "fixed", Polarity: "negative", Ruler: "pluto", ClassicRuler: "mars", Detriment: "venus", ClassicDetriment: "venus", Exaltation: "", Fall: "moon"},
	{Name: "sagittarius", Element: "fire", Modality: "mutable", Polarity: "positive", Ruler: "jupiter", ClassicRuler: "jupiter", Detriment: "mercury", ClassicDetriment: "mercury", Exaltation: "", Fall: ""},
	{Name: "capricorn", Element: "earth", Modality: "cardinal", Polarity: "negative", Ruler: "saturn", ClassicRuler: "saturn", Detriment: "moon", ClassicDetriment: "moon", Exaltation: "mars", Fall: "jupiter"},
	{Name: "aquarius", Element: "air", Modality: "fixed", Polarity: "positive", Ruler: "uranus", ClassicRuler: "saturn", Detriment: "sun", ClassicDetriment: "sun", Exaltation: "", Fall: ""},
	{Name: "pisces", Element: "water", Modality: "mutable", Polarity: "negative", Ruler: "neptune", ClassicRuler: "jupiter", Detriment: "mercury", ClassicDetriment: "mercury", Exaltation: "venus", Fall: "mercury"},
}

// SignNamed returns the sign with the given lowercase name.
func SignNamed(name string) (Sign, bool) {
	for _, sign := range Signs {
		if sign.Name == name {
			return sign, true
		}
	}
	return Sign{}, false
}
