// Package zodiac derives the western and Chinese archetype facets carried on
// a blueprint. The western facet reads sign and in-sign degree straight off
// an ecliptic longitude; the Chinese facet cycles on the birth year.
package zodiac

import "math"

var signs = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var signElements = [12]string{
	"Fire", "Earth", "Air", "Water", "Fire", "Earth",
	"Air", "Water", "Fire", "Earth", "Air", "Water",
}

// Placement is a body's position expressed in zodiac terms.
type Placement struct {
	Sign    string  `json:"sign"`
	Element string  `json:"element"`
	Degree  float64 `json:"degree"` // degrees into the sign, [0,30)
}

// FromLongitude converts an ecliptic longitude to its sign placement.
func FromLongitude(longitude float64) Placement {
	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}
	idx := int(lon / 30)
	return Placement{
		Sign:    signs[idx],
		Element: signElements[idx],
		Degree:  lon - float64(idx)*30,
	}
}

var animals = [12]string{
	"Rat", "Ox", "Tiger", "Rabbit", "Dragon", "Snake",
	"Horse", "Goat", "Monkey", "Rooster", "Dog", "Pig",
}

var elements = [5]string{"Wood", "Fire", "Earth", "Metal", "Water"}

// Chinese is the Chinese zodiac facet for a birth year.
type Chinese struct {
	Animal  string `json:"animal"`
	Element string `json:"element"`
	YinYang string `json:"yin_yang"`
}

// ChineseForYear derives the animal, element and polarity for a calendar
// year. The cycle anchors on year 4 (Wood Rat, Yang).
func ChineseForYear(year int) Chinese {
	yinYang := "Yin"
	if year%2 == 0 {
		yinYang = "Yang"
	}
	return Chinese{
		Animal:  animals[mod(year-4, 12)],
		Element: elements[mod(year-4, 10)/2],
		YinYang: yinYang,
	}
}

func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
