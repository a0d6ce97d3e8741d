package zodiac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromLongitude(t *testing.T) {
	tests := []struct {
		name       string
		lon        float64
		wantSign   string
		wantDegree float64
	}{
		{name: "start of Aries", lon: 0, wantSign: "Aries", wantDegree: 0},
		{name: "mid Aquarius", lon: 315.5, wantSign: "Aquarius", wantDegree: 15.5},
		{name: "end of Pisces", lon: 359.9, wantSign: "Pisces", wantDegree: 29.9},
		{name: "negative normalizes", lon: -30, wantSign: "Pisces", wantDegree: 0},
		{name: "above 360 normalizes", lon: 390, wantSign: "Taurus", wantDegree: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := FromLongitude(tt.lon)
			assert.Equal(t, tt.wantSign, p.Sign)
			assert.InDelta(t, tt.wantDegree, p.Degree, 1e-9)
			assert.NotEmpty(t, p.Element)
		})
	}
}

func TestChineseForYear(t *testing.T) {
	tests := []struct {
		year        int
		wantAnimal  string
		wantElement string
		wantYinYang string
	}{
		{1978, "Horse", "Earth", "Yang"},
		{1990, "Horse", "Metal", "Yang"},
		{2000, "Dragon", "Metal", "Yang"},
		{1985, "Ox", "Wood", "Yin"},
		{2026, "Horse", "Fire", "Yang"},
	}

	for _, tt := range tests {
		c := ChineseForYear(tt.year)
		assert.Equal(t, tt.wantAnimal, c.Animal, "year %d", tt.year)
		assert.Equal(t, tt.wantElement, c.Element, "year %d", tt.year)
		assert.Equal(t, tt.wantYinYang, c.YinYang, "year %d", tt.year)
	}
}
