// Package numerology derives a Pythagorean numerology profile from a birth
// date and a full legal name. All computations are pure; syntactically valid
// input either produces a complete profile or a typed validation error,
// never a silently defaulted value.
package numerology

import (
	"time"

	"github.com/soulatlas/blueprint/internal/shared/errs"
)

// LifePathMethod selects how the life-path number is derived from the date.
type LifePathMethod string

const (
	// MethodComponent reduces month, day, and year independently (masters
	// preserved at each step), sums the three reduced values, then reduces
	// the sum.
	MethodComponent LifePathMethod = "component"
	// MethodFullDigit sums every digit of the 8-digit date string, then
	// reduces.
	MethodFullDigit LifePathMethod = "full_digit"
)

// Facet pairs a numerology number with its descriptive keyword.
type Facet struct {
	Number  Number `json:"number"`
	Keyword string `json:"keyword"`
}

// Profile is the complete numerology output. Both life-path methods are
// computed and exposed; LifePath reflects the requested method.
type Profile struct {
	LifePath          Facet          `json:"life_path"`
	LifePathMethod    LifePathMethod `json:"life_path_method"`
	LifePathComponent Number         `json:"life_path_component"`
	LifePathFullDigit Number         `json:"life_path_full_digit"`
	Expression        Facet          `json:"expression"`
	SoulUrge          Facet          `json:"soul_urge"`
	Personality       Facet          `json:"personality"`
	Birthday          Facet          `json:"birthday"`
	PersonalYear      Number         `json:"personal_year"`
}

// Compute builds the profile for a birth date and full name. The at instant
// anchors the personal-year number, which cycles with the calendar year.
func Compute(birth time.Time, fullName string, method LifePathMethod, at time.Time) (*Profile, error) {
	switch method {
	case MethodComponent, MethodFullDigit:
	default:
		return nil, errs.Validation("unknown life-path method %q", method)
	}

	normalized := normalizeName(fullName)
	if normalized == "" {
		return nil, errs.Validation("name %q contains no letters after normalization", fullName)
	}

	var nameSum, vowelSum, consonantSum int
	for i := 0; i < len(normalized); i++ {
		v := letterValue(normalized[i])
		nameSum += v
		if isVowel(normalized[i]) {
			vowelSum += v
		} else {
			consonantSum += v
		}
	}
	if vowelSum == 0 {
		return nil, errs.Validation("name %q has no vowels after normalization", fullName)
	}
	if consonantSum == 0 {
		return nil, errs.Validation("name %q has no consonants after normalization", fullName)
	}

	expression, err := Reduce(nameSum)
	if err != nil {
		return nil, err
	}
	soulUrge, err := Reduce(vowelSum)
	if err != nil {
		return nil, err
	}
	personality, err := Reduce(consonantSum)
	if err != nil {
		return nil, err
	}
	birthday, err := Reduce(birth.Day())
	if err != nil {
		return nil, err
	}

	component, err := lifePathComponent(birth)
	if err != nil {
		return nil, err
	}
	fullDigit, err := lifePathFullDigit(birth)
	if err != nil {
		return nil, err
	}

	lifePath := component
	if method == MethodFullDigit {
		lifePath = fullDigit
	}

	personalYear, err := personalYear(birth, at)
	if err != nil {
		return nil, err
	}

	return &Profile{
		LifePath:          Facet{Number: lifePath, Keyword: keywordFor(lifePathKeywords, lifePath)},
		LifePathMethod:    method,
		LifePathComponent: component,
		LifePathFullDigit: fullDigit,
		Expression:        Facet{Number: expression, Keyword: keywordFor(expressionKeywords, expression)},
		SoulUrge:          Facet{Number: soulUrge, Keyword: keywordFor(soulUrgeKeywords, soulUrge)},
		Personality:       Facet{Number: personality, Keyword: keywordFor(personalityKeywords, personality)},
		Birthday:          Facet{Number: birthday, Keyword: keywordFor(birthdayKeywords, birthday)},
		PersonalYear:      personalYear,
	}, nil
}

// lifePathComponent reduces month, day, and year independently before
// summing. The day term is part of the final sum; leaving it out changes
// the result for most dates.
func lifePathComponent(birth time.Time) (Number, error) {
	month, err := Reduce(int(birth.Month()))
	if err != nil {
		return Number{}, err
	}
	day, err := Reduce(birth.Day())
	if err != nil {
		return Number{}, err
	}
	year, err := Reduce(birth.Year())
	if err != nil {
		return Number{}, err
	}
	return Reduce(month.Int() + day.Int() + year.Int())
}

// lifePathFullDigit sums every digit of YYYYMMDD.
func lifePathFullDigit(birth time.Time) (Number, error) {
	sum := digitSum(birth.Year()) + digitSum(int(birth.Month())) + digitSum(birth.Day())
	return Reduce(sum)
}

// personalYear reduces birth month + birth day + the digits of the year at
// the reference instant.
func personalYear(birth, at time.Time) (Number, error) {
	sum := digitSum(int(birth.Month())) + digitSum(birth.Day()) + digitSum(at.Year())
	return Reduce(sum)
}
