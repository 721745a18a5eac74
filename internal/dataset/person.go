package dataset

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Person is a raw record before encoding. Label is only set for training
// records.
type Person struct {
	Name  string  `yaml:"name"`
	Age   float64 `yaml:"age"`
	Color string  `yaml:"color"`
	City  string  `yaml:"city"`
	Label string  `yaml:"label,omitempty"`
}

// Colors and Cities list the accepted spellings per one-hot slot.
var (
	Colors = [][]string{
		{"azul", "blue"},
		{"vermelho", "red"},
		{"verde", "green"},
	}
	Cities = [][]string{
		{"São Paulo", "SP"},
		{"Rio", "Rio de Janeiro"},
		{"Curitiba"},
	}
)

// AgeRange is the min-max scheme used to normalize ages.
type AgeRange struct {
	Min float64
	Max float64
}

// DefaultAgeRange covers the demo people.
func DefaultAgeRange() AgeRange {
	return AgeRange{Min: 25, Max: 40}
}

// Normalize maps age into [0,1], clamping values outside the range.
func (r AgeRange) Normalize(age float64) float64 {
	v := (age - r.Min) / (r.Max - r.Min)
	return math.Max(0, math.Min(1, v))
}

func (r AgeRange) valid() bool {
	return r.Max > r.Min
}

// FitAgeRange derives the range from the youngest and oldest person.
func FitAgeRange(people []Person) (AgeRange, error) {
	if len(people) == 0 {
		return AgeRange{}, ErrEmpty
	}
	r := AgeRange{Min: people[0].Age, Max: people[0].Age}
	for _, p := range people[1:] {
		r.Min = math.Min(r.Min, p.Age)
		r.Max = math.Max(r.Max, p.Age)
	}
	if !r.valid() {
		return AgeRange{}, fmt.Errorf("all ages equal %g: %w", r.Min, ErrAgeRange)
	}
	return r, nil
}

// Encoder turns people into feature vectors.
type Encoder struct {
	Ages AgeRange
}

// Encode normalizes the age and one-hot encodes color and city.
func (e Encoder) Encode(p Person) (FeatureVector, error) {
	var fv FeatureVector
	if !e.Ages.valid() {
		return fv, fmt.Errorf("age range %g..%g: %w", e.Ages.Min, e.Ages.Max, ErrAgeRange)
	}
	color, err := lookup(Colors, p.Color)
	if err != nil {
		return fv, fmt.Errorf("%s color: %w", p.Name, err)
	}
	city, err := lookup(Cities, p.City)
	if err != nil {
		return fv, fmt.Errorf("%s city: %w", p.Name, err)
	}
	fv[0] = e.Ages.Normalize(p.Age)
	fv[1+color] = 1
	fv[4+city] = 1
	return fv, nil
}

// LabelIndex finds name among names, ignoring case and accents.
func LabelIndex(names []string, name string) (int, error) {
	want := canonical(name)
	for i, n := range names {
		if canonical(n) == want {
			return i, nil
		}
	}
	return 0, fmt.Errorf("label %q: %w", name, ErrUnknownCategory)
}

func lookup(slots [][]string, value string) (int, error) {
	want := canonical(value)
	for i, aliases := range slots {
		for _, alias := range aliases {
			if canonical(alias) == want {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%q: %w", value, ErrUnknownCategory)
}

// canonical strips accents and case so "São Paulo" matches "sao paulo".
func canonical(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.TrimSpace(s))
	if err != nil {
		out = s
	}
	return cases.Fold().String(out)
}
