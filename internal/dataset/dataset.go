package dataset

import (
	"errors"
	"fmt"
)

const (
	// FeatureWidth is [age, blue, red, green, são paulo, rio, curitiba].
	FeatureWidth = 7
	// LabelWidth is [premium, medium, basic].
	LabelWidth = 3
)

var (
	ErrWidth           = errors.New("dataset: wrong vector width")
	ErrOneHot          = errors.New("dataset: group is not one-hot")
	ErrAgeRange        = errors.New("dataset: normalized age outside [0,1]")
	ErrUnknownCategory = errors.New("dataset: unknown category")
	ErrEmpty           = errors.New("dataset: no rows")
)

// FeatureVector is one encoded person.
type FeatureVector [FeatureWidth]float64

// LabelVector is a one-hot category membership.
type LabelVector [LabelWidth]float64

// NewFeatureVector checks width, age range and both one-hot groups.
func NewFeatureVector(values []float64) (FeatureVector, error) {
	var fv FeatureVector
	if len(values) != FeatureWidth {
		return fv, fmt.Errorf("feature vector has %d values, want %d: %w", len(values), FeatureWidth, ErrWidth)
	}
	copy(fv[:], values)
	return fv, fv.Validate()
}

// Validate reports whether fv respects the encoding invariants.
func (fv FeatureVector) Validate() error {
	if fv[0] < 0 || fv[0] > 1 {
		return fmt.Errorf("age %g: %w", fv[0], ErrAgeRange)
	}
	if err := checkOneHot(fv[1:4]); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if err := checkOneHot(fv[4:7]); err != nil {
		return fmt.Errorf("city: %w", err)
	}
	return nil
}

// NewLabelVector checks width and one-hotness.
func NewLabelVector(values []float64) (LabelVector, error) {
	var lv LabelVector
	if len(values) != LabelWidth {
		return lv, fmt.Errorf("label vector has %d values, want %d: %w", len(values), LabelWidth, ErrWidth)
	}
	copy(lv[:], values)
	return lv, checkOneHot(lv[:])
}

// OneHot returns the label vector with a 1 at index.
func OneHot(index int) (LabelVector, error) {
	var lv LabelVector
	if index < 0 || index >= LabelWidth {
		return lv, fmt.Errorf("label index %d: %w", index, ErrWidth)
	}
	lv[index] = 1
	return lv, nil
}

// Index returns the position of the active category.
func (lv LabelVector) Index() int {
	best := 0
	for i, v := range lv {
		if v > lv[best] {
			best = i
		}
	}
	return best
}

func checkOneHot(group []float64) error {
	sum := 0.0
	for _, v := range group {
		if v != 0 && v != 1 {
			return fmt.Errorf("value %g: %w", v, ErrOneHot)
		}
		sum += v
	}
	if sum != 1 {
		return fmt.Errorf("%d flags set: %w", int(sum), ErrOneHot)
	}
	return nil
}

// Dataset pairs encoded people with their categories.
type Dataset struct {
	Features []FeatureVector
	Labels   []LabelVector
	Names    []string
}

// Validate checks row counts and every vector.
func (d Dataset) Validate() error {
	if len(d.Features) == 0 {
		return ErrEmpty
	}
	if len(d.Features) != len(d.Labels) {
		return fmt.Errorf("%d feature rows vs %d label rows: %w", len(d.Features), len(d.Labels), ErrWidth)
	}
	if len(d.Names) != LabelWidth {
		return fmt.Errorf("%d label names, want %d: %w", len(d.Names), LabelWidth, ErrWidth)
	}
	for i, fv := range d.Features {
		if err := fv.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	for i, lv := range d.Labels {
		if err := checkOneHot(lv[:]); err != nil {
			return fmt.Errorf("label %d: %w", i, err)
		}
	}
	return nil
}

// FeatureRows returns the features as plain rows.
func (d Dataset) FeatureRows() [][]float64 {
	return FeatureRows(d.Features)
}

// LabelRows returns the labels as plain rows.
func (d Dataset) LabelRows() [][]float64 {
	rows := make([][]float64, len(d.Labels))
	for i := range d.Labels {
		rows[i] = append([]float64(nil), d.Labels[i][:]...)
	}
	return rows
}

// FeatureRows converts typed vectors to plain rows.
func FeatureRows(features []FeatureVector) [][]float64 {
	rows := make([][]float64, len(features))
	for i := range features {
		rows[i] = append([]float64(nil), features[i][:]...)
	}
	return rows
}

// LabelNames is the category order used by every LabelVector.
func LabelNames() []string {
	return []string{"premium", "medium", "basic"}
}

// Demo returns the three hand-encoded training people:
// Erick (30, blue, São Paulo) premium, Ana (25, red, Rio) medium and
// Carlos (40, green, Curitiba) basic.
func Demo() Dataset {
	return Dataset{
		Features: []FeatureVector{
			{0.33, 1, 0, 0, 1, 0, 0},
			{0, 0, 1, 0, 0, 1, 0},
			{1, 0, 0, 1, 0, 0, 1},
		},
		Labels: []LabelVector{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Names: LabelNames(),
	}
}

// DemoQuery is the person classified after training.
func DemoQuery() Person {
	return Person{Name: "Zé", Age: 28, Color: "verde", City: "Curitiba"}
}
