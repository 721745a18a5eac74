package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// LoadPeople reads a YAML list of people.
func LoadPeople(path string) ([]Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read people: %w", err)
	}
	var people []Person
	if err := yaml.Unmarshal(data, &people); err != nil {
		return nil, fmt.Errorf("parse people: %w", err)
	}
	if len(people) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return people, nil
}

// FromPeople encodes labelled people into a Dataset. The age range is
// fitted to the records and returned so queries use the same scheme.
func FromPeople(people []Person, names []string) (Dataset, AgeRange, error) {
	ages, err := FitAgeRange(people)
	if err != nil {
		return Dataset{}, AgeRange{}, err
	}
	enc := Encoder{Ages: ages}
	ds := Dataset{
		Features: make([]FeatureVector, 0, len(people)),
		Labels:   make([]LabelVector, 0, len(people)),
		Names:    names,
	}
	for _, p := range people {
		fv, err := enc.Encode(p)
		if err != nil {
			return Dataset{}, AgeRange{}, err
		}
		idx, err := LabelIndex(names, p.Label)
		if err != nil {
			return Dataset{}, AgeRange{}, fmt.Errorf("%s: %w", p.Name, err)
		}
		lv, err := OneHot(idx)
		if err != nil {
			return Dataset{}, AgeRange{}, err
		}
		ds.Features = append(ds.Features, fv)
		ds.Labels = append(ds.Labels, lv)
	}
	return ds, ages, ds.Validate()
}
