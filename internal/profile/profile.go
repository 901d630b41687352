// Package profile loads user selections (the diet choices, the meal and the
// crop view) from YAML.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rshade/soilprint/internal/dataset"
	"github.com/rshade/soilprint/internal/footprint"
)

// Crop view metrics.
const (
	MetricCoefficient = "coefficient"
	MetricTotal       = "total"
)

// Crop view sort modes.
const (
	SortDescending = "descending"
	SortByCategory = "by_category"
)

// ErrInvalidProfile is wrapped by every validation failure.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile is a set of user selections.
type Profile struct {
	// Diet maps a diet choice group name to the chosen option. Groups that
	// are not listed default to their first option.
	Diet map[string]string `yaml:"diet"`

	// Meal is the name of the meal to break down.
	Meal string `yaml:"meal"`

	// Crops configures the per-crop view.
	Crops CropView `yaml:"crops"`
}

// CropView selects what the crop view reports and how it is ordered.
type CropView struct {
	Metric string `yaml:"metric"`
	Sort   string `yaml:"sort"`
}

// Default returns the profile used when no file is given: first option of
// every group, the first meal, and crop coefficients sorted descending.
func Default() *Profile {
	p := &Profile{}
	p.applyDefaults()
	return p
}

// Load reads and validates the YAML profile at filename.
func Load(filename string) (*Profile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProfile, err)
	}
	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Profile) applyDefaults() {
	if p.Diet == nil {
		p.Diet = make(map[string]string)
	}
	if p.Meal == "" {
		if names := dataset.MealNames(); len(names) > 0 {
			p.Meal = names[0]
		}
	}
	if p.Crops.Metric == "" {
		p.Crops.Metric = MetricCoefficient
	}
	if p.Crops.Sort == "" {
		p.Crops.Sort = SortDescending
	}
}

// Validate checks every selection against the embedded dataset.
func (p *Profile) Validate() error {
	for group, choice := range p.Diet {
		g, ok := dataset.DietGroup(group)
		if !ok {
			return fmt.Errorf("%w: unknown diet group %q", ErrInvalidProfile, group)
		}
		if !g.Contains(choice) {
			return fmt.Errorf("%w: %q is not an option of %q", ErrInvalidProfile, choice, group)
		}
	}
	if _, ok := dataset.MealByName(p.Meal); !ok {
		return fmt.Errorf("%w: unknown meal %q", ErrInvalidProfile, p.Meal)
	}
	switch p.Crops.Metric {
	case MetricCoefficient, MetricTotal:
	default:
		return fmt.Errorf("%w: unknown crop metric %q", ErrInvalidProfile, p.Crops.Metric)
	}
	switch p.Crops.Sort {
	case SortDescending, SortByCategory:
	default:
		return fmt.Errorf("%w: unknown crop sort %q", ErrInvalidProfile, p.Crops.Sort)
	}
	return nil
}

// DietSelection returns the chosen option of every diet group with its
// daily reference quantity, in grams.
func (p *Profile) DietSelection() footprint.Selection {
	sel := make(footprint.Selection)
	for _, g := range dataset.DietGroups() {
		if len(g.Candidates) == 0 {
			continue
		}
		chosen := g.Candidates[0]
		if c, ok := g.Candidate(p.Diet[g.Name]); ok {
			chosen = c
		}
		sel[chosen.ID] = chosen.Grams
	}
	return sel
}
