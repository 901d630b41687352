package dataset

import (
	_ "embed"
	"sync"

	"github.com/rshade/soilprint/internal/footprint"
)

// CSV column indices for diet foods.
const (
	colDietID          = 0 // id
	colDietCoefficient = 1 // coefficient_kg_soil_per_kg
	colDietDailyGrams  = 2 // daily_grams
	colDietGroup       = 3 // choice_group
)

//go:embed data/diet_foods.csv
var dietFoodsCSV string

var (
	dietTable  *footprint.Table
	dietDaily  footprint.Selection
	dietGroups []footprint.ChoiceGroup
	dietOnce   sync.Once
)

func parseDiet() {
	coefficients := make(map[string]float64)
	dietDaily = make(footprint.Selection)
	groupIndex := make(map[string]int)

	readRows("diet_foods.csv", dietFoodsCSV, colDietGroup+1, func(f []string) bool {
		id, group := f[colDietID], f[colDietGroup]
		if id == "" || group == "" {
			return false
		}
		coefficient, ok := parseNonNegative(f[colDietCoefficient])
		if !ok {
			return false
		}
		grams, ok := parseNonNegative(f[colDietDailyGrams])
		if !ok {
			return false
		}

		coefficients[id] = coefficient
		dietDaily[id] = grams

		i, seen := groupIndex[group]
		if !seen {
			i = len(dietGroups)
			groupIndex[group] = i
			dietGroups = append(dietGroups, footprint.ChoiceGroup{Name: group})
		}
		dietGroups[i].Candidates = append(dietGroups[i].Candidates, footprint.Candidate{ID: id, Grams: grams})
		return true
	})

	dietTable = footprint.MustNewTable(coefficients)
}

// DietTable returns the coefficient table of the diet choice foods.
func DietTable() *footprint.Table {
	dietOnce.Do(parseDiet)
	return dietTable
}

// DietReference returns the reference daily consumption in grams of every
// diet food.
func DietReference() footprint.Selection {
	dietOnce.Do(parseDiet)
	out := make(footprint.Selection, len(dietDaily))
	for id, g := range dietDaily {
		out[id] = g
	}
	return out
}

// DietGroups returns the mutually exclusive diet choices in declaration
// order, with daily reference quantities.
func DietGroups() []footprint.ChoiceGroup {
	dietOnce.Do(parseDiet)
	out := make([]footprint.ChoiceGroup, len(dietGroups))
	for i, g := range dietGroups {
		out[i] = footprint.ChoiceGroup{
			Name:       g.Name,
			Candidates: append([]footprint.Candidate(nil), g.Candidates...),
		}
	}
	return out
}

// DietGroup returns the named diet choice group.
func DietGroup(name string) (footprint.ChoiceGroup, bool) {
	for _, g := range DietGroups() {
		if g.Name == name {
			return g, true
		}
	}
	return footprint.ChoiceGroup{}, false
}
