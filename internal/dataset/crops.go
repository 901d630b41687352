package dataset

import (
	_ "embed"
	"sync"

	"github.com/rshade/soilprint/internal/footprint"
)

// CSV column indices for crops.
const (
	colCropID          = 0 // id
	colCropLabel       = 1 // label
	colCropCategory    = 2 // category
	colCropCoefficient = 3 // coefficient_kg_soil_per_kg
	colCropAnnualKg    = 4 // annual_kg_per_person
)

//go:embed data/crops.csv
var cropsCSV string

var (
	cropTable      *footprint.Table
	cropAnnualKg   footprint.Selection
	cropLabels     map[string]string
	cropCategories footprint.CategoryOrder
	cropsOnce      sync.Once
)

func parseCrops() {
	coefficients := make(map[string]float64)
	cropAnnualKg = make(footprint.Selection)
	cropLabels = make(map[string]string)
	index := make(map[string]int)

	readRows("crops.csv", cropsCSV, colCropAnnualKg+1, func(f []string) bool {
		id, category := f[colCropID], f[colCropCategory]
		coefficient, ok := parseNonNegative(f[colCropCoefficient])
		if !ok || id == "" || category == "" {
			return false
		}
		annual, ok := parseNonNegative(f[colCropAnnualKg])
		if !ok {
			return false
		}

		coefficients[id] = coefficient
		cropAnnualKg[id] = annual
		cropLabels[id] = f[colCropLabel]

		i, seen := index[category]
		if !seen {
			i = len(cropCategories)
			index[category] = i
			cropCategories = append(cropCategories, footprint.Category{Name: category})
		}
		cropCategories[i].Members = append(cropCategories[i].Members, id)
		return true
	})

	cropTable = footprint.MustNewTable(coefficients)
}

// CropTable returns the coefficient table of crops.
func CropTable() *footprint.Table {
	cropsOnce.Do(parseCrops)
	return cropTable
}

// CropConsumption returns the average yearly consumption per person, in
// kilograms, of each crop.
func CropConsumption() footprint.Selection {
	cropsOnce.Do(parseCrops)
	out := make(footprint.Selection, len(cropAnnualKg))
	for id, kg := range cropAnnualKg {
		out[id] = kg
	}
	return out
}

// CropCategories returns the declared crop category ordering.
func CropCategories() footprint.CategoryOrder {
	cropsOnce.Do(parseCrops)
	out := make(footprint.CategoryOrder, len(cropCategories))
	for i, c := range cropCategories {
		out[i] = footprint.Category{Name: c.Name, Members: append([]string(nil), c.Members...)}
	}
	return out
}

// CropLabel returns the display label of a crop, or id if it has none.
func CropLabel(id string) string {
	cropsOnce.Do(parseCrops)
	if l := cropLabels[id]; l != "" {
		return l
	}
	return id
}
