package dataset

import (
	_ "embed"
	"sync"

	"github.com/rshade/soilprint/internal/footprint"
)

// CSV column indices for ingredients and meals.
const (
	colIngredientID          = 0 // id
	colIngredientCoefficient = 1 // coefficient_kg_soil_per_kg

	colMealName       = 0 // meal
	colMealIngredient = 1 // ingredient
	colMealGrams      = 2 // grams
)

//go:embed data/ingredients.csv
var ingredientsCSV string

//go:embed data/meals.csv
var mealsCSV string

// Meal is a named dish and the grams of each ingredient it contains.
type Meal struct {
	Name        string
	Ingredients footprint.Selection
}

var (
	ingredientTable *footprint.Table
	meals           []Meal
	mealsOnce       sync.Once
)

func parseMeals() {
	coefficients := make(map[string]float64)
	readRows("ingredients.csv", ingredientsCSV, colIngredientCoefficient+1, func(f []string) bool {
		id := f[colIngredientID]
		coefficient, ok := parseNonNegative(f[colIngredientCoefficient])
		if id == "" || !ok {
			return false
		}
		coefficients[id] = coefficient
		return true
	})
	ingredientTable = footprint.MustNewTable(coefficients)

	index := make(map[string]int)
	readRows("meals.csv", mealsCSV, colMealGrams+1, func(f []string) bool {
		name, ingredient := f[colMealName], f[colMealIngredient]
		grams, ok := parseNonNegative(f[colMealGrams])
		if name == "" || !ok || !ingredientTable.Has(ingredient) {
			return false
		}

		i, seen := index[name]
		if !seen {
			i = len(meals)
			index[name] = i
			meals = append(meals, Meal{Name: name, Ingredients: make(footprint.Selection)})
		}
		meals[i].Ingredients[ingredient] += grams
		return true
	})
}

// IngredientTable returns the coefficient table of meal ingredients.
func IngredientTable() *footprint.Table {
	mealsOnce.Do(parseMeals)
	return ingredientTable
}

// Meals returns every meal in declaration order.
func Meals() []Meal {
	mealsOnce.Do(parseMeals)
	out := make([]Meal, len(meals))
	for i, m := range meals {
		out[i] = m.clone()
	}
	return out
}

// MealByName returns the named meal.
func MealByName(name string) (Meal, bool) {
	mealsOnce.Do(parseMeals)
	for _, m := range meals {
		if m.Name == name {
			return m.clone(), true
		}
	}
	return Meal{}, false
}

// MealNames returns the meal names in declaration order.
func MealNames() []string {
	mealsOnce.Do(parseMeals)
	names := make([]string, len(meals))
	for i, m := range meals {
		names[i] = m.Name
	}
	return names
}

func (m Meal) clone() Meal {
	ingredients := make(footprint.Selection, len(m.Ingredients))
	for id, g := range m.Ingredients {
		ingredients[id] = g
	}
	return Meal{Name: m.Name, Ingredients: ingredients}
}
