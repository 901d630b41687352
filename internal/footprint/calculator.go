package footprint

import (
	"fmt"
	"math"
)

// Calculator computes soil footprints against a fixed coefficient table.
//
// Every method is a pure function of its arguments and the table, so a
// Calculator may be shared between goroutines.
type Calculator struct {
	table *Table
}

// NewCalculator creates a calculator over table. It panics if table is nil.
func NewCalculator(table *Table) *Calculator {
	if table == nil {
		panic("footprint: nil coefficient table")
	}
	return &Calculator{table: table}
}

// Table returns the calculator's coefficient table.
func (c *Calculator) Table() *Table {
	return c.table
}

// ItemFootprint returns the soil footprint of grams of the item id:
//
//	coefficient[id] * grams / 1000
//
// Returns an UnknownItemError if id is not in the table and
// ErrInvalidQuantity if grams is negative or not finite.
func (c *Calculator) ItemFootprint(id string, grams float64) (float64, error) {
	coefficient, err := c.table.Coefficient(id)
	if err != nil {
		return 0, err
	}
	if err := validateQuantity(id, grams); err != nil {
		return 0, err
	}
	return coefficient * (grams / GramsPerKilogram), nil
}

// Total sums ItemFootprint over every entry of selection and returns the
// per-item breakdown together with the total.
func (c *Calculator) Total(selection Selection) (Result, error) {
	res := Result{Items: make([]ItemFootprint, 0, len(selection))}
	for _, id := range selection.IDs() {
		grams := selection[id]
		fp, err := c.ItemFootprint(id, grams)
		if err != nil {
			return Result{}, err
		}
		coefficient, _ := c.table.Coefficient(id)
		res.Items = append(res.Items, ItemFootprint{
			ID:          id,
			Grams:       grams,
			Coefficient: coefficient,
			Footprint:   fp,
		})
		res.Total += fp
	}
	return res, nil
}

// MinimumAlternative returns the sum, across groups, of the lowest candidate
// footprint in each group. A group without candidates yields an
// EmptyCandidateSetError.
func (c *Calculator) MinimumAlternative(groups []ChoiceGroup) (float64, error) {
	picks, err := c.BestChoices(groups)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, p := range picks {
		total += p.Footprint
	}
	return total, nil
}

// BestChoices returns the lowest-footprint candidate of each group, in group
// order. When several candidates share the minimum, the first one declared
// in the group wins.
func (c *Calculator) BestChoices(groups []ChoiceGroup) ([]Pick, error) {
	picks := make([]Pick, 0, len(groups))
	for _, g := range groups {
		if len(g.Candidates) == 0 {
			return nil, &EmptyCandidateSetError{Group: g.Name}
		}

		best := Pick{Group: g.Name}
		for i, cand := range g.Candidates {
			fp, err := c.ItemFootprint(cand.ID, cand.Grams)
			if err != nil {
				return nil, fmt.Errorf("choice group %q: %w", g.Name, err)
			}
			if i == 0 || fp < best.Footprint {
				best.ID = cand.ID
				best.Footprint = fp
			}
		}
		picks = append(picks, best)
	}
	return picks, nil
}

// RecommendCheapestUnselected returns the item of universe that is absent
// from selection and has the lowest footprint at its universe (reference)
// quantity. Ties go to the lexically smallest identifier. If every universe
// item is already selected an EmptyCandidateSetError is returned; a selected
// identifier missing from the table is an UnknownItemError.
func (c *Calculator) RecommendCheapestUnselected(selection, universe Selection) (Recommendation, error) {
	for _, id := range selection.IDs() {
		if !c.table.Has(id) {
			return Recommendation{}, &UnknownItemError{ID: id}
		}
	}

	var (
		best  Recommendation
		found bool
	)
	for _, id := range universe.IDs() {
		if _, selected := selection[id]; selected {
			continue
		}
		fp, err := c.ItemFootprint(id, universe[id])
		if err != nil {
			return Recommendation{}, err
		}
		if !found || fp < best.Footprint {
			best = Recommendation{ID: id, Footprint: fp}
			found = true
		}
	}
	if !found {
		return Recommendation{}, &EmptyCandidateSetError{}
	}
	return best, nil
}

// Evaluate computes the Total of selection and attaches the
// MinimumAlternative over groups.
func (c *Calculator) Evaluate(selection Selection, groups []ChoiceGroup) (Result, error) {
	res, err := c.Total(selection)
	if err != nil {
		return Result{}, err
	}
	minimum, err := c.MinimumAlternative(groups)
	if err != nil {
		return Result{}, err
	}
	res.MinimumAlternative = &minimum
	return res, nil
}

func validateQuantity(id string, grams float64) error {
	if grams < 0 || math.IsNaN(grams) || math.IsInf(grams, 0) {
		return fmt.Errorf("%w: %q has %v grams", ErrInvalidQuantity, id, grams)
	}
	return nil
}
