// Package report assembles soil footprint reports from a profile and renders
// them as text or JSON.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rshade/soilprint/internal/dataset"
	"github.com/rshade/soilprint/internal/footprint"
	"github.com/rshade/soilprint/internal/profile"
)

// Report is the complete output for one profile.
type Report struct {
	ID          string       `json:"id"`
	GeneratedAt time.Time    `json:"generated_at"`
	Diet        DietSection  `json:"diet"`
	Meal        MealSection  `json:"meal"`
	Crops       CropsSection `json:"crops"`
}

// DietSection compares the chosen diet options, on a yearly basis, with the
// best achievable choices.
type DietSection struct {
	// Selected lists the chosen foods in choice group order.
	Selected       []string                  `json:"selected"`
	Result         footprint.Result          `json:"result"`
	BestChoices    []footprint.Pick          `json:"best_choices"`
	Savings        float64                   `json:"savings"`
	Recommendation *footprint.Recommendation `json:"recommendation,omitempty"`
}

// MealSection breaks a single meal down by ingredient.
type MealSection struct {
	Name            string            `json:"name"`
	Result          footprint.Result  `json:"result"`
	WeightGrams     float64           `json:"weight_grams"`
	WeightShares    []footprint.Share `json:"weight_shares"`
	FootprintShares []footprint.Share `json:"footprint_shares"`
}

// CropsSection lists per-crop values in the requested order.
type CropsSection struct {
	Metric string      `json:"metric"`
	Sort   string      `json:"sort"`
	Crops  []CropEntry `json:"crops"`

	// TotalSoilPerYear is the yearly soil consumed per person across all
	// crops, regardless of Metric.
	TotalSoilPerYear float64 `json:"total_soil_per_year"`
}

// CropEntry is one crop of the crop view.
type CropEntry struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Builder builds reports.
type Builder struct {
	logger zerolog.Logger
	now    func() time.Time
}

// NewBuilder creates a Builder logging to logger.
func NewBuilder(logger zerolog.Logger) *Builder {
	return &Builder{
		logger: logger.With().Str("component", "report").Logger(),
		now:    time.Now,
	}
}

// Build evaluates p against the embedded dataset.
func (b *Builder) Build(p *profile.Profile) (*Report, error) {
	if p == nil {
		p = profile.Default()
	}

	r := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: b.now().UTC(),
	}

	var err error
	if r.Diet, err = b.buildDiet(p); err != nil {
		return nil, fmt.Errorf("diet: %w", err)
	}
	if r.Meal, err = b.buildMeal(p); err != nil {
		return nil, fmt.Errorf("meal: %w", err)
	}
	if r.Crops, err = b.buildCrops(p); err != nil {
		return nil, fmt.Errorf("crops: %w", err)
	}

	b.logger.Debug().
		Str("report_id", r.ID).
		Float64("diet_total", r.Diet.Result.Total).
		Float64("meal_total", r.Meal.Result.Total).
		Float64("crops_total", r.Crops.TotalSoilPerYear).
		Msg("report built")

	return r, nil
}

func (b *Builder) buildDiet(p *profile.Profile) (DietSection, error) {
	calc := footprint.NewCalculator(dataset.DietTable())
	groups := dataset.DietGroups()
	daily := p.DietSelection()
	annual := footprint.Annualize(daily)

	var sec DietSection
	for _, g := range groups {
		for _, c := range g.Candidates {
			if _, ok := daily[c.ID]; ok {
				sec.Selected = append(sec.Selected, c.ID)
			}
		}
	}

	annualGroups := footprint.AnnualizeGroups(groups)
	res, err := calc.Evaluate(annual, annualGroups)
	if err != nil {
		return DietSection{}, err
	}
	sec.Result = res
	sec.Savings = res.Savings()

	if sec.BestChoices, err = calc.BestChoices(annualGroups); err != nil {
		return DietSection{}, err
	}

	rec, err := calc.RecommendCheapestUnselected(annual, footprint.Annualize(dataset.DietReference()))
	switch {
	case errors.Is(err, footprint.ErrEmptyCandidateSet):
		b.logger.Debug().Msg("every diet food is selected; no recommendation")
	case err != nil:
		return DietSection{}, err
	default:
		sec.Recommendation = &rec
	}

	return sec, nil
}

func (b *Builder) buildMeal(p *profile.Profile) (MealSection, error) {
	meal, ok := dataset.MealByName(p.Meal)
	if !ok {
		return MealSection{}, fmt.Errorf("unknown meal %q", p.Meal)
	}

	res, err := footprint.NewCalculator(dataset.IngredientTable()).Total(meal.Ingredients)
	if err != nil {
		return MealSection{}, err
	}

	return MealSection{
		Name:            meal.Name,
		Result:          res,
		WeightGrams:     meal.Ingredients.TotalWeight(),
		WeightShares:    footprint.WeightShares(meal.Ingredients),
		FootprintShares: footprint.FootprintShares(res),
	}, nil
}

func (b *Builder) buildCrops(p *profile.Profile) (CropsSection, error) {
	calc := footprint.NewCalculator(dataset.CropTable())
	categories := dataset.CropCategories()

	yearly, err := calc.Total(footprint.KilogramsToGrams(dataset.CropConsumption()))
	if err != nil {
		return CropsSection{}, err
	}

	view := yearly
	if p.Crops.Metric == profile.MetricCoefficient {
		// One kilogram of each crop yields its coefficient.
		perKg := make(footprint.Selection)
		for _, id := range calc.Table().IDs() {
			perKg[id] = footprint.GramsPerKilogram
		}
		if view, err = calc.Total(perKg); err != nil {
			return CropsSection{}, err
		}
	}

	var items []footprint.ItemFootprint
	switch p.Crops.Sort {
	case profile.SortByCategory:
		items = categories.Sort(view.Items)
	default:
		items = view.SortDescending()
	}

	sec := CropsSection{
		Metric:           p.Crops.Metric,
		Sort:             p.Crops.Sort,
		Crops:            make([]CropEntry, 0, len(items)),
		TotalSoilPerYear: yearly.Total,
	}
	for _, it := range items {
		category, _ := categories.CategoryOf(it.ID)
		sec.Crops = append(sec.Crops, CropEntry{
			ID:       it.ID,
			Label:    dataset.CropLabel(it.ID),
			Category: category,
			Value:    it.Footprint,
		})
	}
	return sec, nil
}
