package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/rshade/soilprint/internal/footprint"
	"github.com/rshade/soilprint/internal/profile"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Write renders r to w in the given format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatText, "":
		return WriteText(w, r)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteJSON renders r as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteText renders r as a human readable summary.
func WriteText(w io.Writer, r *Report) error {
	var sb strings.Builder

	d := r.Diet
	sb.WriteString("You have selected the following food items:\n")
	for _, id := range d.Selected {
		fmt.Fprintf(&sb, "%s\n", id)
	}
	fmt.Fprintf(&sb, "\nTotal Soil Loss (kg soil/year): %.4f\n", d.Result.Total)
	if d.Result.MinimumAlternative != nil {
		fmt.Fprintf(&sb, "Minimum Possible Soil Loss (kg soil/year): %.4f\n", *d.Result.MinimumAlternative)
	}
	fmt.Fprintf(&sb, "By choosing the more sustainable options, you could reduce your soil loss by %.4f kg/year.\n", d.Savings)
	if d.Recommendation != nil {
		fmt.Fprintf(&sb, "\nRecommendation: If you switch to %s, you could reduce your soil loss by an additional %.4f kg/year.\n",
			d.Recommendation.ID, d.Recommendation.Footprint)
	}

	m := r.Meal
	fmt.Fprintf(&sb, "\nMeal: %s\n", m.Name)
	fmt.Fprintf(&sb, "Soil footprint of this meal: %.4f kg of soil consumed\n", m.Result.Total)
	fmt.Fprintf(&sb, "Total meal weight: %s grams\n", strconv.FormatFloat(m.WeightGrams, 'f', -1, 64))
	weights := sharesByID(m.WeightShares)
	footprints := sharesByID(m.FootprintShares)
	for _, it := range m.Result.Items {
		fmt.Fprintf(&sb, "  %-10s %8.4f kg  weight %5.1f%%  footprint %5.1f%%\n",
			it.ID, it.Footprint, weights[it.ID], footprints[it.ID])
	}

	c := r.Crops
	unit := "kg soil/kg crop"
	if c.Metric == profile.MetricTotal {
		unit = "kg soil/person/year"
	}
	fmt.Fprintf(&sb, "\nCrops (%s, %s):\n", unit, strings.ReplaceAll(c.Sort, "_", " "))
	for _, e := range c.Crops {
		fmt.Fprintf(&sb, "  %-28s %-10s %8.2f\n", e.Label, e.Category, e.Value)
	}
	fmt.Fprintf(&sb, "Kilograms of soil consumed per person per year in total: %.2f kg\n", c.TotalSoilPerYear)

	_, err := io.WriteString(w, sb.String())
	return err
}

// sharesByID indexes shares by item; missing items read as 0%.
func sharesByID(shares []footprint.Share) map[string]float64 {
	out := make(map[string]float64, len(shares))
	for _, s := range shares {
		out[s.ID] = s.Percent
	}
	return out
}
