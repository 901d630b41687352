package footprint

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	table, err := NewTable(map[string]float64{
		"Potato":   0.15,
		"Onion":    0.10,
		"Oil":      3.50,
		"Rice":     1.20,
		"Potatoes": 0.38,
		"Beer":     0.6,
		"Wine":     0.8,
	})
	require.NoError(t, err)
	return NewCalculator(table)
}

func TestCalculator_ItemFootprint(t *testing.T) {
	c := newTestCalculator(t)

	tests := []struct {
		name  string
		id    string
		grams float64
		want  float64
	}{
		{name: "potato 250g", id: "Potato", grams: 250, want: 0.0375},
		{name: "oil 30g", id: "Oil", grams: 30, want: 0.105},
		{name: "zero grams", id: "Onion", grams: 0, want: 0},
		{name: "one kilogram equals coefficient", id: "Rice", grams: 1000, want: 1.20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.ItemFootprint(tt.id, tt.grams)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, delta)
		})
	}
}

func TestCalculator_ItemFootprint_Linear(t *testing.T) {
	c := newTestCalculator(t)

	for _, id := range c.Table().IDs() {
		for _, q := range []float64{0, 1, 37.5, 250, 43800} {
			single, err := c.ItemFootprint(id, q)
			require.NoError(t, err)
			double, err := c.ItemFootprint(id, 2*q)
			require.NoError(t, err)
			assert.InDelta(t, 2*single, double, delta, "%s at %v grams", id, q)
		}
	}
}

func TestCalculator_ItemFootprint_UnknownItem(t *testing.T) {
	c := newTestCalculator(t)

	got, err := c.ItemFootprint("Mango", 100)

	require.Error(t, err)
	assert.Zero(t, got)
	assert.ErrorIs(t, err, ErrUnknownItem)

	var unknown *UnknownItemError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Mango", unknown.ID)
}

func TestCalculator_ItemFootprint_InvalidQuantity(t *testing.T) {
	c := newTestCalculator(t)

	for _, q := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := c.ItemFootprint("Potato", q)
		assert.ErrorIs(t, err, ErrInvalidQuantity, "quantity %v", q)
	}
}

func TestCalculator_Total(t *testing.T) {
	c := newTestCalculator(t)
	sel := Selection{"Potato": 200, "Onion": 50, "Oil": 30}

	res, err := c.Total(sel)
	require.NoError(t, err)

	// 0.15*0.2 + 0.10*0.05 + 3.5*0.03
	assert.InDelta(t, 0.14, res.Total, delta)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []string{"Oil", "Onion", "Potato"}, []string{res.Items[0].ID, res.Items[1].ID, res.Items[2].ID})
	assert.Nil(t, res.MinimumAlternative)

	var sum float64
	for id, q := range sel {
		fp, err := c.ItemFootprint(id, q)
		require.NoError(t, err)
		sum += fp

		item, ok := res.Item(id)
		require.True(t, ok)
		assert.InDelta(t, fp, item.Footprint, delta)
		assert.Equal(t, q, item.Grams)
	}
	assert.InDelta(t, sum, res.Total, delta)
}

func TestCalculator_Total_Empty(t *testing.T) {
	c := newTestCalculator(t)

	res, err := c.Total(Selection{})

	require.NoError(t, err)
	assert.Zero(t, res.Total)
	assert.Empty(t, res.Items)
}

func TestCalculator_Total_UnknownItem(t *testing.T) {
	c := newTestCalculator(t)

	_, err := c.Total(Selection{"Potato": 100, "Tofu": 50})

	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestCalculator_MinimumAlternative(t *testing.T) {
	c := newTestCalculator(t)
	groups := []ChoiceGroup{
		{Name: "Rice or Potatoes", Candidates: []Candidate{
			{ID: "Rice", Grams: 120 * DaysPerYear},
			{ID: "Potatoes", Grams: 300 * DaysPerYear},
		}},
		{Name: "Beer or Wine", Candidates: []Candidate{
			{ID: "Beer", Grams: 500 * DaysPerYear},
			{ID: "Wine", Grams: 200 * DaysPerYear},
		}},
	}

	got, err := c.MinimumAlternative(groups)
	require.NoError(t, err)

	// Potatoes: 0.38*0.3*365 = 41.61, Wine: 0.8*0.2*365 = 58.4
	assert.InDelta(t, 41.61+58.4, got, 1e-6)

	picks, err := c.BestChoices(groups)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "Potatoes", picks[0].ID)
	assert.Equal(t, "Rice or Potatoes", picks[0].Group)
	assert.Equal(t, "Wine", picks[1].ID)
}

func TestCalculator_MinimumAlternative_SingleCandidate(t *testing.T) {
	c := newTestCalculator(t)

	got, err := c.MinimumAlternative([]ChoiceGroup{
		{Name: "only", Candidates: []Candidate{{ID: "Oil", Grams: 15}}},
	})
	require.NoError(t, err)

	want, err := c.ItemFootprint("Oil", 15)
	require.NoError(t, err)
	assert.InDelta(t, want, got, delta)
}

func TestCalculator_MinimumAlternative_NoGroups(t *testing.T) {
	c := newTestCalculator(t)

	got, err := c.MinimumAlternative(nil)

	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestCalculator_MinimumAlternative_EmptyGroup(t *testing.T) {
	c := newTestCalculator(t)

	_, err := c.MinimumAlternative([]ChoiceGroup{{Name: "nothing"}})

	require.ErrorIs(t, err, ErrEmptyCandidateSet)
	var empty *EmptyCandidateSetError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, "nothing", empty.Group)
}

func TestCalculator_MinimumAlternative_UnknownCandidate(t *testing.T) {
	c := newTestCalculator(t)

	_, err := c.MinimumAlternative([]ChoiceGroup{
		{Name: "g", Candidates: []Candidate{{ID: "Potato", Grams: 10}, {ID: "Kale", Grams: 10}}},
	})

	assert.ErrorIs(t, err, ErrUnknownItem)
}

func TestCalculator_BestChoices_TieGoesToFirstDeclared(t *testing.T) {
	table := MustNewTable(map[string]float64{"A": 0.5, "B": 0.25, "C": 0.25})
	c := NewCalculator(table)

	picks, err := c.BestChoices([]ChoiceGroup{
		{Name: "ab", Candidates: []Candidate{{ID: "A", Grams: 100}, {ID: "B", Grams: 200}}},
		{Name: "cb", Candidates: []Candidate{{ID: "C", Grams: 100}, {ID: "B", Grams: 100}}},
	})
	require.NoError(t, err)

	assert.Equal(t, "A", picks[0].ID)
	assert.Equal(t, "C", picks[1].ID)
}

func TestCalculator_RecommendCheapestUnselected(t *testing.T) {
	c := newTestCalculator(t)
	universe := Selection{"Rice": 120, "Potatoes": 300, "Beer": 500, "Wine": 200}

	rec, err := c.RecommendCheapestUnselected(Selection{"Rice": 120, "Beer": 500}, universe)
	require.NoError(t, err)

	// Potatoes: 0.114, Wine: 0.16
	assert.Equal(t, "Potatoes", rec.ID)
	assert.InDelta(t, 0.114, rec.Footprint, delta)
}

func TestCalculator_RecommendCheapestUnselected_IgnoresSelectedQuantities(t *testing.T) {
	c := newTestCalculator(t)
	universe := Selection{"Potato": 100, "Oil": 1}

	rec, err := c.RecommendCheapestUnselected(Selection{"Potato": 0}, universe)
	require.NoError(t, err)

	assert.Equal(t, "Oil", rec.ID)
}

func TestCalculator_RecommendCheapestUnselected_TieIsLexical(t *testing.T) {
	c := NewCalculator(MustNewTable(map[string]float64{"Peach": 0.25, "Corn": 0.25, "Pepper": 0.25}))
	universe := Selection{"Peach": 100, "Corn": 100, "Pepper": 100}

	rec, err := c.RecommendCheapestUnselected(Selection{}, universe)
	require.NoError(t, err)

	assert.Equal(t, "Corn", rec.ID)
}

func TestCalculator_RecommendCheapestUnselected_Empty(t *testing.T) {
	c := newTestCalculator(t)
	universe := Selection{"Rice": 120, "Potatoes": 300}

	_, err := c.RecommendCheapestUnselected(Selection{"Rice": 120, "Potatoes": 300}, universe)

	require.ErrorIs(t, err, ErrEmptyCandidateSet)
	assert.EqualError(t, err, "no eligible candidates")
}

func TestCalculator_RecommendCheapestUnselected_UnknownSelected(t *testing.T) {
	c := newTestCalculator(t)
	universe := Selection{"Rice": 120, "Potatoes": 300}

	rec, err := c.RecommendCheapestUnselected(Selection{"Potatos": 300}, universe)

	require.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, Recommendation{}, rec)

	var unknown *UnknownItemError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Potatos", unknown.ID)
}

func TestCalculator_Evaluate(t *testing.T) {
	c := newTestCalculator(t)
	groups := []ChoiceGroup{
		{Name: "Beer or Wine", Candidates: []Candidate{{ID: "Beer", Grams: 500}, {ID: "Wine", Grams: 200}}},
	}

	res, err := c.Evaluate(Selection{"Beer": 500}, groups)
	require.NoError(t, err)

	require.NotNil(t, res.MinimumAlternative)
	assert.InDelta(t, 0.3, res.Total, delta)
	assert.InDelta(t, 0.16, *res.MinimumAlternative, delta)
	assert.InDelta(t, 0.14, res.Savings(), delta)
}

func TestCalculator_ConcurrentReaders(t *testing.T) {
	c := newTestCalculator(t)
	sel := Selection{"Potato": 250, "Oil": 30}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := c.Total(sel)
			assert.NoError(t, err)
			assert.InDelta(t, 0.1425, res.Total, delta)
		}()
	}
	wg.Wait()
}

func TestNewCalculator_NilTablePanics(t *testing.T) {
	assert.Panics(t, func() { NewCalculator(nil) })
}
