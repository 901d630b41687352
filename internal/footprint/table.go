package footprint

import (
	"fmt"
	"math"
	"sort"
)

// Table is an immutable mapping from item identifier to soil footprint
// coefficient in kg of soil per kg of food.
//
// A Table is safe for concurrent use; nothing mutates it after NewTable.
type Table struct {
	coefficients map[string]float64
}

// NewTable copies coefficients into a new Table. Empty identifiers and
// negative or non-finite coefficients are rejected with ErrInvalidCoefficient.
func NewTable(coefficients map[string]float64) (*Table, error) {
	t := &Table{coefficients: make(map[string]float64, len(coefficients))}
	for id, c := range coefficients {
		if id == "" {
			return nil, fmt.Errorf("%w: empty identifier", ErrInvalidCoefficient)
		}
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("%w: %q has coefficient %v", ErrInvalidCoefficient, id, c)
		}
		t.coefficients[id] = c
	}
	return t, nil
}

// MustNewTable is like NewTable but panics on error. It is intended for
// tables built from compile-time data.
func MustNewTable(coefficients map[string]float64) *Table {
	t, err := NewTable(coefficients)
	if err != nil {
		panic(err)
	}
	return t
}

// Coefficient returns the coefficient for id, or an UnknownItemError.
func (t *Table) Coefficient(id string) (float64, error) {
	c, ok := t.coefficients[id]
	if !ok {
		return 0, &UnknownItemError{ID: id}
	}
	return c, nil
}

// Has reports whether id is in the table.
func (t *Table) Has(id string) bool {
	_, ok := t.coefficients[id]
	return ok
}

// Len returns the number of items in the table.
func (t *Table) Len() int {
	return len(t.coefficients)
}

// IDs returns the table identifiers in lexical order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.coefficients))
	for id := range t.coefficients {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
