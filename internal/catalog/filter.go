// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/SamJ33/Research-on-ASD/pkg/types"
)

// ErrRecordNotFound is returned by FindByTitle when no record has the title.
var ErrRecordNotFound = errors.New("record not found")

// DistinctValues returns the sorted, de-duplicated values of field across the
// catalog. These populate the option lists of the filters. The empty value is
// kept when some record has it, so records missing the field stay selectable.
func (c *Catalog) DistinctValues(field types.Field) ([]string, error) {
	if _, err := types.ParseField(string(field)); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var values []string
	for _, r := range c.records {
		v := fieldValue(r, field)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Strings(values)
	return values, nil
}

// Options returns All followed by the distinct values of field, the full
// option list a filter offers.
func (c *Catalog) Options(field types.Field) ([]string, error) {
	values, err := c.DistinctValues(field)
	if err != nil {
		return nil, err
	}
	return append([]string{types.All}, values...), nil
}

// ApplyFilters returns the catalog records matching criteria, in dataset
// order. An empty result is not an error.
func (c *Catalog) ApplyFilters(criteria types.FilterCriteria) []types.Record {
	return Filter(c.records, criteria)
}

// Filter returns the records that satisfy every constrained field of
// criteria exactly, preserving their relative order. The input is not
// modified and the result never aliases it.
func Filter(records []types.Record, criteria types.FilterCriteria) []types.Record {
	out := make([]types.Record, 0, len(records))
	for _, r := range records {
		if matches(r, criteria) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r types.Record, criteria types.FilterCriteria) bool {
	for _, f := range types.Fields {
		want := criteria.Get(f)
		if want != types.All && fieldValue(r, f) != want {
			return false
		}
	}
	return true
}

// FindByTitle returns the first record whose title equals title.
func FindByTitle(records []types.Record, title string) (types.Record, error) {
	for _, r := range records {
		if r.Title == title {
			return r, nil
		}
	}
	return types.Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, title)
}

// Titles returns the titles of records in order, the choices offered when
// selecting a study from a filtered set.
func Titles(records []types.Record) []string {
	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = r.Title
	}
	return titles
}

func fieldValue(r types.Record, f types.Field) string {
	v, _ := r.Value(string(f))
	return v
}
