// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
)

// All is the criterion value that leaves a field unconstrained.
const All = "All"

// ErrUnknownField is returned for a field name that is not filterable.
var ErrUnknownField = errors.New("unknown field")

// Field identifies a filterable record field.
type Field string

const (
	FieldCategory Field = ColumnCategory
	FieldTitle    Field = ColumnTitle
	FieldYear     Field = ColumnYear
)

// Fields lists the filterable fields in the order the filters are presented.
var Fields = []Field{FieldCategory, FieldTitle, FieldYear}

// ParseField converts a field name into a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: use category, title, or year", ErrUnknownField, name)
}

// FilterCriteria holds one criterion per filterable field. A criterion equal
// to All leaves its field unconstrained; any other value, including the empty
// string, must match the record's field exactly.
type FilterCriteria struct {
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title" yaml:"title"`
	Year     string `json:"year" yaml:"year"`
}

// AllCriteria returns criteria that match every record.
func AllCriteria() FilterCriteria {
	return FilterCriteria{Category: All, Title: All, Year: All}
}

// Get returns the criterion for f.
func (c FilterCriteria) Get(f Field) string {
	switch f {
	case FieldCategory:
		return c.Category
	case FieldTitle:
		return c.Title
	case FieldYear:
		return c.Year
	}
	return All
}

// With returns a copy of c with the criterion for f set to value.
func (c FilterCriteria) With(f Field, value string) FilterCriteria {
	switch f {
	case FieldCategory:
		c.Category = value
	case FieldTitle:
		c.Title = value
	case FieldYear:
		c.Year = value
	}
	return c
}

// IsAll reports whether no field is constrained.
func (c FilterCriteria) IsAll() bool {
	return c.Category == All && c.Title == All && c.Year == All
}

// String renders the constrained fields, e.g. "category=Genetics year=2020".
// An empty criterion renders as year="".
func (c FilterCriteria) String() string {
	if c.IsAll() {
		return "all"
	}
	s := ""
	for _, f := range Fields {
		v := c.Get(f)
		if v == All {
			continue
		}
		if s != "" {
			s += " "
		}
		if v == "" {
			v = `""`
		}
		s += fmt.Sprintf("%s=%s", f, v)
	}
	return s
}
