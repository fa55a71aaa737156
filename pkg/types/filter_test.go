package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for _, name := range []string{"category", "title", "year"} {
		f, err := ParseField(name)
		require.NoError(t, err)
		assert.Equal(t, name, string(f))
	}

	_, err := ParseField("abstract_text")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestFilterCriteria(t *testing.T) {
	c := AllCriteria()
	assert.True(t, c.IsAll())
	assert.Equal(t, "all", c.String())

	c2 := c.With(FieldYear, "2020").With(FieldCategory, "Biology")
	assert.True(t, c.IsAll(), "With returns a copy")
	assert.False(t, c2.IsAll())
	assert.Equal(t, "2020", c2.Get(FieldYear))
	assert.Equal(t, All, c2.Get(FieldTitle))
	assert.Equal(t, "category=Biology year=2020", c2.String())
	assert.Equal(t, `year=""`, c.With(FieldYear, "").String())
}

func TestRecordValue(t *testing.T) {
	r := Record{Title: "T", Year: "2020", OpenAlexID: "W1"}

	for col, want := range map[string]string{"title": "T", "year": "2020", "openalex_id": "W1", "doi": ""} {
		got, ok := r.Value(col)
		assert.True(t, ok, col)
		assert.Equal(t, want, got, col)
	}
	_, ok := r.Value("venue")
	assert.False(t, ok)

	assert.Len(t, r.Row(), len(Columns))
	assert.True(t, r.HasOpenAlexID())
	assert.False(t, r.HasURL())
}

func TestPortalConfigDefaults(t *testing.T) {
	c := PortalConfig{}.WithDefaults()
	assert.Equal(t, DefaultDataPath, c.DataPath)
	assert.Equal(t, DefaultWordWrap, c.WordWrap)
	assert.Equal(t, "auto", c.Style)

	c = PortalConfig{DataPath: "papers.yaml", WordWrap: 60, Style: "dark"}.WithDefaults()
	assert.Equal(t, "papers.yaml", c.DataPath)
	assert.Equal(t, 60, c.WordWrap)
	assert.Equal(t, "dark", c.Style)
}
