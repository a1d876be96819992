package validation_test

import (
	"testing"

	"drinks-api/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var beerRefs = []validation.Reference{
	{Field: "brandId", Table: "brands"},
	{Field: "categoryId", Table: "categories"},
	{Field: "originId", Table: "origins"},
	{Field: "packagingId", Table: "packaging"},
	{Field: "beerStyleId", Table: "beer_styles"},
}

func snapshot() validation.Snapshot {
	snap := validation.Snapshot{}
	snap.Add("brands", "b1")
	snap.Add("categories", "c1")
	snap.Add("origins", "o1")
	snap.Add("packaging", "p1")
	snap.Add("beer_styles", "s1")
	return snap
}

func TestCheckReferences(t *testing.T) {
	t.Run("All Resolve", func(t *testing.T) {
		raw := map[string]any{"brandId": "b1", "categoryId": "c1", "originId": "o1", "packagingId": "p1", "beerStyleId": "s1"}
		assert.Empty(t, validation.CheckReferences(2, raw, beerRefs, snapshot()))
	})

	t.Run("Blank Optional Passes", func(t *testing.T) {
		raw := map[string]any{"brandId": "b1", "categoryId": "c1", "originId": "", "packagingId": "p1", "beerStyleId": "s1"}
		assert.Empty(t, validation.CheckReferences(2, raw, beerRefs, snapshot()))

		delete(raw, "originId")
		assert.Empty(t, validation.CheckReferences(2, raw, beerRefs, snapshot()))
	})

	t.Run("Unknown Packaging", func(t *testing.T) {
		raw := map[string]any{"brandId": "b1", "categoryId": "c1", "packagingId": "p9", "beerStyleId": "s1"}
		errs := validation.CheckReferences(7, raw, beerRefs, snapshot())
		require.Len(t, errs, 1)
		assert.Equal(t, validation.ReferenceError{Row: 7, Field: "packagingId", Value: "p9", Table: "packaging"}, errs[0])
		assert.Equal(t, "Foreign key error: packagingId = 'p9' does not exist", errs[0].Error())
	})

	t.Run("Every Failure Reported", func(t *testing.T) {
		raw := map[string]any{"brandId": "bx", "categoryId": "cx", "packagingId": "p1", "beerStyleId": "sx"}
		errs := validation.CheckReferences(3, raw, beerRefs, snapshot())
		require.Len(t, errs, 3)
		assert.Equal(t, "brandId", errs[0].Field)
		assert.Equal(t, "categoryId", errs[1].Field)
		assert.Equal(t, "beerStyleId", errs[2].Field)
	})

	t.Run("Numeric Ids", func(t *testing.T) {
		snap := validation.Snapshot{}
		snap.Add("countries", "56")
		errs := validation.CheckReferences(2, map[string]any{"countryId": 56.0}, []validation.Reference{{Field: "countryId", Table: "countries"}}, snap)
		assert.Empty(t, errs)
	})
}

func TestTables(t *testing.T) {
	refs := append([]validation.Reference{{Field: "parentStyleId", Table: "beer_styles"}}, beerRefs...)
	assert.Equal(t, []string{"beer_styles", "brands", "categories", "origins", "packaging"}, validation.Tables(refs))
}
