package identity_test

import (
	"testing"

	"drinks-api/core/identity"

	"github.com/stretchr/testify/assert"
)

func lager() identity.Input {
	return identity.Input{
		Name:        "Lager X",
		BrandID:     "b1",
		ABV:         5,
		CategoryID:  "c1",
		PackagingID: "p1",
		VolumeCc:    330,
		TypeID:      "s1",
	}
}

func TestCanonical(t *testing.T) {
	assert.Equal(t, "lager x|b1|5.0|c1|p1|330|s1", lager().Canonical())

	in := lager()
	in.ABV = 4.75
	assert.Equal(t, "lager x|b1|4.8|c1|p1|330|s1", in.Canonical())
}

func TestHash(t *testing.T) {
	base := identity.Hash(lager())
	assert.Len(t, base, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", base)
	assert.Equal(t, base, identity.Hash(lager()), "hash must be deterministic")

	t.Run("Invariant", func(t *testing.T) {
		cases := map[string]func(*identity.Input){
			"upper case name":     func(in *identity.Input) { in.Name = "LAGER X" },
			"surrounding spaces":  func(in *identity.Input) { in.Name = "  Lager X \t" },
			"abv with decimal":    func(in *identity.Input) { in.ABV = 5.0 },
			"abv rounding to 5.0": func(in *identity.Input) { in.ABV = 5.04 },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				in := lager()
				mutate(&in)
				assert.Equal(t, base, identity.Hash(in))
			})
		}
	})

	t.Run("Sensitive", func(t *testing.T) {
		cases := map[string]func(*identity.Input){
			"volume":    func(in *identity.Input) { in.VolumeCc = 500 },
			"packaging": func(in *identity.Input) { in.PackagingID = "p2" },
			"type":      func(in *identity.Input) { in.TypeID = "s2" },
			"brand":     func(in *identity.Input) { in.BrandID = "b2" },
			"category":  func(in *identity.Input) { in.CategoryID = "c2" },
			"abv":       func(in *identity.Input) { in.ABV = 5.1 },
			"name":      func(in *identity.Input) { in.Name = "Lager Y" },
		}
		for name, mutate := range cases {
			t.Run(name, func(t *testing.T) {
				in := lager()
				mutate(&in)
				assert.NotEqual(t, base, identity.Hash(in))
			})
		}
	})
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"India Pale Ale", "india-pale-ale"},
		{"  Barrica de Roble  ", "barrica-de-roble"},
		{"Añejo Reposado", "anejo-reposado"},
		{"Pisco - Acholado!!", "pisco-acholado"},
		{"Crème Brûlée Stout", "creme-brulee-stout"},
		{"---", ""},
		{"Single Malt 12", "single-malt-12"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.Slug(tt.in))
		})
	}
}
