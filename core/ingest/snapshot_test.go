package ingest_test

import (
	"context"
	"testing"

	"drinks-api/core/ingest"
	"drinks-api/core/schema/schematest"
	"drinks-api/core/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotLoader_Load(t *testing.T) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)

	snap, err := ingest.NewSnapshotLoader(db, 10).Load(context.Background(), []string{"brands", "packaging"})
	require.NoError(t, err)
	assert.True(t, snap.Has("brands", "b1"))
	assert.True(t, snap.Has("packaging", "p2"))
	assert.False(t, snap.Has("packaging", "p9"))
	assert.False(t, snap.Has("categories", "c1"), "tables not asked for are not loaded")
}

func TestSnapshotLoader_Bound(t *testing.T) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)

	_, err := ingest.NewSnapshotLoader(db, 1).Load(context.Background(), []string{"packaging"})
	assert.ErrorIs(t, err, ingest.ErrSnapshotTooLarge)

	snap, err := ingest.NewSnapshotLoader(db, 0).Load(context.Background(), []string{"packaging"})
	require.NoError(t, err)
	assert.True(t, snap.Has("packaging", "p1"))
}

func TestSnapshotLoader_LoadFor(t *testing.T) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)

	refs := []validation.Reference{
		{Field: "brandId", Table: "brands"},
		{Field: "packagingId", Table: "packaging"},
		{Field: "originId", Table: "origins"},
	}
	raw := map[string]any{"brandId": "b1", "packagingId": "p9", "originId": ""}

	snap, err := ingest.NewSnapshotLoader(db, 0).LoadFor(context.Background(), raw, refs)
	require.NoError(t, err)
	assert.True(t, snap.Has("brands", "b1"))
	assert.False(t, snap.Has("packaging", "p9"))
	assert.False(t, snap.Has("packaging", "p1"), "only referenced ids are read")

	errs := validation.CheckReferences(0, raw, refs, snap)
	require.Len(t, errs, 1)
	assert.Equal(t, "packagingId", errs[0].Field)
}
