package reconcile_test

import (
	"context"
	"errors"
	"testing"

	"drinks-api/core/identity"
	"drinks-api/core/records"
	"drinks-api/core/reconcile"
	"drinks-api/core/schema"
	"drinks-api/core/schema/schematest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

func lagerX(packaging string) *records.BeerRecord {
	return &records.BeerRecord{
		Name:            "Lager X",
		BrandID:         "b1",
		AlcoholByVolume: pointy.Float64(5),
		CategoryID:      "c1",
		PackagingID:     packaging,
		VolumeCc:        pointy.Int(330),
		BeerStyleID:     "s1",
	}
}

func newEngine(t *testing.T) (*reconcile.Engine, *gorm.DB) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)
	return reconcile.NewEngine(db, zap.NewNop()), db
}

func counts(t *testing.T, db *gorm.DB) map[string]int64 {
	return map[string]int64{
		"drinks":                 schematest.Count(t, db, "drinks"),
		"beers":                  schematest.Count(t, db, "beers"),
		"drink_formats":          schematest.Count(t, db, "drink_formats"),
		"unique_beer_identities": schematest.Count(t, db, "unique_beer_identities"),
	}
}

func TestReconcile_CreatesProductDetailAndFormat(t *testing.T) {
	engine, db := newEngine(t)
	rec := lagerX("p1")

	res, err := engine.Reconcile(context.Background(), reconcile.BeerAdapter{}, rec)
	require.NoError(t, err)

	assert.Equal(t, identity.Hash(rec.IdentityInput()), res.Hash)
	assert.True(t, res.ProductCreated)
	assert.True(t, res.FormatCreated)
	assert.NotEmpty(t, res.ProductID)
	assert.NotEmpty(t, res.FormatID)

	var format schema.DrinkFormat
	require.NoError(t, db.First(&format, "id = ?", res.FormatID).Error)
	assert.Equal(t, res.ProductID, format.DrinkID)
	assert.Equal(t, 330, format.VolumeCc)

	var beer schema.Beer
	require.NoError(t, db.First(&beer, "drink_id = ?", res.ProductID).Error)
	assert.Equal(t, "s1", beer.BeerStyleID)

	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 1, "unique_beer_identities": 1}, counts(t, db))
}

func TestReconcile_DuplicateLeavesStorageUnchanged(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	first, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)
	before := counts(t, db)

	// same identity despite casing and whitespace
	again := lagerX("p1")
	again.Name = "  LAGER x "
	res, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, again)
	assert.ErrorIs(t, err, reconcile.ErrDuplicateIdentity)
	assert.True(t, reconcile.IsDuplicate(err))
	assert.Nil(t, res)
	assert.Equal(t, before, counts(t, db))
	assert.Equal(t, first.Hash, identity.Hash(again.IdentityInput()))
}

func TestReconcile_ReusesProductForNewFormat(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	can, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)
	bottle, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p2"))
	require.NoError(t, err)

	assert.NotEqual(t, can.Hash, bottle.Hash)
	assert.Equal(t, can.ProductID, bottle.ProductID)
	assert.False(t, bottle.ProductCreated)
	assert.NotEqual(t, can.FormatID, bottle.FormatID)
	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 2, "unique_beer_identities": 2}, counts(t, db))
}

func TestReconcile_LookupIsCaseSensitive(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	_, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)

	lower := lagerX("p2")
	lower.Name = "lager x"
	res, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lower)
	require.NoError(t, err)
	assert.True(t, res.ProductCreated)
	assert.EqualValues(t, 2, schematest.Count(t, db, "drinks"))
}

func TestReconcile_CompensatesFreshProduct(t *testing.T) {
	engine, db := newEngine(t)
	boom := errors.New("format insert failed")
	schematest.FailCreate(db, "drink_formats", boom)

	res, err := engine.Reconcile(context.Background(), reconcile.BeerAdapter{}, lagerX("p1"))
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, res)
	assert.Equal(t, map[string]int64{"drinks": 0, "beers": 0, "drink_formats": 0, "unique_beer_identities": 0}, counts(t, db))
}

func TestReconcile_DetailFailureRemovesProduct(t *testing.T) {
	engine, db := newEngine(t)
	boom := errors.New("detail insert failed")
	schematest.FailCreate(db, "beers", boom)

	_, err := engine.Reconcile(context.Background(), reconcile.BeerAdapter{}, lagerX("p1"))
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, map[string]int64{"drinks": 0, "beers": 0, "drink_formats": 0, "unique_beer_identities": 0}, counts(t, db))
}

func TestReconcile_CompensationKeepsReusedProduct(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	first, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)

	schematest.FailCreate(db, "drink_formats", errors.New("format insert failed"))
	_, err = engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p2"))
	require.Error(t, err)

	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 1, "unique_beer_identities": 1}, counts(t, db))

	var kept []string
	require.NoError(t, db.Model(&schema.BeerIdentity{}).Pluck("hash", &kept).Error)
	assert.Equal(t, []string{first.Hash}, kept)
}

// interleavingAdapter runs afterDetail once the detail row of a new product is written.
type interleavingAdapter struct {
	reconcile.BeerAdapter
	afterDetail func()
}

func (a interleavingAdapter) InsertDetail(ctx context.Context, db *gorm.DB, rec reconcile.Product, drinkID string) error {
	if err := a.BeerAdapter.InsertDetail(ctx, db, rec, drinkID); err != nil {
		return err
	}
	a.afterDetail()
	return nil
}

func TestReconcile_CompensationKeepsConcurrentFormat(t *testing.T) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)
	core, logs := observer.New(zap.InfoLevel)
	engine := reconcile.NewEngine(db, zap.New(core))
	ctx := context.Background()
	boom := errors.New("format insert failed")

	other := lagerX("p1")
	other.VolumeCc = pointy.Int(500)
	var concurrent *reconcile.Result
	adapter := interleavingAdapter{afterDetail: func() {
		var err error
		concurrent, err = engine.Reconcile(ctx, reconcile.BeerAdapter{}, other)
		require.NoError(t, err)
		schematest.FailCreate(db, "drink_formats", boom)
	}}

	_, err := engine.Reconcile(ctx, adapter, lagerX("p1"))
	assert.ErrorIs(t, err, boom)

	require.NotNil(t, concurrent)
	assert.False(t, concurrent.ProductCreated)

	var format schema.DrinkFormat
	require.NoError(t, db.First(&format, "id = ?", concurrent.FormatID).Error)
	assert.Equal(t, concurrent.ProductID, format.DrinkID)

	var beer schema.Beer
	require.NoError(t, db.First(&beer, "drink_id = ?", concurrent.ProductID).Error)

	var kept []string
	require.NoError(t, db.Model(&schema.BeerIdentity{}).Pluck("hash", &kept).Error)
	assert.Equal(t, []string{concurrent.Hash}, kept)
	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 1, "unique_beer_identities": 1}, counts(t, db))

	failures := logs.FilterMessage("Compensating action failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, string(reconcile.ActionDeleteProduct), failures[0].ContextMap()["action"])
}

func TestReconcile_CompensationFailureKeepsOriginalError(t *testing.T) {
	db := schematest.NewDB(t)
	schematest.Seed(t, db)
	core, logs := observer.New(zap.InfoLevel)
	engine := reconcile.NewEngine(db, zap.New(core))

	boom := errors.New("format insert failed")
	schematest.FailCreate(db, "drink_formats", boom)
	schematest.FailDelete(db, "drinks", errors.New("delete refused"))

	_, err := engine.Reconcile(context.Background(), reconcile.BeerAdapter{}, lagerX("p1"))
	assert.ErrorIs(t, err, boom)

	failures := logs.FilterMessage("Compensating action failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, string(reconcile.ActionDeleteProduct), failures[0].ContextMap()["action"])

	// detail and reservation were still undone, the product is left orphaned
	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 0, "drink_formats": 0, "unique_beer_identities": 0}, counts(t, db))
}

func TestReconcile_Spirit(t *testing.T) {
	engine, db := newEngine(t)
	rec := &records.SpiritRecord{
		Name:             "Pisco Alto",
		BrandID:          "b1",
		AlcoholByVolume:  pointy.Float64(40),
		CategoryID:       "c2",
		PackagingID:      "p2",
		VolumeCc:         pointy.Int(750),
		SpiritTypeID:     "pisco",
		AgingContainerID: pointy.String("roble"),
		AgingTimeMonths:  pointy.Int(12),
	}

	res, err := engine.Reconcile(context.Background(), reconcile.SpiritAdapter{}, rec)
	require.NoError(t, err)

	var spirit schema.Spirit
	require.NoError(t, db.First(&spirit, "drink_id = ?", res.ProductID).Error)
	assert.Equal(t, 12, *spirit.AgingTimeMonths)
	assert.EqualValues(t, 1, schematest.Count(t, db, "unique_spirit_identities"))

	_, err = engine.Reconcile(context.Background(), reconcile.SpiritAdapter{}, rec)
	assert.ErrorIs(t, err, reconcile.ErrDuplicateIdentity)
}

func TestReconcile_WrongRecordType(t *testing.T) {
	engine, db := newEngine(t)
	_, err := engine.Reconcile(context.Background(), reconcile.SpiritAdapter{}, lagerX("p1"))
	assert.ErrorContains(t, err, "spirit adapter cannot handle")
	assert.EqualValues(t, 0, schematest.Count(t, db, "unique_spirit_identities"))
}

func TestUpsert_Idempotent(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	first, err := engine.Upsert(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)
	assert.True(t, first.Reserved)
	assert.True(t, first.ProductCreated)
	assert.True(t, first.FormatCreated)

	second, err := engine.Upsert(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)
	assert.False(t, second.Reserved)
	assert.False(t, second.ProductCreated)
	assert.False(t, second.FormatCreated)
	assert.Equal(t, first.ProductID, second.ProductID)
	assert.Equal(t, first.FormatID, second.FormatID)

	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 1, "unique_beer_identities": 1}, counts(t, db))
}

func TestUpsert_OverwritesMatchedProduct(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	first, err := engine.Upsert(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)

	updated := lagerX("p1")
	updated.OriginID = pointy.String("o1")
	updated.IBU = pointy.Float64(18)
	_, err = engine.Upsert(ctx, reconcile.BeerAdapter{}, updated)
	require.NoError(t, err)

	var drink schema.Drink
	require.NoError(t, db.First(&drink, "id = ?", first.ProductID).Error)
	require.NotNil(t, drink.OriginID)
	assert.Equal(t, "o1", *drink.OriginID)

	var beer schema.Beer
	require.NoError(t, db.First(&beer, "drink_id = ?", first.ProductID).Error)
	require.NotNil(t, beer.IBU)
	assert.Equal(t, 18.0, *beer.IBU)
}

func TestUpsert_AfterInteractiveSubmission(t *testing.T) {
	engine, db := newEngine(t)
	ctx := context.Background()

	created, err := engine.Reconcile(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)

	res, err := engine.Upsert(ctx, reconcile.BeerAdapter{}, lagerX("p1"))
	require.NoError(t, err)
	assert.Equal(t, created.FormatID, res.FormatID)
	assert.EqualValues(t, 1, schematest.Count(t, db, "drink_formats"))
}

func TestUpsert_FailureKeepsAppliedRows(t *testing.T) {
	engine, db := newEngine(t)
	schematest.FailCreate(db, "drink_formats", errors.New("format insert failed"))

	_, err := engine.Upsert(context.Background(), reconcile.BeerAdapter{}, lagerX("p1"))
	require.Error(t, err)
	assert.Equal(t, map[string]int64{"drinks": 1, "beers": 1, "drink_formats": 0, "unique_beer_identities": 1}, counts(t, db))
}
