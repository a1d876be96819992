package ingest_test

import (
	"context"
	"testing"

	"drinks-api/core/ingest"
	"drinks-api/core/schema/schematest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport_RoundTripIsNoOp(t *testing.T) {
	importer, db := newImporter(t)
	ctx := context.Background()

	sheet := ingest.Sheet{Name: "b1", Rows: []ingest.Row{
		beerRow(2, "Lager X", 330),
		beerRow(3, "Lager X", 500),
		beerRow(4, "Stout", 330),
	}}
	sheet.Rows[2].Values["ibu"] = "35"
	_, err := importer.ImportProducts(ctx, ingest.KindBeers, []ingest.Sheet{sheet}, nil)
	require.NoError(t, err)

	f, err := ingest.NewExporter(db).Export(ctx, ingest.KindBeers)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{ingest.ValuesSheet, "b1"}, f.GetSheetList())

	values, err := f.GetCols(ingest.ValuesSheet)
	require.NoError(t, err)
	require.NotEmpty(t, values)
	assert.Equal(t, []string{"brands", "b1"}, values[0])

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	sheets, err := ingest.ReadWorkbook(buf, "beers.xlsx")
	require.NoError(t, err)

	report, err := importer.ImportProducts(ctx, ingest.KindBeers, sheets, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Errors)
	assert.Equal(t, 3, report.Stats.Applied)
	assert.Zero(t, report.Stats.Created)
	assert.EqualValues(t, 2, schematest.Count(t, db, "drinks"))
	assert.EqualValues(t, 3, schematest.Count(t, db, "drink_formats"))
}

func TestExport_EmptyCatalog(t *testing.T) {
	db := schematest.NewDB(t)

	f, err := ingest.NewExporter(db).Export(context.Background(), ingest.KindSpirits)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{ingest.ValuesSheet, "Spirits"}, f.GetSheetList())

	_, err = ingest.NewExporter(db).Export(context.Background(), ingest.KindBrands)
	assert.Error(t, err)
}
