package ingest

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"drinks-api/core/schema"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// maxTemplateRows is how far down list validations reach on product sheets.
const maxTemplateRows = 5000

type lookupColumn struct {
	Header string
	Table  string
	// Field is the product column the lookup validates.
	Field string
}

var productColumns = map[SheetKind][]string{
	KindBeers: {
		"id", "name", "brandId", "alcoholByVolume", "categoryId", "originId",
		"packagingId", "volumeCc", "beerStyleId", "ibu", "servingTempMinC", "servingTempMaxC",
	},
	KindSpirits: {
		"id", "name", "brandId", "alcoholByVolume", "categoryId", "originId",
		"packagingId", "volumeCc", "spiritTypeId", "agingContainerId", "agingTimeMonths",
	},
}

var lookupColumns = map[SheetKind][]lookupColumn{
	KindBeers: {
		{Header: "brands", Table: "brands", Field: "brandId"},
		{Header: "categories", Table: "categories", Field: "categoryId"},
		{Header: "origins", Table: "origins", Field: "originId"},
		{Header: "packaging", Table: "packaging", Field: "packagingId"},
		{Header: "beerStyles", Table: "beer_styles", Field: "beerStyleId"},
	},
	KindSpirits: {
		{Header: "brands", Table: "brands", Field: "brandId"},
		{Header: "categories", Table: "categories", Field: "categoryId"},
		{Header: "origins", Table: "origins", Field: "originId"},
		{Header: "packaging", Table: "packaging", Field: "packagingId"},
		{Header: "spiritTypes", Table: "spirit_types", Field: "spiritTypeId"},
		{Header: "agingContainers", Table: "spirit_aging_containers", Field: "agingContainerId"},
	},
}

type exportRow struct {
	ID               string
	Name             string
	BrandID          string
	AlcoholByVolume  float64
	CategoryID       string
	OriginID         *string
	PackagingID      string
	VolumeCc         int
	BeerStyleID      string
	IBU              *float64 `gorm:"column:ibu"`
	ServingTempMinC  *float64 `gorm:"column:serving_temp_min_c"`
	ServingTempMaxC  *float64 `gorm:"column:serving_temp_max_c"`
	SpiritTypeID     string
	AgingContainerID *string
	AgingTimeMonths  *int
}

func (r exportRow) cells(kind SheetKind) []any {
	common := []any{r.ID, r.Name, r.BrandID, r.AlcoholByVolume, r.CategoryID, opt(r.OriginID), r.PackagingID, r.VolumeCc}
	if kind == KindBeers {
		return append(common, r.BeerStyleID, opt(r.IBU), opt(r.ServingTempMinC), opt(r.ServingTempMaxC))
	}
	return append(common, r.SpiritTypeID, opt(r.AgingContainerID), opt(r.AgingTimeMonths))
}

func opt[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// Exporter builds import templates prefilled with the current catalog.
type Exporter struct {
	db *gorm.DB
}

func NewExporter(db *gorm.DB) *Exporter {
	return &Exporter{db: db}
}

// Export returns a workbook with a VALUES sheet listing the valid reference ids and one
// sheet per brand holding its products, one row per format. Re-importing the file
// unchanged is a no-op.
func (x *Exporter) Export(ctx context.Context, kind SheetKind) (*excelize.File, error) {
	columns, ok := productColumns[kind]
	if !ok {
		return nil, fmt.Errorf("cannot export %s", kind)
	}

	rows, err := x.loadRows(ctx, kind)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", ValuesSheet); err != nil {
		f.Close()
		return nil, err
	}

	lookupRanges, err := x.writeValues(ctx, f, kind)
	if err != nil {
		f.Close()
		return nil, err
	}

	byBrand := make(map[string][]exportRow)
	var brands []string
	for _, r := range rows {
		if _, ok := byBrand[r.BrandID]; !ok {
			brands = append(brands, r.BrandID)
		}
		byBrand[r.BrandID] = append(byBrand[r.BrandID], r)
	}
	sort.Strings(brands)
	if len(brands) == 0 {
		brands = []string{kind.String()}
	}

	used := map[string]bool{strings.ToLower(ValuesSheet): true}
	for _, brand := range brands {
		name := sheetName(brand, used)
		if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeTable(f, name, toAny(columns), byBrand[brand], kind); err != nil {
			f.Close()
			return nil, err
		}
		if err := addDropLists(f, name, columns, lookupRanges); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func (x *Exporter) loadRows(ctx context.Context, kind SheetKind) ([]exportRow, error) {
	q := x.db.WithContext(ctx).
		Model(&schema.Drink{}).
		Joins("JOIN drink_formats ON drink_formats.drink_id = drinks.id")

	common := "drinks.id, drinks.name, drinks.brand_id, drinks.alcohol_by_volume, drinks.category_id, drinks.origin_id, drink_formats.packaging_id, drink_formats.volume_cc"
	switch kind {
	case KindBeers:
		q = q.Joins("JOIN beers ON beers.drink_id = drinks.id").
			Select(common + ", beers.beer_style_id, beers.ibu, beers.serving_temp_min_c, beers.serving_temp_max_c")
	case KindSpirits:
		q = q.Joins("JOIN spirits ON spirits.drink_id = drinks.id").
			Select(common + ", spirits.spirit_type_id, spirits.aging_container_id, spirits.aging_time_months")
	}

	var rows []exportRow
	if err := q.Order("drinks.name, drink_formats.volume_cc").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load %s for export: %w", kind, err)
	}
	return rows, nil
}

// writeValues fills the VALUES sheet and returns the drop list range per product field.
func (x *Exporter) writeValues(ctx context.Context, f *excelize.File, kind SheetKind) (map[string]string, error) {
	ranges := make(map[string]string)
	for col, lookup := range lookupColumns[kind] {
		var ids []string
		if err := x.db.WithContext(ctx).Table(lookup.Table).Order("id").Pluck("id", &ids).Error; err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", lookup.Table, err)
		}

		values := make([]any, 0, len(ids)+1)
		values = append(values, lookup.Header)
		for _, id := range ids {
			values = append(values, id)
		}
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetCol(ValuesSheet, cell, &values); err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			continue
		}
		letter, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return nil, err
		}
		ranges[lookup.Field] = fmt.Sprintf("%s!$%s$2:$%s$%d", ValuesSheet, letter, letter, len(ids)+1)
	}
	return ranges, nil
}

func writeTable(f *excelize.File, sheet string, header []any, rows []exportRow, kind SheetKind) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		cells := r.cells(kind)
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}

func addDropLists(f *excelize.File, sheet string, columns []string, ranges map[string]string) error {
	for i, field := range columns {
		ref, ok := ranges[field]
		if !ok {
			continue
		}
		letter, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		dv := excelize.NewDataValidation(true)
		dv.Sqref = fmt.Sprintf("%s2:%s%d", letter, letter, maxTemplateRows)
		dv.SetSqrefDropList(ref)
		if err := f.AddDataValidation(sheet, dv); err != nil {
			return err
		}
	}
	return nil
}

// sheetName makes brand usable as a unique sheet name (31 chars, no []:*?/\).
func sheetName(brand string, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '-'
		}
		return r
	}, brand)
	name = strings.Trim(name, "'")
	if name == "" {
		name = "Brand"
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	base := name
	for n := 2; used[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		r := []rune(base)
		if len(r)+len(suffix) > 31 {
			r = r[:31-len(suffix)]
		}
		name = string(r) + suffix
	}
	used[strings.ToLower(name)] = true
	return name
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
