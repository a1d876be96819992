package schema_test

import (
	"testing"

	"drinks-api/core/database"
	"drinks-api/core/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	want := []string{
		"countries", "origins", "brands", "categories", "packaging",
		"drinks", "drink_formats", "beer_styles", "beers", "unique_beer_identities",
		"spirit_types", "spirit_aging_containers", "spirits", "unique_spirit_identities",
	}
	for _, table := range want {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	// idempotent
	require.NoError(t, schema.Migrate(db))
}

func TestMigrate_ForeignKeys(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, schema.Migrate(db))

	err = db.Create(&schema.Origin{ID: "o1", CountryID: "nowhere"}).Error
	assert.True(t, database.IsForeignKeyViolation(err), "%v", err)

	require.NoError(t, db.Create(&schema.Country{ID: "cl", Name: "Chile", ISOCode: "CL"}).Error)
	require.NoError(t, db.Create(&schema.Origin{ID: "o1", CountryID: "cl"}).Error)

	err = db.Create(&schema.Country{ID: "cl", Name: "Chile", ISOCode: "CL"}).Error
	assert.True(t, database.IsUniqueViolation(err), "%v", err)
}

func TestTableName(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)

	name, err := schema.TableName(db, &schema.Packaging{})
	require.NoError(t, err)
	assert.Equal(t, "packaging", name)

	name, err = schema.TableName(db, &schema.SpiritIdentity{})
	require.NoError(t, err)
	assert.Equal(t, "unique_spirit_identities", name)
}
