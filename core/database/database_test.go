package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "drinks",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg, nil)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"}, nil)
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"}, zap.NewNop())
		require.NoError(t, err)

		var fk int
		require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&fk).Error)
		assert.Equal(t, 1, fk)
	})
}

func TestConfig_IsValidDriver(t *testing.T) {
	for _, d := range []string{DriverMySQL, DriverPostgres, DriverSQLite} {
		assert.True(t, Config{Driver: d}.IsValidDriver(), d)
	}
	assert.False(t, Config{Driver: "mssql"}.IsValidDriver())
	assert.False(t, Config{}.IsValidDriver())
}

func TestConstraintErrors(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"}, nil)
	require.NoError(t, err)
	require.NoError(t, db.Exec("CREATE TABLE parents (id TEXT PRIMARY KEY)").Error)
	require.NoError(t, db.Exec("CREATE TABLE children (id TEXT PRIMARY KEY, parent_id TEXT REFERENCES parents(id))").Error)
	require.NoError(t, db.Exec("INSERT INTO parents (id) VALUES ('p1')").Error)

	type parent struct{ ID string }
	err = db.Table("parents").Create(&parent{ID: "p1"}).Error
	assert.True(t, IsUniqueViolation(err), "duplicate primary key: %v", err)
	assert.False(t, IsForeignKeyViolation(err))

	err = db.Exec("INSERT INTO children (id, parent_id) VALUES ('c1', 'missing')").Error
	assert.True(t, IsForeignKeyViolation(err), "missing parent: %v", err)
	assert.False(t, IsUniqueViolation(err))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsForeignKeyViolation(nil))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, IsForeignKeyViolation(fmt.Errorf("wrapped: %w", gorm.ErrForeignKeyViolated)))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
}
