package ingest

import (
	"context"
	"errors"
	"fmt"

	"drinks-api/core/validation"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrSnapshotTooLarge is returned when a referenced table exceeds the snapshot bound.
var ErrSnapshotTooLarge = errors.New("reference table exceeds snapshot limit")

// SnapshotLoader reads the ids of referenced tables.
type SnapshotLoader struct {
	db      *gorm.DB
	maxRows int
}

// NewSnapshotLoader creates a loader that refuses tables with more than maxRows ids.
// A non-positive maxRows disables the bound.
func NewSnapshotLoader(db *gorm.DB, maxRows int) *SnapshotLoader {
	return &SnapshotLoader{db: db, maxRows: maxRows}
}

// Load reads every id of each table concurrently. The result reflects the tables at
// load time; rows written afterwards are not seen.
func (l *SnapshotLoader) Load(ctx context.Context, tables []string) (validation.Snapshot, error) {
	ids := make([][]string, len(tables))

	g, gctx := errgroup.WithContext(ctx)
	for i, table := range tables {
		i, table := i, table
		g.Go(func() error {
			q := l.db.WithContext(gctx).Table(table)
			if l.maxRows > 0 {
				q = q.Limit(l.maxRows + 1)
			}
			if err := q.Pluck("id", &ids[i]).Error; err != nil {
				return fmt.Errorf("failed to load %s ids: %w", table, err)
			}
			if l.maxRows > 0 && len(ids[i]) > l.maxRows {
				return fmt.Errorf("%w: %s has more than %d rows", ErrSnapshotTooLarge, table, l.maxRows)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := make(validation.Snapshot, len(tables))
	for i, table := range tables {
		snap.Add(table, ids[i]...)
	}
	return snap, nil
}

// LoadFor reads only the ids raw refers to, for single record validation.
func (l *SnapshotLoader) LoadFor(ctx context.Context, raw map[string]any, refs []validation.Reference) (validation.Snapshot, error) {
	wanted := make(map[string][]string)
	var tables []string
	for _, ref := range refs {
		id, ok := validation.ReferenceValue(raw, ref.Field)
		if !ok {
			continue
		}
		if _, seen := wanted[ref.Table]; !seen {
			tables = append(tables, ref.Table)
		}
		wanted[ref.Table] = append(wanted[ref.Table], id)
	}

	snap := make(validation.Snapshot, len(tables))
	for _, table := range tables {
		var found []string
		err := l.db.WithContext(ctx).Table(table).Where("id IN ?", wanted[table]).Pluck("id", &found).Error
		if err != nil {
			return nil, fmt.Errorf("failed to load %s ids: %w", table, err)
		}
		snap.Add(table, found...)
	}
	return snap, nil
}
