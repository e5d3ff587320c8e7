// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides small aggregate/statistics queries used
// for conditional responses (ETag generation) in the HTTP layer.
package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// TableStats returns aggregate metadata for the table of model, optionally
// narrowed by conds: the total number of rows and the maximum UpdatedAt
// timestamp among those rows.
//
// When no row matches, the returned count is 0 and maxUpdatedAt is nil.
//
// Return values:
//   - count:        matching rows
//   - maxUpdatedAt: pointer to the greatest UpdatedAt, or nil if no rows
//   - err:          database error, if any
func TableStats(ctx context.Context, db *gorm.DB, model any, conds ...Cond) (count int64, maxUpdatedAt *time.Time, err error) {
	return tableStats(func() *gorm.DB {
		q := db.WithContext(ctx).Model(model)
		for _, c := range conds {
			q = q.Where(c.Query, c.Args...)
		}
		return q
	})
}

func tableStats(q func() *gorm.DB) (count int64, maxUpdatedAt *time.Time, err error) {
	// Count
	if err = q().Count(&count).Error; err != nil {
		return 0, nil, err
	}
	if count == 0 {
		return 0, nil, nil
	}

	// Get latest updated_at (avoid MAX() -> TEXT in SQLite)
	var row struct {
		UpdatedAt time.Time
	}
	if err = q().Select("updated_at").Order("updated_at DESC").Limit(1).Scan(&row).Error; err != nil {
		return 0, nil, err
	}
	return count, &row.UpdatedAt, nil
}
