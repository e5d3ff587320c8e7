package repo

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RefChecker answers questions about rows of other tables: whether a
// referenced row exists before a write, whether a row is still pointed at
// before a delete, and how fresh a related table is.
type RefChecker struct {
	DB *gorm.DB
}

// Exists reports whether table has a row with the given id.
func (r RefChecker) Exists(ctx context.Context, table string, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table(table).Where("id = ?", id).Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Referenced reports whether any row of table has column equal to id.
func (r RefChecker) Referenced(ctx context.Context, table, column string, id uint) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Table(table).
		Where(clause.Eq{Column: clause.Column{Name: column}, Value: id}).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Stats returns the row count and latest updated_at of table.
func (r RefChecker) Stats(ctx context.Context, table string) (int64, *time.Time, error) {
	return tableStats(func() *gorm.DB {
		return r.DB.WithContext(ctx).Table(table)
	})
}
