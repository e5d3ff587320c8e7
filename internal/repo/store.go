// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides the generic per-entity store used by the
// service layer.
//
// All methods are context-aware and follow the "thin repository" approach:
// no business logic, only CRUD persistence and query composition.
//
// Error semantics:
//   - FindUnique returns (nil, nil) when the row does not exist.
//   - Update and Delete return ErrNotFound when no row matched.
//   - Constraint violations come back wrapped in ErrDuplicate or
//     ErrForeignKey (see classify); other DB errors propagate unchanged.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Cond is a WHERE fragment for FindMany.
type Cond struct {
	Query any
	Args  []any
}

// Where builds a Cond, e.g. Where("questionnaire_id = ?", 3).
func Where(query any, args ...any) Cond { return Cond{Query: query, Args: args} }

// Store is a GORM-backed table of T, where T is a domain model with a uint
// primary key named id.
type Store[T any] struct {
	db       *gorm.DB
	preloads []string
}

// NewStore returns a store for T. Preloads name the belongs-to associations
// attached to every read.
func NewStore[T any](db *gorm.DB, preloads ...string) *Store[T] {
	return &Store[T]{db: db, preloads: preloads}
}

func (s *Store[T]) read(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

// FindMany returns every row matching all conds, ordered by id.
func (s *Store[T]) FindMany(ctx context.Context, conds ...Cond) ([]T, error) {
	q := s.read(ctx)
	for _, c := range conds {
		q = q.Where(c.Query, c.Args...)
	}
	out := make([]T, 0)
	if err := q.Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// FindUnique returns the row with the given id, or (nil, nil) if absent.
func (s *Store[T]) FindUnique(ctx context.Context, id uint) (*T, error) {
	var row T
	err := s.read(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts row and fills its id and timestamps. Associations set on
// row are not upserted.
func (s *Store[T]) Create(ctx context.Context, row *T) error {
	return classify(s.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error)
}

// Update writes the given columns to the row with id and returns the
// reloaded row. A nil value sets the column to NULL.
func (s *Store[T]) Update(ctx context.Context, id uint, cols map[string]any) (*T, error) {
	if len(cols) > 0 {
		res := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return nil, classify(res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	row, err := s.FindUnique(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, ErrNotFound
	}
	return row, nil
}

// Delete removes the row with id.
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if res.Error != nil {
		return classify(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Stats returns the row count and latest updated_at of the table.
func (s *Store[T]) Stats(ctx context.Context, conds ...Cond) (int64, *time.Time, error) {
	return TableStats(ctx, s.db, new(T), conds...)
}
