// Package services implements the data access layer for the survey
// resources. A Service performs CRUD for one entity against an injected
// Store, checks that referenced rows exist before writing, and translates
// store failures into apperr kinds. Services never see HTTP; the handlers
// map the kinds to status codes.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tbourn/go-survey-backend/internal/apperr"
	"github.com/tbourn/go-survey-backend/internal/repo"
	"github.com/tbourn/go-survey-backend/internal/validation"
)

// Store is the persistence contract required by Service. *repo.Store[T]
// satisfies it.
type Store[T any] interface {
	// FindMany returns all rows matching conds.
	FindMany(ctx context.Context, conds ...repo.Cond) ([]T, error)

	// FindUnique returns the row with id, or (nil, nil) when absent.
	FindUnique(ctx context.Context, id uint) (*T, error)

	// Create inserts row, filling its id and timestamps.
	Create(ctx context.Context, row *T) error

	// Update writes cols to row id and returns the reloaded row.
	// It returns repo.ErrNotFound when no row matched.
	Update(ctx context.Context, id uint, cols map[string]any) (*T, error)

	// Delete removes row id. It returns repo.ErrNotFound when no row
	// matched and repo.ErrForeignKey when dependents block it.
	Delete(ctx context.Context, id uint) error

	// Stats returns the row count and latest updated_at.
	Stats(ctx context.Context, conds ...repo.Cond) (int64, *time.Time, error)
}

// RefChecker looks at rows of other tables. repo.RefChecker satisfies it.
type RefChecker interface {
	// Exists reports whether table has row id.
	Exists(ctx context.Context, table string, id uint) (bool, error)

	// Referenced reports whether any row of table has column = id.
	Referenced(ctx context.Context, table, column string, id uint) (bool, error)

	// Stats returns the row count and latest updated_at of table.
	Stats(ctx context.Context, table string) (int64, *time.Time, error)
}

// Ref declares a foreign reference carried by an input field.
type Ref struct {
	Field  string // input key, e.g. "client_id"
	Table  string // referenced table
	Entity string // display name, e.g. "Cliente"
	Fem    bool
}

// Embed is a parent association attached to every read of an entity.
type Embed struct {
	Assoc string // GORM association, e.g. "Client"
	Table string // its table, e.g. "clients"
}

// Blocker declares a column of another table that points at this entity
// without a database FK. A row still pointed at cannot be deleted.
type Blocker struct {
	Table  string // e.g. "questionnaires"
	Column string // e.g. "filter_id"
	What   string // e.g. "questionários relacionados"
}

// Entity describes how a Service names and builds one resource.
type Entity[T any] struct {
	Name   string // singular, lower case: "empresa"
	Title  string // singular, capitalized: "Empresa"
	Plural string // "empresas"
	Fem    bool

	Refs []Ref

	// Embeds are preloaded on every read. Changes to their tables are
	// folded into the list fingerprint.
	Embeds []Embed

	// Duplicate is the Conflict message for a unique violation.
	Duplicate string
	// Dependents names what blocks a delete, e.g. "projetos relacionados".
	Dependents string
	// Blockers are checked before a delete, for references the database
	// does not enforce.
	Blockers []Blocker

	// Build maps validated create values onto a new row.
	Build func(validation.Values) *T

	// Dates returns the stored start/end of a row, for entities with the
	// end-after-start rule. Nil for the others.
	Dates func(*T) (start, end *time.Time)
}

func (e Entity[T]) adj(masc, fem string) string {
	if e.Fem {
		return fem
	}
	return masc
}

func (e Entity[T]) notFound(id uint) error {
	return apperr.NotFound(e.Name, id, e.Title+" não "+e.adj("encontrado", "encontrada"))
}

func (e Entity[T]) preloads() []string {
	out := make([]string, 0, len(e.Embeds))
	for _, em := range e.Embeds {
		out = append(out, em.Assoc)
	}
	return out
}

func (e Entity[T]) inUse(what string, cause error) error {
	msg := fmt.Sprintf("Não é possível deletar %s %s pois possui %s", e.adj("o", "a"), e.Name, what)
	return apperr.Conflict(msg, cause)
}

// DeleteResult acknowledges a successful delete.
type DeleteResult struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Empresa 1 deletada com sucesso"`
}

// Fingerprint summarizes a list result for conditional requests. Count
// adds up the rows of the listed table and of every embedded parent table;
// UpdatedAt is the latest change among them.
type Fingerprint struct {
	Count     int64
	UpdatedAt time.Time
}

func (f *Fingerprint) add(n int64, at *time.Time) {
	f.Count += n
	if at != nil && at.After(f.UpdatedAt) {
		f.UpdatedAt = *at
	}
}

// Service provides list, get, create, update and delete for one entity.
type Service[T any] struct {
	Store  Store[T]
	Refs   RefChecker
	Entity Entity[T]
}

// New constructs a Service.
func New[T any](store Store[T], refs RefChecker, e Entity[T]) *Service[T] {
	return &Service[T]{Store: store, Refs: refs, Entity: e}
}

// FindAll returns every row with its parents attached.
func (s *Service[T]) FindAll(ctx context.Context) ([]T, error) {
	return s.findMany(ctx)
}

func (s *Service[T]) findMany(ctx context.Context, conds ...repo.Cond) ([]T, error) {
	rows, err := s.Store.FindMany(ctx, conds...)
	if err != nil {
		return nil, apperr.Unexpected("Erro ao buscar "+s.Entity.Plural, err)
	}
	return rows, nil
}

// FindByID returns the row or a NotFound error.
func (s *Service[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	row, err := s.Store.FindUnique(ctx, id)
	if err != nil {
		return nil, apperr.Unexpected("", err)
	}
	if row == nil {
		return nil, s.Entity.notFound(id)
	}
	return row, nil
}

// Create checks every present reference and inserts the row. A missing
// reference short-circuits with NotFound before any write.
func (s *Service[T]) Create(ctx context.Context, v validation.Values) (*T, error) {
	if err := s.checkRefs(ctx, v); err != nil {
		return nil, err
	}
	row := s.Entity.Build(v)
	if err := s.Store.Create(ctx, row); err != nil {
		return nil, s.translateWrite(err, 0)
	}
	return row, nil
}

// Update applies a validated patch. The target must exist and every
// reference supplied in the patch is checked before the write. An empty
// patch returns the current row unchanged.
func (s *Service[T]) Update(ctx context.Context, id uint, v validation.Values) (*T, error) {
	current, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(v) == 0 {
		return current, nil
	}
	if err := s.checkRefs(ctx, v); err != nil {
		return nil, err
	}
	if err := s.checkMergedDates(current, v); err != nil {
		return nil, err
	}

	row, err := s.Store.Update(ctx, id, v.Columns())
	if err != nil {
		return nil, s.translateWrite(err, id)
	}
	return row, nil
}

// Delete removes the row. Dependents blocking the delete surface as
// Conflict and leave the row untouched.
func (s *Service[T]) Delete(ctx context.Context, id uint) (*DeleteResult, error) {
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	for _, b := range s.Entity.Blockers {
		used, err := s.Refs.Referenced(ctx, b.Table, b.Column, id)
		if err != nil {
			return nil, apperr.Unexpected("", err)
		}
		if used {
			return nil, s.Entity.inUse(b.What, nil)
		}
	}
	if err := s.Store.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			return nil, s.Entity.notFound(id)
		case errors.Is(err, repo.ErrForeignKey):
			return nil, s.Entity.inUse(s.Entity.Dependents, err)
		default:
			return nil, apperr.Unexpected("", err)
		}
	}
	return &DeleteResult{
		Success: true,
		Message: fmt.Sprintf("%s %d %s com sucesso", s.Entity.Title, id, s.Entity.adj("deletado", "deletada")),
	}, nil
}

// Fingerprint summarizes the rows matching conds together with the
// embedded parent tables, so renaming a parent changes the fingerprint of
// every list that shows it.
func (s *Service[T]) Fingerprint(ctx context.Context, conds ...repo.Cond) (Fingerprint, error) {
	var fp Fingerprint
	n, at, err := s.Store.Stats(ctx, conds...)
	if err != nil {
		return Fingerprint{}, apperr.Unexpected("", err)
	}
	fp.add(n, at)
	for _, em := range s.Entity.Embeds {
		n, at, err := s.Refs.Stats(ctx, em.Table)
		if err != nil {
			return Fingerprint{}, apperr.Unexpected("", err)
		}
		fp.add(n, at)
	}
	return fp, nil
}

// checkRefs looks up every reference present and non-null in v.
func (s *Service[T]) checkRefs(ctx context.Context, v validation.Values) error {
	for _, ref := range s.Entity.Refs {
		id := v.OptUint(ref.Field)
		if id == nil {
			continue
		}
		ok, err := s.Refs.Exists(ctx, ref.Table, *id)
		if err != nil {
			return apperr.Unexpected("", err)
		}
		if !ok {
			adj := "encontrado"
			if ref.Fem {
				adj = "encontrada"
			}
			return apperr.NotFound(ref.Table, *id, ref.Entity+" não "+adj)
		}
	}
	return nil
}

// checkMergedDates re-applies the date order when a patch carries only one
// of the two dates.
func (s *Service[T]) checkMergedDates(current *T, v validation.Values) error {
	if s.Entity.Dates == nil || v.Has("start_date") == v.Has("end_date") {
		return nil
	}
	start, end := s.Entity.Dates(current)
	if v.Has("start_date") {
		start = v.OptTime("start_date")
	} else {
		end = v.OptTime("end_date")
	}
	if start == nil || end == nil {
		return nil
	}
	return validation.CheckDates(*start, *end)
}

func (s *Service[T]) translateWrite(err error, id uint) error {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		return s.Entity.notFound(id)
	case errors.Is(err, repo.ErrDuplicate):
		return apperr.Conflict(s.Entity.Duplicate, err)
	case errors.Is(err, repo.ErrForeignKey):
		return apperr.NotFound("", 0, "Registro relacionado não encontrado")
	}
	return apperr.Unexpected("", err)
}
