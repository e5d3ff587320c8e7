package repo

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-survey-backend/internal/domain"
)

// newTestDB opens a private in-memory database with FKs enforced.
func newTestDB(t *testing.T, migrate ...any) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if len(migrate) > 0 {
		if err := db.AutoMigrate(migrate...); err != nil {
			t.Fatalf("automigrate: %v", err)
		}
	}
	return db
}

func migrated(t *testing.T) *gorm.DB {
	t.Helper()
	return newTestDB(t, domain.Models()...)
}

// seedProjectDeps inserts the rows a project needs and returns their ids.
func seedProjectDeps(t *testing.T, db *gorm.DB) (langID, commID, clientID, companyID uint) {
	t.Helper()
	lang := &domain.Language{Lookup: domain.Lookup{Name: "pt-BR"}}
	comm := &domain.Community{Lookup: domain.Lookup{Name: "Panel"}}
	cl := &domain.Client{Name: "Ana", Email: "ana@acme.com"}
	co := &domain.Company{Name: "Acme"}
	for _, v := range []any{lang, comm, cl, co} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}
	return lang.ID, comm.ID, cl.ID, co.ID
}

func TestStore_CRUD(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	s := NewStore[domain.Company](db)

	c := &domain.Company{Name: "Acme"}
	if err := s.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if c.ID == 0 || c.CreatedAt.IsZero() {
		t.Fatalf("expected id and timestamps to be filled: %+v", c)
	}

	got, err := s.FindUnique(ctx, c.ID)
	if err != nil || got == nil || got.Name != "Acme" {
		t.Fatalf("FindUnique = (%+v, %v)", got, err)
	}

	missing, err := s.FindUnique(ctx, 9999)
	if err != nil || missing != nil {
		t.Fatalf("FindUnique(missing) = (%+v, %v); want (nil, nil)", missing, err)
	}

	upd, err := s.Update(ctx, c.ID, map[string]any{"name": "Acme Ltda"})
	if err != nil || upd.Name != "Acme Ltda" {
		t.Fatalf("Update = (%+v, %v)", upd, err)
	}

	if err := s.Create(ctx, &domain.Company{Name: "Beta"}); err != nil {
		t.Fatalf("Create Beta: %v", err)
	}
	all, err := s.FindMany(ctx)
	if err != nil || len(all) != 2 || all[0].ID != c.ID {
		t.Fatalf("FindMany = (%+v, %v)", all, err)
	}
	some, err := s.FindMany(ctx, Where("name = ?", "Beta"))
	if err != nil || len(some) != 1 || some[0].Name != "Beta" {
		t.Fatalf("FindMany(cond) = (%+v, %v)", some, err)
	}

	if err := s.Delete(ctx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, c.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(missing) err = %v; want ErrNotFound", err)
	}
	if _, err := s.Update(ctx, c.ID, map[string]any{"name": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(missing) err = %v; want ErrNotFound", err)
	}
}

func TestStore_FindMany_EmptyIsNonNil(t *testing.T) {
	db := migrated(t)
	out, err := NewStore[domain.Client](db).FindMany(context.Background())
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", out)
	}
}

func TestStore_Duplicate(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	s := NewStore[domain.Client](db)

	if err := s.Create(ctx, &domain.Client{Name: "A", Email: "a@x.com"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := s.Create(ctx, &domain.Client{Name: "B", Email: "a@x.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	other := &domain.Client{Name: "C", Email: "c@x.com"}
	if err := s.Create(ctx, other); err != nil {
		t.Fatalf("Create C: %v", err)
	}
	if _, err := s.Update(ctx, other.ID, map[string]any{"email": "a@x.com"}); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate on update, got %v", err)
	}
}

func TestStore_ForeignKeys_AndPreload(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	langID, commID, clientID, companyID := seedProjectDeps(t, db)

	projects := NewStore[domain.Project](db, "Client", "Company")
	bad := &domain.Project{
		Title: "P", Description: "d", ProjectType: domain.ProjectTypeOther, Category: domain.CategoryOther,
		Status: domain.ProjectActive, SampleSize: 10,
		LanguageID: langID, CommunityID: commID, ClientID: 424242, CompanyID: companyID,
	}
	if err := projects.Create(ctx, bad); !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey for unknown client, got %v", err)
	}

	p := &domain.Project{
		Title: "P", Description: "d", ProjectType: domain.ProjectTypeOther, Category: domain.CategoryOther,
		Status: domain.ProjectActive, SampleSize: 10,
		LanguageID: langID, CommunityID: commID, ClientID: clientID, CompanyID: companyID,
	}
	if err := projects.Create(ctx, p); err != nil {
		t.Fatalf("Create project: %v", err)
	}

	got, err := projects.FindUnique(ctx, p.ID)
	if err != nil || got == nil {
		t.Fatalf("FindUnique project: (%v, %v)", got, err)
	}
	if got.Client == nil || got.Client.Email != "ana@acme.com" || got.Company == nil || got.Company.Name != "Acme" {
		t.Fatalf("parents not preloaded: %+v", got)
	}

	companies := NewStore[domain.Company](db)
	if err := companies.Delete(ctx, companyID); !errors.Is(err, ErrForeignKey) {
		t.Fatalf("expected ErrForeignKey deleting referenced company, got %v", err)
	}
	if still, _ := companies.FindUnique(ctx, companyID); still == nil {
		t.Fatalf("company should be untouched after a blocked delete")
	}
}

func TestStore_UpdateSetsNull(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	langID, commID, clientID, companyID := seedProjectDeps(t, db)
	src := &domain.SampleSource{Lookup: domain.Lookup{Name: "Online"}}
	if err := db.Create(src).Error; err != nil {
		t.Fatalf("seed source: %v", err)
	}

	s := NewStore[domain.Project](db)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &domain.Project{
		Title: "P", Description: "d", ProjectType: domain.ProjectTypeOther, Category: domain.CategoryOther,
		Status: domain.ProjectActive, SampleSize: 10, SampleSourceID: &src.ID, StartDate: &start,
		LanguageID: langID, CommunityID: commID, ClientID: clientID, CompanyID: companyID,
	}
	if err := s.Create(ctx, p); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := s.Update(ctx, p.ID, map[string]any{"sample_source_id": nil, "start_date": nil})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.SampleSourceID != nil || got.StartDate != nil {
		t.Fatalf("expected NULLs, got %+v", got)
	}
}

func TestStore_Update_EmptyColsReturnsCurrent(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	s := NewStore[domain.Company](db)
	c := &domain.Company{Name: "Acme"}
	if err := s.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := s.Update(ctx, c.ID, map[string]any{})
	if err != nil || got.Name != "Acme" {
		t.Fatalf("Update(empty) = (%+v, %v)", got, err)
	}
	if _, err := s.Update(ctx, 777, nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update(empty, missing) err = %v; want ErrNotFound", err)
	}
}

func TestRefChecker_Exists(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	g := &domain.Gender{Lookup: domain.Lookup{Name: "F"}}
	if err := db.Create(g).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	rc := RefChecker{DB: db}

	ok, err := rc.Exists(ctx, "genders", g.ID)
	if err != nil || !ok {
		t.Fatalf("Exists(existing) = (%v, %v)", ok, err)
	}
	ok, err = rc.Exists(ctx, "genders", g.ID+1)
	if err != nil || ok {
		t.Fatalf("Exists(missing) = (%v, %v)", ok, err)
	}
	if _, err := rc.Exists(ctx, "no_such_table", 1); err == nil {
		t.Fatalf("expected error for unknown table")
	}
}

func TestRefChecker_Referenced(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	lang, comm, cl, co := seedProjectDeps(t, db)
	p := &domain.Project{
		Title: "Tracker", Description: "d", ProjectType: "OTHER", Category: "OTHER", Status: "ACTIVE",
		LanguageID: lang, CommunityID: comm, SampleSize: 10, ClientID: cl, CompanyID: co,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	rc := RefChecker{DB: db}

	ok, err := rc.Referenced(ctx, "projects", "client_id", cl)
	if err != nil || !ok {
		t.Fatalf("Referenced(in use) = (%v, %v)", ok, err)
	}
	ok, err = rc.Referenced(ctx, "projects", "client_id", cl+1)
	if err != nil || ok {
		t.Fatalf("Referenced(unused) = (%v, %v)", ok, err)
	}
	if _, err := rc.Referenced(ctx, "projects", "no_such_column", cl); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}

func TestRefChecker_Stats(t *testing.T) {
	db := migrated(t)
	ctx := context.Background()
	rc := RefChecker{DB: db}

	n, at, err := rc.Stats(ctx, "clients")
	if err != nil || n != 0 || at != nil {
		t.Fatalf("empty Stats = (%d, %v, %v)", n, at, err)
	}

	ts := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	for i, email := range []string{"a@acme.com", "b@acme.com"} {
		c := &domain.Client{Name: "C", Email: email, CreatedAt: ts, UpdatedAt: ts.Add(-time.Duration(i) * time.Hour)}
		if err := db.Create(c).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	n, at, err = rc.Stats(ctx, "clients")
	if err != nil || n != 2 || at == nil || !at.Equal(ts) {
		t.Fatalf("Stats = (%d, %v, %v); want (2, %v)", n, at, err, ts)
	}
	if _, _, err := rc.Stats(ctx, "no_such_table"); err == nil {
		t.Fatalf("expected error for unknown table")
	}
}
