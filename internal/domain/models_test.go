package domain

import (
	"fmt"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite" // pure-Go SQLite (no CGO)
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newDomainDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(Models()...); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func TestTableNames(t *testing.T) {
	cases := map[string]interface{ TableName() string }{
		"companies":      Company{},
		"clients":        Client{},
		"projects":       Project{},
		"questionnaires": Questionnaire{},
		"questions":      Question{},
		"answers":        Answer{},
		"filters":        Filter{},
		"social_classes": SocialClass{},
		"age_ranges":     AgeRange{},
		"sample_sources": SampleSource{},
		"idempotency":    Idempotency{},
	}
	for want, m := range cases {
		if got := m.TableName(); got != want {
			t.Fatalf("%T.TableName() = %q; want %q", m, got, want)
		}
	}
}

func seedProject(t *testing.T, db *gorm.DB) *Project {
	t.Helper()
	lang := &Language{Lookup{Name: "pt-BR"}}
	comm := &Community{Lookup{Name: "Panel"}}
	src := &SampleSource{Lookup{Name: "Online"}}
	co := &Company{Name: "Acme"}
	cl := &Client{Name: "Ana", Email: "ana@acme.com"}
	for _, v := range []any{lang, comm, src, co, cl} {
		if err := db.Create(v).Error; err != nil {
			t.Fatalf("seed %T: %v", v, err)
		}
	}
	p := &Project{
		Title: "Brand tracker", Description: "Quarterly", ProjectType: ProjectTypeOther,
		Category: CategoryOther, Status: ProjectActive, SampleSize: 100,
		LanguageID: lang.ID, CommunityID: comm.ID, ClientID: cl.ID, CompanyID: co.ID,
		SampleSourceID: &src.ID,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("insert project: %v", err)
	}
	return p
}

func TestMigrations_Indexes(t *testing.T) {
	db := newDomainDB(t)
	m := db.Migrator()

	for _, tbl := range Models() {
		if !m.HasTable(tbl) {
			t.Fatalf("expected table for %T to exist", tbl)
		}
	}
	if !m.HasIndex(&Company{}, "ux_companies_name") {
		t.Fatalf("expected unique index ux_companies_name")
	}
	if !m.HasIndex(&Client{}, "ux_clients_email") {
		t.Fatalf("expected unique index ux_clients_email")
	}
	if !m.HasIndex(&Idempotency{}, "ux_scope_key") {
		t.Fatalf("expected composite index ux_scope_key")
	}
	if !m.HasIndex(&Filter{}, "idx_filters_location") {
		t.Fatalf("expected index idx_filters_location")
	}
}

func TestUniqueConstraints(t *testing.T) {
	db := newDomainDB(t)

	if err := db.Create(&Company{Name: "Acme"}).Error; err != nil {
		t.Fatalf("insert company: %v", err)
	}
	if err := db.Create(&Company{Name: "Acme"}).Error; err == nil {
		t.Fatalf("expected UNIQUE violation on companies.name")
	}
	if err := db.Create(&Client{Name: "A", Email: "a@x.com"}).Error; err != nil {
		t.Fatalf("insert client: %v", err)
	}
	if err := db.Create(&Client{Name: "B", Email: "a@x.com"}).Error; err == nil {
		t.Fatalf("expected UNIQUE violation on clients.email")
	}
}

func TestRestrictAndSetNull(t *testing.T) {
	db := newDomainDB(t)
	p := seedProject(t, db)

	// RESTRICT: a company with projects cannot be removed.
	if err := db.Delete(&Company{}, p.CompanyID).Error; err == nil {
		t.Fatalf("expected FK violation deleting a company with projects")
	}

	// SET NULL: removing the sample source clears the optional reference.
	if err := db.Delete(&SampleSource{}, *p.SampleSourceID).Error; err != nil {
		t.Fatalf("delete sample source: %v", err)
	}
	var got Project
	if err := db.First(&got, p.ID).Error; err != nil {
		t.Fatalf("reload project: %v", err)
	}
	if got.SampleSourceID != nil {
		t.Fatalf("expected sample_source_id to be NULL, got %v", *got.SampleSourceID)
	}

	// Dangling reference on insert is rejected.
	q := &Questionnaire{
		Title: "Q", ProjectID: 9999, Status: QuestionnaireDraft,
		StartDate: time.Now().UTC(), EndDate: time.Now().UTC().Add(time.Hour),
	}
	if err := db.Create(q).Error; err == nil {
		t.Fatalf("expected FK violation for unknown project")
	}
}

func TestAnswer_SkipTo(t *testing.T) {
	db := newDomainDB(t)
	p := seedProject(t, db)
	now := time.Now().UTC()

	qn := &Questionnaire{Title: "Q", ProjectID: p.ID, Status: QuestionnaireDraft, StartDate: now, EndDate: now.Add(24 * time.Hour)}
	if err := db.Create(qn).Error; err != nil {
		t.Fatalf("insert questionnaire: %v", err)
	}
	q1 := &Question{QuestionnaireID: qn.ID, QuestionType: QuestionText, Title: "first"}
	q2 := &Question{QuestionnaireID: qn.ID, QuestionType: QuestionText, Title: "second", OrderIndex: 1}
	if err := db.Create(q1).Error; err != nil {
		t.Fatalf("insert q1: %v", err)
	}
	if err := db.Create(q2).Error; err != nil {
		t.Fatalf("insert q2: %v", err)
	}
	a := &Answer{QuestionID: q1.ID, AnswerType: AnswerOption, Value: "Yes", SkipToQuestionID: &q2.ID}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("insert answer: %v", err)
	}

	var got Answer
	if err := db.Preload("SkipToQuestion").First(&got, a.ID).Error; err != nil {
		t.Fatalf("reload answer: %v", err)
	}
	if got.SkipToQuestion == nil || got.SkipToQuestion.Title != "second" {
		t.Fatalf("skip target not loaded: %+v", got.SkipToQuestion)
	}

	// the question that owns the answer is protected
	if err := db.Delete(&Question{}, q1.ID).Error; err == nil {
		t.Fatalf("expected FK violation deleting a question with answers")
	}
}

func TestIdempotency_UniqueScopeKey(t *testing.T) {
	db := newDomainDB(t)
	now := time.Now().UTC()

	rec := &Idempotency{ID: "id-1", Scope: "POST /api/v2/companies", Key: "k1", Status: 201, Body: []byte(`{"id":1}`), ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(rec).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	var got Idempotency
	if err := db.First(&got, "id = ?", "id-1").Error; err != nil {
		t.Fatalf("readback: %v", err)
	}
	if got.Status != 201 || string(got.Body) != `{"id":1}` {
		t.Fatalf("unexpected row: %+v", got)
	}

	dup := &Idempotency{ID: "id-2", Scope: rec.Scope, Key: "k1", Status: 201, Body: []byte(`{}`), ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(dup).Error; err == nil {
		t.Fatalf("expected UNIQUE violation on (scope, key)")
	}
	other := &Idempotency{ID: "id-3", Scope: "POST /api/v2/clients", Key: "k1", Status: 201, Body: []byte(`{}`), ExpiresAt: now.Add(time.Hour)}
	if err := db.Create(other).Error; err != nil {
		t.Fatalf("same key in another scope should be allowed: %v", err)
	}
}
