package domain

import "time"

// Lookup is the shape shared by the catalogue tables referenced from
// projects, questionnaires and filters. These rows are seeded outside the
// API and are read-only here.
type Lookup struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Gender struct{ Lookup }

func (Gender) TableName() string { return "genders" }

type SocialClass struct{ Lookup }

func (SocialClass) TableName() string { return "social_classes" }

type AgeRange struct{ Lookup }

func (AgeRange) TableName() string { return "age_ranges" }

type Country struct{ Lookup }

func (Country) TableName() string { return "countries" }

type State struct{ Lookup }

func (State) TableName() string { return "states" }

type City struct{ Lookup }

func (City) TableName() string { return "cities" }

type Quota struct{ Lookup }

func (Quota) TableName() string { return "quotas" }

type Language struct{ Lookup }

func (Language) TableName() string { return "languages" }

type Community struct{ Lookup }

func (Community) TableName() string { return "communities" }

type SampleSource struct{ Lookup }

func (SampleSource) TableName() string { return "sample_sources" }

// Models lists every table in dependency order, for migrations.
func Models() []any {
	return []any{
		&Gender{}, &SocialClass{}, &AgeRange{}, &Country{}, &State{}, &City{}, &Quota{},
		&Language{}, &Community{}, &SampleSource{},
		&Company{}, &Client{}, &Project{}, &Questionnaire{}, &Question{}, &Answer{}, &Filter{},
		&Idempotency{},
	}
}
