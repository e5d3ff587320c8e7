// Package domain defines the persistence models for the survey back office:
// companies and clients that commission projects, the questionnaires run
// inside a project, their questions and answers, and the audience filters
// attached to a questionnaire. These types are mapped with GORM and form
// the core data layer of the application.
//
// Deletion is hard (no soft delete) so that FK constraints with ON DELETE
// RESTRICT block removing rows that still have dependents.
package domain

import "time"

// Company is an organisation that owns projects.
type Company struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null;uniqueIndex:ux_companies_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Company.
func (Company) TableName() string { return "companies" }

// Client is the contact that commissions projects. Email is unique.
type Client struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	Name      string    `json:"name"       gorm:"type:varchar(255);not null"`
	Email     string    `json:"email"      gorm:"type:varchar(255);not null;uniqueIndex:ux_clients_email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the database table name for Client.
func (Client) TableName() string { return "clients" }

// Project is a research engagement for a client and company.
//
// Fields:
//   - ProjectType / Category / Status: closed tag sets, see enums.go.
//   - SampleSize: target number of respondents (1..32767).
//   - SampleSourceID: optional panel provider; nulled if the source is removed.
//   - StartDate / EndDate: optional fieldwork window; end is after start.
type Project struct {
	ID             uint       `json:"id"               gorm:"primaryKey"`
	Title          string     `json:"title"            gorm:"type:varchar(255);not null"`
	Description    string     `json:"description"      gorm:"type:text;not null"`
	ProjectType    string     `json:"project_type"     gorm:"type:varchar(32);not null"`
	LanguageID     uint       `json:"language_id"      gorm:"not null;index"`
	Category       string     `json:"category"         gorm:"type:varchar(32);not null"`
	SampleSourceID *uint      `json:"sample_source_id" gorm:"index"`
	CommunityID    uint       `json:"community_id"     gorm:"not null;index"`
	Status         string     `json:"status"           gorm:"type:varchar(16);not null"`
	SampleSize     int        `json:"sample_size"      gorm:"not null"`
	ClientID       uint       `json:"client_id"        gorm:"not null;index"`
	CompanyID      uint       `json:"company_id"       gorm:"not null;index"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	Client       *Client       `json:"client,omitempty"        gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Company      *Company      `json:"company,omitempty"       gorm:"foreignKey:CompanyID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Language     *Language     `json:"language,omitempty"      gorm:"foreignKey:LanguageID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Community    *Community    `json:"community,omitempty"     gorm:"foreignKey:CommunityID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SampleSource *SampleSource `json:"sample_source,omitempty" gorm:"foreignKey:SampleSourceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Project.
func (Project) TableName() string { return "projects" }

// Questionnaire is a survey instrument fielded within a project.
//
// FilterID points at the audience filter chosen for the questionnaire. It
// is a plain column: filters already reference questionnaires, so both the
// existence check on write and the in-use check on filter delete live in
// the service instead of a second FK.
type Questionnaire struct {
	ID                  uint      `json:"id"                   gorm:"primaryKey"`
	Title               string    `json:"title"                gorm:"type:varchar(255);not null"`
	ProjectID           uint      `json:"project_id"           gorm:"not null;index"`
	SampleSourceID      *uint     `json:"sample_source_id"     gorm:"index"`
	Goal                string    `json:"goal"                 gorm:"type:text"`
	FilterID            *uint     `json:"filter_id"            gorm:"index"`
	RandomizedQuestions bool      `json:"randomized_questions" gorm:"not null"`
	Status              string    `json:"status"               gorm:"type:varchar(16);not null;index"`
	StartDate           time.Time `json:"start_date"           gorm:"not null"`
	EndDate             time.Time `json:"end_date"             gorm:"not null"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	Project      *Project      `json:"project,omitempty"       gorm:"foreignKey:ProjectID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SampleSource *SampleSource `json:"sample_source,omitempty" gorm:"foreignKey:SampleSourceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Questionnaire.
func (Questionnaire) TableName() string { return "questionnaires" }

// Question belongs to a questionnaire and is shown in OrderIndex order.
type Question struct {
	ID               uint      `json:"id"                gorm:"primaryKey"`
	QuestionnaireID  uint      `json:"questionnaire_id"  gorm:"not null;index:idx_questions_order,priority:1"`
	QuestionType     string    `json:"question_type"     gorm:"type:varchar(32);not null"`
	Title            string    `json:"title"             gorm:"type:text;not null"`
	Required         bool      `json:"required"          gorm:"not null"`
	RandomizeAnswers bool      `json:"randomize_answers" gorm:"not null"`
	OrderIndex       int       `json:"order_index"       gorm:"not null;index:idx_questions_order,priority:2"`
	KPI              string    `json:"kpi"               gorm:"column:kpi;type:varchar(255)"`
	Attributes       string    `json:"attributes"        gorm:"type:varchar(255)"`
	Brand            string    `json:"brand"             gorm:"type:varchar(255)"`
	ProductBrand     string    `json:"product_brand"     gorm:"type:varchar(255)"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Questionnaire *Questionnaire `json:"questionnaire,omitempty" gorm:"foreignKey:QuestionnaireID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Question.
func (Question) TableName() string { return "questions" }

// Answer is a response option of a question. SkipToQuestionID optionally
// routes respondents who pick it to another question.
type Answer struct {
	ID               uint      `json:"id"                  gorm:"primaryKey"`
	QuestionID       uint      `json:"question_id"         gorm:"not null;index:idx_answers_order,priority:1"`
	AnswerType       string    `json:"answer_type"         gorm:"type:varchar(32);not null"`
	Value            string    `json:"value"               gorm:"type:text;not null"`
	Fixed            bool      `json:"fixed"               gorm:"not null"`
	OrderIndex       int       `json:"order_index"         gorm:"not null;index:idx_answers_order,priority:2"`
	SkipToQuestionID *uint     `json:"skip_to_question_id" gorm:"index"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Question       *Question `json:"question,omitempty"         gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	SkipToQuestion *Question `json:"skip_to_question,omitempty" gorm:"foreignKey:SkipToQuestionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Answer.
func (Answer) TableName() string { return "answers" }

// Filter narrows the audience of a questionnaire by demographic look-ups.
// Every look-up reference is optional.
type Filter struct {
	ID              uint      `json:"id"               gorm:"primaryKey"`
	QuestionnaireID uint      `json:"questionnaire_id" gorm:"not null;index"`
	GenderID        *uint     `json:"gender_id"        gorm:"index"`
	SocialClassID   *uint     `json:"social_class_id"  gorm:"index"`
	AgeRangeID      *uint     `json:"age_range_id"     gorm:"index"`
	CountryID       *uint     `json:"country_id"       gorm:"index:idx_filters_location,priority:1"`
	StateID         *uint     `json:"state_id"         gorm:"index:idx_filters_location,priority:2"`
	CityID          *uint     `json:"city_id"          gorm:"index:idx_filters_location,priority:3"`
	QuotaID         *uint     `json:"quota_id"         gorm:"index"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Questionnaire *Questionnaire `json:"questionnaire,omitempty" gorm:"foreignKey:QuestionnaireID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Gender        *Gender        `json:"gender,omitempty"        gorm:"foreignKey:GenderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	SocialClass   *SocialClass   `json:"social_class,omitempty"  gorm:"foreignKey:SocialClassID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	AgeRange      *AgeRange      `json:"age_range,omitempty"     gorm:"foreignKey:AgeRangeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Country       *Country       `json:"country,omitempty"       gorm:"foreignKey:CountryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	State         *State         `json:"state,omitempty"         gorm:"foreignKey:StateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	City          *City          `json:"city,omitempty"          gorm:"foreignKey:CityID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	Quota         *Quota         `json:"quota,omitempty"         gorm:"foreignKey:QuotaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

// TableName returns the database table name for Filter.
func (Filter) TableName() string { return "filters" }
