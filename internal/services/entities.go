package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/tbourn/go-survey-backend/internal/domain"
	"github.com/tbourn/go-survey-backend/internal/repo"
	"github.com/tbourn/go-survey-backend/internal/validation"
)

// Entity definitions. Messages are user-facing (pt-BR).
var (
	CompanyEntity = Entity[domain.Company]{
		Name: "empresa", Title: "Empresa", Plural: "empresas", Fem: true,
		Duplicate:  "Já existe uma empresa com esse nome",
		Dependents: "projetos relacionados",
		Build: func(v validation.Values) *domain.Company {
			return &domain.Company{Name: v.String("name")}
		},
	}

	ClientEntity = Entity[domain.Client]{
		Name: "cliente", Title: "Cliente", Plural: "clientes",
		Duplicate:  "Já existe um cliente com esse email",
		Dependents: "projetos relacionados",
		Build: func(v validation.Values) *domain.Client {
			return &domain.Client{Name: v.String("name"), Email: v.String("email")}
		},
	}

	ProjectEntity = Entity[domain.Project]{
		Name: "projeto", Title: "Projeto", Plural: "projetos",
		Refs: []Ref{
			{Field: "language_id", Table: domain.Language{}.TableName(), Entity: "Idioma"},
			{Field: "sample_source_id", Table: domain.SampleSource{}.TableName(), Entity: "Fonte de amostra", Fem: true},
			{Field: "community_id", Table: domain.Community{}.TableName(), Entity: "Comunidade", Fem: true},
			{Field: "client_id", Table: domain.Client{}.TableName(), Entity: "Cliente"},
			{Field: "company_id", Table: domain.Company{}.TableName(), Entity: "Empresa", Fem: true},
		},
		Embeds: []Embed{
			{Assoc: "Client", Table: domain.Client{}.TableName()},
			{Assoc: "Company", Table: domain.Company{}.TableName()},
		},
		Duplicate:  "Já existe um projeto com esses dados",
		Dependents: "questionários relacionados",
		Build: func(v validation.Values) *domain.Project {
			return &domain.Project{
				Title:          v.String("title"),
				Description:    v.String("description"),
				ProjectType:    v.String("project_type"),
				LanguageID:     v.Uint("language_id"),
				Category:       v.String("category"),
				SampleSourceID: v.OptUint("sample_source_id"),
				CommunityID:    v.Uint("community_id"),
				Status:         v.String("status"),
				SampleSize:     int(v.Int("sample_size")),
				ClientID:       v.Uint("client_id"),
				CompanyID:      v.Uint("company_id"),
				StartDate:      v.OptTime("start_date"),
				EndDate:        v.OptTime("end_date"),
			}
		},
		Dates: func(p *domain.Project) (*time.Time, *time.Time) { return p.StartDate, p.EndDate },
	}

	QuestionnaireEntity = Entity[domain.Questionnaire]{
		Name: "questionário", Title: "Questionário", Plural: "questionários",
		Refs: []Ref{
			{Field: "project_id", Table: domain.Project{}.TableName(), Entity: "Projeto"},
			{Field: "sample_source_id", Table: domain.SampleSource{}.TableName(), Entity: "Fonte de amostra", Fem: true},
			{Field: "filter_id", Table: domain.Filter{}.TableName(), Entity: "Filtro"},
		},
		Embeds: []Embed{
			{Assoc: "Project", Table: domain.Project{}.TableName()},
		},
		Duplicate:  "Já existe um questionário com esses dados",
		Dependents: "perguntas ou filtros relacionados",
		Build: func(v validation.Values) *domain.Questionnaire {
			return &domain.Questionnaire{
				Title:               v.String("title"),
				ProjectID:           v.Uint("project_id"),
				SampleSourceID:      v.OptUint("sample_source_id"),
				Goal:                v.String("goal"),
				FilterID:            v.OptUint("filter_id"),
				RandomizedQuestions: v.Bool("randomized_questions"),
				Status:              v.String("status"),
				StartDate:           v.Time("start_date"),
				EndDate:             v.Time("end_date"),
			}
		},
		Dates: func(q *domain.Questionnaire) (*time.Time, *time.Time) { return &q.StartDate, &q.EndDate },
	}

	QuestionEntity = Entity[domain.Question]{
		Name: "pergunta", Title: "Pergunta", Plural: "perguntas", Fem: true,
		Refs: []Ref{
			{Field: "questionnaire_id", Table: domain.Questionnaire{}.TableName(), Entity: "Questionário"},
		},
		Embeds: []Embed{
			{Assoc: "Questionnaire", Table: domain.Questionnaire{}.TableName()},
		},
		Duplicate:  "Já existe uma pergunta com esses dados",
		Dependents: "respostas relacionadas",
		Build: func(v validation.Values) *domain.Question {
			return &domain.Question{
				QuestionnaireID:  v.Uint("questionnaire_id"),
				QuestionType:     v.String("question_type"),
				Title:            v.String("title"),
				Required:         v.Bool("required"),
				RandomizeAnswers: v.Bool("randomize_answers"),
				OrderIndex:       int(v.Int("order_index")),
				KPI:              v.String("kpi"),
				Attributes:       v.String("attributes"),
				Brand:            v.String("brand"),
				ProductBrand:     v.String("product_brand"),
			}
		},
	}

	AnswerEntity = Entity[domain.Answer]{
		Name: "resposta", Title: "Resposta", Plural: "respostas", Fem: true,
		Refs: []Ref{
			{Field: "question_id", Table: domain.Question{}.TableName(), Entity: "Pergunta", Fem: true},
			{Field: "skip_to_question_id", Table: domain.Question{}.TableName(), Entity: "Pergunta de destino", Fem: true},
		},
		Embeds: []Embed{
			{Assoc: "Question", Table: domain.Question{}.TableName()},
		},
		Duplicate:  "Já existe uma resposta com esses dados",
		Dependents: "registros relacionados",
		Build: func(v validation.Values) *domain.Answer {
			return &domain.Answer{
				QuestionID:       v.Uint("question_id"),
				AnswerType:       v.String("answer_type"),
				Value:            v.String("value"),
				Fixed:            v.Bool("fixed"),
				OrderIndex:       int(v.Int("order_index")),
				SkipToQuestionID: v.OptUint("skip_to_question_id"),
			}
		},
	}

	FilterEntity = Entity[domain.Filter]{
		Name: "filtro", Title: "Filtro", Plural: "filtros",
		Refs: []Ref{
			{Field: "questionnaire_id", Table: domain.Questionnaire{}.TableName(), Entity: "Questionário"},
			{Field: "gender_id", Table: domain.Gender{}.TableName(), Entity: "Gênero"},
			{Field: "social_class_id", Table: domain.SocialClass{}.TableName(), Entity: "Classe social", Fem: true},
			{Field: "age_range_id", Table: domain.AgeRange{}.TableName(), Entity: "Faixa etária", Fem: true},
			{Field: "country_id", Table: domain.Country{}.TableName(), Entity: "País"},
			{Field: "state_id", Table: domain.State{}.TableName(), Entity: "Estado"},
			{Field: "city_id", Table: domain.City{}.TableName(), Entity: "Cidade", Fem: true},
			{Field: "quota_id", Table: domain.Quota{}.TableName(), Entity: "Cota", Fem: true},
		},
		Embeds: []Embed{
			{Assoc: "Questionnaire", Table: domain.Questionnaire{}.TableName()},
			{Assoc: "Gender", Table: domain.Gender{}.TableName()},
			{Assoc: "SocialClass", Table: domain.SocialClass{}.TableName()},
			{Assoc: "AgeRange", Table: domain.AgeRange{}.TableName()},
			{Assoc: "Country", Table: domain.Country{}.TableName()},
			{Assoc: "State", Table: domain.State{}.TableName()},
			{Assoc: "City", Table: domain.City{}.TableName()},
			{Assoc: "Quota", Table: domain.Quota{}.TableName()},
		},
		Duplicate:  "Já existe um filtro com esses dados",
		Dependents: "registros relacionados",
		Blockers: []Blocker{
			{Table: domain.Questionnaire{}.TableName(), Column: "filter_id", What: "questionários relacionados"},
		},
		Build: func(v validation.Values) *domain.Filter {
			return &domain.Filter{
				QuestionnaireID: v.Uint("questionnaire_id"),
				GenderID:        v.OptUint("gender_id"),
				SocialClassID:   v.OptUint("social_class_id"),
				AgeRangeID:      v.OptUint("age_range_id"),
				CountryID:       v.OptUint("country_id"),
				StateID:         v.OptUint("state_id"),
				CityID:          v.OptUint("city_id"),
				QuotaID:         v.OptUint("quota_id"),
			}
		},
	}
)

// Services bundles one service per resource over a shared database handle.
type Services struct {
	Companies      *Service[domain.Company]
	Clients        *Service[domain.Client]
	Projects       *Service[domain.Project]
	Questionnaires *Service[domain.Questionnaire]
	Questions      *Service[domain.Question]
	Answers        *Service[domain.Answer]
	Filters        *FilterService
}

// NewServices wires the GORM-backed stores into services.
func NewServices(db *gorm.DB) *Services {
	refs := repo.RefChecker{DB: db}
	return &Services{
		Companies:      New[domain.Company](repo.NewStore[domain.Company](db), refs, CompanyEntity),
		Clients:        New[domain.Client](repo.NewStore[domain.Client](db), refs, ClientEntity),
		Projects:       New[domain.Project](repo.NewStore[domain.Project](db, ProjectEntity.preloads()...), refs, ProjectEntity),
		Questionnaires: New[domain.Questionnaire](repo.NewStore[domain.Questionnaire](db, QuestionnaireEntity.preloads()...), refs, QuestionnaireEntity),
		Questions:      New[domain.Question](repo.NewStore[domain.Question](db, QuestionEntity.preloads()...), refs, QuestionEntity),
		Answers:        New[domain.Answer](repo.NewStore[domain.Answer](db, AnswerEntity.preloads()...), refs, AnswerEntity),
		Filters:        NewFilterService(repo.NewStore[domain.Filter](db, FilterEntity.preloads()...), refs),
	}
}
