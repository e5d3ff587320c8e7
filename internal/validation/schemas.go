package validation

import (
	"time"

	"github.com/tbourn/go-survey-backend/internal/apperr"
	"github.com/tbourn/go-survey-backend/internal/domain"
)

const msgEndAfterStart = "Data de término deve ser posterior à data de início"

// dateOrder is the end-after-start rule shared by projects and questionnaires.
var dateOrder = EndAfter("start_date", "end_date", msgEndAfterStart)

// CheckDates applies the end-after-start rule to dates merged from a patch
// and the stored row.
func CheckDates(start, end time.Time) error {
	if v := dateOrder(Values{"start_date": start, "end_date": end}); v != nil {
		return apperr.Validation(*v)
	}
	return nil
}

// Create schemas. The matching *Update schemas are their partial variants.
var (
	CompanyCreate = New(
		String("name", "Nome", Required(), Trim(), Len(1, 255)),
	)

	ClientCreate = New(
		String("name", "Nome", Required(), Trim(), Len(1, 255)),
		Email("email", "Email", Required(), Len(0, 255)),
	)

	ProjectCreate = New(
		String("title", "Título", Required(), Trim(), Len(1, 255)),
		String("description", "Descrição", Required(), Feminine(), Len(1, 1000)),
		Enum("project_type", "Tipo do projeto", domain.ProjectTypes, Default(domain.ProjectTypeOther)),
		ID("language_id", "ID do idioma", Required()),
		Enum("category", "Categoria", domain.ProjectCategories, Feminine(), Default(domain.CategoryOther)),
		ID("sample_source_id", "ID da fonte de amostra", Nullable()),
		ID("community_id", "ID da comunidade", Required()),
		Enum("status", "Status", domain.ProjectStatuses, Default(domain.ProjectActive)),
		Int("sample_size", "Tamanho da amostra", Required(), Range(1, 32767)),
		ID("client_id", "ID do cliente", Required()),
		ID("company_id", "ID da empresa", Required()),
		Date("start_date", "Data de início", Feminine(), Nullable()),
		Date("end_date", "Data de término", Feminine(), Nullable()),
	).With(dateOrder)

	QuestionnaireCreate = New(
		String("title", "Título", Required(), Trim(), Len(1, 255)),
		ID("project_id", "ID do projeto", Required()),
		ID("sample_source_id", "ID da fonte de amostra", Nullable()),
		String("goal", "Objetivo", Len(0, 1000)),
		ID("filter_id", "ID do filtro", Nullable()),
		Bool("randomized_questions", "Perguntas aleatórias", Default(false)),
		Enum("status", "Status", domain.QuestionnaireStatuses, Default(domain.QuestionnaireDraft)),
		Date("start_date", "Data de início", Required(), Feminine()),
		Date("end_date", "Data de término", Required(), Feminine()),
	).With(dateOrder)

	QuestionCreate = New(
		ID("questionnaire_id", "ID do questionário", Required()),
		Enum("question_type", "Tipo da pergunta", domain.QuestionTypes, Default(domain.QuestionText)),
		String("title", "Título", Required(), Trim(), Len(1, 1000)),
		Bool("required", "Obrigatória", Default(false)),
		Bool("randomize_answers", "Respostas aleatórias", Default(false)),
		Int("order_index", "Ordem", Feminine(), AtLeast(0), Default(0)),
		String("kpi", "KPI", Trim(), Len(0, 255)),
		String("attributes", "Atributos", Trim(), Len(0, 255)),
		String("brand", "Marca", Feminine(), Trim(), Len(0, 255)),
		String("product_brand", "Marca do produto", Feminine(), Trim(), Len(0, 255)),
	)

	AnswerCreate = New(
		ID("question_id", "ID da pergunta", Required()),
		Enum("answer_type", "Tipo da resposta", domain.AnswerTypes, Default(domain.AnswerText)),
		String("value", "Valor", Required(), Len(1, 1000)),
		Bool("fixed", "Fixa", Default(false)),
		Int("order_index", "Ordem", Feminine(), AtLeast(0), Default(0)),
		ID("skip_to_question_id", "ID da pergunta de destino", Nullable()),
	)

	FilterCreate = New(
		ID("questionnaire_id", "ID do questionário", Required()),
		ID("gender_id", "ID do gênero", Nullable()),
		ID("social_class_id", "ID da classe social", Nullable()),
		ID("age_range_id", "ID da faixa etária", Nullable()),
		ID("country_id", "ID do país", Nullable()),
		ID("state_id", "ID do estado", Nullable()),
		ID("city_id", "ID da cidade", Nullable()),
		ID("quota_id", "ID da cota", Nullable()),
	)
)

var (
	CompanyUpdate       = CompanyCreate.Partial()
	ClientUpdate        = ClientCreate.Partial()
	ProjectUpdate       = ProjectCreate.Partial()
	QuestionnaireUpdate = QuestionnaireCreate.Partial()
	QuestionUpdate      = QuestionCreate.Partial()
	AnswerUpdate        = AnswerCreate.Partial()
	FilterUpdate        = FilterCreate.Partial()
)

// FilterLocation validates the query of GET /filters/location. All three
// ids are optional.
var FilterLocation = New(
	ID("countryId", "ID do país"),
	ID("stateId", "ID do estado"),
	ID("cityId", "ID da cidade"),
)
