package domain

// Closed tag sets accepted by the enum-typed columns. The first block of
// each group lists the constants; the slice is the order shown to clients
// in validation messages.

const (
	ProjectTypeQuantitative = "QUANTITATIVE"
	ProjectTypeQualitative  = "QUALITATIVE"
	ProjectTypeMixed        = "MIXED"
	ProjectTypeOther        = "OTHER"
)

var ProjectTypes = []string{
	ProjectTypeQuantitative, ProjectTypeQualitative, ProjectTypeMixed, ProjectTypeOther,
}

const (
	CategoryMarketResearch       = "MARKET_RESEARCH"
	CategoryBrandAwareness       = "BRAND_AWARENESS"
	CategoryCustomerSatisfaction = "CUSTOMER_SATISFACTION"
	CategoryProductTesting       = "PRODUCT_TESTING"
	CategoryAdvertising          = "ADVERTISING"
	CategoryOther                = "OTHER"
)

var ProjectCategories = []string{
	CategoryMarketResearch, CategoryBrandAwareness, CategoryCustomerSatisfaction,
	CategoryProductTesting, CategoryAdvertising, CategoryOther,
}

const (
	ProjectActive    = "ACTIVE"
	ProjectInactive  = "INACTIVE"
	ProjectCompleted = "COMPLETED"
	ProjectCancelled = "CANCELLED"
)

var ProjectStatuses = []string{ProjectActive, ProjectInactive, ProjectCompleted, ProjectCancelled}

const (
	QuestionnaireDraft    = "DRAFT"
	QuestionnaireActive   = "ACTIVE"
	QuestionnairePaused   = "PAUSED"
	QuestionnaireClosed   = "CLOSED"
	QuestionnaireArchived = "ARCHIVED"
)

var QuestionnaireStatuses = []string{
	QuestionnaireDraft, QuestionnaireActive, QuestionnairePaused, QuestionnaireClosed, QuestionnaireArchived,
}

const (
	QuestionText           = "TEXT"
	QuestionSingleChoice   = "SINGLE_CHOICE"
	QuestionMultipleChoice = "MULTIPLE_CHOICE"
	QuestionScale          = "SCALE"
	QuestionNPS            = "NPS"
	QuestionMatrix         = "MATRIX"
	QuestionNumber         = "NUMBER"
	QuestionDate           = "DATE"
)

var QuestionTypes = []string{
	QuestionText, QuestionSingleChoice, QuestionMultipleChoice, QuestionScale,
	QuestionNPS, QuestionMatrix, QuestionNumber, QuestionDate,
}

const (
	AnswerText   = "TEXT"
	AnswerNumber = "NUMBER"
	AnswerOption = "OPTION"
	AnswerScale  = "SCALE"
	AnswerOther  = "OTHER"
)

var AnswerTypes = []string{AnswerText, AnswerNumber, AnswerOption, AnswerScale, AnswerOther}
