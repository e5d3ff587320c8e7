package services

import (
	"context"

	"github.com/tbourn/go-survey-backend/internal/domain"
	"github.com/tbourn/go-survey-backend/internal/repo"
)

// FilterService adds the audience look-ups to the generic filter CRUD.
type FilterService struct {
	*Service[domain.Filter]
}

// NewFilterService constructs a FilterService.
func NewFilterService(store Store[domain.Filter], refs RefChecker) *FilterService {
	return &FilterService{Service: New(store, refs, FilterEntity)}
}

// ByQuestionnaire lists the filters of a questionnaire.
func (s *FilterService) ByQuestionnaire(ctx context.Context, id uint) ([]domain.Filter, error) {
	return s.findMany(ctx, repo.Where("questionnaire_id = ?", id))
}

// ByGender lists the filters targeting a gender.
func (s *FilterService) ByGender(ctx context.Context, id uint) ([]domain.Filter, error) {
	return s.findMany(ctx, repo.Where("gender_id = ?", id))
}

// ByAgeRange lists the filters targeting an age range.
func (s *FilterService) ByAgeRange(ctx context.Context, id uint) ([]domain.Filter, error) {
	return s.findMany(ctx, repo.Where("age_range_id = ?", id))
}

// BySocialClass lists the filters targeting a social class.
func (s *FilterService) BySocialClass(ctx context.Context, id uint) ([]domain.Filter, error) {
	return s.findMany(ctx, repo.Where("social_class_id = ?", id))
}

// ByLocation lists the filters matching every given location id. Nil ids
// are ignored; with none given every filter is returned.
func (s *FilterService) ByLocation(ctx context.Context, countryID, stateID, cityID *uint) ([]domain.Filter, error) {
	var conds []repo.Cond
	if countryID != nil {
		conds = append(conds, repo.Where("country_id = ?", *countryID))
	}
	if stateID != nil {
		conds = append(conds, repo.Where("state_id = ?", *stateID))
	}
	if cityID != nil {
		conds = append(conds, repo.Where("city_id = ?", *cityID))
	}
	return s.findMany(ctx, conds...)
}
