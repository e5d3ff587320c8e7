// Filter look-up handlers.
//
// Besides the generic CRUD, filters can be listed by the questionnaire or
// demographic they target:
//   - GET /filters/questionnaire/{id}
//   - GET /filters/gender/{id}
//   - GET /filters/age-range/{id}
//   - GET /filters/social-class/{id}
//   - GET /filters/location?countryId=&stateId=&cityId=
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-survey-backend/internal/domain"
	"github.com/tbourn/go-survey-backend/internal/validation"
)

// FilterLookups is the look-up contract consumed by FilterHandler.
// *services.FilterService satisfies it.
type FilterLookups interface {
	ByQuestionnaire(ctx context.Context, id uint) ([]domain.Filter, error)
	ByGender(ctx context.Context, id uint) ([]domain.Filter, error)
	ByAgeRange(ctx context.Context, id uint) ([]domain.Filter, error)
	BySocialClass(ctx context.Context, id uint) ([]domain.Filter, error)
	ByLocation(ctx context.Context, countryID, stateID, cityID *uint) ([]domain.Filter, error)
}

// FilterHandler serves the filter look-up endpoints.
type FilterHandler struct {
	svc FilterLookups
}

// NewFilterHandler constructs a FilterHandler.
func NewFilterHandler(svc FilterLookups) *FilterHandler {
	return &FilterHandler{svc: svc}
}

// Register mounts the look-ups under /filters. Call it before the generic
// filter resource so the static segments are visible in route listings.
func (h *FilterHandler) Register(g gin.IRoutes) {
	g.GET("/filters/questionnaire/:id", h.byID(h.svc.ByQuestionnaire))
	g.GET("/filters/gender/:id", h.byID(h.svc.ByGender))
	g.GET("/filters/age-range/:id", h.byID(h.svc.ByAgeRange))
	g.GET("/filters/social-class/:id", h.byID(h.svc.BySocialClass))
	g.GET("/filters/location", h.ByLocation)
}

// byID adapts a single-id look-up to a handler.
//
// ByTarget godoc
// @ID          listFiltersByTarget
// @Summary     List filters by target
// @Tags        Filters
// @Produce     json
//
// @Param       target  path  string  true  "Target"  Enums(questionnaire, gender, age-range, social-class)
// @Param       id      path  int     true  "Target ID"  minimum(1)
//
// @Success     200  {array}  domain.Filter
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /filters/{target}/{id} [get]
func (h *FilterHandler) byID(find func(context.Context, uint) ([]domain.Filter, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validation.ParseID(c.Param("id"))
		if err != nil {
			failErr(c, err)
			return
		}
		rows, err := find(c.Request.Context(), id)
		if err != nil {
			failErr(c, err)
			return
		}
		ok(c, http.StatusOK, rows)
	}
}

// ByLocation godoc
// @ID          listFiltersByLocation
// @Summary     List filters by location
// @Description Every given id must match. With no ids every filter is returned.
// @Tags        Filters
// @Produce     json
//
// @Param       countryId  query  int  false  "Country ID"  minimum(1)
// @Param       stateId    query  int  false  "State ID"    minimum(1)
// @Param       cityId     query  int  false  "City ID"     minimum(1)
//
// @Success     200  {array}  domain.Filter
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /filters/location [get]
func (h *FilterHandler) ByLocation(c *gin.Context) {
	q := map[string]any{}
	for _, key := range []string{"countryId", "stateId", "cityId"} {
		if s := strings.TrimSpace(c.Query(key)); s != "" {
			q[key] = s
		}
	}
	v, err := validation.FilterLocation.Validate(q)
	if err != nil {
		failErr(c, err)
		return
	}
	rows, err := h.svc.ByLocation(c.Request.Context(), v.OptUint("countryId"), v.OptUint("stateId"), v.OptUint("cityId"))
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}
