// Resource HTTP handlers.
//
// Every entity exposes the same five endpoints:
//   - GET    /{resource}        (list, weak ETag support)
//   - GET    /{resource}/{id}   (read)
//   - POST   /{resource}        (create)
//   - PUT    /{resource}/{id}   (partial update; PATCH is an alias)
//   - DELETE /{resource}/{id}   (delete)
//
// Handlers are transport-thin: they parse the id and the body, run the
// schema, call the service and hand any error to failErr.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-survey-backend/internal/apperr"
	"github.com/tbourn/go-survey-backend/internal/repo"
	"github.com/tbourn/go-survey-backend/internal/services"
	"github.com/tbourn/go-survey-backend/internal/validation"
)

// ResourceService is the CRUD contract consumed by Resource.
// *services.Service[T] satisfies it.
type ResourceService[T any] interface {
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id uint) (*T, error)
	Create(ctx context.Context, v validation.Values) (*T, error)
	Update(ctx context.Context, id uint, v validation.Values) (*T, error)
	Delete(ctx context.Context, id uint) (*services.DeleteResult, error)
	Fingerprint(ctx context.Context, conds ...repo.Cond) (services.Fingerprint, error)
}

// Resource binds one entity's service to its create and update schemas.
type Resource[T any] struct {
	name   string
	svc    ResourceService[T]
	create *validation.Schema
	update *validation.Schema
}

// NewResource constructs a Resource. name is the URL segment and the ETag
// namespace, e.g. "companies".
func NewResource[T any](name string, svc ResourceService[T], create, update *validation.Schema) *Resource[T] {
	return &Resource[T]{name: name, svc: svc, create: create, update: update}
}

// Register mounts the five endpoints (plus the PATCH alias) on g.
func (r *Resource[T]) Register(g gin.IRoutes) {
	base := "/" + r.name
	g.GET(base, r.List)
	g.POST(base, r.Create)
	g.GET(base+"/:id", r.Get)
	g.PUT(base+"/:id", r.Update)
	g.PATCH(base+"/:id", r.Update)
	g.DELETE(base+"/:id", r.Delete)
}

// List godoc
// @ID          listResource
// @Summary     List a resource
// @Description Returns every row ordered by id, parents attached. Supports weak ETag via If-None-Match and may return 304. The ETag changes when a row or an attached parent changes.
// @Tags        Resources
// @Produce     json
//
// @Param       resource       path    string  true  "Resource"  Enums(companies, clients, projects, questionnaires, questions, answers, filters)
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"  example(W/\"companies:3:1718000000000000000\")
//
// @Success     200  {array}  object
// @Header      200  {string} ETag  "Weak ETag for current result"
// @Success     304  {string} string "Not Modified"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /{resource} [get]
func (r *Resource[T]) List(c *gin.Context) {
	ctx := c.Request.Context()

	// ETag pre-check (best effort).
	if fp, err := r.svc.Fingerprint(ctx); err == nil {
		etag := fmt.Sprintf(`W/"%s:%d:%d"`, r.name, fp.Count, fp.UpdatedAt.UnixNano())
		c.Header("ETag", etag)
		if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
			c.Status(http.StatusNotModified)
			return
		}
	}

	rows, err := r.svc.FindAll(ctx)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, rows)
}

// Get godoc
// @ID          getResource
// @Summary     Get one row
// @Tags        Resources
// @Produce     json
//
// @Param       resource  path  string  true  "Resource"  Enums(companies, clients, projects, questionnaires, questions, answers, filters)
// @Param       id        path  int     true  "Row ID"    minimum(1)
//
// @Success     200  {object} object
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /{resource}/{id} [get]
func (r *Resource[T]) Get(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	row, err := r.svc.FindByID(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// Create godoc
// @ID          createResource
// @Summary     Create a row
// @Description Validates the body, checks every referenced row and inserts. Send Idempotency-Key to make retries safe.
// @Tags        Resources
// @Accept      json
// @Produce     json
//
// @Param       resource         path    string  true   "Resource"  Enums(companies, clients, projects, questionnaires, questions, answers, filters)
// @Param       Idempotency-Key  header  string  false  "Replay key for retries"
// @Param       body             body    object  true   "Row fields"
//
// @Success     201  {object} object
// @Failure     400  {object} handlers.ErrorResponse "Validation failed"
// @Failure     404  {object} handlers.ErrorResponse "Referenced row not found"
// @Failure     409  {object} handlers.ErrorResponse "Duplicate"
// @Failure     413  {object} handlers.ErrorResponse "Body too large"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /{resource} [post]
func (r *Resource[T]) Create(c *gin.Context) {
	body, err := readBody(c)
	if err != nil {
		failErr(c, err)
		return
	}
	v, err := r.create.Validate(body)
	if err != nil {
		failErr(c, err)
		return
	}
	row, err := r.svc.Create(c.Request.Context(), v)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, row)
}

// Update godoc
// @ID          updateResource
// @Summary     Update a row
// @Description Applies the fields present in the body. Omitted fields keep their value; null clears an optional reference.
// @Tags        Resources
// @Accept      json
// @Produce     json
//
// @Param       resource  path  string  true  "Resource"  Enums(companies, clients, projects, questionnaires, questions, answers, filters)
// @Param       id        path  int     true  "Row ID"    minimum(1)
// @Param       body      body  object  true  "Fields to change"
//
// @Success     200  {object} object
// @Failure     400  {object} handlers.ErrorResponse "Validation failed"
// @Failure     404  {object} handlers.ErrorResponse "Row or referenced row not found"
// @Failure     409  {object} handlers.ErrorResponse "Duplicate"
// @Failure     413  {object} handlers.ErrorResponse "Body too large"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /{resource}/{id} [put]
// @Router      /{resource}/{id} [patch]
func (r *Resource[T]) Update(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	body, err := readBody(c)
	if err != nil {
		failErr(c, err)
		return
	}
	v, err := r.update.Validate(body)
	if err != nil {
		failErr(c, err)
		return
	}
	row, err := r.svc.Update(c.Request.Context(), id, v)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, row)
}

// Delete godoc
// @ID          deleteResource
// @Summary     Delete a row
// @Description Hard delete. Rows that still have dependents are kept and 409 is returned.
// @Tags        Resources
// @Produce     json
//
// @Param       resource  path  string  true  "Resource"  Enums(companies, clients, projects, questionnaires, questions, answers, filters)
// @Param       id        path  int     true  "Row ID"    minimum(1)
//
// @Success     200  {object} services.DeleteResult
// @Failure     400  {object} handlers.ErrorResponse "Invalid id"
// @Failure     404  {object} handlers.ErrorResponse "Not found"
// @Failure     409  {object} handlers.ErrorResponse "Has dependents"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /{resource}/{id} [delete]
func (r *Resource[T]) Delete(c *gin.Context) {
	id, err := validation.ParseID(c.Param("id"))
	if err != nil {
		failErr(c, err)
		return
	}
	res, err := r.svc.Delete(c.Request.Context(), id)
	if err != nil {
		failErr(c, err)
		return
	}
	ok(c, http.StatusOK, res)
}

// readBody decodes the request body into a JSON object. Numbers are kept
// as json.Number so integer fields survive exactly. An empty body is an
// empty object.
func readBody(c *gin.Context) (map[string]any, error) {
	if c.Request.Body == nil {
		return map[string]any{}, nil
	}
	raw, err := c.GetRawData()
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, bodyError(msgBodyUnreadable)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, bodyError(msgInvalidJSON)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, bodyError(msgInvalidJSON)
	}
	obj, isObj := v.(map[string]any)
	if !isObj {
		return nil, bodyError(msgBodyNotObject)
	}
	return obj, nil
}

// errBodyTooLarge reports a body rejected by http.MaxBytesReader.
var errBodyTooLarge = errors.New("request body too large")

func bodyError(msg string) error {
	return apperr.Validation(apperr.Violation{Field: "body", Message: msg})
}
