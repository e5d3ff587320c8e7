package validation

import (
	"time"

	"github.com/tbourn/go-survey-backend/internal/apperr"
)

// Violation is re-exported for callers that only import this package.
type Violation = apperr.Violation

// Rule is a cross-field check run over the normalized values. It returns
// nil when the values are acceptable.
type Rule func(Values) *Violation

// Schema validates a raw object against a list of fields and rules.
type Schema struct {
	fields  []Field
	rules   []Rule
	partial bool
}

// New declares a schema. Fields are checked in the given order and
// violations are reported in that order.
func New(fields ...Field) *Schema {
	return &Schema{fields: fields}
}

// With appends cross-field rules and returns the schema.
func (s *Schema) With(rules ...Rule) *Schema {
	s.rules = append(s.rules, rules...)
	return s
}

// Partial derives the patch variant: no field is required, no defaults are
// applied, and every present value still goes through its field and
// cross-field rules.
func (s *Schema) Partial() *Schema {
	return &Schema{
		fields:  s.fields,
		rules:   s.rules,
		partial: true,
	}
}

// Validate checks input and returns the normalized values. On failure it
// returns a KindValidation *apperr.Error listing every violation.
func (s *Schema) Validate(input map[string]any) (Values, error) {
	out := make(Values, len(s.fields))
	var vs []Violation

	for _, f := range s.fields {
		raw, present := input[f.Name]

		if !present || raw == nil {
			switch {
			case s.partial && present && f.nullable && !f.required:
				out[f.Name] = nil
			case s.partial && !present:
			case f.required:
				vs = append(vs, Violation{Field: f.Name, Message: f.requiredMsg()})
			case !s.partial && f.hasDef:
				out[f.Name] = f.def
			}
			continue
		}

		v, msg := f.parse(raw)
		if msg != "" {
			vs = append(vs, Violation{Field: f.Name, Message: msg})
			continue
		}
		out[f.Name] = v
	}

	for _, rule := range s.rules {
		if v := rule(out); v != nil {
			vs = append(vs, *v)
		}
	}

	if len(vs) > 0 {
		return nil, apperr.Validation(vs...)
	}
	return out, nil
}

// EndAfter rejects end <= start when both dates are present. The violation
// is attached to the end field.
func EndAfter(startField, endField, msg string) Rule {
	return func(v Values) *Violation {
		start, ok1 := v[startField].(time.Time)
		end, ok2 := v[endField].(time.Time)
		if !ok1 || !ok2 {
			return nil
		}
		if !end.After(start) {
			return &Violation{Field: endField, Message: msg}
		}
		return nil
	}
}
