// Package validation implements declarative input schemas for the API
// resources. A Schema turns a raw JSON object (map[string]any) into either
// normalized Values, with defaults applied, or an apperr validation error
// that lists every violated field in declaration order.
//
// Messages are user-facing and written in Portuguese.
package validation

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// validate backs the email and enum checks.
var validate = validator.New()

type kind uint8

const (
	kindString kind = iota
	kindEmail
	kindInt
	kindBool
	kindEnum
	kindDate
)

// Field declares one input field and its rules.
type Field struct {
	Name  string
	Label string

	kind     kind
	required bool
	nullable bool
	trim     bool
	fem      bool

	def    any
	hasDef bool

	minLen, maxLen int
	min, max       *int64
	positive       bool

	enum    []string
	enumTag string
}

// Option customizes a Field.
type Option func(*Field)

// Required rejects absent, null and blank values.
func Required() Option { return func(f *Field) { f.required = true } }

// Default supplies the value used on create when the field is absent.
func Default(v any) Option {
	return func(f *Field) {
		f.def = v
		f.hasDef = true
	}
}

// Nullable lets a partial update clear the column with an explicit null.
func Nullable() Option { return func(f *Field) { f.nullable = true } }

// Trim strips surrounding whitespace before length checks and storage.
func Trim() Option { return func(f *Field) { f.trim = true } }

// Feminine selects feminine agreement for the label in messages.
func Feminine() Option { return func(f *Field) { f.fem = true } }

// Len bounds a string by rune count. Zero disables a bound.
func Len(min, max int) Option {
	return func(f *Field) {
		f.minLen = min
		f.maxLen = max
	}
}

// Range bounds an integer (inclusive).
func Range(min, max int64) Option {
	return func(f *Field) {
		f.min = &min
		f.max = &max
	}
}

// AtLeast sets an inclusive lower bound on an integer.
func AtLeast(min int64) Option { return func(f *Field) { f.min = &min } }

// String declares a text field.
func String(name, label string, opts ...Option) Field {
	return newField(name, label, kindString, opts)
}

// Email declares a trimmed text field that must be a valid address.
func Email(name, label string, opts ...Option) Field {
	return newField(name, label, kindEmail, append([]Option{Trim()}, opts...))
}

// Int declares an integer field. Numeric strings are coerced.
func Int(name, label string, opts ...Option) Field {
	return newField(name, label, kindInt, opts)
}

// ID declares a positive integer reference to another row.
func ID(name, label string, opts ...Option) Field {
	positive := func(f *Field) { f.positive = true }
	return newField(name, label, kindInt, append([]Option{positive}, opts...))
}

// Bool declares a boolean field.
func Bool(name, label string, opts ...Option) Field {
	return newField(name, label, kindBool, opts)
}

// Enum declares a field restricted to a closed set of tags.
func Enum(name, label string, values []string, opts ...Option) Field {
	set := func(f *Field) {
		f.enum = values
		f.enumTag = "oneof=" + strings.Join(values, " ")
	}
	return newField(name, label, kindEnum, append([]Option{set}, opts...))
}

// Date declares a calendar date given as YYYY-MM-DD or RFC 3339.
func Date(name, label string, opts ...Option) Field {
	return newField(name, label, kindDate, opts)
}

func newField(name, label string, k kind, opts []Option) Field {
	f := Field{Name: name, Label: label, kind: k}
	for _, o := range opts {
		o(&f)
	}
	if f.hasDef {
		v, msg := f.parse(f.def)
		if msg != "" {
			panic(fmt.Sprintf("validation: bad default for %s: %s", name, msg))
		}
		f.def = v
	}
	return f
}

// adj picks the masculine or feminine form of an adjective.
func (f Field) adj(masc, fem string) string {
	if f.fem {
		return fem
	}
	return masc
}

func (f Field) requiredMsg() string {
	return f.Label + " é " + f.adj("obrigatório", "obrigatória")
}

// parse normalizes raw or returns a violation message.
func (f Field) parse(raw any) (any, string) {
	switch f.kind {
	case kindString, kindEmail:
		return f.parseString(raw)
	case kindInt:
		return f.parseInt(raw)
	case kindBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, f.Label + " deve ser verdadeiro ou falso"
		}
		return b, ""
	case kindEnum:
		return f.parseEnum(raw)
	case kindDate:
		return f.parseDate(raw)
	}
	return nil, f.Label + " inválido"
}

func (f Field) parseString(raw any) (any, string) {
	s, ok := raw.(string)
	if !ok {
		return nil, f.Label + " deve ser um texto"
	}
	s = norm.NFC.String(s)
	if f.trim {
		s = strings.TrimSpace(s)
	}
	if f.required && strings.TrimSpace(s) == "" {
		return nil, f.requiredMsg()
	}
	n := utf8.RuneCountInString(s)
	if f.minLen > 0 && n < f.minLen {
		return nil, fmt.Sprintf("%s deve ter no mínimo %d %s", f.Label, f.minLen, plural(f.minLen, "caractere", "caracteres"))
	}
	if f.maxLen > 0 && n > f.maxLen {
		return nil, fmt.Sprintf("%s deve ter no máximo %d caracteres", f.Label, f.maxLen)
	}
	if f.kind == kindEmail {
		if err := validate.Var(s, "email"); err != nil {
			return nil, f.Label + " " + f.adj("inválido", "inválida")
		}
	}
	return s, ""
}

func (f Field) parseInt(raw any) (any, string) {
	if s, ok := raw.(string); ok && strings.TrimSpace(s) == "" && f.required {
		return nil, f.requiredMsg()
	}
	n, ok := toInt64(raw)
	if !ok {
		return nil, f.Label + " deve ser um número inteiro"
	}
	if f.positive && n <= 0 {
		return nil, f.Label + " deve ser " + f.adj("positivo", "positiva")
	}
	if f.min != nil && n < *f.min {
		if *f.min == 0 {
			return nil, f.Label + " não pode ser " + f.adj("negativo", "negativa")
		}
		return nil, fmt.Sprintf("%s deve ser no mínimo %d", f.Label, *f.min)
	}
	if f.max != nil && n > *f.max {
		return nil, fmt.Sprintf("%s deve ser no máximo %d", f.Label, *f.max)
	}
	return n, ""
}

func (f Field) parseEnum(raw any) (any, string) {
	s, ok := raw.(string)
	if !ok || validate.Var(s, f.enumTag) != nil {
		return nil, fmt.Sprintf("%s %s. Valores aceitos: %s",
			f.Label, f.adj("inválido", "inválida"), strings.Join(f.enum, ", "))
	}
	return s, ""
}

// dateLayouts are tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

func (f Field) parseDate(raw any) (any, string) {
	switch v := raw.(type) {
	case time.Time:
		return v.UTC(), ""
	case string:
		s := strings.TrimSpace(v)
		if s == "" && f.required {
			return nil, f.requiredMsg()
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), ""
			}
		}
	}
	return nil, f.Label + " deve ser uma data válida"
}

// toInt64 converts JSON numbers, Go integers and numeric strings. It
// reports false for fractions, overflow and non-numeric input.
func toInt64(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, true
		}
		fl, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt(fl)
	case float64:
		return floatToInt(v)
	case float32:
		return floatToInt(float64(v))
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return uintToInt(uint64(v))
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return uintToInt(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		return n, err == nil
	}
	return 0, false
}

func floatToInt(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

func uintToInt(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
