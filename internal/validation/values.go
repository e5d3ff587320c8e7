package validation

import "time"

// Values holds validated input keyed by field name. Integers are int64,
// dates are UTC time.Time. A key mapped to nil means "set to NULL" and only
// appears in partial updates.
type Values map[string]any

// Has reports whether key is present (including explicit nil).
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// String returns the string at key or "".
func (v Values) String(key string) string {
	s, _ := v[key].(string)
	return s
}

// Int returns the integer at key or 0.
func (v Values) Int(key string) int64 {
	n, _ := v[key].(int64)
	return n
}

// Uint returns the id at key or 0.
func (v Values) Uint(key string) uint {
	n, _ := v[key].(int64)
	if n < 0 {
		return 0
	}
	return uint(n)
}

// OptUint returns a pointer to the id at key, or nil when absent or null.
func (v Values) OptUint(key string) *uint {
	n, ok := v[key].(int64)
	if !ok || n < 0 {
		return nil
	}
	u := uint(n)
	return &u
}

// Bool returns the boolean at key or false.
func (v Values) Bool(key string) bool {
	b, _ := v[key].(bool)
	return b
}

// Time returns the date at key or the zero time.
func (v Values) Time(key string) time.Time {
	t, _ := v[key].(time.Time)
	return t
}

// OptTime returns a pointer to the date at key, or nil when absent or null.
func (v Values) OptTime(key string) *time.Time {
	t, ok := v[key].(time.Time)
	if !ok {
		return nil
	}
	return &t
}

// Columns returns a copy suitable for a column-keyed partial update.
func (v Values) Columns() map[string]any {
	out := make(map[string]any, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
