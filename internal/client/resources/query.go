package resources

import (
	"net/url"
	"strconv"
)

// Pointer helpers for optional filter parameters.
func Int(v int) *int          { return &v }
func Int64(v int64) *int64    { return &v }
func Str(s string) *string    { return &s }
func Bool(b bool) *bool       { return &b }

// query accumulates only the filters a caller actually set; absent filters
// never appear in the URL, not even as empty values.
type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) setInt(key string, v *int) {
	if v != nil {
		q.values.Set(key, strconv.Itoa(*v))
	}
}

func (q *query) setInt64(key string, v *int64) {
	if v != nil {
		q.values.Set(key, strconv.FormatInt(*v, 10))
	}
}

func (q *query) setStr(key string, v *string) {
	if v != nil && *v != "" {
		q.values.Set(key, *v)
	}
}

func (q *query) setBool(key string, v *bool) {
	if v != nil {
		q.values.Set(key, strconv.FormatBool(*v))
	}
}

// path appends the encoded query to base, or returns base untouched when no
// filter was set.
func (q *query) path(base string) string {
	if len(q.values) == 0 {
		return base
	}
	return base + "?" + q.values.Encode()
}
