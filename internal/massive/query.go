package massive

import (
	"net/url"
	"strconv"
	"strings"
)

// RangeFilter is an equality-or-comparison filter over a sortable field.
// The upstream encodes comparisons as "field.lt=..." style query keys.
type RangeFilter struct {
	EQ  string
	LT  string
	LTE string
	GT  string
	GTE string
}

// FloatRange is a comparison-only filter over a numeric field.
type FloatRange struct {
	LT  *float64
	LTE *float64
	GT  *float64
	GTE *float64
}

type query struct {
	values url.Values
}

func newQuery() *query {
	return &query{values: url.Values{}}
}

func (q *query) Str(key, value string) {
	if strings.TrimSpace(value) != "" {
		q.values.Set(key, value)
	}
}

func (q *query) Int(key string, value *int) {
	if value != nil {
		q.values.Set(key, strconv.Itoa(*value))
	}
}

func (q *query) Bool(key string, value *bool) {
	if value != nil {
		q.values.Set(key, strconv.FormatBool(*value))
	}
}

func (q *query) Float(key string, value *float64) {
	if value != nil {
		q.values.Set(key, strconv.FormatFloat(*value, 'f', -1, 64))
	}
}

func (q *query) Limit(limit int) {
	if limit > 0 {
		q.values.Set("limit", strconv.Itoa(limit))
	}
}

func (q *query) Range(key string, f RangeFilter) {
	q.Str(key, f.EQ)
	q.Str(key+".lt", f.LT)
	q.Str(key+".lte", f.LTE)
	q.Str(key+".gt", f.GT)
	q.Str(key+".gte", f.GTE)
}

func (q *query) FloatRange(key string, f FloatRange) {
	q.Float(key+".lt", f.LT)
	q.Float(key+".lte", f.LTE)
	q.Float(key+".gt", f.GT)
	q.Float(key+".gte", f.GTE)
}
