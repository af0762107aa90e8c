package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"massive-gateway/internal/massive"
	"massive-gateway/pkg/apierror"
)

func badParam(key string, reason string) *apierror.APIError {
	return apierror.New("BAD_REQUEST", "invalid query parameter", key+" "+reason, http.StatusBadRequest)
}

func queryStr(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

func requireStr(q url.Values, key string) (string, error) {
	v := queryStr(q, key)
	if v == "" {
		return "", apierror.New("BAD_REQUEST", "missing required query parameter", key, http.StatusBadRequest)
	}
	return v, nil
}

func queryBool(q url.Values, key string) (*bool, error) {
	raw := queryStr(q, key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, badParam(key, "must be true or false")
	}
	return &v, nil
}

func queryInt(q url.Values, key string) (*int, error) {
	raw := queryStr(q, key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, badParam(key, "must be an integer")
	}
	return &v, nil
}

func queryFloat(q url.Values, key string) (*float64, error) {
	raw := queryStr(q, key)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, badParam(key, "must be a number")
	}
	return &v, nil
}

// queryLimit applies the endpoint's default and clamps to its cap.
func queryLimit(q url.Values, fallback int, max int) (int, error) {
	raw := queryStr(q, "limit")
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, badParam("limit", "must be a positive integer")
	}
	if v > max {
		v = max
	}
	return v, nil
}

// rangeFilter reads key plus its _lt/_lte/_gt/_gte companions.
func rangeFilter(q url.Values, key string) massive.RangeFilter {
	return massive.RangeFilter{
		EQ:  queryStr(q, key),
		LT:  queryStr(q, key+"_lt"),
		LTE: queryStr(q, key+"_lte"),
		GT:  queryStr(q, key+"_gt"),
		GTE: queryStr(q, key+"_gte"),
	}
}

// floatRange reads the _gt/_gte/_lt/_lte companions of a numeric filter.
func floatRange(q url.Values, key string) (massive.FloatRange, error) {
	var f massive.FloatRange
	var err error

	if f.GT, err = queryFloat(q, key+"_gt"); err != nil {
		return massive.FloatRange{}, err
	}
	if f.GTE, err = queryFloat(q, key+"_gte"); err != nil {
		return massive.FloatRange{}, err
	}
	if f.LT, err = queryFloat(q, key+"_lt"); err != nil {
		return massive.FloatRange{}, err
	}
	if f.LTE, err = queryFloat(q, key+"_lte"); err != nil {
		return massive.FloatRange{}, err
	}

	return f, nil
}
