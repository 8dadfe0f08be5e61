// Package query turns listing query parameters into a bounded,
// offset-paginated filter. Out-of-range values are clamped, never rejected.
package query

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page      int
	Limit     int
	Offset    int
	Search    string
	ProgramID *uint64
}

// Parse reads page/limit/search/programID from raw query values.
// page: default 1, floor 1. limit: default 10, floor 1, ceiling 100.
// Non-numeric input clamps to the floor.
func Parse(values url.Values) Params {
	page := clamp(values.Get("page"), DefaultPage)
	limit := clamp(values.Get("limit"), DefaultLimit)
	if limit > MaxLimit {
		limit = MaxLimit
	}

	p := Params{
		Page:   page,
		Limit:  limit,
		Offset: (page - 1) * limit,
		Search: values.Get("search"),
	}
	if raw := values.Get("programID"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 64); err == nil && id > 0 {
			p.ProgramID = &id
		}
	}
	return p
}

func clamp(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// TotalPages is ceil(total/limit) for the list meta envelope.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
