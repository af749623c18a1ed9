package api

import (
	"net/url"
	"strconv"
)

// ListParams parámetros comunes de los listados del backend
// ({q?, page?, limit?, ...filtros}).
type ListParams struct {
	Query   string
	Page    int
	Limit   int
	Filters map[string]string
}

// values serializa los parámetros como query string.
func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Query != "" {
		v.Set("q", p.Query)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	for k, val := range p.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}
