package repository

import (
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/Yasheenyash33/training-tracker-Dash/pkg/errors"
)

// FilterKind is how a filter value is parsed before it reaches SQL.
type FilterKind int

const (
	FilterString FilterKind = iota
	FilterInt
	FilterBool
)

// ListSpec declares what a resource's list endpoint understands.
// Anything not declared is ignored.
type ListSpec struct {
	Filters  map[string]FilterKind // query name == column name
	Search   []string              // text columns OR-ed in a LIKE
	Ordering []string              // sortable columns
	Default  []string              // default ordering, "-" prefix for DESC
}

// ListParams is the repository view of a list request.
type ListParams struct {
	Offset   int
	Limit    int
	Search   string
	Ordering string
	Filters  map[string]string
}

// Scope narrows a query, e.g. to the caller's own rows.
type Scope func(db *gorm.DB) *gorm.DB

// applyFilters adds equality filters and the search clause.
func (s ListSpec) applyFilters(db *gorm.DB, p ListParams) (*gorm.DB, error) {
	for name, raw := range p.Filters {
		kind, ok := s.Filters[name]
		if !ok {
			continue
		}
		col := clause.Column{Name: name}
		switch kind {
		case FilterInt:
			v, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return nil, apperrors.NewFieldError(name, "enter a whole number")
			}
			db = db.Where(clause.Eq{Column: col, Value: v})
		case FilterBool:
			v, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, apperrors.NewFieldError(name, "enter true or false")
			}
			db = db.Where(clause.Eq{Column: col, Value: v})
		default:
			db = db.Where(clause.Eq{Column: col, Value: raw})
		}
	}

	if term := strings.TrimSpace(p.Search); term != "" && len(s.Search) > 0 {
		pattern := "%" + strings.ToLower(term) + "%"
		or := make([]clause.Expression, 0, len(s.Search))
		for _, c := range s.Search {
			or = append(or, clause.Expr{
				SQL:  "LOWER(?) LIKE ?",
				Vars: []interface{}{clause.Column{Name: c}, pattern},
			})
		}
		db = db.Where(clause.Or(or...))
	}
	return db, nil
}

// orderBy resolves the ordering parameter against the whitelist and falls
// back to the default. id is always the final tie breaker.
func (s ListSpec) orderBy(raw string) clause.OrderBy {
	var cols []clause.OrderByColumn
	seen := map[string]bool{}

	add := func(term string, allowed func(string) bool) {
		term = strings.TrimSpace(term)
		desc := strings.HasPrefix(term, "-")
		name := strings.TrimPrefix(term, "-")
		if name == "" || seen[name] || !allowed(name) {
			return
		}
		seen[name] = true
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: name}, Desc: desc})
	}

	for _, term := range strings.Split(raw, ",") {
		add(term, s.sortable)
	}
	if len(cols) == 0 {
		for _, term := range s.Default {
			add(term, func(string) bool { return true })
		}
	}
	if !seen["id"] {
		cols = append(cols, clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
	return clause.OrderBy{Columns: cols}
}

func (s ListSpec) sortable(name string) bool {
	for _, c := range s.Ordering {
		if c == name {
			return true
		}
	}
	return false
}
