package dto

import "strings"

const (
	defaultPageSize = 20
	maxPageSize     = 100
	// MaxPage keeps (page-1)*page_size far from int overflow.
	MaxPage = 1000000
)

// ListQuery is the common list query: pagination, search, ordering and
// equality filters. Filters holds every other query parameter verbatim;
// each repository decides which names it understands.
type ListQuery struct {
	Page     int               `form:"page"      binding:"omitempty,min=1,max=1000000"`
	PageSize int               `form:"page_size" binding:"omitempty,min=1"`
	Search   string            `form:"search"    binding:"omitempty,max=100"`
	Ordering string            `form:"ordering"  binding:"omitempty,max=200"`
	Filters  map[string]string `form:"-"`
}

// reserved query names that are never treated as filters.
var reserved = map[string]struct{}{
	"page":      {},
	"page_size": {},
	"search":    {},
	"ordering":  {},
}

// SetFilters copies non-reserved, non-empty query values into Filters.
// Repeated keys keep the first value.
func (q *ListQuery) SetFilters(values map[string][]string) {
	q.Filters = make(map[string]string, len(values))
	for k, vs := range values {
		if _, skip := reserved[k]; skip || len(vs) == 0 {
			continue
		}
		v := strings.TrimSpace(vs[0])
		if v == "" {
			continue
		}
		q.Filters[k] = v
	}
}

// GetPage page number, default 1, capped at MaxPage.
func (q *ListQuery) GetPage() int {
	switch {
	case q.Page <= 0:
		return 1
	case q.Page > MaxPage:
		return MaxPage
	default:
		return q.Page
	}
}

// GetPageSize page size, default 20, capped at 100.
func (q *ListQuery) GetPageSize() int {
	switch {
	case q.PageSize <= 0:
		return defaultPageSize
	case q.PageSize > maxPageSize:
		return maxPageSize
	default:
		return q.PageSize
	}
}

// GetOffset row offset of the requested page.
func (q *ListQuery) GetOffset() int {
	return (q.GetPage() - 1) * q.GetPageSize()
}

// Page is a service-level list result.
type Page[T any] struct {
	List     []T
	Total    int64
	Page     int
	PageSize int
}

// MessageResponse carries a human readable message.
type MessageResponse struct {
	Message string `json:"message"`
}
