package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListQuery_Paging(t *testing.T) {
	tests := []struct {
		name           string
		q              ListQuery
		page, size, at int
	}{
		{"defaults", ListQuery{}, 1, 20, 0},
		{"second page", ListQuery{Page: 2, PageSize: 10}, 2, 10, 10},
		{"size capped", ListQuery{Page: 3, PageSize: 500}, 3, 100, 200},
		{"page capped", ListQuery{Page: 1 << 62, PageSize: 100}, MaxPage, 100, (MaxPage - 1) * 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.page, tt.q.GetPage())
			assert.Equal(t, tt.size, tt.q.GetPageSize())
			assert.Equal(t, tt.at, tt.q.GetOffset())
		})
	}
}

func TestListQuery_SetFilters(t *testing.T) {
	var q ListQuery
	q.SetFilters(map[string][]string{
		"page":  {"2"},
		"role":  {" trainer ", "admin"},
		"batch": {""},
	})
	assert.Equal(t, map[string]string{"role": "trainer"}, q.Filters)
}
