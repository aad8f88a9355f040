package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagination_HasMore(t *testing.T) {
	tests := []struct {
		name string
		p    Pagination
		want bool
	}{
		{name: "middle page", p: Pagination{Page: 2, Limit: 10, Total: 25}, want: true},
		{name: "last page", p: Pagination{Page: 3, Limit: 10, Total: 25}, want: false},
		{name: "exact fit", p: Pagination{Page: 2, Limit: 10, Total: 20}, want: false},
		{name: "single short page", p: Pagination{Page: 1, Limit: 10, Total: 3}, want: false},
		{name: "empty", p: Pagination{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.HasMore())
		})
	}
}
