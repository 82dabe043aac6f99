package paginator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"product-catalog/pkg/paginator"
)

func TestNew(t *testing.T) {
	tcs := map[string]struct {
		page, size int
		total      int64
		wantPages  int
		wantFirst  bool
		wantLast   bool
	}{
		"empty":          {page: 0, size: 10, total: 0, wantPages: 0, wantFirst: true, wantLast: true},
		"single partial": {page: 0, size: 10, total: 3, wantPages: 1, wantFirst: true, wantLast: true},
		"exact fit":      {page: 1, size: 5, total: 10, wantPages: 2, wantFirst: false, wantLast: true},
		"middle":         {page: 1, size: 3, total: 10, wantPages: 4, wantFirst: false, wantLast: false},
		"last partial":   {page: 3, size: 3, total: 10, wantPages: 4, wantFirst: false, wantLast: true},
		"past the end":   {page: 7, size: 3, total: 10, wantPages: 4, wantFirst: false, wantLast: false},
		"huge size":      {page: 0, size: math.MaxInt, total: 3, wantPages: 1, wantFirst: true, wantLast: true},
		"huge total":     {page: 0, size: 2, total: math.MaxInt64, wantPages: math.MaxInt64/2 + 1, wantFirst: true, wantLast: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			p := paginator.New([]int{}, tc.page, tc.size, tc.total)
			assert.Equal(t, tc.wantPages, p.TotalPages)
			assert.Equal(t, tc.wantFirst, p.First)
			assert.Equal(t, tc.wantLast, p.Last)
			assert.Equal(t, tc.total, p.TotalElements)
		})
	}
}

func TestNewNilContent(t *testing.T) {
	p := paginator.New[string](nil, 0, 10, 0)
	assert.NotNil(t, p.Content)
	assert.Empty(t, p.Content)
}

func TestMap(t *testing.T) {
	p := paginator.New([]int{1, 2, 3}, 0, 3, 7)
	out := paginator.Map(p, func(v int) string { return string(rune('a' + v - 1)) })

	assert.Equal(t, []string{"a", "b", "c"}, out.Content)
	assert.Equal(t, p.TotalPages, out.TotalPages)
	assert.Equal(t, p.Last, out.Last)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, paginator.Offset(0, 10))
	assert.Equal(t, 20, paginator.Offset(2, 10))
	assert.Equal(t, 0, paginator.Offset(0, math.MaxInt))
	assert.Equal(t, math.MaxInt, paginator.Offset(1, math.MaxInt))
	assert.Equal(t, math.MaxInt, paginator.Offset(2, math.MaxInt/2+1))
	assert.Equal(t, math.MaxInt-1, paginator.Offset(2, math.MaxInt/2))
}
