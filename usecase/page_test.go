package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"my-tube/usecase"
)

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name                          string
		page, limit                   int64
		wantPage, wantLimit, wantSkip int64
	}{
		{"defaults", 0, 0, 1, 10, 0},
		{"negative page", -3, 10, 1, 10, 0},
		{"first page", 1, 10, 1, 10, 0},
		{"third page", 3, 10, 3, 10, 20},
		{"limit capped", 1, 500, 1, 100, 0},
		{"custom limit", 2, 25, 2, 25, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit, skip := usecase.NormalizePage(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}

// 25 items at limit 10: pages 1 and 2 are full, page 3 holds the remaining 5,
// page 4 is past the end.
func TestNormalizePageWindows(t *testing.T) {
	const total = int64(25)

	window := func(page int64) int64 {
		_, limit, skip := usecase.NormalizePage(page, 10)
		if skip >= total {
			return 0
		}
		remaining := total - skip
		if remaining < limit {
			return remaining
		}
		return limit
	}

	assert.Equal(t, int64(10), window(1))
	assert.Equal(t, int64(10), window(2))
	assert.Equal(t, int64(5), window(3))
	assert.Equal(t, int64(0), window(4))
}
