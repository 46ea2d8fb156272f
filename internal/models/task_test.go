package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskFilter_PageLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit uint64
		want  uint64
	}{
		{"Should default an unset limit", 0, DefaultTaskLimit},
		{"Should keep a limit in range", 25, 25},
		{"Should keep the maximum", MaxTaskLimit, MaxTaskLimit},
		{"Should clamp an oversized limit", 500, MaxTaskLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TaskFilter{Limit: tc.limit}.PageLimit())
		})
	}
}
