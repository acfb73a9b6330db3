package evaluation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codetrial.net/internal/core/services/evaluation"
	"gitlab.com/codetrial.net/internal/domain"
)

func TestScore(t *testing.T) {
	cases := []struct {
		name   string
		passed int
		total  int
		want   int
	}{
		{"all passed", 5, 5, 100},
		{"none passed", 0, 4, 0},
		{"three quarters", 3, 4, 75},
		{"third rounds down", 1, 3, 33},
		{"two thirds rounds up", 2, 3, 67},
		{"half rounds up", 1, 8, 13},
		{"zero test cases", 0, 0, 0},
		{"negative total treated as empty", 3, -1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := &domain.ExecutionResult{Passed: tc.passed}
			assert.Equal(t, tc.want, evaluation.Score(result, tc.total))
		})
	}
}
