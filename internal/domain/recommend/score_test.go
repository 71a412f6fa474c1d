package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeScore(t *testing.T) {
	cases := []struct {
		name     string
		matched  int
		required int
		want     string
	}{
		{"two of three", 2, 3, "66.7"},
		{"one of three", 1, 3, "33.3"},
		{"all", 2, 2, "100.0"},
		{"none", 0, 4, "0.0"},
		{"empty requirement", 0, 0, "0.0"},
		{"empty requirement with stray match", 3, 0, "0.0"},
		{"half up at boundary", 1, 16, "6.3"},
		{"one of seven", 1, 7, "14.3"},
		{"five of eight", 5, 8, "62.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeScore(tc.matched, tc.required).String())
		})
	}
}

func TestComputeScore_Range(t *testing.T) {
	for r := 0; r <= 40; r++ {
		for m := 0; m <= r; m++ {
			s := ComputeScore(m, r)
			assert.GreaterOrEqual(t, s, MinScore)
			assert.LessOrEqual(t, s, MaxScore)
			if r > 0 && m == r {
				assert.Equal(t, MaxScore, s)
			}
		}
	}
}

func TestScore_Float64(t *testing.T) {
	assert.InDelta(t, 66.7, Score(667).Float64(), 1e-9)
	assert.InDelta(t, 100.0, MaxScore.Float64(), 1e-9)
}
