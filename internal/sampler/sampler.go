// Package sampler picks commands with probability proportional to their
// total time impact, without replacement.
package sampler

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/anomredux/histime/internal/domain"
)

// DefaultSampleSize is how many commands are reported per metric.
const DefaultSampleSize = 8

// Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// NewSource returns a PCG-backed source. Seed 0 seeds from the clock;
// any other seed gives a reproducible sequence.
func NewSource(seed int64) Source {
	if seed == 0 {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1|1))
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Select draws up to n analyses weighted by OverallSeconds, without
// replacement, and returns them sorted ascending by OverallSeconds.
// analyses is not modified.
func Select(analyses []domain.TimeAnalysis, n int, rng Source) []domain.TimeAnalysis {
	pool := make([]domain.TimeAnalysis, len(analyses))
	copy(pool, analyses)

	selected := make([]domain.TimeAnalysis, 0, max(0, min(n, len(pool))))
	for len(selected) < n && len(pool) > 0 {
		i := ChooseIndex(pool, rng)
		selected = append(selected, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].OverallSeconds() < selected[j].OverallSeconds()
	})
	return selected
}

// ChooseIndex performs one inverse-CDF draw over the cumulative
// OverallSeconds of analyses. If no cumulative value reaches the draw, the
// last index is returned. analyses must not be empty.
func ChooseIndex(analyses []domain.TimeAnalysis, rng Source) int {
	cumulative := make([]float64, len(analyses))
	var total float64
	for i, a := range analyses {
		total += a.OverallSeconds()
		cumulative[i] = total
	}

	draw := rng.Float64() * total
	for i, c := range cumulative {
		if draw <= c {
			return i
		}
	}
	return len(analyses) - 1
}
