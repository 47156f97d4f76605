package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

func TestCategoryWeightAdjustments(t *testing.T) {
	tests := []struct {
		name string
		snap player.Snapshot
		want map[catalog.Category]int
	}{
		{
			name: "baseline",
			snap: player.Snapshot{},
			want: map[catalog.Category]int{
				catalog.CategoryOpportunity: 30,
				catalog.CategoryThreat:      15,
				catalog.CategoryBonus:       20,
				catalog.CategoryRandom:      15,
				catalog.CategoryPolice:      10,
				catalog.CategoryGang:        5,
			},
		},
		{
			name: "high heat raises threat and police",
			snap: player.Snapshot{Heat: 60},
			want: map[catalog.Category]int{
				catalog.CategoryOpportunity: 30,
				catalog.CategoryThreat:      25,
				catalog.CategoryBonus:       20,
				catalog.CategoryRandom:      15,
				catalog.CategoryPolice:      20,
				catalog.CategoryGang:        5,
			},
		},
		{
			name: "mid heat raises police only",
			snap: player.Snapshot{Heat: 40},
			want: map[catalog.Category]int{
				catalog.CategoryOpportunity: 30,
				catalog.CategoryThreat:      15,
				catalog.CategoryBonus:       20,
				catalog.CategoryRandom:      15,
				catalog.CategoryPolice:      20,
				catalog.CategoryGang:        5,
			},
		},
		{
			name: "level three draws gang attention",
			snap: player.Snapshot{Level: 3},
			want: map[catalog.Category]int{
				catalog.CategoryOpportunity: 30,
				catalog.CategoryThreat:      15,
				catalog.CategoryBonus:       20,
				catalog.CategoryRandom:      15,
				catalog.CategoryPolice:      10,
				catalog.CategoryGang:        15,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := categoryWeights(tc.snap)
			for category, want := range tc.want {
				if got[category] != want {
					t.Fatalf("%s weight = %d, want %d", category, got[category], want)
				}
			}
		})
	}
}

func TestSelectCategoryWalkOrder(t *testing.T) {
	// Baseline total is 95; scripted draws pin the walk at its boundaries.
	snap := player.Snapshot{}
	tests := []struct {
		draw float64
		want catalog.Category
	}{
		{0, catalog.CategoryOpportunity},
		{29.0 / 95, catalog.CategoryOpportunity},
		{31.0 / 95, catalog.CategoryThreat},
		{46.0 / 95, catalog.CategoryBonus},
		{66.0 / 95, catalog.CategoryRandom},
		{81.0 / 95, catalog.CategoryPolice},
		{91.0 / 95, catalog.CategoryGang},
	}

	for _, tc := range tests {
		rng := &stubRand{t: t, floats: []float64{tc.draw}}
		if got := SelectCategory(snap, rng); got != tc.want {
			t.Fatalf("draw %v selected %q, want %q", tc.draw, got, tc.want)
		}
	}
}

func TestSelectCategoryDistribution(t *testing.T) {
	const draws = 20000
	snap := player.Snapshot{}
	weights := categoryWeights(snap)
	total := 0
	for _, w := range weights {
		total += w
	}

	rng := rand.New(rand.NewSource(42))
	counts := make(map[catalog.Category]int)
	for i := 0; i < draws; i++ {
		counts[SelectCategory(snap, rng)]++
	}

	for _, category := range catalog.Categories() {
		want := float64(weights[category]) / float64(total)
		got := float64(counts[category]) / draws
		if math.Abs(got-want) > 0.015 {
			t.Fatalf("%s frequency = %.4f, want %.4f within 0.015", category, got, want)
		}
	}
}
