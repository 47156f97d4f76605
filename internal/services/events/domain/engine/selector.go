package engine

import (
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// Base category weights, before player-state adjustments.
const (
	weightOpportunity = 30
	weightThreat      = 15
	weightBonus       = 20
	weightRandom      = 15
	weightPolice      = 10
	weightGang        = 5

	weightThreatHot  = 25
	weightPoliceHot  = 20
	weightGangSenior = 15

	threatHeatThreshold = 50
	policeHeatThreshold = 30
	gangLevelThreshold  = 3
)

// categoryWeights returns the adjusted weight table for the snapshot. High
// heat makes threats and police pressure more likely; established players
// draw gang attention.
func categoryWeights(s player.Snapshot) map[catalog.Category]int {
	weights := map[catalog.Category]int{
		catalog.CategoryOpportunity: weightOpportunity,
		catalog.CategoryThreat:      weightThreat,
		catalog.CategoryBonus:       weightBonus,
		catalog.CategoryRandom:      weightRandom,
		catalog.CategoryPolice:      weightPolice,
		catalog.CategoryGang:        weightGang,
	}
	if s.Heat > threatHeatThreshold {
		weights[catalog.CategoryThreat] = weightThreatHot
	}
	if s.Heat > policeHeatThreshold {
		weights[catalog.CategoryPolice] = weightPoliceHot
	}
	if s.Level >= gangLevelThreshold {
		weights[catalog.CategoryGang] = weightGangSenior
	}
	return weights
}

// SelectCategory draws a category proportionally to the adjusted weights.
// The walk follows catalog.Categories() order so two engines fed the same
// RNG stream always agree.
func SelectCategory(s player.Snapshot, rng Rand) catalog.Category {
	weights := categoryWeights(s)
	total := 0
	for _, weight := range weights {
		total += weight
	}

	r := rng.Float64() * float64(total)
	categories := catalog.Categories()
	for _, category := range categories {
		r -= float64(weights[category])
		if r <= 0 {
			return category
		}
	}
	return categories[len(categories)-1]
}
