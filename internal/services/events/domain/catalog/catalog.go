// Package catalog holds the static, versioned definitions of life-event
// archetypes and the eligibility gates that decide which of them a player
// snapshot may draw.
package catalog

import (
	"time"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// Category groups templates for weighted selection.
type Category string

const (
	CategoryOpportunity Category = "opportunity"
	CategoryThreat      Category = "threat"
	CategoryBonus       Category = "bonus"
	CategoryRandom      Category = "random"
	CategoryPolice      Category = "police"
	CategoryGang        Category = "gang"
)

// Categories returns all categories in the fixed, deterministic order used
// by the weighted selector walk. Two engines fed the same RNG stream must
// agree on a pick, so this order is part of the replay contract.
func Categories() []Category {
	return []Category{
		CategoryOpportunity,
		CategoryThreat,
		CategoryBonus,
		CategoryRandom,
		CategoryPolice,
		CategoryGang,
	}
}

// Valid reports whether c names a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryOpportunity, CategoryThreat, CategoryBonus, CategoryRandom, CategoryPolice, CategoryGang:
		return true
	default:
		return false
	}
}

// ChoiceAction is the player-facing verb of a choice.
type ChoiceAction string

const (
	ActionAccept  ChoiceAction = "accept"
	ActionDecline ChoiceAction = "decline"
)

// ChoiceEffect shapes which penalty or avoidance branch the resolver takes.
// Untagged choices use the template's base effect.
type ChoiceEffect string

const (
	EffectNone    ChoiceEffect = ""
	EffectAvoid   ChoiceEffect = "avoid"
	EffectPay     ChoiceEffect = "pay"
	EffectFight   ChoiceEffect = "fight"
	EffectEscape  ChoiceEffect = "escape"
	EffectHeat    ChoiceEffect = "heat"
	EffectRepLoss ChoiceEffect = "rep_loss"
)

// Choice is one selectable option on an interactive template.
type Choice struct {
	Label string
	// Action is accept or decline.
	Action ChoiceAction
	// SuccessRate is the probability in [0,1] that an accept succeeds.
	// Zero means the accept always fails; Go-authored content states the
	// rate explicitly, and the Lua loader defaults an absent field to 1.0.
	SuccessRate float64
	Effect      ChoiceEffect
}

// Template is an immutable, catalog-defined event archetype.
type Template struct {
	// ID is a stable content key, unique within the catalog.
	ID          string
	Title       string
	Description string
	Category    Category
	// Effect is the resource the event touches.
	Effect player.Resource
	// MinValue and MaxValue bound the instantiated effect magnitude,
	// inclusive. Negative values are costs.
	MinValue int
	MaxValue int
	// Duration is the lifetime of a non-auto-apply instance.
	Duration time.Duration
	// AutoApply events resolve immediately on generation with no choice.
	AutoApply bool
	Choices   []Choice
	// LevelRequired and HeatRequired are optional minimum-value gates;
	// zero means no gate.
	LevelRequired int
	HeatRequired  int
}

// Eligible reports whether the snapshot passes the template's gates.
// It is pure and total: it never fails, whatever the inputs.
func Eligible(t Template, s player.Snapshot) bool {
	if t.LevelRequired > 0 && s.Level < t.LevelRequired {
		return false
	}
	if t.HeatRequired > 0 && s.Heat < t.HeatRequired {
		return false
	}
	return true
}

// Catalog is a read-only set of templates grouped by category.
type Catalog struct {
	byCategory map[Category][]Template
	count      int
}

// New validates templates and builds a catalog. Malformed content fails
// fast here so bad data cannot silently stall generation mid-game.
func New(templates []Template) (*Catalog, error) {
	byCategory := make(map[Category][]Template)
	seen := make(map[string]struct{}, len(templates))
	for _, t := range templates {
		if err := validateTemplate(t); err != nil {
			return nil, err
		}
		if _, dup := seen[t.ID]; dup {
			return nil, domainerrors.Newf(domainerrors.CodeCatalogDuplicateTemplate, map[string]string{"TemplateID": t.ID})
		}
		seen[t.ID] = struct{}{}
		byCategory[t.Category] = append(byCategory[t.Category], t)
	}
	return &Catalog{byCategory: byCategory, count: len(templates)}, nil
}

// Templates returns the templates of one category in declaration order.
func (c *Catalog) Templates(category Category) []Template {
	if c == nil {
		return nil
	}
	return c.byCategory[category]
}

// EligibleTemplates filters one category's templates by the snapshot gates.
func (c *Catalog) EligibleTemplates(category Category, s player.Snapshot) []Template {
	templates := c.Templates(category)
	eligible := make([]Template, 0, len(templates))
	for _, t := range templates {
		if Eligible(t, s) {
			eligible = append(eligible, t)
		}
	}
	return eligible
}

// Len returns the total number of templates in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return c.count
}

// Merge returns a new catalog containing the receiver's templates plus the
// given extras, re-validated as a whole.
func (c *Catalog) Merge(extra []Template) (*Catalog, error) {
	merged := make([]Template, 0, c.Len()+len(extra))
	for _, category := range Categories() {
		merged = append(merged, c.Templates(category)...)
	}
	merged = append(merged, extra...)
	return New(merged)
}

func validateTemplate(t Template) error {
	meta := map[string]string{"TemplateID": t.ID}
	if t.ID == "" || t.Title == "" {
		return domainerrors.Newf(domainerrors.CodeCatalogTitleEmpty, meta)
	}
	if !t.Category.Valid() {
		meta["Category"] = string(t.Category)
		return domainerrors.Newf(domainerrors.CodeCatalogUnknownCategory, meta)
	}
	if !t.Effect.Valid() {
		meta["Resource"] = string(t.Effect)
		return domainerrors.Newf(domainerrors.CodeCatalogUnknownResource, meta)
	}
	if t.MinValue > t.MaxValue {
		return domainerrors.Newf(domainerrors.CodeCatalogInvalidValueRange, meta)
	}
	// XP is cumulative and never subtracted, so negative XP templates are
	// content bugs rather than clamp cases.
	if t.Effect == player.ResourceXP && t.MinValue < 0 {
		return domainerrors.Newf(domainerrors.CodeCatalogInvalidValueRange, meta)
	}
	if t.AutoApply {
		if len(t.Choices) > 0 {
			return domainerrors.Newf(domainerrors.CodeCatalogAutoApplyChoices, meta)
		}
	} else if t.Duration <= 0 {
		return domainerrors.Newf(domainerrors.CodeCatalogInvalidDuration, meta)
	}
	for _, choice := range t.Choices {
		if choice.Label == "" {
			return domainerrors.Newf(domainerrors.CodeCatalogInvalidChoice, meta)
		}
		if choice.Action != ActionAccept && choice.Action != ActionDecline {
			return domainerrors.Newf(domainerrors.CodeCatalogInvalidChoice, meta)
		}
		if choice.SuccessRate < 0 || choice.SuccessRate > 1 {
			return domainerrors.Newf(domainerrors.CodeCatalogInvalidSuccessRate, meta)
		}
	}
	return nil
}
