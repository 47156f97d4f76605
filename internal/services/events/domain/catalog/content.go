package catalog

import (
	"time"

	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// builtinTemplates is the shipped event content, grouped by category.
// Display strings are opaque to the engine; only ids, gates, ranges, and
// choice tags carry mechanics.
var builtinTemplates = []Template{
	// Opportunities
	{
		ID:          "opportunity.quick_job",
		Title:       "Quick Job",
		Description: "A contact needs a package moved across town before sunrise. Easy money, few questions.",
		Category:    CategoryOpportunity,
		Effect:      player.ResourceCash,
		MinValue:    150,
		MaxValue:    400,
		Duration:    30 * time.Minute,
		Choices: []Choice{
			{Label: "Take the job", Action: ActionAccept, SuccessRate: 0.85},
			{Label: "Not tonight", Action: ActionDecline},
		},
	},
	{
		ID:            "opportunity.fence_deal",
		Title:         "Fence Deal",
		Description:   "The fence on 9th is paying over the odds for merchandise, today only.",
		Category:      CategoryOpportunity,
		Effect:        player.ResourceCash,
		MinValue:      300,
		MaxValue:      900,
		Duration:      20 * time.Minute,
		LevelRequired: 2,
		Choices: []Choice{
			{Label: "Sell the lot", Action: ActionAccept, SuccessRate: 0.7},
			{Label: "Hold your stock", Action: ActionDecline},
		},
	},
	{
		ID:            "opportunity.big_score",
		Title:         "The Big Score",
		Description:   "A crew is one pair of hands short for a warehouse job. Serious payout, serious exposure.",
		Category:      CategoryOpportunity,
		Effect:        player.ResourceCash,
		MinValue:      1500,
		MaxValue:      4000,
		Duration:      15 * time.Minute,
		LevelRequired: 4,
		Choices: []Choice{
			{Label: "You're in", Action: ActionAccept, SuccessRate: 0.5, Effect: EffectFight},
			{Label: "Walk away", Action: ActionDecline},
		},
	},

	// Threats
	{
		ID:          "threat.shakedown",
		Title:       "Shakedown",
		Description: "Two heavies block the alley. They want a cut of whatever you're carrying.",
		Category:    CategoryThreat,
		Effect:      player.ResourceCash,
		MinValue:    -400,
		MaxValue:    -100,
		Duration:    10 * time.Minute,
		Choices: []Choice{
			{Label: "Pay them off", Action: ActionAccept, SuccessRate: 1.0, Effect: EffectPay},
			{Label: "Stand your ground", Action: ActionAccept, SuccessRate: 0.45, Effect: EffectFight},
			{Label: "Slip away", Action: ActionDecline, Effect: EffectEscape},
		},
	},
	{
		ID:            "threat.debt_collector",
		Title:         "Debt Collector",
		Description:   "Word is you owe money to the wrong people, and they sent someone patient.",
		Category:      CategoryThreat,
		Effect:        player.ResourceCash,
		MinValue:      -600,
		MaxValue:      -200,
		Duration:      25 * time.Minute,
		LevelRequired: 2,
		Choices: []Choice{
			{Label: "Settle the debt", Action: ActionAccept, SuccessRate: 1.0, Effect: EffectPay},
			{Label: "Ignore it", Action: ActionDecline, Effect: EffectHeat},
		},
	},

	// Bonuses
	{
		ID:          "bonus.lucky_find",
		Title:       "Lucky Find",
		Description: "A roll of bills in a coat pocket nobody is coming back for.",
		Category:    CategoryBonus,
		Effect:      player.ResourceCash,
		MinValue:    50,
		MaxValue:    250,
		AutoApply:   true,
	},
	{
		ID:          "bonus.old_favor",
		Title:       "An Old Favor",
		Description: "Someone you helped years ago finally pays it back, with interest.",
		Category:    CategoryBonus,
		Effect:      player.ResourceReputation,
		MinValue:    2,
		MaxValue:    8,
		AutoApply:   true,
	},
	{
		ID:          "bonus.quiet_week",
		Title:       "Quiet Week",
		Description: "Nobody is looking for you. It feels almost strange.",
		Category:    CategoryBonus,
		Effect:      player.ResourceHeat,
		MinValue:    -15,
		MaxValue:    -5,
		AutoApply:   true,
	},

	// Random encounters
	{
		ID:          "random.street_brawl",
		Title:       "Street Brawl",
		Description: "A fight spills out of the bar right in front of you.",
		Category:    CategoryRandom,
		Effect:      player.ResourceXP,
		MinValue:    10,
		MaxValue:    40,
		Duration:    10 * time.Minute,
		Choices: []Choice{
			{Label: "Wade in", Action: ActionAccept, SuccessRate: 0.6, Effect: EffectFight},
			{Label: "Keep walking", Action: ActionDecline},
		},
	},
	{
		ID:          "random.pickup_game",
		Title:       "Pickup Game",
		Description: "Dice on the corner. The pot is fat and the players are drunk.",
		Category:    CategoryRandom,
		Effect:      player.ResourceCash,
		MinValue:    100,
		MaxValue:    500,
		Duration:    15 * time.Minute,
		Choices: []Choice{
			{Label: "Roll", Action: ActionAccept, SuccessRate: 0.5},
			{Label: "Pass", Action: ActionDecline},
		},
	},

	// Police pressure
	{
		ID:           "police.patrol_stop",
		Title:        "Patrol Stop",
		Description:  "A cruiser slows beside you. The officer wants a word.",
		Category:     CategoryPolice,
		Effect:       player.ResourceHeat,
		MinValue:     10,
		MaxValue:     25,
		Duration:     10 * time.Minute,
		HeatRequired: 20,
		Choices: []Choice{
			{Label: "Talk your way out", Action: ActionAccept, SuccessRate: 0.65, Effect: EffectAvoid},
			{Label: "Run", Action: ActionDecline, Effect: EffectHeat},
		},
	},
	{
		ID:           "police.informant_tip",
		Title:        "Informant Tip",
		Description:  "A friendly desk sergeant can lose your file, for a price.",
		Category:     CategoryPolice,
		Effect:       player.ResourceHeat,
		MinValue:     -30,
		MaxValue:     -10,
		Duration:     30 * time.Minute,
		HeatRequired: 40,
		Choices: []Choice{
			{Label: "Pay the price", Action: ActionAccept, SuccessRate: 1.0, Effect: EffectPay},
			{Label: "Too risky", Action: ActionDecline},
		},
	},

	// Gang offers
	{
		ID:            "gang.recruitment",
		Title:         "Recruitment",
		Description:   "The Eastside crew has noticed you. They are offering colors and a cut.",
		Category:      CategoryGang,
		Effect:        player.ResourceReputation,
		MinValue:      5,
		MaxValue:      15,
		Duration:      45 * time.Minute,
		LevelRequired: 3,
		Choices: []Choice{
			{Label: "Join up", Action: ActionAccept, SuccessRate: 0.9},
			{Label: "Stay independent", Action: ActionDecline, Effect: EffectRepLoss},
		},
	},
	{
		ID:            "gang.turf_war",
		Title:         "Turf War",
		Description:   "Two crews are about to collide over the market blocks, and both want you on side.",
		Category:      CategoryGang,
		Effect:        player.ResourceReputation,
		MinValue:      10,
		MaxValue:      25,
		Duration:      20 * time.Minute,
		LevelRequired: 3,
		HeatRequired:  30,
		Choices: []Choice{
			{Label: "Pick a side", Action: ActionAccept, SuccessRate: 0.55, Effect: EffectFight},
			{Label: "Sit this one out", Action: ActionDecline},
		},
	},
}

var builtin = mustBuiltin()

func mustBuiltin() *Catalog {
	c, err := New(builtinTemplates)
	if err != nil {
		panic(err)
	}
	return c
}

// Builtin returns the shipped catalog. The returned catalog is shared and
// read-only.
func Builtin() *Catalog {
	return builtin
}
