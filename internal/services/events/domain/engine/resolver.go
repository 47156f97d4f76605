package engine

import (
	"strconv"
	"time"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/ledger"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

const (
	fightHealthPenalty = -20
	fightCashPenalty   = -500
	repLossPenalty     = -5
)

// Outcome is the terminal record of one resolved choice.
type Outcome struct {
	Result      ledger.Result
	ChoiceLabel string
	// Applied lists the realized resource changes, post-clamping. The
	// rolled effect value on the instance is never rewritten.
	Applied []player.Delta
}

// ResolveChoice resolves the player's pick on an active event and archives
// it. On any error no state is mutated: an expired or already-resolved
// event id reports EVENT_NOT_ACTIVE, a bad index reports
// EVENT_CHOICE_OUT_OF_RANGE.
func (e *Engine) ResolveChoice(led *ledger.Ledger, snap *player.Snapshot, eventID int64, choiceIndex int, now time.Time, rng Rand) (Outcome, error) {
	led.Sweep(now)

	instance, ok := led.FindActive(eventID)
	if !ok {
		return Outcome{}, domainerrors.Newf(domainerrors.CodeEventNotActive, map[string]string{
			"EventID": strconv.FormatInt(eventID, 10),
		})
	}
	if len(instance.Choices) == 0 {
		return Outcome{}, domainerrors.Newf(domainerrors.CodeEventNoChoices, map[string]string{
			"EventID": strconv.FormatInt(eventID, 10),
		})
	}
	if choiceIndex < 0 || choiceIndex >= len(instance.Choices) {
		return Outcome{}, domainerrors.Newf(domainerrors.CodeEventChoiceInvalid, map[string]string{
			"EventID":     strconv.FormatInt(eventID, 10),
			"ChoiceIndex": strconv.Itoa(choiceIndex),
		})
	}

	choice := instance.Choices[choiceIndex]
	result, applied := resolveEffect(snap, instance, choice, rng)
	if _, err := led.Archive(eventID, result, choice.Label); err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: result, ChoiceLabel: choice.Label, Applied: applied}, nil
}

// resolveEffect runs the resolution state machine. The pay and avoid tags
// override the action; everything else branches on accept versus decline.
func resolveEffect(snap *player.Snapshot, instance ledger.Instance, choice catalog.Choice, rng Rand) (ledger.Result, []player.Delta) {
	switch choice.Effect {
	case catalog.EffectPay:
		delta := player.Apply(snap, player.ResourceCash, -abs(instance.EffectValue))
		return ledger.ResultPaid, []player.Delta{{Resource: player.ResourceCash, Value: delta}}
	case catalog.EffectAvoid, catalog.EffectEscape:
		return ledger.ResultAvoided, nil
	}

	if choice.Action == catalog.ActionDecline {
		switch choice.Effect {
		case catalog.EffectHeat:
			delta := player.Apply(snap, player.ResourceHeat, abs(instance.EffectValue))
			return ledger.ResultIgnored, []player.Delta{{Resource: player.ResourceHeat, Value: delta}}
		case catalog.EffectRepLoss:
			delta := player.Apply(snap, player.ResourceReputation, repLossPenalty)
			return ledger.ResultDeclined, []player.Delta{{Resource: player.ResourceReputation, Value: delta}}
		default:
			// Declining an untagged event, threat included, is free.
			return ledger.ResultDeclined, nil
		}
	}

	if rng.Float64() < choice.SuccessRate {
		delta := player.Apply(snap, instance.Effect, instance.EffectValue)
		return ledger.ResultSuccess, []player.Delta{{Resource: instance.Effect, Value: delta}}
	}

	if choice.Effect == catalog.EffectFight {
		health := player.Apply(snap, player.ResourceHealth, fightHealthPenalty)
		cash := player.Apply(snap, player.ResourceCash, fightCashPenalty)
		return ledger.ResultFailed, []player.Delta{
			{Resource: player.ResourceHealth, Value: health},
			{Resource: player.ResourceCash, Value: cash},
		}
	}
	// A failed grab at a reward, cash or otherwise, just yields nothing.
	return ledger.ResultFailed, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
