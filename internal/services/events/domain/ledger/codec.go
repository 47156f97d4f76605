package ledger

import (
	"encoding/json"
	"strconv"
	"time"

	domainerrors "github.com/hardluck-games/streetlife/internal/errors"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/catalog"
	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// SchemaVersion is the current on-disk ledger format. Decode refuses
// payloads written by a newer build rather than guessing at their shape.
const SchemaVersion = 1

type persistedLedger struct {
	SchemaVersion    int                 `json:"schema_version"`
	PlayerID         string              `json:"player_id"`
	Active           []persistedInstance `json:"active,omitempty"`
	History          []persistedInstance `json:"history,omitempty"`
	LastGenerationAt int64               `json:"last_generation_at_ms,omitempty"`
	NextID           int64               `json:"next_id"`
}

type persistedInstance struct {
	ID          int64             `json:"id"`
	TemplateID  string            `json:"template_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Category    string            `json:"category"`
	Effect      string            `json:"effect"`
	EffectValue int               `json:"effect_value"`
	Choices     []persistedChoice `json:"choices,omitempty"`
	AutoApply   bool              `json:"auto_apply,omitempty"`
	CreatedAt   int64             `json:"created_at_ms"`
	ExpiresAt   int64             `json:"expires_at_ms,omitempty"`
	Result      string            `json:"result,omitempty"`
	ChoiceLabel string            `json:"choice_label,omitempty"`
}

type persistedChoice struct {
	Label       string  `json:"label"`
	Action      string  `json:"action"`
	SuccessRate float64 `json:"success_rate,omitempty"`
	Effect      string  `json:"effect,omitempty"`
}

// Encode serializes the ledger into the versioned persistence envelope.
// Timestamps are stored as millisecond UTC epochs.
func Encode(l *Ledger) ([]byte, error) {
	out := persistedLedger{
		SchemaVersion:    SchemaVersion,
		PlayerID:         l.PlayerID,
		Active:           encodeInstances(l.Active),
		History:          encodeInstances(l.History),
		LastGenerationAt: encodeTime(l.LastGenerationAt),
		NextID:           l.NextID,
	}
	payload, err := json.Marshal(out)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodePersistenceFailure, err)
	}
	return payload, nil
}

// Decode parses a persisted ledger payload.
func Decode(payload []byte) (*Ledger, error) {
	var in persistedLedger
	if err := json.Unmarshal(payload, &in); err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodePersistenceFailure, err)
	}
	if in.SchemaVersion != SchemaVersion {
		return nil, domainerrors.Newf(domainerrors.CodeSchemaUnsupported, map[string]string{
			"Version": strconv.Itoa(in.SchemaVersion),
		})
	}
	l := &Ledger{
		PlayerID:         in.PlayerID,
		Active:           decodeInstances(in.Active),
		History:          decodeInstances(in.History),
		LastGenerationAt: decodeTime(in.LastGenerationAt),
		NextID:           in.NextID,
	}
	if l.NextID == 0 {
		l.NextID = 1
	}
	return l, nil
}

func encodeInstances(instances []Instance) []persistedInstance {
	if len(instances) == 0 {
		return nil
	}
	out := make([]persistedInstance, len(instances))
	for i, instance := range instances {
		out[i] = persistedInstance{
			ID:          instance.ID,
			TemplateID:  instance.TemplateID,
			Title:       instance.Title,
			Description: instance.Description,
			Category:    string(instance.Category),
			Effect:      string(instance.Effect),
			EffectValue: instance.EffectValue,
			Choices:     encodeChoices(instance.Choices),
			AutoApply:   instance.AutoApply,
			CreatedAt:   encodeTime(instance.CreatedAt),
			ExpiresAt:   encodeTime(instance.ExpiresAt),
			Result:      string(instance.Result),
			ChoiceLabel: instance.ChoiceLabel,
		}
	}
	return out
}

func decodeInstances(instances []persistedInstance) []Instance {
	if len(instances) == 0 {
		return nil
	}
	out := make([]Instance, len(instances))
	for i, instance := range instances {
		out[i] = Instance{
			ID:          instance.ID,
			TemplateID:  instance.TemplateID,
			Title:       instance.Title,
			Description: instance.Description,
			Category:    catalog.Category(instance.Category),
			Effect:      player.Resource(instance.Effect),
			EffectValue: instance.EffectValue,
			Choices:     decodeChoices(instance.Choices),
			AutoApply:   instance.AutoApply,
			CreatedAt:   decodeTime(instance.CreatedAt),
			ExpiresAt:   decodeTime(instance.ExpiresAt),
			Result:      Result(instance.Result),
			ChoiceLabel: instance.ChoiceLabel,
		}
	}
	return out
}

func encodeChoices(choices []catalog.Choice) []persistedChoice {
	if len(choices) == 0 {
		return nil
	}
	out := make([]persistedChoice, len(choices))
	for i, choice := range choices {
		out[i] = persistedChoice{
			Label:       choice.Label,
			Action:      string(choice.Action),
			SuccessRate: choice.SuccessRate,
			Effect:      string(choice.Effect),
		}
	}
	return out
}

func decodeChoices(choices []persistedChoice) []catalog.Choice {
	if len(choices) == 0 {
		return nil
	}
	out := make([]catalog.Choice, len(choices))
	for i, choice := range choices {
		out[i] = catalog.Choice{
			Label:       choice.Label,
			Action:      catalog.ChoiceAction(choice.Action),
			SuccessRate: choice.SuccessRate,
			Effect:      catalog.ChoiceEffect(choice.Effect),
		}
	}
	return out
}

func encodeTime(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func decodeTime(ms int64) time.Time {
	if ms == 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms).UTC()
}
