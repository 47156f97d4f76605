package catalog

import (
	"fmt"
	"time"

	"github.com/Shopify/go-lua"

	"github.com/hardluck-games/streetlife/internal/services/events/domain/player"
)

// LoadLua runs a designer-authored content script and returns the templates
// it declares. The script must return an array of template tables:
//
//	return {
//	  {
//	    id = "opportunity.valet_keys",
//	    title = "Valet Keys",
//	    description = "A distracted valet, an unattended board of keys.",
//	    category = "opportunity",
//	    effect = "cash",
//	    min_value = 100,
//	    max_value = 300,
//	    duration_minutes = 15,
//	    choices = {
//	      { label = "Take one", action = "accept", success_rate = 0.8 },
//	      { label = "Leave it", action = "decline" },
//	    },
//	  },
//	}
//
// Returned templates still pass through catalog validation, so a bad script
// fails at load time like any other malformed content.
func LoadLua(path string) ([]Template, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load lua content: %w", err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run lua content: %w", err)
	}

	if state.TypeOf(-1) != lua.TypeTable {
		state.Pop(1)
		return nil, fmt.Errorf("content script must return a table of templates")
	}

	entries := tableToSlice(state, -1)
	state.Pop(1)

	templates := make([]Template, 0, len(entries))
	for i, entry := range entries {
		fields, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("template %d is not a table", i+1)
		}
		template, err := templateFromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i+1, err)
		}
		templates = append(templates, template)
	}
	return templates, nil
}

func templateFromFields(fields map[string]any) (Template, error) {
	t := Template{
		ID:            stringField(fields, "id"),
		Title:         stringField(fields, "title"),
		Description:   stringField(fields, "description"),
		Category:      Category(stringField(fields, "category")),
		Effect:        player.Resource(stringField(fields, "effect")),
		MinValue:      intField(fields, "min_value"),
		MaxValue:      intField(fields, "max_value"),
		Duration:      time.Duration(intField(fields, "duration_minutes")) * time.Minute,
		AutoApply:     boolField(fields, "auto_apply"),
		LevelRequired: intField(fields, "level_required"),
		HeatRequired:  intField(fields, "heat_required"),
	}

	rawChoices, ok := fields["choices"]
	if !ok {
		return t, nil
	}
	entries, ok := rawChoices.([]any)
	if !ok {
		return Template{}, fmt.Errorf("choices must be an array")
	}
	for i, entry := range entries {
		choiceFields, ok := entry.(map[string]any)
		if !ok {
			return Template{}, fmt.Errorf("choice %d is not a table", i+1)
		}
		choice := Choice{
			Label:       stringField(choiceFields, "label"),
			Action:      ChoiceAction(stringField(choiceFields, "action")),
			SuccessRate: floatField(choiceFields, "success_rate"),
			Effect:      ChoiceEffect(stringField(choiceFields, "effect")),
		}
		// An accept with no authored rate always succeeds; an explicit
		// success_rate = 0 stays a guaranteed failure.
		if _, set := choiceFields["success_rate"]; !set && choice.Action == ActionAccept {
			choice.SuccessRate = 1.0
		}
		t.Choices = append(t.Choices, choice)
	}
	return t, nil
}

func stringField(fields map[string]any, key string) string {
	if value, ok := fields[key].(string); ok {
		return value
	}
	return ""
}

func intField(fields map[string]any, key string) int {
	switch value := fields[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	default:
		return 0
	}
}

func floatField(fields map[string]any, key string) float64 {
	switch value := fields[key].(type) {
	case int:
		return float64(value)
	case float64:
		return value
	default:
		return 0
	}
}

func boolField(fields map[string]any, key string) bool {
	if value, ok := fields[key].(bool); ok {
		return value
	}
	return false
}

// tableToSlice reads the array portion of the table at index.
func tableToSlice(state *lua.State, index int) []any {
	var output []any
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeNumber {
			output = append(output, luaToGo(state, -1))
		}
		state.Pop(1)
	}
	return output
}

func tableToMap(state *lua.State, index int) map[string]any {
	output := map[string]any{}
	if state.TypeOf(index) != lua.TypeTable {
		return output
	}

	index = state.AbsIndex(index)
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			output[key] = luaToGo(state, -1)
		}
		state.Pop(1)
	}
	return output
}

func luaToGo(state *lua.State, index int) any {
	switch state.TypeOf(index) {
	case lua.TypeString:
		value, _ := state.ToString(index)
		return value
	case lua.TypeNumber:
		value, _ := state.ToNumber(index)
		return normalizeNumber(value)
	case lua.TypeBoolean:
		return state.ToBoolean(index)
	case lua.TypeTable:
		if isArrayTable(state, index) {
			return tableToSlice(state, index)
		}
		return tableToMap(state, index)
	default:
		return nil
	}
}

// isArrayTable reports whether the table at index has only numeric keys.
func isArrayTable(state *lua.State, index int) bool {
	index = state.AbsIndex(index)
	hasNumeric := false
	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			state.Pop(2)
			return false
		}
		hasNumeric = true
		state.Pop(1)
	}
	return hasNumeric
}

func normalizeNumber(value float64) any {
	if value == float64(int(value)) {
		return int(value)
	}
	return value
}
