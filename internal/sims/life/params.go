package life

import (
	"strconv"

	"lifewall/internal/core"
)

// Parameters publishes the rule and run counters for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				intParam("workers", "Workers", l.workers),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				stringParam("rule", "Rule", l.rule.String()),
				stringParam("born", "Born", l.rule.Born.String()),
				stringParam("survive", "Survive", l.rule.Survive.String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				stringParam("state", "State", l.state.String()),
				intParam("generation", "Generation", l.gen),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
