package forestfire

import (
	"strconv"

	"forestfire/internal/core"
)

// Parameters reports the run configuration and the statistics of the frame
// currently on display.
func (r *Replay) Parameters() core.ParameterSnapshot {
	census := r.Census()
	groups := []core.ParameterGroup{
		{
			Name: "Forest",
			Params: []core.Parameter{
				intParam("n", "Size", r.cfg.Size),
				floatParam("p", "Density", r.cfg.Density),
				intParam("t", "Step budget", r.cfg.Steps),
				int64Param("seed", "Seed", r.seed),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("frame", "Frame", r.frame),
				intParam("steps", "Steps run", r.steps),
				intParam("burning", "Burning", census.Burning),
				intParam("burned", "Burned", census.Burned),
				intParam("unignited", "Intact", census.Unignited),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (r *Replay) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "n", Label: "Size", Type: core.ParamTypeInt, Step: 5, Min: 1, HasMin: true, Max: 400, HasMax: true},
		{Key: "p", Label: "Density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "t", Label: "Step budget", Type: core.ParamTypeInt, Step: 5, Min: 0, HasMin: true},
	}
}

// SetIntParameter updates n or t and re-runs with the current seed.
func (r *Replay) SetIntParameter(key string, value int) bool {
	cfg := r.cfg
	switch key {
	case "n":
		cfg.Size = value
	case "t":
		cfg.Steps = value
	default:
		return false
	}
	return r.apply(cfg)
}

// SetFloatParameter updates p and re-runs with the current seed.
func (r *Replay) SetFloatParameter(key string, value float64) bool {
	if key != "p" {
		return false
	}
	cfg := r.cfg
	cfg.Density = value
	return r.apply(cfg)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
