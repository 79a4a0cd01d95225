// Command tune searches for detection thresholds in config.DetectionConfig
// that minimize misclassification against synthetic maze fixtures, using
// CMA-ES.
package main

import "github.com/kriolyth/gv-subway/config"

// ParamSpec defines a single optimizable detection threshold.
type ParamSpec struct {
	Name    string
	Min     float64
	Max     float64
	Default float64
}

// ParamVector holds the set of all optimizable detection parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of optimizable detection
// thresholds, bounded around config/defaults.yaml's shipped values.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "detect_threshold", Min: 5, Max: 80, Default: 30},
			{Name: "grid_sensitivity", Min: 3, Max: 40, Default: 15},
			{Name: "spike_threshold", Min: 10, Max: 100, Default: 40},
			{Name: "wall_factor_uniform", Min: 2, Max: 60, Default: 15},
			{Name: "wall_factor_flex", Min: 2, Max: 60, Default: 25},
			{Name: "pass_uniform_spread", Min: 5, Max: 100, Default: 40},
			{Name: "icon_spread_uniform", Min: 20, Max: 255, Default: 100},
		},
	}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		v[i] = s.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1].
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = (raw[i] - s.Min) / (s.Max - s.Min)
	}
	return out
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = s.Min + normalized[i]*(s.Max-s.Min)
	}
	return out
}

// Clamp restricts every value to its spec's [Min, Max] range.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		val := v[i]
		if val < s.Min {
			val = s.Min
		}
		if val > s.Max {
			val = s.Max
		}
		out[i] = val
	}
	return out
}

// ApplyToConfig writes clamped parameter values into cfg.Detection by index,
// matching the declaration order in NewParamVector.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	v := pv.Clamp(values)
	cfg.Detection.DetectThreshold = int(v[0])
	cfg.Detection.GridSensitivity = int(v[1])
	cfg.Detection.SpikeThreshold = int(v[2])
	cfg.Detection.WallFactorUniform = int(v[3])
	cfg.Detection.WallFactorFlex = int(v[4])
	cfg.Detection.PassUniformSpread = int(v[5])
	cfg.Detection.IconSpreadUniform = int(v[6])
}
