package ranking

import "fmt"

// Weights maps a weight name to its value. Values are valid strictly between
// 0 and 1, exclusive on both bounds.
type Weights map[string]float64

// Penalty weight names.
const (
	WeightExplicit = "Explicit"
	WeightDuration = "Duration"
)

// Rank weight names.
const (
	WeightSong  = "song_weight"
	WeightPop   = "pop_weight"
	WeightDance = "dance_weight"
)

// DefaultPenaltyWeights returns a fresh copy of the default penalty weights.
func DefaultPenaltyWeights() Weights {
	return Weights{
		WeightExplicit: 0.15,
		WeightDuration: 0.15,
	}
}

// DefaultRankWeights returns a fresh copy of the default rank weights.
func DefaultRankWeights() Weights {
	return Weights{
		WeightSong:  0.2,
		WeightPop:   0.6,
		WeightDance: 0.4,
	}
}

// ValidateWeights merges overrides into defaults and returns the merged set.
// Neither argument is mutated. It returns a ConfigError when an override names
// a key absent from defaults or carries a value outside (0, 1).
func ValidateWeights(overrides, defaults Weights) (Weights, error) {
	merged := make(Weights, len(defaults))
	for name, value := range defaults {
		merged[name] = value
	}

	for name, value := range overrides {
		if _, ok := defaults[name]; !ok {
			return nil, &ConfigError{Reason: fmt.Sprintf("unknown weight %q", name)}
		}
		if !(value > 0 && value < 1) {
			return nil, &ConfigError{
				Reason: fmt.Sprintf("weight %q is %v, must be between 0 and 1 exclusive", name, value),
			}
		}
		merged[name] = value
	}

	return merged, nil
}
