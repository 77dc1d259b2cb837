package ranking

// Average durations outside [minDurationSeconds, maxDurationSeconds] incur the
// full duration penalty. The penalty is a step, not a gradient.
const (
	minDurationSeconds = 120
	maxDurationSeconds = 270
)

// ComputePenalty returns a multiplicative penalty in (0, 1] for each dataset
// row, discounting artists for explicit content and atypical song durations.
// overrides may be nil to use DefaultPenaltyWeights.
func ComputePenalty(ds *Dataset, overrides Weights) ([]float64, error) {
	weights, err := ValidateWeights(overrides, DefaultPenaltyWeights())
	if err != nil {
		return nil, err
	}
	if err := ds.Require(ColExplicit, ColDuration, ColSongCount); err != nil {
		return nil, err
	}

	penalties := make([]float64, len(ds.Rows))
	for i, row := range ds.Rows {
		if row.SongCount <= 0 {
			return nil, &DivisionError{Artist: row.Name, Year: row.Year}
		}

		explicitRatio := float64(row.ExplicitCount) / float64(row.SongCount)
		explicitFactor := 1 - explicitRatio*weights[WeightExplicit]

		durationFactor := 1.0
		if row.AvgDuration < minDurationSeconds || row.AvgDuration > maxDurationSeconds {
			durationFactor = 1 - weights[WeightDuration]
		}

		penalties[i] = explicitFactor * durationFactor
	}
	return penalties, nil
}
