package ranking

import "fmt"

// ComputeRank combines popularity, danceability, song count, and the penalty
// into one score per row. Only the danceability term is scaled by the penalty
// and song multiplier; popularity contributes unscaled. overrides may be nil
// to use DefaultRankWeights.
func ComputeRank(ds *Dataset, penalty []float64, overrides Weights) ([]float64, error) {
	weights, err := ValidateWeights(overrides, DefaultRankWeights())
	if err != nil {
		return nil, err
	}
	if err := ds.Require(ColSongCount, ColPopularity, ColDanceability); err != nil {
		return nil, err
	}
	if len(penalty) != len(ds.Rows) {
		return nil, fmt.Errorf("penalty has %d entries for %d rows", len(penalty), len(ds.Rows))
	}

	scores := make([]float64, len(ds.Rows))
	for i, row := range ds.Rows {
		songMultiplier := 1 + float64(row.SongCount)*weights[WeightSong]
		scores[i] = row.AvgPopularity*weights[WeightPop] +
			(row.AvgDanceability*100*weights[WeightDance])*penalty[i]*songMultiplier
	}
	return scores, nil
}
