package submatrix

import "math"

// weightScale converts the [0,1] normalized weights this estimator
// produces into the small positive integers fmindex.SubstitutionWeighter
// must return: the search engine's budget is integer-valued, so a
// continuous weight is rounded onto a 1..10 integer scale rather than
// truncated to 0, which would make every estimated mismatch free.
const weightScale = 10

// ObservedWeights is a per-ordered-pair mismatch weight table, estimated
// from how often a reference symbol and a read symbol disagree across
// every position of each. It implements fmindex.SubstitutionWeighter.
type ObservedWeights struct {
	weights map[[2]byte]float64
}

// EstimateFromObservations scans ref and read position by position (the
// cross product of every ref offset against every read offset, following
// the reference aligner) and counts, for each ordered pair (readBase,
// refBase) that disagree, how often that pair occurs. Counts are
// normalized by the maximum observed count, so the most frequent
// substitution type carries weight 1 and everything else is scaled down
// proportionally. A pair never observed falls back to weight 1 when
// queried via Weight, matching an unseen substitution type costing a full
// mismatch penalty.
func EstimateFromObservations(ref, read string) *ObservedWeights {
	counts := make(map[[2]byte]int)
	maxCount := 0
	for i := 0; i < len(ref); i++ {
		for j := 0; j < len(read); j++ {
			if ref[i] == read[j] {
				continue
			}
			key := [2]byte{read[j], ref[i]}
			counts[key]++
			if counts[key] > maxCount {
				maxCount = counts[key]
			}
		}
	}

	weights := make(map[[2]byte]float64, len(counts))
	if maxCount > 0 {
		for k, v := range counts {
			weights[k] = float64(v) / float64(maxCount)
		}
	}
	return &ObservedWeights{weights: weights}
}

// Weight returns the estimated substitution weight between a read base
// and a candidate reference base. Pairs that were never observed default
// to a full weight of 1 rather than 0, so an unseen substitution is never
// treated as free.
func (o *ObservedWeights) Weight(read, ref byte) int {
	if read == ref {
		return 0
	}
	w, ok := o.weights[[2]byte{read, ref}]
	if !ok || w <= 0 {
		return 1
	}
	scaled := int(math.Round(w * weightScale))
	if scaled < 1 {
		scaled = 1
	}
	return scaled
}
