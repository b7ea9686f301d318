package usnob

import "github.com/samber/lo"

// DecodeStats aggregates batch-level observations over a set of decoded
// stars, supplementing the decoder's per-record skip-on-error policy with
// a count a caller can actually inspect.
type DecodeStats struct {
	Count         int
	MinRA, MaxRA  float64
	MinDec, MaxDec float64
	DuplicateIDs  []string
	Skipped       int
}

// BatchQuality computes a DecodeStats summary over a slice of decoded
// stars plus the count of records that failed to decode in the same pass.
// The duplicate-ID and min/max range checks mirror the teacher's
// min/max-beam and duplicate-timestamp checks, applied to sky position
// and catalog identifier instead of ping beam counts and ping times.
func BatchQuality(stars []*Star, skipped int) DecodeStats {
	if len(stars) == 0 {
		return DecodeStats{Skipped: skipped}
	}

	ras := make([]float64, len(stars))
	decs := make([]float64, len(stars))
	ids := make([]string, len(stars))
	for i, s := range stars {
		ras[i] = s.RA
		decs[i] = s.Dec
		ids[i] = s.UsnobID
	}

	return DecodeStats{
		Count:        len(stars),
		MinRA:        lo.Min(ras),
		MaxRA:        lo.Max(ras),
		MinDec:       lo.Min(decs),
		MaxDec:       lo.Max(decs),
		DuplicateIDs: lo.FindDuplicates(ids),
		Skipped:      skipped,
	}
}
