package solver

import "github.com/hammamikhairi/dustcook/internal/domain"

// Pair is a ready-made observation plan: cooking both dishes and feeding the
// results to Solve isolates one ingredient, because they differ by exactly
// that ingredient's bit.
type Pair struct {
	With    domain.CookJob
	Without domain.CookJob
}

// IsolationPairs finds every pair of cookjobs whose masks differ only in the
// target bit. Jobs sharing a mask (slot reorderings of the same members)
// collapse to the first occurrence, so each pair of member sets is reported
// once, in enumeration order.
func IsolationPairs(target uint64, jobs []domain.CookJob) []Pair {
	byMask := make(map[uint64]domain.CookJob, len(jobs))
	for _, job := range jobs {
		if _, ok := byMask[job.Mask]; !ok {
			byMask[job.Mask] = job
		}
	}

	var pairs []Pair
	seen := make(map[uint64]bool)
	for _, job := range jobs {
		if job.Mask&target == 0 || seen[job.Mask] {
			continue
		}
		seen[job.Mask] = true
		if without, ok := byMask[job.Mask^target]; ok {
			pairs = append(pairs, Pair{With: job, Without: without})
		}
	}
	return pairs
}
