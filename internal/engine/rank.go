package engine

import (
	"math"
	"math/bits"
	"sort"

	"github.com/hammamikhairi/dustcook/internal/domain"
)

// DefaultTopN is how many cookjobs a report shows when no count is given.
const DefaultTopN = 10

// Objective selects the ranking score function.
type Objective int

const (
	// ObjectiveRoad ranks by hunger + stress: the best food to carry.
	ObjectiveRoad Objective = iota
	// ObjectiveSale ranks by sell value: the best food to trade away.
	ObjectiveSale
)

// String returns a human-readable objective name.
func (o Objective) String() string {
	if o == ObjectiveSale {
		return "sale"
	}
	return "road"
}

// RankOption configures a single ranking pass.
type RankOption func(*ranker)

// WithSurplus weights cookjobs that burn surplus ingredients: each surplus
// member multiplies the score by (1 + modifier).
func WithSurplus(mask uint64, modifier float64) RankOption {
	return func(r *ranker) {
		r.surplusMask = mask
		r.surplusModifier = modifier
	}
}

// WithCookingSkill applies quality multipliers to stress and sell values
// based on the player's cooking skill (advanced/legendary cook chances).
// Skill 10 and below leaves scores untouched.
func WithCookingSkill(level int) RankOption {
	return func(r *ranker) { r.skill = level }
}

// Ranked is a cookjob with its computed ranking score.
type Ranked struct {
	domain.CookJob
	Score int
}

type ranker struct {
	surplusMask     uint64
	surplusModifier float64
	skill           int
}

// Rank orders cookjobs by the objective, descending, and returns the top n
// (DefaultTopN when n <= 0). Ties keep their first-seen order, so identical
// inputs always produce identical output. The input slice is not modified.
func (e *Engine) Rank(jobs []domain.CookJob, objective Objective, n int, opts ...RankOption) []Ranked {
	r := &ranker{}
	for _, opt := range opts {
		opt(r)
	}
	if n <= 0 {
		n = DefaultTopN
	}

	_, stressMult, sellMult := multipliers(r.skill)

	out := make([]Ranked, len(jobs))
	for i, job := range jobs {
		var score float64
		switch objective {
		case ObjectiveSale:
			score = float64(job.Stats.Sell) * sellMult
		default:
			score = float64(job.Stats.Hunger) + float64(job.Stats.Stress)*stressMult
		}
		if r.surplusMask != 0 {
			count := bits.OnesCount64(job.Mask & r.surplusMask)
			score *= 1 + float64(count)*r.surplusModifier
		}
		out[i] = Ranked{CookJob: job, Score: int(math.Round(score))}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })

	if len(out) > n {
		out = out[:n]
	}
	return out
}
