package engine

import "math"

// Quality model: above skill 10 the game starts producing advanced dishes,
// above 20 legendary ones. Constants were fitted against observed cook
// outcomes in the source data set.
const (
	legendarySlope     = 0.011024217514
	legendaryIntercept = -0.102421751380
	advancedK          = 0.000261441631347055

	advStressMult = 1.25
	advSellMult   = 1.20
	legStressMult = 1.5
	legSellMult   = 1.4
)

// qualityDistribution returns the (normal, advanced, legendary) cook
// probabilities for a skill level. The three values sum to 1.
func qualityDistribution(skill int) (norm, adv, leg float64) {
	if skill <= 10 {
		return 1, 0, 0
	}

	advDenominator := 1 - math.Exp(-50*advancedK)
	advRaw := clamp01((1 - math.Exp(-advancedK*float64(skill))) / advDenominator)

	if skill <= 20 {
		return 1 - advRaw, advRaw, 0
	}

	leg = clamp01(legendarySlope*float64(skill) + legendaryIntercept)
	adv = clamp01((1 - leg) * advRaw)
	norm = clamp01(1 - leg - adv)
	return norm, adv, leg
}

// multipliers returns the expected (hunger, stress, sell) multipliers for a
// skill level: hunger is never boosted; stress and sell scale with the
// chance of an advanced or legendary cook.
func multipliers(skill int) (hunger, stress, sell float64) {
	norm, adv, leg := qualityDistribution(skill)
	hunger = 1
	stress = norm + adv*advStressMult + leg*legStressMult
	sell = norm + adv*advSellMult + leg*legSellMult
	return hunger, stress, sell
}

func clamp01(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
