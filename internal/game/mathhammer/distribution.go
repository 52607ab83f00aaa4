package mathhammer

import (
	"math"
)

// maxTrials bounds the number of trials a distribution is computed over.
const maxTrials = 10_000

// Binomial returns the distribution of successes in n trials with success
// chance p, truncated at maxK: when maxK < n the tail P(X >= maxK) is folded
// into the last bucket so the probabilities still sum to 1.
//
// Precondition: n >= 0; n is capped at maxTrials.
// Postcondition: len(Probabilities) == min(n, maxK)+1 (maxK < 0 means n).
func Binomial(n int, p float64, maxK int) ProbabilityResult {
	n = min(max(n, 0), maxTrials)
	p = probability(p)
	if maxK < 0 || maxK > n {
		maxK = n
	}

	pmf := make([]float64, maxK+1)
	below := 0.0
	for k := 0; k < maxK; k++ {
		pmf[k] = binomialPMF(n, k, p)
		below += pmf[k]
	}
	if maxK < n {
		pmf[maxK] = probability(1 - below)
	} else {
		pmf[maxK] = binomialPMF(n, maxK, p)
	}

	atLeast := make([]float64, len(pmf))
	running := 0.0
	for k := len(pmf) - 1; k >= 0; k-- {
		running += pmf[k]
		atLeast[k] = probability(running)
	}
	// P(X >= 0) is 1 by definition; avoid rounding drift.
	atLeast[0] = 1

	res := ProbabilityResult{
		Probabilities: pmf,
		AtLeast:       atLeast,
	}
	if maxK == n {
		res.Expected = float64(n) * p
		res.Variance = float64(n) * p * (1 - p)
	} else {
		res.Expected, res.Variance = moments(pmf)
	}
	return res
}

// binomialPMF computes C(n,k) p^k (1-p)^(n-k) in log space.
func binomialPMF(n, k int, p float64) float64 {
	switch {
	case p == 0:
		if k == 0 {
			return 1
		}
		return 0
	case p == 1:
		if k == n {
			return 1
		}
		return 0
	}
	logC := lgamma(n+1) - lgamma(k+1) - lgamma(n-k+1)
	return probability(math.Exp(logC + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p)))
}

func lgamma(x int) float64 {
	v, _ := math.Lgamma(float64(x))
	return v
}

func moments(pmf []float64) (mean, variance float64) {
	for k, pk := range pmf {
		mean += float64(k) * pk
	}
	for k, pk := range pmf {
		diff := float64(k) - mean
		variance += diff * diff * pk
	}
	return finite(mean), finite(variance)
}

// killDistribution derives the distribution of models killed from an
// expected-value result. attacks is rounded to the nearest whole number of
// trials and damage is the per-attack damage.
//
// Single-wound targets follow Binomial(attacks, hit*wound*(1-save)) exactly.
// Multi-wound targets are approximated by scaling the per-attack success
// chance by min(damage, wounds)/wounds; a true multi-wound distribution would
// need the convolution of per-hit damage, which this does not attempt.
func killDistribution(res DamageResult, d DefenderProfile, attacks, damage float64) ProbabilityResult {
	n := int(math.Round(max(finite(attacks), 0)))
	maxK := n
	if d.ModelCount > 0 {
		maxK = min(n, d.ModelCount)
	}

	if !(d.Wounds > 0) {
		// No wounds per model (or NaN) kills nothing, matching ModelsKilled.
		return Binomial(n, 0, maxK)
	}
	through := probability(res.HitRate * res.WoundRate * (1 - res.SaveRate))
	if d.Wounds <= 1 {
		return Binomial(n, through, maxK)
	}

	share := safeDiv(min(damage, d.Wounds), d.Wounds)
	dist := Binomial(n, probability(through*share), maxK)
	dist.Expected = finite(res.ExpectedUnsaved * share)
	dist.Approximate = true
	return dist
}

// KillProbability summarises the distribution for display.
func (p ProbabilityResult) KillProbability() *KillProbability {
	kp := &KillProbability{Exactly: append([]float64(nil), p.Probabilities...)}
	if len(p.AtLeast) > 1 {
		kp.AtLeast1 = p.AtLeast[1]
	}
	return kp
}
