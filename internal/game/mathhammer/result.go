package mathhammer

// DamageResult is the expected outcome of one attack sequence.
//
// Invariant: every rate and chance field is in [0,1]; no field is NaN.
type DamageResult struct {
	ExpectedHits    float64 `json:"expected_hits"`
	ExpectedWounds  float64 `json:"expected_wounds"`
	ExpectedUnsaved float64 `json:"expected_unsaved"`
	ExpectedDamage  float64 `json:"expected_damage"`
	ModelsKilled    float64 `json:"models_killed"`
	MortalWounds    float64 `json:"mortal_wounds"`

	// LethalHits is the share of ExpectedHits that wounded automatically.
	LethalHits float64 `json:"lethal_hits"`
	// SustainedHits is the share of ExpectedHits generated by Sustained Hits.
	SustainedHits float64 `json:"sustained_hits"`

	HitRate         float64 `json:"hit_rate"`
	WoundRate       float64 `json:"wound_rate"`
	SaveRate        float64 `json:"save_rate"`
	CritHitChance   float64 `json:"crit_hit_chance"`
	CritWoundChance float64 `json:"crit_wound_chance"`

	// WoundTarget and SaveTarget are the final roll targets; a SaveTarget
	// above 6 means no save was possible.
	WoundTarget int `json:"wound_target"`
	SaveTarget  int `json:"save_target"`

	Distribution      *ProbabilityResult `json:"distribution,omitempty"`
	ProbabilityToKill *KillProbability   `json:"probability_to_kill,omitempty"`
}

// ProbabilityResult is a discrete distribution over k = 0..len(Probabilities)-1.
//
// Invariant: Probabilities sums to 1 within floating point tolerance and
// AtLeast[0] == 1 whenever Probabilities is non-empty.
type ProbabilityResult struct {
	Expected float64 `json:"expected"`
	// Probabilities[k] is P(X = k).
	Probabilities []float64 `json:"probabilities"`
	// AtLeast[k] is P(X >= k).
	AtLeast  []float64 `json:"at_least"`
	Variance float64   `json:"variance"`
	// Approximate is true when the distribution is a heuristic rather than
	// exact (multi-wound targets).
	Approximate bool `json:"approximate"`
}

// KillProbability summarises a kill distribution for display.
type KillProbability struct {
	AtLeast1 float64   `json:"at_least_1"`
	Exactly  []float64 `json:"exactly"`
}
