package mathhammer

// CalculateDamage returns the expected outcome of a attacking d under m.
//
// Malformed input never fails the call: unparseable roll targets behave as
// impossible rolls and non-finite intermediates are coerced to 0.
//
// Postcondition: every rate field is in [0,1]; Distribution and
// ProbabilityToKill are nil.
func CalculateDamage(a AttackerProfile, d DefenderProfile, m Modifiers) DamageResult {
	return calculate(a, d, m).result
}

// CalculateDamageWithProbabilities returns the same result as CalculateDamage
// with the kill distribution attached.
//
// Postcondition: every field CalculateDamage sets is identical;
// Distribution and ProbabilityToKill are non-nil.
func CalculateDamageWithProbabilities(a AttackerProfile, d DefenderProfile, m Modifiers) DamageResult {
	c := calculate(a, d, m)
	res := c.result
	dist := killDistribution(res, d, c.attacks, c.damage)
	res.Distribution = &dist
	res.ProbabilityToKill = dist.KillProbability()
	return res
}

// KillDistribution returns only the kill distribution for a attacking d under m.
func KillDistribution(a AttackerProfile, d DefenderProfile, m Modifiers) ProbabilityResult {
	c := calculate(a, d, m)
	return killDistribution(c.result, d, c.attacks, c.damage)
}

// calculation carries the inputs the distribution layer needs alongside the
// expected-value result.
type calculation struct {
	result  DamageResult
	attacks float64
	damage  float64
}

func calculate(a AttackerProfile, d DefenderProfile, m Modifiers) calculation {
	f := effectiveFlags(a, d, m)

	attacks := max(finite(a.Attacks), 0) + float64(f.blastBonus)
	dmg := attackDamage(a, d, f)

	hits := resolveHits(a, attacks, m, f)
	wounds := resolveWounds(a, d, hits, m, f, dmg)
	save := saveTarget(a, d, m, f)
	out := resolveDamage(d, wounds, save, dmg)

	res := DamageResult{
		ExpectedHits:    finite(hits.total()),
		ExpectedWounds:  wounds.total,
		ExpectedUnsaved: out.unsaved,
		ExpectedDamage:  out.damage,
		ModelsKilled:    out.killed,
		MortalWounds:    wounds.mortal,
		LethalHits:      hits.lethal,
		SustainedHits:   hits.sustained,
		HitRate:         hits.chance,
		WoundRate:       wounds.chance,
		SaveRate:        out.saveRate,
		CritHitChance:   hits.crit,
		CritWoundChance: wounds.crit,
		WoundTarget:     wounds.target,
		SaveTarget:      save,
	}
	return calculation{result: res, attacks: attacks, damage: dmg}
}
