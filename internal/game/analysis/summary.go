package analysis

// Summary totals every weapon of one matchup under one hypothesis.
type Summary struct {
	Matchup        string
	Hypothesis     string
	Weapons        int
	ExpectedDamage float64
	MortalWounds   float64
	// ModelsKilled is capped at the defender's model count when known.
	ModelsKilled float64
}

// Summarize groups results by matchup and hypothesis, preserving first-seen order.
//
// Postcondition: each Summary's Weapons equals the number of grouped results.
func Summarize(results []Result) []Summary {
	type key struct{ matchup, hypothesis string }
	index := make(map[key]int)
	var out []Summary
	for _, r := range results {
		k := key{r.Matchup.Name, r.Matchup.Hypothesis}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Summary{Matchup: k.matchup, Hypothesis: k.hypothesis})
		}
		s := &out[i]
		s.Weapons++
		s.ExpectedDamage += r.Damage.ExpectedDamage
		s.MortalWounds += r.Damage.MortalWounds
		s.ModelsKilled += r.Damage.ModelsKilled
		if n := r.Matchup.Defender.ModelCount; n > 0 {
			s.ModelsKilled = min(s.ModelsKilled, float64(n))
		}
	}
	return out
}
