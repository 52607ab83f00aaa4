package ability

import "strings"

// Set is an order-independent collection of abilities queried by kind.
type Set []Ability

// Has reports whether any ability of kind k is present.
func (s Set) Has(k Kind) bool {
	for _, a := range s {
		if a.kind == k {
			return true
		}
	}
	return false
}

// Value returns the largest payload value among abilities of kind k, or 0.
func (s Set) Value(k Kind) int {
	best := 0
	for _, a := range s {
		if a.kind == k && a.value > best {
			best = a.value
		}
	}
	return best
}

// AntiThreshold returns the most favourable (lowest) Anti threshold whose
// keyword is in keywords, or 0 when none match. Keyword comparison is
// case-insensitive.
func (s Set) AntiThreshold(keywords []string) int {
	best := 0
	for _, a := range s {
		if a.kind != AntiKind {
			continue
		}
		for _, kw := range keywords {
			if strings.EqualFold(strings.TrimSpace(kw), a.keyword) {
				if best == 0 || a.threshold < best {
					best = a.threshold
				}
				break
			}
		}
	}
	return best
}

// BestAnti returns the lowest Anti threshold in the set regardless of
// keyword, or 0 when there is no Anti ability.
func (s Set) BestAnti() int {
	best := 0
	for _, a := range s {
		if a.kind == AntiKind && (best == 0 || a.threshold < best) {
			best = a.threshold
		}
	}
	return best
}

// Strings renders every ability with Ability.String.
func (s Set) Strings() []string {
	out := make([]string, 0, len(s))
	for _, a := range s {
		out = append(out, a.String())
	}
	return out
}
