package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cory-johannsen/mathhammer/internal/game/analysis"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// Document is the JSON shape of a scenario report.
type Document struct {
	Scenario string          `json:"scenario"`
	Results  []ResultRecord  `json:"results"`
	Totals   []SummaryRecord `json:"totals"`
}

// ResultRecord is one scored matchup.
type ResultRecord struct {
	RunID      string                  `json:"run_id"`
	Matchup    string                  `json:"matchup"`
	Hypothesis string                  `json:"hypothesis"`
	Weapon     string                  `json:"weapon"`
	Damage     mathhammer.DamageResult `json:"damage"`
}

// SummaryRecord is one matchup total across weapons.
type SummaryRecord struct {
	Matchup        string  `json:"matchup"`
	Hypothesis     string  `json:"hypothesis"`
	Weapons        int     `json:"weapons"`
	ExpectedDamage float64 `json:"expected_damage"`
	MortalWounds   float64 `json:"mortal_wounds"`
	ModelsKilled   float64 `json:"models_killed"`
}

// NewDocument assembles the JSON report for a scenario run.
//
// Postcondition: Results and Totals are never nil.
func NewDocument(scenario string, results []analysis.Result) Document {
	doc := Document{
		Scenario: scenario,
		Results:  make([]ResultRecord, 0, len(results)),
		Totals:   []SummaryRecord{},
	}
	for _, r := range results {
		doc.Results = append(doc.Results, ResultRecord{
			RunID:      r.RunID,
			Matchup:    r.Matchup.Name,
			Hypothesis: r.Matchup.Hypothesis,
			Weapon:     r.Matchup.Weapon,
			Damage:     r.Damage,
		})
	}
	for _, s := range analysis.Summarize(results) {
		doc.Totals = append(doc.Totals, SummaryRecord(s))
	}
	return doc
}

// WriteJSON encodes doc to w as indented JSON.
func WriteJSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("report: encoding JSON: %w", err)
	}
	return nil
}
