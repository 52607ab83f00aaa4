package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/cory-johannsen/mathhammer/internal/game/analysis"
	"github.com/cory-johannsen/mathhammer/internal/game/mathhammer"
)

// barWidth is the length of a bar for probability 1.
const barWidth = 40

// column is one table column; color applies to body cells only.
type column struct {
	title string
	right bool
	color string
}

// Renderer writes text reports to w.
type Renderer struct {
	w     io.Writer
	style Style
}

// NewRenderer creates a Renderer that colours output iff color is true.
//
// Precondition: w must be non-nil.
func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, style: NewStyle(color)}
}

// Results writes one row per scored matchup.
//
// Postcondition: the table has a header row plus len(results) rows.
func (r *Renderer) Results(title string, results []analysis.Result) error {
	cols := []column{
		{title: "Matchup"},
		{title: "Hypothesis"},
		{title: "Weapon"},
		{title: "Hits", right: true},
		{title: "Wounds", right: true},
		{title: "Unsaved", right: true},
		{title: "Mortal", right: true, color: Red},
		{title: "Damage", right: true, color: BrightYellow},
		{title: "Kills", right: true, color: BrightRed},
	}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		d := res.Damage
		rows = append(rows, []string{
			res.Matchup.Name,
			res.Matchup.Hypothesis,
			res.Matchup.Weapon,
			num(d.ExpectedHits),
			num(d.ExpectedWounds),
			num(d.ExpectedUnsaved),
			num(d.MortalWounds),
			num(d.ExpectedDamage),
			num(d.ModelsKilled),
		})
	}
	return r.table(title, cols, rows)
}

// Summaries writes per-matchup totals across weapons.
func (r *Renderer) Summaries(sums []analysis.Summary) error {
	cols := []column{
		{title: "Matchup"},
		{title: "Hypothesis"},
		{title: "Weapons", right: true},
		{title: "Mortal", right: true, color: Red},
		{title: "Damage", right: true, color: BrightYellow},
		{title: "Kills", right: true, color: BrightRed},
	}
	rows := make([][]string, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, []string{
			s.Matchup,
			s.Hypothesis,
			fmt.Sprintf("%d", s.Weapons),
			num(s.MortalWounds),
			num(s.ExpectedDamage),
			num(s.ModelsKilled),
		})
	}
	return r.table("Totals", cols, rows)
}

// Rates writes the per-step probabilities behind one result.
func (r *Renderer) Rates(res analysis.Result) error {
	d := res.Damage
	var b strings.Builder
	b.WriteString(r.style.Colorf(Bold, "%s / %s / %s", res.Matchup.Name, res.Matchup.Hypothesis, res.Matchup.Weapon))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  hit %s  wound %s (%d+)  save %s (%s)\n",
		pct(d.HitRate), pct(d.WoundRate), d.WoundTarget, pct(d.SaveRate), saveLabel(d.SaveTarget))
	fmt.Fprintf(&b, "  crit hit %s  crit wound %s  lethal %s  sustained %s\n",
		pct(d.CritHitChance), pct(d.CritWoundChance), num(d.LethalHits), num(d.SustainedHits))
	_, err := io.WriteString(r.w, b.String())
	return err
}

// Distribution writes a kill distribution as a bar chart.
//
// Postcondition: writes nothing when p is nil.
func (r *Renderer) Distribution(label string, p *mathhammer.ProbabilityResult) error {
	if p == nil {
		return nil
	}
	var b strings.Builder
	heading := fmt.Sprintf("%s: expected %s, variance %s", label, num(p.Expected), num(p.Variance))
	if p.Approximate {
		heading += " (approximate)"
	}
	b.WriteString(r.style.Colorize(Bold, heading))
	b.WriteString("\n")
	b.WriteString(r.style.Colorize(BrightCyan, fmt.Sprintf("  %4s  %7s  %7s", "k", "P(=k)", "P(>=k)")))
	b.WriteString("\n")
	for k, pk := range p.Probabilities {
		bar := strings.Repeat("#", int(pk*barWidth+0.5))
		fmt.Fprintf(&b, "  %4d  %7.4f  %7.4f  %s\n", k, pk, p.AtLeast[k], r.style.Colorize(Green, bar))
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) table(title string, cols []column, rows [][]string) error {
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = visibleWidth(c.title)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], visibleWidth(cell))
		}
	}

	var b strings.Builder
	if title != "" {
		b.WriteString(r.style.Colorize(BrightWhite+Bold, title))
		b.WriteString("\n")
	}
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(r.style.Colorize(BrightCyan, c.title), widths[i], c.right)
	}
	b.WriteString(strings.TrimRight(strings.Join(header, "  "), " "))
	b.WriteString("\n")
	rule := make([]string, len(cols))
	for i := range cols {
		rule[i] = strings.Repeat("-", widths[i])
	}
	b.WriteString(r.style.Colorize(Dim, strings.Join(rule, "  ")))
	b.WriteString("\n")
	for _, row := range rows {
		cells := make([]string, len(cols))
		for i, cell := range row {
			cells[i] = pad(r.style.Colorize(cols[i].color, cell), widths[i], cols[i].right)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	_, err := io.WriteString(r.w, b.String())
	return err
}

// visibleWidth is the printed width of s, ignoring ANSI escape codes.
func visibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// pad pads s to width printed columns; escape codes never count towards it.
func pad(s string, width int, right bool) string {
	gap := width - visibleWidth(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

func num(x float64) string {
	return fmt.Sprintf("%.2f", x)
}

func pct(x float64) string {
	return fmt.Sprintf("%.1f%%", x*100)
}

func saveLabel(target int) string {
	if target > 6 {
		return "none"
	}
	return fmt.Sprintf("%d+", target)
}
