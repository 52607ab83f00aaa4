package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cory-johannsen/mathhammer/internal/config"
	"github.com/cory-johannsen/mathhammer/internal/report"
)

func repoConfig() config.Config {
	return config.Config{
		Logging: config.LoggingConfig{Level: "info", Format: "console", Output: "stderr"},
		Content: config.ContentConfig{
			WeaponsDir: "../../content/weapons",
			UnitsDir:   "../../content/units",
		},
		Analysis: config.AnalysisConfig{Workers: 2},
	}
}

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-scenario", "s.yaml", "-json", "-units-dir", "u"})
	require.NoError(t, err)
	assert.Equal(t, "s.yaml", o.scenarioPath)
	assert.True(t, o.jsonOutput)
	assert.Equal(t, "u", o.unitsDir)

	_, err = parseFlags(nil)
	assert.ErrorContains(t, err, "usage")

	o, err = parseFlags([]string{"-list"})
	require.NoError(t, err)
	assert.True(t, o.list)
}

func TestRun_ExampleScenarioText(t *testing.T) {
	var out bytes.Buffer
	opts := options{scenarioPath: "../../scenarios/example.yaml", rates: true, distributions: true}
	require.NoError(t, run(context.Background(), opts, repoConfig(), zap.NewNop(), &out))

	text := out.String()
	assert.NotContains(t, text, "\033[")
	assert.Contains(t, text, "Example firing solutions")
	assert.Contains(t, text, "Devastators vs Rhino")
	assert.Contains(t, text, "Multi-melta")
	assert.Contains(t, text, "Totals")
	assert.Contains(t, text, "P(>=k)")
	assert.Contains(t, text, "crit hit")
}

func TestRun_ExampleScenarioJSON(t *testing.T) {
	var out bytes.Buffer
	opts := options{scenarioPath: "../../scenarios/example.yaml", jsonOutput: true}
	require.NoError(t, run(context.Background(), opts, repoConfig(), zap.NewNop(), &out))

	var doc report.Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "Example firing solutions", doc.Scenario)
	// 2 + 3*2 + 1 + 1 + 1 weapon/hypothesis pairs.
	assert.Len(t, doc.Results, 11)
	assert.Equal(t, "Intercessors vs Termagants", doc.Results[0].Matchup)
	for _, r := range doc.Results {
		assert.NotEmpty(t, r.RunID)
		assert.GreaterOrEqual(t, r.Damage.ExpectedDamage, 0.0)
		assert.Nil(t, r.Damage.Distribution)
	}

	// Half range adds Melta damage, so it can only help.
	var longRange, halfRange float64
	for _, r := range doc.Results {
		if r.Weapon != "Multi-melta" {
			continue
		}
		switch r.Hypothesis {
		case "long range":
			longRange = r.Damage.ExpectedDamage
		case "half range":
			halfRange = r.Damage.ExpectedDamage
		}
	}
	assert.Greater(t, halfRange, longRange)
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), options{list: true}, repoConfig(), zap.NewNop(), &out))
	assert.Contains(t, out.String(), "weapon  bolt-rifle")
	assert.Contains(t, out.String(), "unit    termagants")
	assert.Regexp(t, `power-fist +Power Fist +melee `, out.String())
	assert.Regexp(t, `lascannon +Lascannon +ranged `, out.String())
	assert.Contains(t, out.String(), "DD6+1[2-7]")
	assert.Contains(t, out.String(), "AD6[1-6]")
}

func TestDiceRange(t *testing.T) {
	assert.Equal(t, "D6+1[2-7]", diceRange("D6+1"))
	assert.Equal(t, "2", diceRange("2"))
	assert.Equal(t, "junk", diceRange("junk"))
}

func TestRun_DirectoryOverrides(t *testing.T) {
	var out bytes.Buffer
	opts := options{list: true, weaponsDir: t.TempDir() + "/missing"}
	err := run(context.Background(), opts, repoConfig(), zap.NewNop(), &out)
	assert.ErrorContains(t, err, "loading catalog")
}

func TestRun_MissingScenario(t *testing.T) {
	var out bytes.Buffer
	opts := options{scenarioPath: t.TempDir() + "/nope.yaml"}
	assert.Error(t, run(context.Background(), opts, repoConfig(), zap.NewNop(), &out))
}
