package lexicon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.NotEmpty(t, table.Version)
	assert.NotEmpty(t, table.Literals)
	assert.NotEmpty(t, table.Patterns)
	assert.Equal(t, len(table.Literals)+len(table.Patterns), table.Len())
}

func TestDefaultTiers(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tiers := map[Tier]bool{}
	for _, lit := range table.Literals {
		tiers[lit.Tier] = true
		assert.Equal(t, strings.ToLower(lit.Phrase), lit.Phrase, "literal phrases must be lowercase: %q", lit.Phrase)
		assert.Positive(t, lit.Weight)
	}
	assert.True(t, tiers[TierCritical], "default lexicon should have critical entries")
	assert.True(t, tiers[TierHigh], "default lexicon should have high-risk entries")
	assert.True(t, tiers[TierMedium], "default lexicon should have medium-risk entries")
}

func TestDefaultCoversIndicatorFamilies(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	phrases := map[string]bool{}
	for _, lit := range table.Literals {
		phrases[lit.Phrase] = true
	}
	for _, p := range []string{
		"no interview process", "skype", "contact via whatsapp", "part time",
		"flexible hours", "be your own boss", "freelance", "contract",
		"temporary", "mlm", "surveys", "gig",
	} {
		assert.True(t, phrases[p], "missing literal %q", p)
	}

	weights := map[string]int{}
	for _, p := range table.Patterns {
		weights[p.Description] = p.Weight
	}
	for _, d := range []string{
		"Personal contact request", "Discriminatory posting", "Investment promise",
		"AI/ML scam promise", "Crypto job scam", "Metaverse job scam",
		"Investment return promise", "Celebrity endorsement scam",
	} {
		_, ok := weights[d]
		assert.True(t, ok, "missing pattern %q", d)
	}

	// Section markers compile but carry no weight.
	for _, d := range []string{"Company information present", "Job details present", "Compensation details present"} {
		w, ok := weights[d]
		assert.True(t, ok, "missing pattern %q", d)
		assert.Zero(t, w)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	content := `{
		"version": "test.1",
		"critical": [{"phrase": "Pay Fee", "weight": 4}],
		"high_risk": [{"phrase": "urgent hiring", "weight": 3}],
		"medium_risk": [{"phrase": "data entry", "weight": 1}],
		"patterns": [{"pattern": "earn\\s+\\$\\d+", "weight": 3, "description": "Earnings claim"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test.1", table.Version)
	assert.Equal(t, 4, table.Len())

	// Phrases are lowercased at load time, tiers follow the source section.
	assert.Equal(t, "pay fee", table.Literals[0].Phrase)
	assert.Equal(t, TierCritical, table.Literals[0].Tier)
	assert.Equal(t, TierHigh, table.Literals[1].Tier)
	assert.Equal(t, TierMedium, table.Literals[2].Tier)

	assert.Equal(t, "Earnings claim", table.Patterns[0].Description)
	assert.True(t, table.Patterns[0].Expr.MatchString("earn $5000"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)

	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestLoadInvalidPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	content := `{
		"version": "test.1",
		"critical": [],
		"high_risk": [],
		"medium_risk": [],
		"patterns": [{"pattern": "(unclosed", "weight": 2, "description": "bad"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "(unclosed", cfgErr.Entry)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadZeroWeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	content := `{
		"version": "test.1",
		"critical": [],
		"high_risk": [],
		"medium_risk": [],
		"patterns": [{"pattern": "responsibilities", "weight": 0, "description": "Job details present"}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Patterns, 1)
	assert.Zero(t, table.Patterns[0].Weight)

	// Zero-weight literals stay invalid.
	bad := `{
		"version": "test.1",
		"critical": [{"phrase": "pay fee", "weight": 0}],
		"high_risk": [],
		"medium_risk": [],
		"patterns": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(bad), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoadSchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.json")
	// Weight is a string, which the schema rejects.
	content := `{
		"version": "test.1",
		"critical": [{"phrase": "pay fee", "weight": "four"}],
		"high_risk": [],
		"medium_risk": [],
		"patterns": []
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
