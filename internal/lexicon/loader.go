package lexicon

import (
	"embed"
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed default_lexicon.json lexicon.schema.json
var builtin embed.FS

// builtinSource identifies the embedded default lexicon in error messages.
const builtinSource = "builtin"

type fileEntry struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

type filePattern struct {
	Pattern     string `json:"pattern"`
	Weight      int    `json:"weight"`
	Description string `json:"description"`
}

type lexiconFile struct {
	Version    string        `json:"version"`
	Critical   []fileEntry   `json:"critical"`
	HighRisk   []fileEntry   `json:"high_risk"`
	MediumRisk []fileEntry   `json:"medium_risk"`
	Patterns   []filePattern `json:"patterns"`
}

// Default loads the embedded lexicon shipped with the binary.
func Default() (*Table, error) {
	data, err := builtin.ReadFile("default_lexicon.json")
	if err != nil {
		return nil, &ConfigError{Source: builtinSource, Message: "embedded lexicon missing", Cause: err}
	}
	return parse(data, builtinSource)
}

// Load reads and compiles a lexicon from a JSON file on disk, so weights can
// be tuned without a rebuild.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Source: path, Message: "failed to read lexicon file", Cause: err}
	}
	return parse(data, path)
}

// parse validates raw lexicon JSON against the embedded schema and compiles
// it into an immutable Table. Any malformed entry aborts the whole load.
func parse(data []byte, source string) (*Table, error) {
	schemaBytes, err := builtin.ReadFile("lexicon.schema.json")
	if err != nil {
		return nil, &ConfigError{Source: source, Message: "embedded schema missing", Cause: err}
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, &ConfigError{Source: source, Message: "schema validation failed", Cause: err}
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, &ConfigError{Source: source, Message: strings.Join(msgs, "; ")}
	}

	var f lexiconFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, &ConfigError{Source: source, Message: "invalid JSON", Cause: err}
	}

	table := &Table{Version: f.Version}

	appendTier := func(entries []fileEntry, tier Tier) {
		for _, e := range entries {
			table.Literals = append(table.Literals, Literal{
				Phrase: strings.ToLower(e.Phrase),
				Tier:   tier,
				Weight: e.Weight,
			})
		}
	}
	appendTier(f.Critical, TierCritical)
	appendTier(f.HighRisk, TierHigh)
	appendTier(f.MediumRisk, TierMedium)

	for _, p := range f.Patterns {
		expr, err := regexp.Compile(p.Pattern)
		if err != nil {
			return nil, &ConfigError{
				Source:  source,
				Entry:   p.Pattern,
				Message: "invalid pattern",
				Cause:   err,
			}
		}
		table.Patterns = append(table.Patterns, Pattern{
			Expr:        expr,
			Weight:      p.Weight,
			Description: p.Description,
		})
	}

	return table, nil
}
