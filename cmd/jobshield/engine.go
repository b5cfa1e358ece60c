package main

import (
	"fmt"

	"github.com/mkale/jobshield/internal/domains"
	"github.com/mkale/jobshield/internal/features"
	"github.com/mkale/jobshield/internal/lexicon"
	"github.com/mkale/jobshield/internal/redflags"
	"github.com/mkale/jobshield/internal/scoring"
)

// buildEngine wires a scoring engine from the lexicon path (embedded
// default when empty).
func buildEngine(lexiconPath string) (*scoring.Engine, error) {
	var (
		table *lexicon.Table
		err   error
	)
	if lexiconPath != "" {
		table, err = lexicon.Load(lexiconPath)
	} else {
		table, err = lexicon.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	return scoring.NewEngine(
		redflags.NewMatcher(table),
		features.NewExtractor(),
		domains.NewAnalyzer(domains.NewRDAPLookup()),
	), nil
}
