// Package extract derives keyword and skill lists from free-text job
// descriptions. Output is deterministic: identical input and catalogs
// always produce byte-identical results.
package extract

import (
	"regexp"
	"slices"
	"sort"
	"strings"
)

const (
	// minMeaningfulLen is the shortest input worth analyzing; anything
	// shorter gets the default keyword/skill pair instead of empty output.
	minMeaningfulLen = 10
	// frequencyPool caps how many ranked tokens are considered before the
	// generic-term discard.
	frequencyPool = 50
	// maxSignals caps both output lists.
	maxSignals = 10
	// minKeywords and minSkills trigger padding from the defaults.
	minKeywords = 5
	minSkills   = 3
)

var tokenPattern = regexp.MustCompile(`[a-z]{3,}`)

// Extractor turns a description into ranked keywords and matched skills.
// Stateless after construction; safe to reuse across a run.
type Extractor struct {
	stop            map[string]struct{}
	generic         map[string]struct{}
	acronyms        map[string]struct{}
	skills          []string
	defaultKeywords []string
	defaultSkills   []string
}

// NewExtractor compiles a catalog into an Extractor.
func NewExtractor(c Catalog) *Extractor {
	return &Extractor{
		stop:            toSet(c.StopWords),
		generic:         toSet(c.GenericTerms),
		acronyms:        toSet(c.Acronyms),
		skills:          slices.Clone(c.Skills),
		defaultKeywords: slices.Clone(c.DefaultKeywords),
		defaultSkills:   slices.Clone(c.DefaultSkills),
	}
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}

// Extract returns up to maxSignals keywords and skills for the given
// description. Inputs too short to analyze yield the default pair, so the
// result lists are never both empty.
func (e *Extractor) Extract(description string) (keywords, skills []string) {
	if len(strings.TrimSpace(description)) < minMeaningfulLen {
		return slices.Clone(e.defaultKeywords), slices.Clone(e.defaultSkills)
	}
	return e.extractKeywords(description), e.extractSkills(description)
}

// tokenCount tracks a token's frequency. Counts live in a slice ordered
// by first occurrence so frequency ties break deterministically.
type tokenCount struct {
	token string
	count int
}

func (e *Extractor) extractKeywords(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]*tokenCount)
	ordered := make([]*tokenCount, 0, len(tokens)) // first-occurrence order
	for _, tok := range tokens {
		if _, stop := e.stop[tok]; stop {
			continue
		}
		tc, ok := counts[tok]
		if !ok {
			tc = &tokenCount{token: tok}
			counts[tok] = tc
			ordered = append(ordered, tc)
		}
		tc.count++
	}

	// Stable sort on a first-occurrence-ordered slice: ties keep the
	// earlier token first.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].count > ordered[j].count
	})
	if len(ordered) > frequencyPool {
		ordered = ordered[:frequencyPool]
	}

	out := make([]string, 0, maxSignals)
	for _, tc := range ordered {
		if _, generic := e.generic[tc.token]; generic {
			continue
		}
		out = append(out, e.display(tc.token))
		if len(out) == maxSignals {
			break
		}
	}

	if len(out) < minKeywords {
		out = padFrom(out, e.defaultKeywords)
	}
	return out
}

// display renders a lowercase token for the report: acronyms upper-cased,
// everything else Title-cased.
func (e *Extractor) display(token string) string {
	if _, ok := e.acronyms[token]; ok {
		return strings.ToUpper(token)
	}
	return strings.ToUpper(token[:1]) + token[1:]
}

func (e *Extractor) extractSkills(text string) []string {
	upper := strings.ToUpper(text)

	out := make([]string, 0, maxSignals)
	for _, skill := range e.skills {
		if len(out) == maxSignals {
			break
		}
		if !strings.Contains(upper, skill) {
			continue
		}
		if hasNearDuplicate(out, skill) {
			continue
		}
		out = append(out, skill)
	}

	if len(out) < minSkills {
		out = padFrom(out, e.defaultSkills)
	}
	return out
}

// hasNearDuplicate compares the candidate's first word against the first
// word of every accepted skill; containment either way counts as a
// duplicate (keeps "GITLAB CI" from also yielding "GIT").
func hasNearDuplicate(accepted []string, candidate string) bool {
	cw := firstWord(candidate)
	for _, a := range accepted {
		aw := firstWord(a)
		if strings.Contains(aw, cw) || strings.Contains(cw, aw) {
			return true
		}
	}
	return false
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

// padFrom appends defaults not already present until the list reaches
// maxSignals or the defaults run out.
func padFrom(current, defaults []string) []string {
	for _, d := range defaults {
		if len(current) >= maxSignals {
			break
		}
		if slices.Contains(current, d) {
			continue
		}
		current = append(current, d)
	}
	return current
}
