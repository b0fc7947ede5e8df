package strategy

import (
	"regexp"
	"strings"
)

// TokenReduction shortens text mechanically: abbreviations,
// contractions, symbol substitution, optional small-word elision, and
// compact numbers and dates. It trades a little formality for tokens
// and leaves sentence order alone.
type TokenReduction struct {
	cfg Config
}

func NewTokenReduction(cfg Config) *TokenReduction {
	return &TokenReduction{cfg: cfg}
}

func (s *TokenReduction) Name() string { return NameTokenReduction }

func (s *TokenReduction) Metadata() Metadata {
	return Metadata{
		Name:        s.Name(),
		Description: "Applies abbreviations, contractions, and symbol substitutions to cut tokens",
		Config:      s.cfg,
	}
}

func (s *TokenReduction) Apply(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	out := text
	if boolParam(s.cfg, "abbreviations") {
		out = applyReplacements(out, abbreviations)
	}
	if boolParam(s.cfg, "contractions") {
		out = applyReplacements(out, contractions)
	}
	if boolParam(s.cfg, "symbols") {
		out = applyReplacements(out, symbolReplacements)
	}
	if s.cfg.Aggressive && boolParam(s.cfg, "word_removal") {
		out = s.removeSmallWords(out)
	}
	if boolParam(s.cfg, "numbers") {
		out = applyReplacements(out, monthReplacements)
		out = applyReplacements(out, numberWords)
	}
	return s.compactWhitespace(out), nil
}

// EstimateReduction weighs each substitution class by the fraction of a
// token it typically saves. Word removal saves whole tokens, so when
// enabled it dominates. Capped at 0.35.
func (s *TokenReduction) EstimateReduction(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	hits := 0.0
	if boolParam(s.cfg, "abbreviations") {
		hits += float64(countMatches(text, abbreviations)) * 0.25
	}
	if boolParam(s.cfg, "contractions") {
		hits += float64(countMatches(text, contractions)) * 0.15
	}
	if boolParam(s.cfg, "symbols") {
		hits += float64(countMatches(text, symbolReplacements)) * 0.3
	}
	if s.cfg.Aggressive && boolParam(s.cfg, "word_removal") {
		removable := 0
		for _, w := range words {
			if removableWords[coreWord(w)] {
				removable++
			}
		}
		hits += float64(removable)
	}

	estimate := hits / float64(len(words))
	if estimate > 0.35 {
		return 0.35
	}
	return estimate
}

func (s *TokenReduction) CanApply(text string) bool {
	return len(strings.TrimSpace(text)) >= 10 && s.EstimateReduction(text) > 0.01
}

// removeSmallWords elides articles, simple prepositions, and similar
// glue words, except where an essential pattern marks them as
// load-bearing. The first word of the text always stays.
func (s *TokenReduction) removeSmallWords(text string) string {
	words := strings.Fields(text)
	if len(words) < 3 {
		return text
	}

	kept := make([]string, 0, len(words))
	for i, w := range words {
		core := coreWord(w)
		if i == 0 || !removableWords[core] || core != strings.ToLower(w) || essentialAt(words, i) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func essentialAt(words []string, i int) bool {
	hi := i + 2
	if hi > len(words) {
		hi = len(words)
	}
	window := strings.ToLower(strings.Join(words[i:hi], " "))
	for _, p := range essentialPatterns {
		if p.MatchString(window) {
			return true
		}
	}
	return false
}

var blankLinesPattern = regexp.MustCompile(`\n{3,}`)

// compactWhitespace tidies spacing line by line, keeping paragraph
// breaks intact.
func (s *TokenReduction) compactWhitespace(text string) string {
	out := blankLinesPattern.ReplaceAllString(text, "\n\n")
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = normalizeSpacing(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func applyReplacements(text string, rules []replacement) string {
	for _, r := range rules {
		text = r.pattern.ReplaceAllString(text, r.with)
	}
	return text
}

func countMatches(text string, rules []replacement) int {
	n := 0
	for _, r := range rules {
		n += len(r.pattern.FindAllString(text, -1))
	}
	return n
}
