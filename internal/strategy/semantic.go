package strategy

import (
	"regexp"
	"strings"

	"github.com/HartBrook/muntjac/internal/metrics"
)

// SemanticCompression removes filler words, collapses redundant
// phrasing, and drops near-duplicate sentences while keeping the
// prompt's instructions intact.
type SemanticCompression struct {
	cfg    Config
	guards []*regexp.Regexp
}

func NewSemanticCompression(cfg Config) *SemanticCompression {
	return &SemanticCompression{cfg: cfg, guards: guardPatterns(cfg)}
}

func (s *SemanticCompression) Name() string { return NameSemanticCompression }

func (s *SemanticCompression) Metadata() Metadata {
	return Metadata{
		Name:        s.Name(),
		Description: "Removes filler words and redundant phrasing, condenses near-duplicate sentences",
		Config:      s.cfg,
	}
}

func (s *SemanticCompression) Apply(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	out := s.removeFillers(text)
	out = applyReplacements(out, redundantPhrases)
	out = applyReplacements(out, simplificationRules)
	out = s.condenseSentences(out)
	return normalizeSpacing(out), nil
}

// EstimateReduction weighs filler density, lexical redundancy, and
// overall verbosity. Capped at 0.4: semantic compression never claims
// more than that.
func (s *SemanticCompression) EstimateReduction(text string) float64 {
	words := strings.Fields(text)
	if len(words) == 0 {
		return 0
	}

	fillers := 0
	for _, w := range words {
		if fillerWords[coreWord(w)] {
			fillers++
		}
	}

	estimate := float64(fillers)/float64(len(words))*0.3 +
		metrics.AnalyzeTokens(text).Redundancy*0.2 +
		metrics.Verbosity(text)*0.15
	if estimate > 0.4 {
		return 0.4
	}
	return estimate
}

func (s *SemanticCompression) CanApply(text string) bool {
	return len(strings.TrimSpace(text)) >= 20 && s.EstimateReduction(text) > 0.01
}

// removeFillers drops filler words unless a guard pattern marks the
// surrounding context as meaningful. The first and last words always
// survive so sentences keep their anchors.
func (s *SemanticCompression) removeFillers(text string) string {
	words := strings.Fields(text)
	if len(words) < 3 {
		return text
	}

	kept := make([]string, 0, len(words))
	for i, w := range words {
		if i == 0 || i == len(words)-1 {
			kept = append(kept, w)
			continue
		}
		core := coreWord(w)
		// Words carrying punctuation are kept as-is rather than risking
		// a dangling comma.
		if !fillerWords[core] || core != strings.ToLower(w) || s.guarded(words, i) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// guarded reports whether a guard pattern matches the word's immediate
// neighborhood.
func (s *SemanticCompression) guarded(words []string, i int) bool {
	lo, hi := i-1, i+2
	if lo < 0 {
		lo = 0
	}
	if hi > len(words) {
		hi = len(words)
	}
	window := strings.ToLower(strings.Join(words[lo:hi], " "))
	for _, g := range s.guards {
		if g.MatchString(window) {
			return true
		}
	}
	return false
}

// condenseSentences keeps the first of any pair of near-duplicate
// sentences. Aggressive mode lowers the similarity bar.
func (s *SemanticCompression) condenseSentences(text string) string {
	threshold := 0.7
	if s.cfg.Aggressive {
		threshold = 0.6
	}

	sentences := splitSentences(text)
	if len(sentences) < 2 {
		return text
	}

	kept := make([]string, 0, len(sentences))
	for _, sent := range sentences {
		dup := false
		for _, prev := range kept {
			if metrics.JaccardWords(prev, sent) > threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, sent)
		}
	}
	return joinSentences(kept, text)
}

var sentenceSplitPattern = regexp.MustCompile(`[.!?]+\s+`)

func splitSentences(text string) []string {
	parts := sentenceSplitPattern.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), ".!?")
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinSentences(sentences []string, original string) string {
	joined := strings.Join(sentences, ". ")
	if joined == "" {
		return joined
	}
	trimmed := strings.TrimSpace(original)
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") || strings.HasSuffix(trimmed, "?") {
		joined += "."
	}
	return joined
}

var (
	multiSpacePattern    = regexp.MustCompile(`[ \t]+`)
	spaceBeforePunctuate = regexp.MustCompile(`\s+([.,;:!?])`)
)

func normalizeSpacing(text string) string {
	out := multiSpacePattern.ReplaceAllString(text, " ")
	out = spaceBeforePunctuate.ReplaceAllString(out, "$1")
	return strings.TrimSpace(out)
}
