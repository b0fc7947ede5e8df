package strategy

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/HartBrook/muntjac/internal/metrics"
)

// Structural reorganizes a prompt into canonical sections: context,
// instructions, constraints, examples, output format, then anything
// unclassified. It dedupes
// near-identical paragraphs and formats each section consistently.
// Reorganization can add scaffolding, so its estimated reduction may
// be negative.
type Structural struct {
	cfg   Config
	caser cases.Caser
}

func NewStructural(cfg Config) *Structural {
	return &Structural{cfg: cfg, caser: cases.Title(language.English)}
}

func (s *Structural) Name() string { return NameStructuralOptimization }

func (s *Structural) Metadata() Metadata {
	return Metadata{
		Name:        s.Name(),
		Description: "Reorganizes the prompt into canonical sections and removes duplicate paragraphs",
		Config:      s.cfg,
	}
}

type bucket int

const (
	bucketContext bucket = iota
	bucketInstruction
	bucketConstraint
	bucketExample
	bucketFormat
	bucketOther
	bucketCount
)

var bucketNames = [bucketCount]string{
	"context", "instructions", "constraints", "examples", "output format", "other",
}

var bucketKeywords = [bucketCount][]string{
	contextKeywords,
	instructionKeywords,
	constraintKeywords,
	exampleKeywords,
	formatKeywords,
	nil, // other never matches by keyword; it is the default
}

func (s *Structural) Apply(text string) (string, error) {
	if err := validate(text); err != nil {
		return "", err
	}

	var buckets [bucketCount][]string
	for _, para := range splitParagraphs(text) {
		b := classify(para)
		buckets[b] = append(buckets[b], para)
	}
	for b := range buckets {
		buckets[b] = dedupe(buckets[b], 0.8)
	}
	buckets[bucketInstruction] = mergeInstructions(buckets[bucketInstruction])

	populated := 0
	for _, paras := range buckets {
		if len(paras) > 0 {
			populated++
		}
	}

	var sections []string
	for b := bucket(0); b < bucketCount; b++ {
		if len(buckets[b]) == 0 {
			continue
		}
		body := s.formatBucket(b, buckets[b])
		// Headers only pay off once the prompt has enough distinct
		// sections to navigate.
		if populated > 2 {
			body = s.caser.String(bucketNames[b]) + ":\n" + body
		}
		sections = append(sections, body)
	}
	return strings.Join(sections, "\n\n"), nil
}

// EstimateReduction counts duplicate paragraphs; when headers would be
// added the scaffolding overhead is subtracted, so the result can go
// negative.
func (s *Structural) EstimateReduction(text string) float64 {
	paras := splitParagraphs(text)
	if len(paras) < 2 {
		return 0
	}

	dups := len(paras) - len(dedupe(paras, 0.8))
	estimate := float64(dups) / float64(len(paras)) * 0.1

	populated := map[bucket]bool{}
	for _, p := range paras {
		populated[classify(p)] = true
	}
	if len(populated) > 2 {
		estimate -= 0.05
	}
	return estimate
}

func (s *Structural) CanApply(text string) bool {
	return len(strings.TrimSpace(text)) >= 50 && len(splitParagraphs(text)) >= 2
}

// splitParagraphs breaks on blank lines, falling back to sentences for
// single-block text.
func splitParagraphs(text string) []string {
	var paras []string
	for _, p := range strings.Split(text, "\n\n") {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	if len(paras) > 1 {
		return paras
	}
	return sentencesAsParagraphs(text)
}

func sentencesAsParagraphs(text string) []string {
	sentences := splitSentences(text)
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s+".")
	}
	return out
}

// classify scores a paragraph against each bucket's keyword list; the
// highest count wins, with earlier buckets breaking ties. Paragraphs
// matching nothing are filed as other and trail the reassembled output.
func classify(para string) bucket {
	lower := strings.ToLower(para)
	best, bestScore := bucketOther, 0
	for b := bucket(0); b < bucketCount; b++ {
		score := 0
		for _, kw := range bucketKeywords[b] {
			score += strings.Count(lower, kw)
		}
		if score > bestScore {
			best, bestScore = b, score
		}
	}
	return best
}

// dedupe keeps the first of any pair of paragraphs whose word overlap
// exceeds the threshold.
func dedupe(paras []string, threshold float64) []string {
	var kept []string
	for _, p := range paras {
		dup := false
		for _, prev := range kept {
			if metrics.JaccardWords(prev, p) > threshold {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, p)
		}
	}
	return kept
}

// mergeInstructions flattens instruction paragraphs to sentences and
// drops near-duplicates across paragraph boundaries.
func mergeInstructions(paras []string) []string {
	if len(paras) < 2 {
		return paras
	}
	var sentences []string
	for _, p := range paras {
		sentences = append(sentences, splitSentences(p)...)
	}
	sentences = dedupe(sentences, 0.7)
	out := make([]string, 0, len(sentences))
	for _, s := range sentences {
		out = append(out, s+".")
	}
	return out
}

func (s *Structural) formatBucket(b bucket, paras []string) string {
	switch b {
	case bucketInstruction:
		if len(paras) > 2 {
			lines := make([]string, 0, len(paras))
			for i, p := range paras {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, p))
			}
			return strings.Join(lines, "\n")
		}
		return strings.Join(paras, "\n")
	case bucketConstraint:
		lines := make([]string, 0, len(paras))
		for _, p := range paras {
			lines = append(lines, "- "+p)
		}
		return strings.Join(lines, "\n")
	case bucketExample:
		if len(paras) == 1 {
			return paras[0]
		}
		lines := make([]string, 0, len(paras))
		for i, p := range paras {
			lines = append(lines, fmt.Sprintf("Example %d:\n%s", i+1, p))
		}
		return strings.Join(lines, "\n\n")
	default:
		return strings.Join(paras, "\n")
	}
}
