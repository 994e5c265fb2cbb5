// Package search ranks catalog platforms against a free-text query. Each
// platform becomes one document built from its name, OS descriptor, feature
// list and price descriptor; the index is immutable after construction and
// safe for concurrent use.
//
// Scoring uses Jaccard similarity between the query token set and each
// document's token set: score = |Q ∩ D| / |Q ∪ D|. Ties keep catalog order.
package search

import (
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/cases"

	"github.com/tbourn/platform-dashboard/internal/domain"
)

// Result is a ranked platform with its similarity score.
type Result struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Index is the minimal interface implemented by all search indices.
type Index interface {
	TopK(query string, k int) []Result
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	stopwords map[string]struct{}
	minScore  float64
}

func defaultConfig() config {
	return config{}
}

// WithStopwords drops the given words from both documents and queries.
func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = fold(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

// WithMinScore discards results scoring below s (0 < s <= 1).
func WithMinScore(s float64) Option {
	return func(c *config) {
		if s > 0 && s <= 1 {
			c.minScore = s
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type doc struct {
	name   string
	tokens map[string]struct{}
}

type index struct {
	cfg  config
	docs []doc
}

// NewPlatformIndex builds an Index over platforms, preserving their order for
// tie-breaks.
func NewPlatformIndex(platforms []domain.Platform, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	docs := make([]doc, 0, len(platforms))
	for _, p := range platforms {
		toks := tokenize(documentText(p), cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		docs = append(docs, doc{name: p.Name, tokens: toks})
	}
	return &index{cfg: cfg, docs: docs}
}

func documentText(p domain.Platform) string {
	return strings.Join([]string{p.Name, p.OperatingSystem, p.Features, p.PriceRange}, " ")
}

// TopK returns up to k best-matching platforms. k <= 0 means 5.
func (i *index) TopK(q string, k int) []Result {
	if len(i.docs) == 0 || strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 5
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}

	type scored struct {
		pos   int
		score float64
	}
	buf := make([]scored, 0, len(i.docs))
	for pos, d := range i.docs {
		over := overlap(qTokens, d.tokens)
		if over == 0 {
			continue
		}
		union := float64(len(qTokens) + len(d.tokens) - over)
		if union <= 0 {
			continue
		}
		score := float64(over) / union
		if score < i.cfg.minScore {
			continue
		}
		buf = append(buf, scored{pos: pos, score: score})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].score != buf[b].score {
			return buf[a].score > buf[b].score
		}
		return buf[a].pos < buf[b].pos
	})

	if k > len(buf) {
		k = len(buf)
	}
	out := make([]Result, k)
	for j := 0; j < k; j++ {
		out[j] = Result{Name: i.docs[buf[j].pos].name, Score: buf[j].score}
	}
	return out
}

// ----------------------------------------------------------------------------
// Helpers

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

// fold applies Unicode case folding so "iOS", "IOS" and "ios" compare equal.
func fold(s string) string {
	return cases.Fold().String(s)
}

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(fold(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if stop != nil {
			if _, skip := stop[w]; skip {
				continue
			}
		}
		out[w] = struct{}{}
	}
	return out
}

func overlap(a, b map[string]struct{}) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := 0
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
