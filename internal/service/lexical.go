package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lennart/cinemood/internal/domain"
)

// LexicalConfig bounds the term-weighting vocabulary.
type LexicalConfig struct {
	// MaxFeatures caps the vocabulary size, keeping the highest
	// document-frequency terms.
	MaxFeatures int

	// MinDF is the minimum absolute document frequency for a term.
	MinDF int

	// MaxDFRatio is the maximum document frequency as a fraction of the
	// corpus size.
	MaxDFRatio float64
}

// DefaultLexicalConfig mirrors the production vectorizer settings.
func DefaultLexicalConfig() LexicalConfig {
	return LexicalConfig{
		MaxFeatures: 5000,
		MinDF:       2,
		MaxDFRatio:  0.95,
	}
}

// LexicalModel is a tf-idf vectorizer over unigrams and bigrams, fitted
// on one candidate corpus. A model is cheap to fit and is rebuilt per
// request; it must never be shared across concurrent requests with
// different candidate sets.
type LexicalModel struct {
	vocab map[string]int // term -> column index
	idf   []float64      // per-column smooth idf
}

// FitLexical builds a LexicalModel from a corpus of pre-cleaned
// documents. Returns ErrEmptyCorpus when every document normalizes to
// nothing.
func FitLexical(corpus []string, cfg LexicalConfig) (*LexicalModel, error) {
	if cfg.MaxFeatures <= 0 {
		cfg = DefaultLexicalConfig()
	}

	docFreq := make(map[string]int)
	nonEmpty := 0
	for _, doc := range corpus {
		terms := extractTerms(doc)
		if len(terms) == 0 {
			continue
		}
		nonEmpty++
		for term := range terms {
			docFreq[term]++
		}
	}
	if nonEmpty == 0 {
		return nil, fmt.Errorf("%w: %d documents", domain.ErrEmptyCorpus, len(corpus))
	}

	n := len(corpus)
	maxDF := int(math.Floor(cfg.MaxDFRatio * float64(n)))

	selected := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= cfg.MinDF && df <= maxDF {
			selected = append(selected, term)
		}
	}
	// Tiny corpora can leave the df window empty even though usable
	// terms exist; relax the bounds rather than failing the request.
	if len(selected) == 0 {
		for term := range docFreq {
			selected = append(selected, term)
		}
	}

	// Highest document frequency first, term as deterministic tie-break
	sort.Slice(selected, func(i, j int) bool {
		if docFreq[selected[i]] != docFreq[selected[j]] {
			return docFreq[selected[i]] > docFreq[selected[j]]
		}
		return selected[i] < selected[j]
	})
	if len(selected) > cfg.MaxFeatures {
		selected = selected[:cfg.MaxFeatures]
	}
	sort.Strings(selected)

	model := &LexicalModel{
		vocab: make(map[string]int, len(selected)),
		idf:   make([]float64, len(selected)),
	}
	for i, term := range selected {
		model.vocab[term] = i
		// Smooth idf: ln((1+n)/(1+df)) + 1
		model.idf[i] = math.Log(float64(1+n)/float64(1+docFreq[term])) + 1
	}
	return model, nil
}

// VocabularySize returns the number of fitted terms.
func (m *LexicalModel) VocabularySize() int {
	return len(m.vocab)
}

// Transform maps a pre-cleaned document into the fitted space as an
// L2-normalized sparse tf-idf vector. Documents with no in-vocabulary
// terms yield an empty (zero) vector.
func (m *LexicalModel) Transform(doc string) map[int]float64 {
	counts := make(map[int]float64)
	for _, term := range termList(doc) {
		if idx, ok := m.vocab[term]; ok {
			counts[idx]++
		}
	}
	if len(counts) == 0 {
		return counts
	}

	var norm float64
	for idx := range counts {
		counts[idx] *= m.idf[idx]
		norm += counts[idx] * counts[idx]
	}
	norm = math.Sqrt(norm)
	for idx := range counts {
		counts[idx] /= norm
	}
	return counts
}

// TransformAll transforms every document in order.
func (m *LexicalModel) TransformAll(corpus []string) []map[int]float64 {
	vectors := make([]map[int]float64, len(corpus))
	for i, doc := range corpus {
		vectors[i] = m.Transform(doc)
	}
	return vectors
}

// termList returns the unigram and bigram sequence of a document.
func termList(doc string) []string {
	tokens := strings.Fields(doc)
	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// extractTerms returns the distinct terms of a document, for document
// frequency counting.
func extractTerms(doc string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, term := range termList(doc) {
		terms[term] = struct{}{}
	}
	return terms
}
