package matching

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// maxVocabularyTerms caps the joint vocabulary fitted on a document pair.
const maxVocabularyTerms = 1000

var wordTokenPattern = regexp.MustCompile(`\w{2,}`)

// NewTFIDFSimilarity returns the production TextSimilarity: a TF-IDF
// vector-space model over unigrams and bigrams, fitted from scratch on each
// document pair and compared by cosine similarity.
func NewTFIDFSimilarity() TextSimilarity {
	return tfidfSimilarity{}
}

type tfidfSimilarity struct{}

// Similarity fits the model on (a, b) and returns their cosine similarity.
// A document that is empty after stop-word removal yields 0.
func (tfidfSimilarity) Similarity(a, b string) float64 {
	termsA := ngramTerms(a)
	termsB := ngramTerms(b)
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	vocab := buildVocabulary(termsA, termsB)

	vecA := tfidfVector(termsA, termsB, vocab)
	vecB := tfidfVector(termsB, termsA, vocab)

	return cosine(vecA, vecB)
}

// ngramTerms tokenizes, lower-cases, strips stop words, and emits the
// unigrams plus adjacent bigrams of the remaining tokens.
func ngramTerms(text string) []string {
	raw := wordTokenPattern.FindAllString(strings.ToLower(text), -1)

	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if !englishStopWords[tok] {
			tokens = append(tokens, tok)
		}
	}

	terms := make([]string, 0, 2*len(tokens))
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// buildVocabulary merges the term lists and keeps at most maxVocabularyTerms,
// preferring higher joint frequency, ties broken alphabetically.
func buildVocabulary(termsA, termsB []string) map[string]int {
	freq := make(map[string]int, len(termsA)+len(termsB))
	for _, t := range termsA {
		freq[t]++
	}
	for _, t := range termsB {
		freq[t]++
	}

	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})

	if len(terms) > maxVocabularyTerms {
		terms = terms[:maxVocabularyTerms]
	}

	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return vocab
}

// tfidfVector builds the L2-normalized TF-IDF vector for doc against the
// two-document corpus (doc, other) using smoothed inverse document
// frequency: idf = ln((1+n)/(1+df)) + 1 with n = 2.
func tfidfVector(doc, other []string, vocab map[string]int) []float64 {
	tf := make([]float64, len(vocab))
	for _, t := range doc {
		if i, ok := vocab[t]; ok {
			tf[i]++
		}
	}

	otherSet := make(map[string]bool, len(other))
	for _, t := range other {
		otherSet[t] = true
	}

	const docCount = 2.0
	vec := make([]float64, len(vocab))
	for t, i := range vocab {
		if tf[i] == 0 {
			continue
		}
		df := 1.0
		if otherSet[t] {
			df = 2.0
		}
		idf := math.Log((1+docCount)/(1+df)) + 1
		vec[i] = tf[i] * idf
	}

	// Accumulate the norm in index order so repeated fits of the same pair
	// produce bit-identical vectors regardless of map iteration order.
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// cosine is the dot product of two equal-length L2-normalized vectors.
func cosine(a, b []float64) float64 {
	dot := 0.0
	for i := range a {
		dot += a[i] * b[i]
	}
	if dot < 0 {
		return 0.0
	}
	if dot > 1 {
		return 1.0
	}
	return dot
}
