package rank

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

const (
	maxFeatures = 5000
	maxNGram    = 3
)

// sparseVec is a sparse document vector keyed by vocabulary index.
type sparseVec map[int]float64

// vectorizer builds a shared term-frequency–inverse-document-frequency
// vector space over a document corpus. English stop words are removed
// before 1..3-word phrases are generated, and the vocabulary is capped at
// the most frequent 5000 phrases.
//
// A vectorizer is single-use: FitTransform fixes the vocabulary for the
// corpus it is given.
type vectorizer struct {
	vocab map[string]int
}

func newVectorizer() *vectorizer {
	return &vectorizer{}
}

// FitTransform learns the vocabulary from docs and returns one ℓ2-normalized
// TF-IDF vector per document, in input order.
func (v *vectorizer) FitTransform(docs []string) []sparseVec {
	tokenized := make([][]string, len(docs))
	totalCount := make(map[string]int)
	docFreq := make(map[string]int)

	for i, doc := range docs {
		grams := ngrams(tokenize(doc))
		tokenized[i] = grams

		inDoc := make(map[string]struct{}, len(grams))
		for _, g := range grams {
			totalCount[g]++
			inDoc[g] = struct{}{}
		}
		for g := range inDoc {
			docFreq[g]++
		}
	}

	v.vocab = selectVocabulary(totalCount)

	n := float64(len(docs))
	idf := make([]float64, len(v.vocab))
	for term, idx := range v.vocab {
		idf[idx] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	vectors := make([]sparseVec, len(docs))
	for i, grams := range tokenized {
		vec := make(sparseVec)
		for _, g := range grams {
			if idx, ok := v.vocab[g]; ok {
				vec[idx]++
			}
		}
		for idx := range vec {
			vec[idx] *= idf[idx]
		}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors
}

// selectVocabulary keeps the maxFeatures most frequent terms, breaking
// frequency ties alphabetically so vocabulary selection is deterministic.
func selectVocabulary(counts map[string]int) map[string]int {
	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}

	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

// tokenize lower-cases the text, splits it into word tokens, and drops stop
// words.
func tokenize(text string) []string {
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		tok := b.String()
		b.Reset()
		if _, stop := englishStopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// ngrams expands word tokens into all 1..maxNGram word phrases.
func ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}
	grams := make([]string, 0, len(tokens)*maxNGram)
	for size := 1; size <= maxNGram; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			grams = append(grams, strings.Join(tokens[i:i+size], " "))
		}
	}
	return grams
}

func normalize(vec sparseVec) {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for idx := range vec {
		vec[idx] /= norm
	}
}

// cosine returns the cosine similarity of two ℓ2-normalized sparse vectors.
func cosine(a, b sparseVec) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for idx, w := range a {
		dot += w * b[idx]
	}
	return dot
}
