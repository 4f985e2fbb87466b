package ranking

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// termPattern selects tokens of two or more word characters, the same token
// rule conventional TF-IDF vectorizers default to. Single characters such as
// "r" or "c" are dropped.
var termPattern = regexp.MustCompile(`\w\w+`)

// Vector is a sparse term-weight vector keyed by vocabulary index.
type Vector map[int]float64

// Norm returns the Euclidean length of the vector.
func (v Vector) Norm() float64 {
	sum := 0.0
	for _, w := range v {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// Matrix holds one TF-IDF row per input document, in input order.
type Matrix struct {
	Vocabulary map[string]int
	IDF        []float64
	Rows       []Vector
}

// Terms tokenizes text the way the vectorizer does.
func Terms(text string) []string {
	return termPattern.FindAllString(strings.ToLower(text), -1)
}

// FitTransform builds TF-IDF vectors for exactly the given documents.
//
// Term frequency is the raw count. IDF is smoothed as ln((1+n)/(1+df)) + 1,
// so a term present in every document still carries weight 1. Each row is
// L2-normalized; a document with no terms yields an empty row. The
// vocabulary is scoped to these documents only and is rebuilt on every call.
func FitTransform(docs []string) (*Matrix, error) {
	tokenized := make([][]string, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		terms := Terms(doc)
		tokenized[i] = terms

		seen := make(map[string]bool, len(terms))
		for _, term := range terms {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}

	if len(df) == 0 {
		return nil, ErrEmptyVocabulary
	}

	// Sorted vocabulary keeps indices stable across runs.
	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	vocabulary := make(map[string]int, len(terms))
	idf := make([]float64, len(terms))
	n := float64(len(docs))
	for i, term := range terms {
		vocabulary[term] = i
		idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	rows := make([]Vector, len(docs))
	for i, docTerms := range tokenized {
		row := make(Vector, len(docTerms))
		for _, term := range docTerms {
			row[vocabulary[term]]++
		}
		for idx, count := range row {
			row[idx] = count * idf[idx]
		}
		if norm := row.Norm(); norm > 0 {
			for idx := range row {
				row[idx] /= norm
			}
		}
		rows[i] = row
	}

	return &Matrix{Vocabulary: vocabulary, IDF: idf, Rows: rows}, nil
}

// CosineSimilarity returns the cosine of the angle between two sparse
// vectors, or 0 when either is empty.
func CosineSimilarity(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	// Iterate the shorter vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for idx, wa := range a {
		if wb, ok := b[idx]; ok {
			dot += wa * wb
		}
	}
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}
