// Package ranking recommends roles from the role corpus by TF-IDF cosine similarity.
package ranking

import (
	"log/slog"
	"sort"

	"github.com/jonathan/resume-checker/internal/catalog"
	"github.com/jonathan/resume-checker/internal/types"
)

// Recommend ranks roles by cosine similarity between their descriptions and
// the resume text.
//
// The document collection is the role descriptions in corpus order followed
// by the resume, so IDF is computed over exactly len(roles)+1 documents.
// Ties keep corpus order. topN <= 0 or larger than the corpus returns every role.
func Recommend(resume string, roles []catalog.Role, topN int) ([]types.RoleRecommendation, error) {
	if len(roles) == 0 {
		return nil, ErrNoRoles
	}

	docs := make([]string, 0, len(roles)+1)
	for _, role := range roles {
		docs = append(docs, role.Description)
	}
	docs = append(docs, resume)

	matrix, err := FitTransform(docs)
	if err != nil {
		return nil, &VectorizationError{Documents: len(docs), Cause: err}
	}

	resumeVec := matrix.Rows[len(roles)]
	recs := make([]types.RoleRecommendation, len(roles))
	shared := false
	for i, role := range roles {
		score := CosineSimilarity(resumeVec, matrix.Rows[i])
		if score > 0 {
			shared = true
		}
		recs[i] = types.RoleRecommendation{Role: role.Name, Score: score}
	}

	if !shared {
		return nil, &VectorizationError{Documents: len(docs), Cause: ErrNoSharedVocabulary}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if topN > 0 && topN < len(recs) {
		recs = recs[:topN]
	}
	return recs, nil
}

// RecommendRoles is Recommend with failures degraded to an empty list.
// A missing recommendation is reported as absent, not as an error.
func RecommendRoles(resume string, roles []catalog.Role, topN int) []types.RoleRecommendation {
	recs, err := Recommend(resume, roles, topN)
	if err != nil {
		slog.Debug("role recommendation unavailable", "error", err, "roles", len(roles))
		return []types.RoleRecommendation{}
	}
	return recs
}
