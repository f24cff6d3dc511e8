// Package similarity computes pairwise cosine similarity over user profile
// vectors and ranks nearest neighbors.
package similarity

import (
	"sort"

	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/stats"
)

// Matrix is a square, symmetric user-user similarity matrix. It is fully
// recomputed from a profile set and read-only afterwards, so concurrent reads
// need no locking.
type Matrix struct {
	UserIDs []string
	Scores  [][]float64

	index map[string]int
}

// Compute builds the full similarity matrix from a profile set. Entry (i,j)
// is the cosine similarity of vectors i and j; the similarity involving a
// zero vector is 0, and the diagonal is exactly 1.0 for every user with a
// nonzero vector. An empty profile set yields an empty matrix.
func Compute(profiles *models.ProfileSet) *Matrix {
	n := len(profiles.UserIDs)
	m := &Matrix{
		UserIDs: append([]string(nil), profiles.UserIDs...),
		Scores:  make([][]float64, n),
		index:   make(map[string]int, n),
	}
	for i, id := range m.UserIDs {
		m.index[id] = i
		m.Scores[i] = make([]float64, n)
	}

	norms := make([]float64, n)
	for i := range profiles.Vectors {
		norms[i] = stats.Norm(profiles.Vectors[i])
	}

	for i := 0; i < n; i++ {
		if norms[i] > 0 {
			m.Scores[i][i] = 1.0
		}
		for j := i + 1; j < n; j++ {
			var score float64
			if norms[i] > 0 && norms[j] > 0 {
				score = stats.Dot(profiles.Vectors[i], profiles.Vectors[j]) / (norms[i] * norms[j])
			}
			m.Scores[i][j] = score
			m.Scores[j][i] = score
		}
	}
	return m
}

// Len returns the number of users in the matrix
func (m *Matrix) Len() int {
	return len(m.UserIDs)
}

// Contains reports whether the matrix indexes the given user
func (m *Matrix) Contains(userID string) bool {
	_, ok := m.index[userID]
	return ok
}

// TopSimilarUsers returns the topN most similar users to userID, sorted by
// similarity descending and excluding the user's own entry. Fewer than topN
// other users yields all of them. An unknown user id surfaces a
// UserNotFoundError naming the id; it is never an empty result.
func (m *Matrix) TopSimilarUsers(userID string, topN int) ([]models.SimilarUser, error) {
	i, ok := m.index[userID]
	if !ok {
		return nil, &models.UserNotFoundError{UserID: userID}
	}

	neighbors := make([]models.SimilarUser, 0, m.Len()-1)
	for j, id := range m.UserIDs {
		if j == i {
			continue
		}
		neighbors = append(neighbors, models.SimilarUser{UserID: id, Score: m.Scores[i][j]})
	}

	sort.SliceStable(neighbors, func(a, b int) bool {
		return neighbors[a].Score > neighbors[b].Score
	})

	if topN >= 0 && topN < len(neighbors) {
		neighbors = neighbors[:topN]
	}
	return neighbors, nil
}
