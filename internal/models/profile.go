package models

// UserProfile represents one user's behavioral profile row before vector encoding
type UserProfile struct {
	UserID              string  `json:"userId"`
	PreferredCategory   string  `json:"preferredCategory"`
	PreferredTimeBucket string  `json:"preferredTimeBucket"`
	CentroidLatitude    float64 `json:"centroidLatitude"`
	CentroidLongitude   float64 `json:"centroidLongitude"`
}

// ProfileSet represents the encoded profile vectors for a set of users.
// Columns form a fixed vocabulary determined at build time; UserIDs and
// Vectors are parallel, ordered by user id so downstream computations are
// deterministic.
type ProfileSet struct {
	UserIDs []string    `json:"userIds"`
	Columns []string    `json:"columns"`
	Vectors [][]float64 `json:"vectors"`
}

// Empty reports whether the profile set contains no users
func (p *ProfileSet) Empty() bool {
	return len(p.UserIDs) == 0
}

// Vector returns the encoded vector for a user, or false when the user is absent
func (p *ProfileSet) Vector(userID string) ([]float64, bool) {
	for i, id := range p.UserIDs {
		if id == userID {
			return p.Vectors[i], true
		}
	}
	return nil, false
}

// SimilarUser represents one neighbor in a similarity ranking
type SimilarUser struct {
	UserID string  `json:"userId"`
	Score  float64 `json:"score"`
}
