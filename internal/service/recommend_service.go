package service

import (
	"math/rand"

	"github.com/kaa44111/Location-Recommendation-System/internal/enrich"
	"github.com/kaa44111/Location-Recommendation-System/internal/models"
	"github.com/kaa44111/Location-Recommendation-System/internal/profile"
	"github.com/kaa44111/Location-Recommendation-System/internal/recommend"
	"github.com/kaa44111/Location-Recommendation-System/internal/similarity"
)

// RecommendService holds the enriched dataset, the user profiles, and the
// similarity matrix. It is constructed once at startup and immutable
// afterwards, so every method is safe for concurrent use. There is no hidden
// process-wide cache: callers thread this object into whatever needs it.
type RecommendService struct {
	data     []models.EnrichedCheckin
	profiles *models.ProfileSet
	rows     map[string]models.UserProfile
	matrix   *similarity.Matrix
}

// NewRecommendService enriches the raw check-ins, builds profiles, and
// computes the similarity matrix. The heavy lifting happens exactly once,
// here.
func NewRecommendService(raw []models.CheckinRecord, taxonomy []models.Category) (*RecommendService, error) {
	data, err := enrich.Enrich(raw, taxonomy)
	if err != nil {
		return nil, err
	}

	profiles := profile.Build(data)
	rows := make(map[string]models.UserProfile)
	for _, p := range profile.Rows(data) {
		rows[p.UserID] = p
	}

	return &RecommendService{
		data:     data,
		profiles: profiles,
		rows:     rows,
		matrix:   similarity.Compute(profiles),
	}, nil
}

// Data returns the enriched dataset. Callers must treat it as read-only.
func (s *RecommendService) Data() []models.EnrichedCheckin {
	return s.data
}

// Stats returns summary counts over the enriched dataset
func (s *RecommendService) Stats() models.DatasetStats {
	users := make(map[string]struct{})
	venues := make(map[string]struct{})
	for _, e := range s.data {
		users[e.UserID] = struct{}{}
		venues[e.VenueID] = struct{}{}
	}
	return models.DatasetStats{
		Checkins: len(s.data),
		Users:    len(users),
		Venues:   len(venues),
	}
}

// Profile returns one user's profile row
func (s *RecommendService) Profile(userID string) (models.UserProfile, error) {
	p, ok := s.rows[userID]
	if !ok {
		return models.UserProfile{}, &models.UserNotFoundError{UserID: userID}
	}
	return p, nil
}

// TopSimilarUsers ranks the topN most similar users to userID
func (s *RecommendService) TopSimilarUsers(userID string, topN int) ([]models.SimilarUser, error) {
	return s.matrix.TopSimilarUsers(userID, topN)
}

// RecommendUnvisited recommends up to topK unvisited venues in the broader
// category of categoryName
func (s *RecommendService) RecommendUnvisited(userID, categoryName string, topK int) ([]models.Recommendation, error) {
	return recommend.Unvisited(userID, categoryName, s.data, topK)
}

// RecommendMeetingPlace samples one check-in per user and finds the k venues
// nearest their centroid. A non-nil seed makes the sampling reproducible.
func (s *RecommendService) RecommendMeetingPlace(userIDs []string, k int, seed *int64) (*models.MeetingPlace, error) {
	var rng *rand.Rand
	if seed != nil {
		rng = rand.New(rand.NewSource(*seed))
	}
	return recommend.MeetingPlace(userIDs, s.data, k, rng)
}
