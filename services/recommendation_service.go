package services

import "github.com/ramadhanip/optik-care-app/models"

// FrameRecommender memetakan label bentuk wajah ke daftar gaya frame yang
// disarankan. Implementasi bawaan masih tabel statis (placeholder untuk
// inference sungguhan); controller menerima interface ini supaya service
// AI asli bisa dipasang tanpa menyentuh alur katalog/booking.
type FrameRecommender interface {
	RecommendFrames(faceShape string) []string
}

type staticFrameRecommender struct{}

// NewFrameRecommender mengembalikan recommender berbasis tabel statis.
func NewFrameRecommender() FrameRecommender {
	return &staticFrameRecommender{}
}

var frameRecommendations = map[string][]string{
	models.FaceShapeRound:  {"square", "rectangular", "angular"},
	models.FaceShapeSquare: {"round", "oval", "aviator"},
	models.FaceShapeOval:   {"any", "square", "round", "cat-eye"},
	models.FaceShapeHeart:  {"aviator", "round", "oval"},
	models.FaceShapeOblong: {"oversized", "square", "cat-eye"},
}

// RecommendFrames bersifat pure dan total: bentuk yang tidak dikenal
// mendapat ["any"], bukan error.
func (s *staticFrameRecommender) RecommendFrames(faceShape string) []string {
	if rec, ok := frameRecommendations[faceShape]; ok {
		out := make([]string, len(rec))
		copy(out, rec)
		return out
	}
	return []string{"any"}
}
