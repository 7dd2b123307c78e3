package services

import "fmt"

// FoodService fronts the two lookup paths: text search over the catalog and
// photo recognition that falls through to search.
type FoodService struct {
	lookup *LookupService
	vision *VisionService
}

func NewFoodService(lookup *LookupService, vision *VisionService) *FoodService {
	return &FoodService{lookup: lookup, vision: vision}
}

func (s *FoodService) Search(query string) ([]FoodMatch, error) {
	return s.lookup.Search(query)
}

// Recognize runs label detection on a photo and searches the catalog for the
// strongest label.
func (s *FoodService) Recognize(base64Img string) ([]FoodMatch, error) {
	labels, err := s.vision.DetectFoodLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}
	return s.lookup.Search(labels[0])
}

// Analyze resolves the nutrient snapshot for quantity × measure of one food.
func (s *FoodService) Analyze(foodID, measureURI string, qty float64) (*Analysis, error) {
	return s.lookup.Analyze(foodID, measureURI, qty)
}
