package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"backend/models"
)

// LookupService talks to the Edamam food-database APIs: text search over the
// global catalog and per-food nutrient analysis. Results are mapped into the
// fixed NutrientVector before anything else sees them.
type LookupService struct {
	foodAppID, foodAppKey   string
	nutriAppID, nutriAppKey string
	client                  *http.Client
}

func NewLookupService() *LookupService {
	return &LookupService{
		foodAppID:   os.Getenv("EDAMAM_APP_ID"),
		foodAppKey:  os.Getenv("EDAMAM_APP_KEY"),
		nutriAppID:  os.Getenv("EDAMAM_NUTRI_APP_ID"),
		nutriAppKey: os.Getenv("EDAMAM_NUTRI_APP_KEY"),
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// FoodMatch is one catalog hit from a search or photo recognition.
type FoodMatch struct {
	FoodID   string `json:"food_id"`
	Label    string `json:"label"`
	Category string `json:"category,omitempty"`
}

type foodParserResponse struct {
	Hints []struct {
		Food struct {
			FoodID   string `json:"foodId"`
			Label    string `json:"label"`
			Category string `json:"category"`
		} `json:"food"`
	} `json:"hints"`
}

// Search queries the catalog parser endpoint.
func (s *LookupService) Search(query string) ([]FoodMatch, error) {
	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/parser?ingr=%s&app_id=%s&app_key=%s",
		url.QueryEscape(query), s.foodAppID, s.foodAppKey,
	)

	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call food parser: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read parser response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("food parser API error %d: %s", resp.StatusCode, string(body))
	}

	var pr foodParserResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, fmt.Errorf("failed to parse food parser JSON: %w", err)
	}

	results := make([]FoodMatch, 0, len(pr.Hints))
	for _, h := range pr.Hints {
		results = append(results, FoodMatch{
			FoodID:   h.Food.FoodID,
			Label:    h.Food.Label,
			Category: h.Food.Category,
		})
	}
	return results, nil
}

type nutritionResponse struct {
	Ingredients []struct {
		Parsed []struct {
			Food         string `json:"food"`
			FoodID       string `json:"foodId"`
			FoodCategory string `json:"foodCategory,omitempty"`
		} `json:"parsed"`
	} `json:"ingredients"`
	TotalNutrients map[string]struct {
		Quantity float64 `json:"quantity"`
	} `json:"totalNutrients"`
	TotalWeight float64 `json:"totalWeight"`
}

// Analysis is the outcome of a nutrient lookup for quantity × measure of one
// catalog food, ready to become a log-entry snapshot.
type Analysis struct {
	Food        FoodMatch             `json:"food"`
	MeasureURI  string                `json:"measure_uri"`
	Quantity    float64               `json:"quantity"`
	TotalWeight float64               `json:"total_weight_g,omitempty"`
	Nutrition   models.NutrientVector `json:"nutrition"`
}

// Analyze calls the nutrients endpoint for one food/measure/quantity triple
// and maps the response into the vector.
func (s *LookupService) Analyze(foodID, measureURI string, qty float64) (*Analysis, error) {
	if foodID == "" || measureURI == "" || qty <= 0 {
		return nil, fmt.Errorf("food_id, measure_uri and positive quantity are required")
	}

	payload := map[string]interface{}{
		"ingredients": []map[string]interface{}{{
			"quantity":   qty,
			"measureURI": measureURI,
			"foodId":     foodID,
		}},
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nutrition payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://api.edamam.com/api/food-database/v2/nutrients?app_id=%s&app_key=%s",
		s.nutriAppID, s.nutriAppKey,
	)

	req, err := http.NewRequest("POST", u, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("failed to create nutrition request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call nutrition API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read nutrition response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nutrition API error %d: %s", resp.StatusCode, string(body))
	}

	var nr nutritionResponse
	if err := json.Unmarshal(body, &nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition JSON: %w", err)
	}

	flat := make(map[string]float64, len(nr.TotalNutrients))
	for code, v := range nr.TotalNutrients {
		flat[code] = v.Quantity
	}

	out := &Analysis{
		Food:        FoodMatch{FoodID: foodID},
		MeasureURI:  measureURI,
		Quantity:    qty,
		TotalWeight: nr.TotalWeight,
		Nutrition:   models.NutrientVectorFromCodes(flat),
	}
	if len(nr.Ingredients) > 0 && len(nr.Ingredients[0].Parsed) > 0 {
		p := nr.Ingredients[0].Parsed[0]
		out.Food.Label = p.Food
		out.Food.Category = p.FoodCategory
		if p.FoodID != "" {
			out.Food.FoodID = p.FoodID
		}
	}
	return out, nil
}
