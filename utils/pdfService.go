package utils

import (
	"fmt"
	"log"

	"github.com/Niaal-B/CareerPath/config"

	"github.com/go-resty/resty/v2"
)

// RecommendationExport is the payload handed to the external PDF renderer.
// The renderer owns the layout; this backend only supplies the data.
type RecommendationExport struct {
	CareerName string               `json:"career_name"`
	Summary    string               `json:"summary"`
	Companies  []string             `json:"companies"`
	Steps      []ExportRoadmapStep  `json:"steps"`
	Student    ExportStudentProfile `json:"student"`
	CreatedAt  string               `json:"created_at"`
}

type ExportRoadmapStep struct {
	Order       int    `json:"order"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ExportStudentProfile struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Qualification string `json:"qualification"`
	Interests     string `json:"interests"`
}

// RenderRecommendationPDF posts the export payload to the PDF service and
// returns the rendered document bytes.
func RenderRecommendationPDF(payload RecommendationExport) ([]byte, error) {
	client := resty.New()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(config.AppConfig.PdfServiceURL)
	if err != nil {
		log.Printf("Failed to reach PDF service: %v", err)
		return nil, err
	}
	if resp.StatusCode() != 200 {
		log.Printf("PDF service returned %d: %s", resp.StatusCode(), resp.String())
		return nil, fmt.Errorf("pdf service returned status %d", resp.StatusCode())
	}
	return resp.Body(), nil
}
