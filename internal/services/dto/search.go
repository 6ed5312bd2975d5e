package dto

import "ekrafmate_backend/internal/models"

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// CreativeSearchResult is a ranked profile match. Score is the raw
// similarity reported by the vector ranking; higher is better.
type CreativeSearchResult struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Score       float64  `json:"score"`
}

type ProjectSearchResult struct {
	ID             string               `json:"_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	OwnerID        string               `json:"owner"`
	RequiredSkills []string             `json:"requiredSkills"`
	Budget         *float64             `json:"budget,omitempty"`
	Status         models.ProjectStatus `json:"status"`
	Score          float64              `json:"score"`
}
