package dto

type CreateProjectRequest struct {
	Title          string   `json:"title" binding:"required"`
	Description    string   `json:"description" binding:"required"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
}

// UpdateProjectRequest carries partial edits; absent fields are left
// untouched.
type UpdateProjectRequest struct {
	Title          *string  `json:"title,omitempty"`
	Description    *string  `json:"description,omitempty"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	Budget         *float64 `json:"budget,omitempty"`
}

type AcceptCreativeRequest struct {
	CreativeID string `json:"creativeId" binding:"required"`
}
