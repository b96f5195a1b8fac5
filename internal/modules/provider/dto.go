package provider

import "localfix/internal/domain"

type CreateProviderRequest struct {
	Specialty       string   `json:"specialty" binding:"required"`
	Description     string   `json:"description"`
	Location        string   `json:"location" binding:"required"`
	ServiceRadius   int      `json:"serviceRadius" binding:"gte=0"`
	HourlyRate      float64  `json:"hourlyRate" binding:"gte=0"`
	Categories      []string `json:"categories"`
	YearsExperience int      `json:"yearsExperience" binding:"gte=0"`
}

// UpdateProviderRequest is a partial patch; nil fields are left untouched.
// Rating, review count, approval and ownership are not patchable at all.
type UpdateProviderRequest struct {
	Specialty       *string   `json:"specialty"`
	Description     *string   `json:"description"`
	Location        *string   `json:"location"`
	ServiceRadius   *int      `json:"serviceRadius" binding:"omitempty,gte=0"`
	HourlyRate      *float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
	IsAvailable     *bool     `json:"isAvailable"`
	Categories      *[]string `json:"categories"`
	YearsExperience *int      `json:"yearsExperience" binding:"omitempty,gte=0"`
}

type ApproveRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

// ProviderDetails is a provider enriched with its owner's name summary.
type ProviderDetails struct {
	domain.Provider
	User *domain.UserSummary `json:"user"`
}

// ProviderProfile is the public detail payload, reviews included.
type ProviderProfile struct {
	domain.Provider
	User    *domain.UserSummary `json:"user"`
	Reviews []domain.Review     `json:"reviews"`
}
