package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupStatus is the moderation state of a listing. The only legal
// transitions are PENDING/NEEDS_REVIEW -> APPROVED/REJECTED.
type GroupStatus string

const (
	StatusPending     GroupStatus = "PENDING"
	StatusNeedsReview GroupStatus = "NEEDS_REVIEW"
	StatusApproved    GroupStatus = "APPROVED"
	StatusRejected    GroupStatus = "REJECTED"
)

// Terminal reports whether no further moderation transition is defined
// from this status.
func (s GroupStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo reports whether the moderation workflow permits
// moving from s to target.
func (s GroupStatus) CanTransitionTo(target GroupStatus) bool {
	if s.Terminal() {
		return false
	}
	return target.Terminal()
}

// SourceType records where a listing came from.
type SourceType string

const (
	SourceUserSubmission  SourceType = "USER_SUBMISSION"
	SourceMeetupScraper   SourceType = "MEETUP_SCRAPER"
	SourceFacebookScraper SourceType = "FACEBOOK_SCRAPER"
	SourceGoogleScraper   SourceType = "GOOGLE_SCRAPER"
	SourceBingScraper     SourceType = "BING_SCRAPER"
	SourceBraveScraper    SourceType = "BRAVE_SCRAPER"
	SourceManualEntry     SourceType = "MANUAL_ENTRY"
)

type Group struct {
	ID             uuid.UUID   `json:"id"`
	Sport          string      `json:"sport"`
	Borough        string      `json:"borough"`
	Name           string      `json:"name"`
	// Slug is derived from sport and borough for browse URLs; it is
	// computed on read, not stored.
	Slug           string      `json:"slug,omitempty"`
	Venue          string      `json:"venue"`
	Area           string      `json:"area"`
	Level          string      `json:"level"`
	Description    string      `json:"description"`
	Contact        string      `json:"contact"`
	SourceURL      *string     `json:"source_url,omitempty"`
	ExternalID     *string     `json:"external_id,omitempty"`
	SourceType     SourceType  `json:"source_type"`
	Status         GroupStatus `json:"status"`
	ReviewedBy     *string     `json:"reviewed_by,omitempty"`
	ReviewedAt     *time.Time  `json:"reviewed_at,omitempty"`
	SubmittedAt    time.Time   `json:"submitted_at"`
	ScrapedAt      *time.Time  `json:"scraped_at,omitempty"`
	ScraperVersion *string     `json:"scraper_version,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

type SubmitGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Sport       string `json:"sport" validate:"required"`
	Borough     string `json:"borough" validate:"required"`
	Venue       string `json:"venue" validate:"required"`
	Area        string `json:"area" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Description string `json:"description" validate:"required"`
	Contact     string `json:"contact" validate:"required"`
	SourceURL   string `json:"source_url"`
}
