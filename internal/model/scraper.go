package model

import (
	"time"

	"github.com/google/uuid"
)

// Run statuses for a scraper invocation.
const (
	RunStatusRunning   = "running"
	RunStatusCompleted = "completed"
	RunStatusFailed    = "failed"
)

// ScraperRun records one invocation of one external-source adapter.
// Created at scrape start, updated once at scrape end, never mutated
// afterward.
type ScraperRun struct {
	ID            uuid.UUID      `json:"id"`
	ScraperType   string         `json:"scraper_type"`
	Status        string         `json:"status"`
	StartedAt     time.Time      `json:"started_at"`
	CompletedAt   *time.Time     `json:"completed_at,omitempty"`
	GroupsFound   int            `json:"groups_found"`
	GroupsCreated int            `json:"groups_created"`
	Errors        []string       `json:"errors"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Candidate is a normalized, not-yet-persisted listing produced by an
// external-source adapter before upsert.
type Candidate struct {
	Sport       string `json:"sport"`
	Borough     string `json:"borough"`
	Name        string `json:"name"`
	Venue       string `json:"venue"`
	Area        string `json:"area"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Contact     string `json:"contact"`
	SourceURL   string `json:"source_url"`
	ExternalID  string `json:"external_id"`
}

// ScrapeResult is what every adapter returns. GroupsCreated is always
// zero here; persistence is the caller's responsibility.
type ScrapeResult struct {
	Success       bool        `json:"success"`
	GroupsFound   int         `json:"groups_found"`
	GroupsCreated int         `json:"groups_created"`
	Groups        []Candidate `json:"groups"`
	Errors        []string    `json:"errors"`
}
