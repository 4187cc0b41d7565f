package domain

import (
	"fmt"
	"strings"
	"time"
)

type EventCategory string

const (
	CategoryConcert    EventCategory = "concert"
	CategoryOpera      EventCategory = "opera"
	CategoryTheater    EventCategory = "theater"
	CategoryExhibition EventCategory = "exhibition"

	// AllCategories is the filter value that matches every category.
	AllCategories EventCategory = "all"
)

var Categories = []EventCategory{CategoryConcert, CategoryOpera, CategoryTheater, CategoryExhibition}

func (c EventCategory) Valid() bool {
	switch c {
	case CategoryConcert, CategoryOpera, CategoryTheater, CategoryExhibition:
		return true
	}
	return false
}

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"

	// AllStatuses is the filter value that matches every status.
	AllStatuses EventStatus = "all"
)

var Statuses = []EventStatus{StatusDraft, StatusPublished, StatusCancelled}

func (s EventStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled:
		return true
	}
	return false
}

// Next returns the status that follows s in the draft -> published -> cancelled -> draft cycle.
func (s EventStatus) Next() EventStatus {
	switch s {
	case StatusDraft:
		return StatusPublished
	case StatusPublished:
		return StatusCancelled
	default:
		return StatusDraft
	}
}

type CulturalEvent struct {
	ID          string        `json:"id"          yaml:"id"`
	Title       string        `json:"title"       yaml:"title"`
	Date        time.Time     `json:"date"        yaml:"date"`
	Category    EventCategory `json:"category"    yaml:"category"`
	Status      EventStatus   `json:"status"      yaml:"status"`
	Venue       string        `json:"venue"       yaml:"venue"`
	Description string        `json:"description" yaml:"description"`
	ImageURL    string        `json:"image_url"   yaml:"image_url"`
	Price       *float64      `json:"price"       yaml:"price"`
	CreatedAt   time.Time     `json:"created_at"  yaml:"-"`
	UpdatedAt   time.Time     `json:"updated_at"  yaml:"-"`
}

type CreateEventInput struct {
	Title       string        `yaml:"title"`
	Date        time.Time     `yaml:"date"`
	Category    EventCategory `yaml:"category"`
	Status      EventStatus   `yaml:"status"`
	Venue       string        `yaml:"venue"`
	Description string        `yaml:"description"`
	ImageURL    string        `yaml:"image_url"`
	Price       *float64      `yaml:"price"`
}

func (in CreateEventInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, in.Category)
	}
	if in.Status != "" && !in.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, in.Status)
	}
	if in.Price != nil && *in.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// EventPatch carries the fields to change on an existing event. Nil fields are left as is.
type EventPatch struct {
	Title       *string
	Date        *time.Time
	Category    *EventCategory
	Status      *EventStatus
	Venue       *string
	Description *string
	ImageURL    *string
	Price       *float64
}

func (p EventPatch) Validate() error {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return fmt.Errorf("%w: title must not be empty", ErrValidation)
	}
	if p.Date != nil && p.Date.IsZero() {
		return fmt.Errorf("%w: date must not be empty", ErrValidation)
	}
	if p.Category != nil && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrValidation, *p.Category)
	}
	if p.Status != nil && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, *p.Status)
	}
	if p.Price != nil && *p.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// Apply returns a copy of e with the patch applied.
func (p EventPatch) Apply(e CulturalEvent) CulturalEvent {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Venue != nil {
		e.Venue = *p.Venue
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.ImageURL != nil {
		e.ImageURL = *p.ImageURL
	}
	if p.Price != nil {
		price := *p.Price
		e.Price = &price
	}
	return e
}

type EventCounts struct {
	Total      int                   `json:"total"`
	ByStatus   map[EventStatus]int   `json:"by_status"`
	ByCategory map[EventCategory]int `json:"by_category"`
}

// CountEvents aggregates events by status and category. Every known status and
// category has an entry, zero when absent.
func CountEvents(events []CulturalEvent) EventCounts {
	counts := EventCounts{
		Total:      len(events),
		ByStatus:   make(map[EventStatus]int, len(Statuses)),
		ByCategory: make(map[EventCategory]int, len(Categories)),
	}
	for _, s := range Statuses {
		counts.ByStatus[s] = 0
	}
	for _, c := range Categories {
		counts.ByCategory[c] = 0
	}
	for _, e := range events {
		counts.ByStatus[e.Status]++
		counts.ByCategory[e.Category]++
	}
	return counts
}
