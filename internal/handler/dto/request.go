package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/EventCatalog/internal/domain"
)

type CreateEventRequest struct {
	Title       string   `json:"title"    binding:"required"`
	Date        string   `json:"date"     binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Status      string   `json:"status"`
	Venue       string   `json:"venue"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Price       *float64 `json:"price"`
}

func (r CreateEventRequest) ToInput() (domain.CreateEventInput, error) {
	date, err := parseDate(r.Date)
	if err != nil {
		return domain.CreateEventInput{}, err
	}
	return domain.CreateEventInput{
		Title:       r.Title,
		Date:        date,
		Category:    domain.EventCategory(r.Category),
		Status:      domain.EventStatus(r.Status),
		Venue:       r.Venue,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       r.Price,
	}, nil
}

type UpdateEventRequest struct {
	Title       *string  `json:"title"`
	Date        *string  `json:"date"`
	Category    *string  `json:"category"`
	Status      *string  `json:"status"`
	Venue       *string  `json:"venue"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
	Price       *float64 `json:"price"`
}

func (r UpdateEventRequest) ToPatch() (domain.EventPatch, error) {
	patch := domain.EventPatch{
		Title:       r.Title,
		Venue:       r.Venue,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Price:       r.Price,
	}
	if r.Date != nil {
		date, err := parseDate(*r.Date)
		if err != nil {
			return domain.EventPatch{}, err
		}
		patch.Date = &date
	}
	if r.Category != nil {
		c := domain.EventCategory(*r.Category)
		patch.Category = &c
	}
	if r.Status != nil {
		s := domain.EventStatus(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}

type FiltersRequest struct {
	Status     *string `json:"status"`
	Category   *string `json:"category"`
	SearchTerm *string `json:"search_term"`
}

func (r FiltersRequest) ToPatch() domain.FilterPatch {
	var patch domain.FilterPatch
	if r.Status != nil {
		s := domain.EventStatus(*r.Status)
		patch.Status = &s
	}
	if r.Category != nil {
		c := domain.EventCategory(*r.Category)
		patch.Category = &c
	}
	patch.SearchTerm = r.SearchTerm
	return patch
}

type SearchRequest struct {
	Term string `json:"term"`
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format, expected RFC3339", domain.ErrValidation)
	}
	return date, nil
}
