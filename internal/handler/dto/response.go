package dto

import (
	"time"

	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/view"
)

type EventResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Date        string   `json:"date"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Venue       string   `json:"venue,omitempty"`
	Description string   `json:"description,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	CreatedAt   string   `json:"created_at,omitempty"`
	UpdatedAt   string   `json:"updated_at,omitempty"`
}

type EventDetailsResponse struct {
	Event     EventResponse     `json:"event"`
	Favorite  bool              `json:"favorite"`
	Countdown *domain.Countdown `json:"countdown,omitempty"`
}

type FavoritesResponse struct {
	IDs    []string        `json:"ids"`
	Events []EventResponse `json:"events"`
}

type FavoriteToggleResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.CulturalEvent) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date.Format(time.RFC3339),
		Category:    string(e.Category),
		Status:      string(e.Status),
		Venue:       e.Venue,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Price:       e.Price,
		CreatedAt:   formatTime(e.CreatedAt),
		UpdatedAt:   formatTime(e.UpdatedAt),
	}
}

func ToEventDetailsResponse(m view.DetailModel) EventDetailsResponse {
	return EventDetailsResponse{
		Event:     ToEventResponse(m.Event),
		Favorite:  m.Favorite,
		Countdown: m.Countdown,
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
