package domain

import (
	"fmt"
	"strings"
)

type EventFilters struct {
	Status     EventStatus   `json:"status"`
	Category   EventCategory `json:"category"`
	SearchTerm string        `json:"search_term"`
}

func DefaultFilters() EventFilters {
	return EventFilters{
		Status:   AllStatuses,
		Category: AllCategories,
	}
}

// Active reports whether any clause narrows the result.
func (f EventFilters) Active() bool {
	return f.Status != AllStatuses || f.Category != AllCategories || f.SearchTerm != ""
}

// FilterPatch is a partial update of EventFilters. Nil fields keep their current value.
type FilterPatch struct {
	Status     *EventStatus
	Category   *EventCategory
	SearchTerm *string
}

func (p FilterPatch) Validate() error {
	if p.Status != nil && *p.Status != AllStatuses && !p.Status.Valid() {
		return fmt.Errorf("%w: unknown status filter %q", ErrValidation, *p.Status)
	}
	if p.Category != nil && *p.Category != AllCategories && !p.Category.Valid() {
		return fmt.Errorf("%w: unknown category filter %q", ErrValidation, *p.Category)
	}
	return nil
}

func (p FilterPatch) Merge(f EventFilters) EventFilters {
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.SearchTerm != nil {
		f.SearchTerm = *p.SearchTerm
	}
	return f
}

// Matches reports whether e satisfies every clause of f. The search term is
// trimmed and compared case-insensitively against the title.
func Matches(e CulturalEvent, f EventFilters) bool {
	statusOK := f.Status == AllStatuses || e.Status == f.Status
	categoryOK := f.Category == AllCategories || e.Category == f.Category

	term := strings.ToLower(strings.TrimSpace(f.SearchTerm))
	searchOK := term == "" || strings.Contains(strings.ToLower(e.Title), term)

	return statusOK && categoryOK && searchOK
}

// FilterEvents keeps the events matching f in their original order.
func FilterEvents(events []CulturalEvent, f EventFilters) []CulturalEvent {
	res := make([]CulturalEvent, 0, len(events))
	for _, e := range events {
		if Matches(e, f) {
			res = append(res, e)
		}
	}
	return res
}
