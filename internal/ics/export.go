// Package ics renders events as an iCalendar feed.
package ics

import (
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stpnv0/EventCatalog/internal/domain"
)

const (
	productID = "-//EventCatalog//Cultural Events//EN"
	uidDomain = "event-catalog"
)

// Export renders events as a PUBLISH calendar stamped with now.
func Export(events []domain.CulturalEvent, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	cal.SetName("Cultural events")

	for _, e := range events {
		addEvent(cal, e, now)
	}

	return cal.Serialize()
}

func addEvent(cal *ical.Calendar, e domain.CulturalEvent, now time.Time) {
	ev := cal.AddEvent(fmt.Sprintf("%s@%s", e.ID, uidDomain))
	ev.SetDtStampTime(now.UTC())
	ev.SetStartAt(e.Date.UTC())
	ev.SetSummary(e.Title)
	ev.SetStatus(objectStatus(e.Status))
	ev.AddProperty(ical.ComponentPropertyCategories, strings.ToUpper(string(e.Category)))

	if e.Venue != "" {
		ev.SetLocation(e.Venue)
	}
	if desc := description(e); desc != "" {
		ev.SetDescription(desc)
	}
	if !e.CreatedAt.IsZero() {
		ev.SetCreatedTime(e.CreatedAt.UTC())
	}
	if !e.UpdatedAt.IsZero() {
		ev.SetModifiedAt(e.UpdatedAt.UTC())
	}
}

func objectStatus(s domain.EventStatus) ical.ObjectStatus {
	switch s {
	case domain.StatusPublished:
		return ical.ObjectStatusConfirmed
	case domain.StatusCancelled:
		return ical.ObjectStatusCancelled
	default:
		return ical.ObjectStatusTentative
	}
}

func description(e domain.CulturalEvent) string {
	desc := e.Description
	if e.Price != nil {
		price := fmt.Sprintf("Price: %.2f", *e.Price)
		if desc == "" {
			return price
		}
		desc += "\n\n" + price
	}
	return desc
}
