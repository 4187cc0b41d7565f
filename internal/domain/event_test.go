package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventInput_Validate(t *testing.T) {
	valid := CreateEventInput{Title: "Jazz Night", Date: time.Now(), Category: CategoryConcert}
	assert.NoError(t, valid.Validate())

	noTitle := valid
	noTitle.Title = "  "
	assert.ErrorIs(t, noTitle.Validate(), ErrValidation)

	badCategory := valid
	badCategory.Category = "circus"
	assert.ErrorIs(t, badCategory.Validate(), ErrValidation)

	badStatus := valid
	badStatus.Status = AllStatuses
	assert.ErrorIs(t, badStatus.Validate(), ErrValidation)

	noDate := valid
	noDate.Date = time.Time{}
	assert.ErrorIs(t, noDate.Validate(), ErrValidation)
}

func TestEventPatch_Apply(t *testing.T) {
	e := CulturalEvent{ID: "1", Title: "Old", Status: StatusDraft, Category: CategoryOpera}
	title := "New"
	status := StatusPublished

	got := EventPatch{Title: &title, Status: &status}.Apply(e)

	assert.Equal(t, "New", got.Title)
	assert.Equal(t, StatusPublished, got.Status)
	assert.Equal(t, CategoryOpera, got.Category)
	assert.Equal(t, "Old", e.Title)
}
