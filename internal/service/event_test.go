package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fixture struct {
	repo     *mocks.MockEventRepo
	notifier *mocks.MockEventNotifier
	metrics  *mocks.MockBackendMetrics
	clock    *clockwork.FakeClock
	svc      *EventService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:     mocks.NewMockEventRepo(t),
		notifier: mocks.NewMockEventNotifier(t),
		metrics:  mocks.NewMockBackendMetrics(t),
		clock:    clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}
	f.metrics.EXPECT().ObserveBackendCall(mock.Anything, mock.Anything, mock.Anything).Return().Maybe()
	f.svc = NewEventService(f.repo, f.notifier, f.metrics, f.clock, newTestLogger(t))
	return f
}

func validInput() domain.CreateEventInput {
	return domain.CreateEventInput{
		Title:    "Tosca",
		Date:     time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC),
		Category: domain.CategoryOpera,
		Venue:    "Opera House",
	}
}

func TestEventService_Create_Success(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := f.svc.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Tosca", event.Title)
	assert.Equal(t, domain.CategoryOpera, event.Category)
	assert.Equal(t, domain.StatusDraft, event.Status)
	assert.Equal(t, "Opera House", event.Venue)
	assert.Equal(t, f.clock.Now().UTC(), event.CreatedAt)
	assert.Equal(t, event.CreatedAt, event.UpdatedAt)
}

func TestEventService_Create_PublishedIsAnnounced(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	announced := make(chan *domain.CulturalEvent, 1)
	f.notifier.EXPECT().NotifyEventPublished(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *domain.CulturalEvent) { announced <- event }).
		Return()

	input := validInput()
	input.Status = domain.StatusPublished

	event, err := f.svc.Create(context.Background(), input)
	require.NoError(t, err)

	select {
	case got := <-announced:
		assert.Equal(t, event.ID, got.ID)
	case <-time.After(time.Second):
		t.Fatal("publication was not announced")
	}
}

func TestEventService_Create_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.CreateEventInput)
	}{
		{"empty title", func(in *domain.CreateEventInput) { in.Title = "  " }},
		{"missing date", func(in *domain.CreateEventInput) { in.Date = time.Time{} }},
		{"unknown category", func(in *domain.CreateEventInput) { in.Category = "circus" }},
		{"unknown status", func(in *domain.CreateEventInput) { in.Status = "archived" }},
		{"negative price", func(in *domain.CreateEventInput) {
			p := -1.0
			in.Price = &p
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			input := validInput()
			tt.mutate(&input)

			_, err := f.svc.Create(context.Background(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_RepoError(t *testing.T) {
	f := newFixture(t)
	repoErr := errors.New("db error")
	f.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := f.svc.Create(context.Background(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_Update_AppliesPatch(t *testing.T) {
	f := newFixture(t)
	current := &domain.CulturalEvent{
		ID: "e1", Title: "Tosca", Category: domain.CategoryOpera, Status: domain.StatusDraft,
		Venue: "Opera House",
	}
	f.repo.EXPECT().GetByID(mock.Anything, "e1").Return(current, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *domain.CulturalEvent) bool {
		return e.ID == "e1" && e.Title == "Tosca (revival)" && e.Venue == "Opera House"
	})).Return(nil)

	title := "Tosca (revival)"
	event, err := f.svc.Update(context.Background(), "e1", domain.EventPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Tosca (revival)", event.Title)
	assert.Equal(t, domain.StatusDraft, event.Status)
	assert.Equal(t, f.clock.Now().UTC(), event.UpdatedAt)
	assert.Equal(t, "Tosca", current.Title)
}

func TestEventService_Update_CancellationIsAnnounced(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.CulturalEvent{
		ID: "e1", Title: "Tosca", Status: domain.StatusPublished,
	}, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	done := make(chan struct{})
	f.notifier.EXPECT().NotifyEventCancelled(mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.CulturalEvent) { close(done) }).
		Return()

	status := domain.StatusCancelled
	_, err := f.svc.Update(context.Background(), "e1", domain.EventPatch{Status: &status})
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cancellation was not announced")
	}
}

func TestEventService_Update_SameStatusIsNotAnnounced(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.CulturalEvent{
		ID: "e1", Title: "Tosca", Status: domain.StatusPublished,
	}, nil)
	f.repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	venue := "Main Stage"
	_, err := f.svc.Update(context.Background(), "e1", domain.EventPatch{Venue: &venue})

	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)
	f.notifier.AssertNotCalled(t, "NotifyEventPublished", mock.Anything, mock.Anything)
}

func TestEventService_Update_NotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	title := "x"
	_, err := f.svc.Update(context.Background(), "missing", domain.EventPatch{Title: &title})

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Update_InvalidPatch(t *testing.T) {
	f := newFixture(t)

	status := domain.EventStatus("archived")
	_, err := f.svc.Update(context.Background(), "e1", domain.EventPatch{Status: &status})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Remove(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)
	f.repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	require.NoError(t, f.svc.Remove(context.Background(), "e1"))
	assert.ErrorIs(t, f.svc.Remove(context.Background(), "missing"), domain.ErrEventNotFound)
}

func TestEventService_List_RecordsMetrics(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	metrics := mocks.NewMockBackendMetrics(t)
	svc := NewEventService(repo, mocks.NewMockEventNotifier(t), metrics, clockwork.NewFakeClock(), newTestLogger(t))

	repoErr := errors.New("connection refused")
	repo.EXPECT().List(mock.Anything).Return([]*domain.CulturalEvent{{ID: "e1"}}, nil).Once()
	repo.EXPECT().List(mock.Anything).Return(nil, repoErr).Once()
	metrics.EXPECT().ObserveBackendCall("list", time.Duration(0), nil).Return().Once()
	metrics.EXPECT().ObserveBackendCall("list", time.Duration(0), mock.MatchedBy(func(err error) bool {
		return errors.Is(err, repoErr)
	})).Return().Once()

	events, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, events, 1)

	_, err = svc.List(context.Background())
	assert.ErrorIs(t, err, repoErr)
}
