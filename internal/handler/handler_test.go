package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/favorites"
	"github.com/stpnv0/EventCatalog/internal/handler/dto"
	"github.com/stpnv0/EventCatalog/internal/metrics"
	"github.com/stpnv0/EventCatalog/internal/store"
	"github.com/stpnv0/EventCatalog/internal/store/mocks"
	"github.com/stpnv0/EventCatalog/internal/view"
	"github.com/stpnv0/EventCatalog/internal/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

const (
	toscaID  = "6f1c0c1e-3b7a-4f0e-9a51-1d1f7e3b2a01"
	hamletID = "6f1c0c1e-3b7a-4f0e-9a51-1d1f7e3b2a02"
	otherID  = "6f1c0c1e-3b7a-4f0e-9a51-1d1f7e3b2aff"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type memStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func (m *memStorage) GetItem(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	if !ok {
		return "", domain.ErrItemNotFound
	}
	return v, nil
}

func (m *memStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}

type testEnv struct {
	backend *mocks.MockEventBackend
	store   *store.Store
	clock   *clockwork.FakeClock
	storage *memStorage
	router  http.Handler
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	log := newTestLogger(t)
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	backend := mocks.NewMockEventBackend(t)
	s := store.New(backend, log)
	storage := &memStorage{items: map[string]string{}}
	favs := favorites.New(context.Background(), storage, favorites.DefaultStorageKey, log)
	list := view.NewListView(s, favs, clock, 300*time.Millisecond, log)
	t.Cleanup(list.Close)
	hub := websocket.NewHub(metrics.New(), log)

	h := NewHandler(s, list, favs, hub, clock, time.Second, nil, log)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.POST("/events/reload", h.ReloadEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PUT("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.POST("/events/:id/toggle-status", h.ToggleEventStatus)
		api.PATCH("/filters", h.UpdateFilters)
		api.DELETE("/filters", h.ResetFilters)
		api.POST("/search", h.Search)
		api.GET("/favorites", h.ListFavorites)
		api.POST("/favorites/:id/toggle", h.ToggleFavorite)
		api.DELETE("/favorites", h.ClearFavorites)
		api.GET("/calendar.ics", h.Calendar)
	}

	return &testEnv{backend: backend, store: s, clock: clock, storage: storage, router: r}
}

func (e *testEnv) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) load(t *testing.T) {
	t.Helper()
	e.backend.EXPECT().List(mock.Anything).Return([]*domain.CulturalEvent{
		{
			ID: toscaID, Title: "Tosca", Date: e.clock.Now().Add(50 * time.Hour),
			Category: domain.CategoryOpera, Status: domain.StatusPublished, Venue: "Opera House",
		},
		{
			ID: hamletID, Title: "Hamlet", Date: e.clock.Now().Add(-time.Hour),
			Category: domain.CategoryTheater, Status: domain.StatusDraft,
		},
	}, nil).Once()
	require.NoError(t, e.store.LoadEvents(context.Background()))
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))
	return v
}

// --- Events ---

func TestHandler_ListEvents_Initial(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	m := decode[view.ListModel](t, w)
	assert.True(t, m.IsEmpty)
	assert.False(t, m.HasStats)
	assert.Equal(t, domain.DefaultFilters(), m.Filters)
}

func TestHandler_ReloadEvents_Success(t *testing.T) {
	env := setupRouter(t)
	env.backend.EXPECT().List(mock.Anything).Return([]*domain.CulturalEvent{
		{ID: toscaID, Title: "Tosca", Category: domain.CategoryOpera, Status: domain.StatusDraft},
	}, nil)

	w := env.do(http.MethodPost, "/api/events/reload", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	m := decode[view.ListModel](t, w)
	require.Len(t, m.Events, 1)
	assert.Equal(t, "Tosca", m.Events[0].Title)
	assert.Equal(t, 1, m.Counts.ByStatus[domain.StatusDraft])
}

func TestHandler_ReloadEvents_Failure(t *testing.T) {
	env := setupRouter(t)
	env.backend.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused"))

	w := env.do(http.MethodPost, "/api/events/reload", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, env.store.Snapshot().Error, "connection refused")
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	env := setupRouter(t)
	date := time.Date(2026, 5, 10, 19, 0, 0, 0, time.UTC)
	env.backend.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Tosca" && in.Category == domain.CategoryOpera && in.Date.Equal(date)
	})).Return(&domain.CulturalEvent{
		ID: toscaID, Title: "Tosca", Date: date, Category: domain.CategoryOpera, Status: domain.StatusDraft,
	}, nil)

	w := env.do(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:    "Tosca",
		Date:     date.Format(time.RFC3339),
		Category: "opera",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode[dto.EventResponse](t, w)
	assert.Equal(t, toscaID, resp.ID)
	assert.Equal(t, "draft", resp.Status)
	assert.Len(t, env.store.Snapshot().Events, 1)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events", map[string]string{"title": ""})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Tosca", Date: "next friday", Category: "opera",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_Rejected(t *testing.T) {
	env := setupRouter(t)
	env.backend.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: unknown category \"circus\"", domain.ErrValidation))

	w := env.do(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title: "Clowns", Date: "2026-05-10T19:00:00Z", Category: "circus",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.store.Snapshot().Events)
}

func TestHandler_GetEvent_Resident(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	w := env.do(http.MethodGet, "/api/events/"+toscaID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.EventDetailsResponse](t, w)
	assert.Equal(t, "Tosca", resp.Event.Title)
	assert.False(t, resp.Favorite)
	require.NotNil(t, resp.Countdown)
	assert.Equal(t, domain.Countdown{Days: 2, Hours: 2}, *resp.Countdown)
	assert.Equal(t, toscaID, env.store.Snapshot().Selection.ID)
}

func TestHandler_GetEvent_PastEventIsExpired(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	w := env.do(http.MethodGet, "/api/events/"+hamletID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.EventDetailsResponse](t, w)
	require.NotNil(t, resp.Countdown)
	assert.True(t, resp.Countdown.Expired)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodGet, "/api/events/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	env := setupRouter(t)
	env.backend.EXPECT().Get(mock.Anything, otherID).Return(nil, domain.ErrEventNotFound)

	w := env.do(http.MethodGet, "/api/events/"+otherID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, env.store.Snapshot().Selection.NotFound)
}

func TestHandler_GetEvent_ServesRequestedEventWhenSelectionMoves(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	started := make(chan struct{})
	release := make(chan struct{})
	env.backend.EXPECT().Get(mock.Anything, otherID).RunAndReturn(func(context.Context, string) (*domain.CulturalEvent, error) {
		close(started)
		<-release
		return &domain.CulturalEvent{
			ID: otherID, Title: "Nabucco", Date: env.clock.Now().Add(24 * time.Hour),
			Category: domain.CategoryOpera, Status: domain.StatusPublished,
		}, nil
	})

	slow := make(chan *httptest.ResponseRecorder, 1)
	go func() { slow <- env.do(http.MethodGet, "/api/events/"+otherID, nil) }()
	<-started

	fast := env.do(http.MethodGet, "/api/events/"+toscaID, nil)
	require.Equal(t, http.StatusOK, fast.Code)
	assert.Equal(t, "Tosca", decode[dto.EventDetailsResponse](t, fast).Event.Title)

	close(release)
	w := <-slow

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[dto.EventDetailsResponse](t, w)
	assert.Equal(t, otherID, resp.Event.ID)
	assert.Equal(t, "Nabucco", resp.Event.Title)
	require.NotNil(t, resp.Countdown)
	assert.Equal(t, domain.Countdown{Days: 1}, *resp.Countdown)

	assert.Equal(t, toscaID, env.store.Snapshot().Selection.ID)
}

func TestHandler_UpdateEvent(t *testing.T) {
	env := setupRouter(t)
	env.load(t)
	env.backend.EXPECT().Update(mock.Anything, toscaID, mock.MatchedBy(func(p domain.EventPatch) bool {
		return p.Venue != nil && *p.Venue == "Main Stage" && p.Title == nil
	})).Return(&domain.CulturalEvent{
		ID: toscaID, Title: "Tosca", Category: domain.CategoryOpera, Status: domain.StatusPublished, Venue: "Main Stage",
	}, nil)

	venue := "Main Stage"
	w := env.do(http.MethodPut, "/api/events/"+toscaID, dto.UpdateEventRequest{Venue: &venue})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Main Stage", env.store.Snapshot().Events[0].Venue)
}

func TestHandler_ToggleEventStatus(t *testing.T) {
	env := setupRouter(t)
	env.load(t)
	next := domain.StatusPublished
	env.backend.EXPECT().Update(mock.Anything, hamletID, domain.EventPatch{Status: &next}).
		Return(&domain.CulturalEvent{ID: hamletID, Title: "Hamlet", Category: domain.CategoryTheater, Status: next}, nil)

	w := env.do(http.MethodPost, "/api/events/"+hamletID+"/toggle-status", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "published", decode[dto.EventResponse](t, w).Status)
	assert.Equal(t, 2, env.store.Snapshot().Counts.ByStatus[domain.StatusPublished])
}

func TestHandler_ToggleEventStatus_Unknown(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPost, "/api/events/"+otherID+"/toggle-status", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent(t *testing.T) {
	env := setupRouter(t)
	env.load(t)
	env.backend.EXPECT().Remove(mock.Anything, toscaID).Return(nil)

	w := env.do(http.MethodDelete, "/api/events/"+toscaID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, env.store.Snapshot().Events, 1)
}

// --- Filters ---

func TestHandler_UpdateFilters(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	w := env.do(http.MethodPatch, "/api/filters", map[string]string{"category": "theater"})

	assert.Equal(t, http.StatusOK, w.Code)
	m := decode[view.ListModel](t, w)
	require.Len(t, m.Events, 1)
	assert.Equal(t, hamletID, m.Events[0].ID)
	assert.True(t, m.Filtering)
	assert.Equal(t, 2, m.Counts.Total)

	w = env.do(http.MethodDelete, "/api/filters", nil)
	assert.Len(t, decode[view.ListModel](t, w).Events, 2)
}

func TestHandler_UpdateFilters_UnknownStatus(t *testing.T) {
	env := setupRouter(t)

	w := env.do(http.MethodPatch, "/api/filters", map[string]string{"status": "archived"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, domain.DefaultFilters(), env.store.Snapshot().Filters)
}

func TestHandler_Search_IsDebounced(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	w := env.do(http.MethodPost, "/api/search", dto.SearchRequest{Term: " tos "})

	assert.Equal(t, http.StatusAccepted, w.Code)
	m := decode[view.ListModel](t, w)
	require.NotNil(t, m.PendingSearch)
	assert.Equal(t, "tos", *m.PendingSearch)
	assert.Len(t, m.Events, 2)

	env.clock.Advance(300 * time.Millisecond)
	require.Eventually(t, func() bool {
		return len(env.store.Snapshot().FilteredEvents) == 1
	}, time.Second, 5*time.Millisecond)
}

// --- Favorites ---

func TestHandler_Favorites(t *testing.T) {
	env := setupRouter(t)
	env.load(t)

	w := env.do(http.MethodPost, "/api/favorites/"+toscaID+"/toggle", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, dto.FavoriteToggleResponse{ID: toscaID, Favorite: true}, decode[dto.FavoriteToggleResponse](t, w))
	assert.JSONEq(t, `["`+toscaID+`"]`, env.storage.items[favorites.DefaultStorageKey])

	env.do(http.MethodPost, "/api/favorites/"+otherID+"/toggle", nil)

	w = env.do(http.MethodGet, "/api/favorites", nil)
	resp := decode[dto.FavoritesResponse](t, w)
	assert.ElementsMatch(t, []string{toscaID, otherID}, resp.IDs)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, toscaID, resp.Events[0].ID)

	w = env.do(http.MethodGet, "/api/events", nil)
	assert.True(t, decode[view.ListModel](t, w).Events[0].Favorite)

	w = env.do(http.MethodDelete, "/api/favorites", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	_, stored := env.storage.items[favorites.DefaultStorageKey]
	assert.False(t, stored)
}

// --- Calendar ---

func TestHandler_Calendar(t *testing.T) {
	env := setupRouter(t)
	env.load(t)
	require.NoError(t, env.store.UpdateFilters(domain.FilterPatch{Status: ptr(domain.StatusPublished)}))

	w := env.do(http.MethodGet, "/api/calendar.ics", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/calendar")
	body := w.Body.String()
	assert.Contains(t, body, "SUMMARY:Tosca")
	assert.NotContains(t, body, "SUMMARY:Hamlet")
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t)
	env.load(t)
	env.backend.EXPECT().Remove(mock.Anything, toscaID).Return(errors.New("disk on fire"))

	w := env.do(http.MethodDelete, "/api/events/"+toscaID, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
	assert.Len(t, env.store.Snapshot().Events, 2)
}

func ptr[T any](v T) *T { return &v }
