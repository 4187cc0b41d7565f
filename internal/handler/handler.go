package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stpnv0/EventCatalog/internal/countdown"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/stpnv0/EventCatalog/internal/favorites"
	"github.com/stpnv0/EventCatalog/internal/handler/dto"
	"github.com/stpnv0/EventCatalog/internal/ics"
	"github.com/stpnv0/EventCatalog/internal/store"
	"github.com/stpnv0/EventCatalog/internal/view"
	"github.com/stpnv0/EventCatalog/internal/websocket"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

type EventStore interface {
	Snapshot() store.Snapshot
	Subscribe(fn func(store.Snapshot)) (unsubscribe func())
	LoadEvents(ctx context.Context) error
	SelectEvent(ctx context.Context, id string) (*domain.CulturalEvent, error)
	ClearSelection()
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.CulturalEvent, error)
	UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.CulturalEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	ToggleEventStatus(ctx context.Context, id string) (*domain.CulturalEvent, error)
}

type ListView interface {
	Search(raw string)
	Filter(patch domain.FilterPatch) error
	Reset()
	Model() view.ListModel
}

type FavoritesRepo interface {
	IsFavorite(id string) bool
	Favorites() favorites.Set
	Toggle(ctx context.Context, id string)
	Clear(ctx context.Context)
}

type ClientRegistry interface {
	Register(client *websocket.Client)
	Unregister(client *websocket.Client)
}

type Handler struct {
	store         EventStore
	list          ListView
	favorites     FavoritesRepo
	hub           ClientRegistry
	clock         clockwork.Clock
	countdownTick time.Duration
	upgrader      gws.Upgrader
	logger        logger.Logger
}

func NewHandler(
	s EventStore,
	list ListView,
	favs FavoritesRepo,
	hub ClientRegistry,
	clock clockwork.Clock,
	countdownTick time.Duration,
	allowedOrigins []string,
	logger logger.Logger,
) *Handler {
	return &Handler{
		store:         s,
		list:          list,
		favorites:     favs,
		hub:           hub,
		clock:         clock,
		countdownTick: countdownTick,
		upgrader: gws.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin(allowedOrigins),
		},
		logger: logger,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	c.JSON(http.StatusOK, h.list.Model())
}

func (h *Handler) ReloadEvents(c *ginext.Context) {
	if err := h.store.LoadEvents(c.Request.Context()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.list.Model())
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.store.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// GetEvent selects the event and describes it with the time left until it
// starts. The response always describes id, even when another request has
// moved the selection meanwhile.
func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	event, err := h.store.SelectEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	if event == nil || event.ID != id {
		h.handleError(c, domain.ErrEventNotFound)
		return
	}

	remaining := domain.RemainingUntil(event.Date, h.clock.Now())
	model := view.DetailModel{
		Event:     event,
		Favorite:  h.favorites.IsFavorite(id),
		Countdown: &remaining,
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(model))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		h.handleError(c, err)
		return
	}

	event, err := h.store.UpdateEvent(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ToggleEventStatus(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	event, err := h.store.ToggleEventStatus(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// Filters

func (h *Handler) UpdateFilters(c *ginext.Context) {
	var req dto.FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.list.Filter(req.ToPatch()); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.list.Model())
}

func (h *Handler) ResetFilters(c *ginext.Context) {
	h.list.Reset()
	c.JSON(http.StatusOK, h.list.Model())
}

// Search feeds the search box. The term is applied once typing settles, so the
// response carries it as pending.
func (h *Handler) Search(c *ginext.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	h.list.Search(req.Term)
	c.JSON(http.StatusAccepted, h.list.Model())
}

// Favorites

func (h *Handler) ListFavorites(c *ginext.Context) {
	set := h.favorites.Favorites()
	events := make([]dto.EventResponse, 0, len(set))
	for _, e := range h.store.Snapshot().Events {
		if set.Has(e.ID) {
			events = append(events, dto.ToEventResponse(&e))
		}
	}

	c.JSON(http.StatusOK, dto.FavoritesResponse{IDs: set.IDs(), Events: events})
}

func (h *Handler) ToggleFavorite(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	h.favorites.Toggle(c.Request.Context(), id)
	c.JSON(http.StatusOK, dto.FavoriteToggleResponse{ID: id, Favorite: h.favorites.IsFavorite(id)})
}

func (h *Handler) ClearFavorites(c *ginext.Context) {
	h.favorites.Clear(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Calendar exports the filtered view as an iCalendar feed.
func (h *Handler) Calendar(c *ginext.Context) {
	body := ics.Export(h.store.Snapshot().FilteredEvents, h.clock.Now())

	c.Header("Content-Disposition", `attachment; filename="events.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(body))
}

// WebSocket

// Updates streams catalog snapshots and favorites changes.
func (h *Handler) Updates(c *ginext.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logger.String("error", err.Error()))
		return
	}

	client := websocket.NewClient(h.logger)
	h.hub.Register(client)

	go client.WritePump(conn)
	go client.ReadPump(conn, func() { h.hub.Unregister(client) })
}

// Countdown streams the opened event followed by the time left until it
// starts. The event stays selected and the countdown runs for as long as the
// connection is open.
func (h *Handler) Countdown(c *ginext.Context) {
	id, ok := h.eventID(c)
	if !ok {
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", logger.String("error", err.Error()))
		return
	}

	client := websocket.NewClient(h.logger)
	ticker := countdown.New(h.clock, h.countdownTick, h.logger)
	detail := view.NewDetailView(h.store, h.favorites, ticker)
	unsubscribe := ticker.Subscribe(func(cd domain.Countdown) {
		if !client.Push(websocket.NewMessage(websocket.TypeCountdown, cd)) {
			h.logger.Warn("countdown frame dropped", logger.String("event_id", id))
		}
	})

	go client.WritePump(conn)

	// the request context ends with this handler, the stream outlives it
	ctx := context.WithoutCancel(c.Request.Context())
	if err = detail.Open(ctx, id); err != nil {
		client.Push(websocket.NewMessage(websocket.TypeError, dto.ErrorResponse{Error: err.Error()}))
	} else if model := detail.Model(); model.Event != nil {
		client.Push(websocket.NewMessage(websocket.TypeDetail, dto.ToEventDetailsResponse(model)))
	}

	go client.ReadPump(conn, func() {
		detail.Close()
		unsubscribe()
		client.Close()
	})
}

func (h *Handler) eventID(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventExists):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

// checkOrigin accepts same-origin requests, requests without an Origin header
// and the configured browser origins.
func checkOrigin(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if _, ok := set["*"]; ok {
			return true
		}
		if _, ok := set[origin]; ok {
			return true
		}
		return origin == "http://"+r.Host || origin == "https://"+r.Host
	}
}
