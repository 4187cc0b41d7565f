// Package seed loads fixture events from YAML into the event table.
package seed

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/EventCatalog/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/yaml.v3"
)

type eventCreator interface {
	Create(ctx context.Context, e *domain.CulturalEvent) error
}

type fixture struct {
	Events []domain.CulturalEvent `yaml:"events"`
}

// Load reads and validates the fixture file at path.
func Load(path string) ([]domain.CulturalEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) ([]domain.CulturalEvent, error) {
	var f fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode seed: %v", domain.ErrValidation, err)
	}

	seen := make(map[string]struct{}, len(f.Events))
	for i, e := range f.Events {
		if e.ID == "" {
			return nil, fmt.Errorf("%w: seed event %d has no id", domain.ErrValidation, i)
		}
		if _, err := uuid.Parse(e.ID); err != nil {
			return nil, fmt.Errorf("%w: seed id %q is not a uuid", domain.ErrValidation, e.ID)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate seed id %q", domain.ErrValidation, e.ID)
		}
		seen[e.ID] = struct{}{}

		input := domain.CreateEventInput{
			Title:    e.Title,
			Date:     e.Date,
			Category: e.Category,
			Status:   e.Status,
			Price:    e.Price,
		}
		if err := input.Validate(); err != nil {
			return nil, fmt.Errorf("seed event %q: %w", e.ID, err)
		}
		if e.Status == "" {
			f.Events[i].Status = domain.StatusDraft
		}
	}

	return f.Events, nil
}

// Apply inserts events that do not exist yet and reports how many were added.
func Apply(ctx context.Context, repo eventCreator, events []domain.CulturalEvent, now time.Time, log logger.Logger) (int, error) {
	added := 0
	for _, e := range events {
		e.CreatedAt = now.UTC()
		e.UpdatedAt = now.UTC()

		err := repo.Create(ctx, &e)
		switch {
		case errors.Is(err, domain.ErrEventExists):
			continue
		case err != nil:
			return added, fmt.Errorf("seed event %q: %w", e.ID, err)
		}
		added++
	}

	log.Info("seed applied",
		logger.Int("total", len(events)),
		logger.Int("added", added),
	)

	return added, nil
}
