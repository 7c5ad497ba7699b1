package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/XavierBriggs/fortuna/services/player-report-service/pkg/models"
)

// DefaultStream is the stream report events are appended to
const DefaultStream = "nbareport.reports"

// Status is the outcome of one report request
type Status string

const (
	StatusOK            Status = "ok"
	StatusNotFound      Status = "not_found"
	StatusFailed        Status = "failed"
	StatusInvalidSeason Status = "invalid_season"
)

// Publisher announces assembled reports
type Publisher interface {
	PublishReport(ctx context.Context, query string, status Status, report *models.PlayerReport) error
}

// StreamPublisher publishes report events to a Redis stream
type StreamPublisher struct {
	client *redis.Client
	stream string
	now    func() time.Time
}

// NewStreamPublisher creates a new stream publisher; an empty stream uses DefaultStream
func NewStreamPublisher(client *redis.Client, stream string) *StreamPublisher {
	if stream == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{
		client: client,
		stream: stream,
		now:    time.Now,
	}
}

// Stream returns the stream key
func (p *StreamPublisher) Stream() string {
	return p.stream
}

// PublishReport appends one event carrying the report JSON
func (p *StreamPublisher) PublishReport(ctx context.Context, query string, status Status, report *models.PlayerReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshaling report: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"data":         string(data),
			"player":       query,
			"season":       report.Season,
			"status":       string(status),
			"generated_at": p.now().UTC().Format(time.RFC3339),
		},
	}).Err()
}

// NopPublisher drops every event
type NopPublisher struct{}

// PublishReport does nothing
func (NopPublisher) PublishReport(context.Context, string, Status, *models.PlayerReport) error {
	return nil
}
