package relay

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/KirkDiggler/possess/internal/clock"
	apperr "github.com/KirkDiggler/possess/internal/errors"
	"github.com/KirkDiggler/possess/internal/events"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// DefaultChannel is the Redis pub/sub channel events are published on
	DefaultChannel = "possess:events"
	// DefaultMaxBuffered bounds the events held between flushes
	DefaultMaxBuffered = 1024
)

// DefaultKinds are the lifecycle events out-of-process listeners care about
var DefaultKinds = []events.EventType{
	events.SceneLoaded,
	events.SpawnPlayer,
	events.LevelCompleted,
	events.PlayerCaught,
	events.PauseStateChange,
	events.RequestLoadLevel,
	events.RequestLoadLevelByName,
	events.RequestQuit,
	events.DisobeyingDetected,
	events.RoomEntered,
	events.DoorEntered,
	events.AlertStateChange,
	events.SecurityTierChange,
}

// Message is the JSON envelope published for every relayed event
type Message struct {
	Kind  string       `json:"kind"`
	Event events.Event `json:"event"`
	At    time.Time    `json:"at"`
}

// Relay copies bus events to a Redis channel. Events are buffered on the
// update thread and published by Flush, so a slow Redis never stalls a
// broadcast.
type Relay struct {
	client       redis.UniversalClient
	bus          *events.Bus
	channel      string
	kinds        []events.EventType
	maxBuffered  int
	timeProvider clock.TimeProvider
	logger       *zap.Logger

	mu      sync.Mutex
	pending []string

	subscriptions []events.Subscription
}

// Config holds configuration for the relay
type Config struct {
	Client redis.UniversalClient // Required
	Bus    *events.Bus           // Required

	Channel      string             // Optional, defaults to DefaultChannel
	Kinds        []events.EventType // Optional, defaults to DefaultKinds
	MaxBuffered  int                // Optional, defaults to DefaultMaxBuffered
	TimeProvider clock.TimeProvider // Optional
	Logger       *zap.Logger        // Optional
}

// New creates a relay
func New(cfg *Config) *Relay {
	if cfg.Client == nil {
		panic("redis client is required")
	}
	if cfg.Bus == nil {
		panic("bus is required")
	}

	r := &Relay{
		client:       cfg.Client,
		bus:          cfg.Bus,
		channel:      cfg.Channel,
		kinds:        cfg.Kinds,
		maxBuffered:  cfg.MaxBuffered,
		timeProvider: cfg.TimeProvider,
		logger:       cfg.Logger,
	}

	if r.channel == "" {
		r.channel = DefaultChannel
	}
	if len(r.kinds) == 0 {
		r.kinds = DefaultKinds
	}
	if r.maxBuffered <= 0 {
		r.maxBuffered = DefaultMaxBuffered
	}
	if r.timeProvider == nil {
		r.timeProvider = &clock.RealTimeProvider{}
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}

	return r
}

// Enable subscribes to every relayed kind
func (r *Relay) Enable() {
	if len(r.subscriptions) > 0 {
		return
	}

	for _, kind := range r.kinds {
		r.subscriptions = append(r.subscriptions, r.bus.Subscribe(kind, r.enqueue))
	}
}

// Disable removes every subscription made by Enable. Buffered events stay
// until the next Flush.
func (r *Relay) Disable() {
	r.bus.UnsubscribeAll(r.subscriptions)
	r.subscriptions = nil
}

// Pending returns the number of buffered events
func (r *Relay) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

func (r *Relay) enqueue(event events.Event) {
	payload, err := json.Marshal(Message{
		Kind:  event.Type().String(),
		Event: event,
		At:    r.timeProvider.Now(),
	})
	if err != nil {
		r.logger.Error("failed to marshal event",
			zap.Stringer("kind", event.Type()),
			zap.Error(err))
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.pending) >= r.maxBuffered {
		r.logger.Warn("relay buffer full, dropping oldest event",
			zap.Int("max_buffered", r.maxBuffered))
		r.pending = r.pending[1:]
	}
	r.pending = append(r.pending, string(payload))
}

// Flush publishes every buffered event in order. Events that could not be
// published are kept for the next Flush.
func (r *Relay) Flush(ctx context.Context) error {
	r.mu.Lock()
	batch := r.pending
	r.pending = nil
	r.mu.Unlock()

	for i, payload := range batch {
		if err := r.client.Publish(ctx, r.channel, payload).Err(); err != nil {
			r.requeue(batch[i:])
			return apperr.Unavailable(err, "failed to publish event").
				WithMeta("channel", r.channel).
				WithMeta("unsent", len(batch)-i)
		}
	}

	return nil
}

func (r *Relay) requeue(unsent []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	merged := append(append([]string{}, unsent...), r.pending...)
	if over := len(merged) - r.maxBuffered; over > 0 {
		merged = merged[over:]
	}
	r.pending = merged
}

// Run flushes every interval until ctx is done, then flushes once more
func (r *Relay) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			final, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := r.Flush(final); err != nil {
				r.logger.Warn("final relay flush failed", zap.Error(err))
			}
			return nil
		case <-ticker.C:
			if err := r.Flush(ctx); err != nil {
				r.logger.Warn("relay flush failed", zap.Error(err))
			}
		}
	}
}
