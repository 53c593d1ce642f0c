// Package redis persists authoring drafts in Redis, for operators that move
// between devices behind the same backend.
package redis

import (
	"context"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/codec"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/flow"
)

// Store implements ports.DraftStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	codec  codec.Codec
}

type Option func(*Store)

// WithTTL sets the expiration for drafts. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithPrefix sets the key prefix for drafts.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithCodec sets the payload codec (JSON by default).
func WithCodec(c codec.Codec) Option {
	return func(s *Store) { s.codec = c }
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "brain:draft:",
		codec:  codec.JSON{},
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(key string) string {
	return s.prefix + key
}

// Set persists the value, wrapped in the store's codec envelope.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	payload, err := s.codec.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.client.Set(ctx, s.key(key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

// Get retrieves and decodes the value.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == backend.Nil {
		return nil, flow.ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var value []byte
	if err := s.codec.Decode(payload, &value); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return value, nil
}

// Delete removes the key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
