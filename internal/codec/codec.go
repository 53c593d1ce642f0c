// Package codec provides the payload encodings the draft stores persist
// with. JSON is the default; msgpack trades readability for size, and either
// can be wrapped with zstd compression for large drafts.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec serializes draft payloads.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
	Name() string
}

// JSON is a plain encoding/json codec.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(v any) ([]byte, error) { return json.Marshal(v) }

func (JSON) Decode(data []byte, v any) error { return json.Unmarshal(data, v) }

// Msgpack is a vmihailenco/msgpack codec.
type Msgpack struct{}

func (Msgpack) Name() string { return "msgpack" }

func (Msgpack) Encode(v any) ([]byte, error) { return msgpack.Marshal(v) }

func (Msgpack) Decode(data []byte, v any) error { return msgpack.Unmarshal(data, v) }

// Compressed wraps an inner codec with zstd.
type Compressed struct {
	Inner Codec
}

func (c Compressed) Name() string { return c.Inner.Name() + "+zstd" }

func (c Compressed) Encode(v any) ([]byte, error) {
	raw, err := c.Inner.Encode(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	w, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	if _, err := w.Write(raw); err != nil {
		w.Close()
		return nil, fmt.Errorf("zstd write: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zstd close: %w", err)
	}
	return buf.Bytes(), nil
}

func (c Compressed) Decode(data []byte, v any) error {
	r, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("zstd reader: %w", err)
	}
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("zstd read: %w", err)
	}
	return c.Inner.Decode(raw, v)
}
