// Package ports defines the narrow interfaces this core consumes: durable
// draft storage, the remote article store, and the polled session feed.
// Adapters live under pkg/adapters and internal/adapters; a reusable
// contract test keeps every DraftStore implementation honest.
package ports
