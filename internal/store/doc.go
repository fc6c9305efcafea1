// Package store provides durable storage for conversion history.
//
// Backed by SQLite with WAL mode. The history is bounded: readers see at
// most the 100 most recent records, most recent first, and Prune discards
// anything older. Writes are idempotent on record ID.
package store
