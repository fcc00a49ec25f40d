// Package store provides the SQLite-backed persistent key-value store for
// the shelf catalog.
//
// The entire durable state is one row: key "books", value a JSON array of
// {title, author, year} objects in insertion order. Every save is a full
// replacement of that value. There is no versioning or migration of the
// value format - any future reader must keep accepting this exact shape.
//
// # Failure policy
//
//   - Load failures (missing key, unreadable row, corrupt JSON) degrade to
//     an empty collection and a logged warning; they are never returned.
//   - Save failures are returned to the caller, which logs and continues
//     operating from memory. Best effort, no retries.
//
// # Database configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
package store
