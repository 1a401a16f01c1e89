// Package cache provides the key/value store behind sessions and dashboard
// statistics. Values are stored JSON-encoded with a time to live, either in
// Redis or, for single-instance deployments and tests, in process memory.
package cache
