// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer over PostgreSQL in production and SQLite in tests,
// mapping domain entities to the models package and wrapping missing records
// as apperrors.ErrNotFound.
package persistence
