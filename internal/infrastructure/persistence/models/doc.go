// Package models holds the GORM rows behind the repositories. Every model has
// ToDomain and From<Entity> converters so domain types carry no gorm tags.
package models
