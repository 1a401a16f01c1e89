// Package demo generates and removes synthetic data for showcasing the back office.
package demo

import (
	"context"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
)

// GenerateOptions sizes a demo data set
type GenerateOptions struct {
	Owners                  int `validate:"min=1,max=20"`
	PropertiesPerOwner      int `validate:"min=1,max=10"`
	ReservationsPerProperty int `validate:"min=0,max=30"`
}

// DefaultGenerateOptions is used when the caller sends no sizes
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{Owners: 3, PropertiesPerOwner: 2, ReservationsPerProperty: 5}
}

// Validate for validating GenerateOptions struct
func (o *GenerateOptions) Validate() error {
	return validators.ValidateStruct(o)
}

// Summary counts the records created or deleted
type Summary struct {
	Owners        int64
	CleaningTeams int64
	Properties    int64
	Reservations  int64
	Schedules     int64
}

// DemoService defines the demo data use cases
type DemoService interface {
	Generate(ctx context.Context, options GenerateOptions) (*Summary, error)
	// Reset deletes every demo record: reservations, schedules, properties, teams then owners
	Reset(ctx context.Context) (*Summary, error)
}
