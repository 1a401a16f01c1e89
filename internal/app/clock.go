package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
)

// clock returns the current time. Tests replace it to pin dates.
var clock = func() time.Time {
	return time.Now().UTC()
}

// today returns the current calendar day at midnight UTC
func today() time.Time {
	return reservations.TruncateDay(clock())
}

// mustExist turns a missing reference into a validation error so callers get 400 instead of 404
func mustExist(err error, kind, id string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %s %s does not exist", apperrors.ErrValidation, kind, id)
	}
	return err
}
