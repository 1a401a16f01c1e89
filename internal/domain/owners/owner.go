// Package owners models the property owners the back office bills and reports to.
package owners

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/validators"
)

// Owner entity
type Owner struct {
	ID              string `validate:"required,uuid4"`
	Name            string `validate:"required,min=1,max=255"`
	Company         string `validate:"max=255"`
	Address         string `validate:"max=500"`
	TaxID           string `validate:"omitempty,nif"`
	Email           string `validate:"omitempty,email,max=255"`
	Phone           string `validate:"max=50"`
	IsDemo          bool
	DateTimeCreated time.Time `validate:"required"`
	DateTimeUpdated time.Time
}

// Validate for validating Owner struct
func (o *Owner) Validate() error {
	return validators.ValidateStruct(o)
}

// OwnerQuery filters owner lists
type OwnerQuery struct {
	paging.Query
	Name string `validate:"max=255"`
}

// SortableColumns are the columns an owner list may be sorted by
var SortableColumns = []string{"name", "date_time_created"}

// NewOwnerQuery returns an empty query
func NewOwnerQuery() *OwnerQuery {
	return &OwnerQuery{}
}

// Validate for validating OwnerQuery struct
func (q *OwnerQuery) Validate() error {
	return validators.ValidateStruct(q)
}
