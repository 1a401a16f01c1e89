//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_Validate(t *testing.T) {
	negative := decimal.NewFromInt(-5)
	tests := []struct {
		name      string
		request   validatable
		shouldErr bool
	}{
		{"Valid owner", &OwnerRequest{Name: "Maria"}, false},
		{"Owner without name", &OwnerRequest{}, true},
		{"Valid property", &PropertyRequest{Name: "Casa", OwnerID: ownerID}, false},
		{"Property with bad owner id", &PropertyRequest{Name: "Casa", OwnerID: "42"}, true},
		{"Team with negative rate", &TeamRequest{Name: "Limpa Já", Rate: negative}, true},
		{"Team with unknown status", &TeamRequest{Name: "Limpa Já", Status: "paused"}, true},
		{"Reservation without dates", &ReservationRequest{PropertyID: propertyID, GuestName: "Ana"}, true},
		{"Status required", &StatusRequest{}, true},
		{"Payment with unknown method", &PaymentRequest{Amount: decimal.NewFromInt(10), Method: "cheque"}, true},
		{"Login without password", &LoginRequest{Email: "maria@mariafaz.pt"}, true},
		{"Pricing with zero area", &PricingRequest{PropertyType: "apartment"}, true},
		{"Valid pricing", &PricingRequest{PropertyType: "apartment", PropertyArea: 60}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestPropertyRequest_ToDomainDefaults(t *testing.T) {
	empty := ""
	request := PropertyRequest{Name: "Casa", OwnerID: ownerID, CleaningTeamID: &empty}

	property := request.toDomain(propertyID)

	assert.Equal(t, propertyID, property.ID)
	assert.True(t, property.Active)
	assert.Nil(t, property.CleaningTeamID)
}

func TestNewPaginatedResponse(t *testing.T) {
	page := httputil.Page{Number: 3, Size: 20}
	list := []*reservations.Reservation{sampleReservation()}

	response := newPaginatedResponse(list, 41, page, newReservationResponse)

	assert.Len(t, response.Data, 1)
	assert.Equal(t, 3, response.TotalPages)
	assert.Equal(t, 3, response.CurrentPage)
	assert.Equal(t, 20, response.PageSize)
}

func TestFormatOptionalDate(t *testing.T) {
	assert.Nil(t, formatOptionalDate(nil))

	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	formatted := formatOptionalDate(&day)
	require.NotNil(t, formatted)
	assert.Equal(t, "2026-03-05", *formatted)
	assert.Equal(t, "", formatDate(time.Time{}))
}
