package v1

import (
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/ocr"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reports"

	"github.com/shopspring/decimal"
)

// ExtractedReservationResponse is the reservation draft parsed from a document
type ExtractedReservationResponse struct {
	PropertyName  string           `json:"propertyName"`
	GuestName     string           `json:"guestName"`
	GuestEmail    string           `json:"guestEmail"`
	GuestPhone    string           `json:"guestPhone"`
	CheckInDate   *string          `json:"checkInDate"`
	CheckOutDate  *string          `json:"checkOutDate"`
	NumGuests     int              `json:"numGuests"`
	TotalAmount   *decimal.Decimal `json:"totalAmount"`
	Platform      string           `json:"platform"`
	MissingFields []string         `json:"missingFields"`
	Confidence    float64          `json:"confidence"`
}

// PropertyMatchResponse is the property matched to the extracted name
type PropertyMatchResponse struct {
	PropertyID   string  `json:"propertyId"`
	PropertyName string  `json:"propertyName"`
	MatchedName  string  `json:"matchedName"`
	Score        float64 `json:"score"`
}

// ProcessResponse is returned by the OCR endpoints
type ProcessResponse struct {
	Provider    string                        `json:"provider"`
	RawText     string                        `json:"rawText"`
	Extracted   *ExtractedReservationResponse `json:"extracted"`
	Match       *PropertyMatchResponse        `json:"match"`
	Reservation *ReservationResponse          `json:"reservation,omitempty"`
	// Message explains why no reservation was created
	Message string `json:"message,omitempty"`
}

func newProcessResponse(result *ocr.ProcessResult) ProcessResponse {
	response := ProcessResponse{Provider: result.Provider, RawText: result.RawText}
	if e := result.Extracted; e != nil {
		missing := e.MissingFields
		if missing == nil {
			missing = []string{}
		}
		response.Extracted = &ExtractedReservationResponse{
			PropertyName:  e.PropertyName,
			GuestName:     e.GuestName,
			GuestEmail:    e.GuestEmail,
			GuestPhone:    e.GuestPhone,
			CheckInDate:   formatOptionalDate(e.CheckInDate),
			CheckOutDate:  formatOptionalDate(e.CheckOutDate),
			NumGuests:     e.NumGuests,
			TotalAmount:   e.TotalAmount,
			Platform:      e.Platform,
			MissingFields: missing,
			Confidence:    e.Confidence,
		}
	}
	if m := result.Match; m != nil {
		response.Match = &PropertyMatchResponse{
			PropertyID:   m.PropertyID,
			PropertyName: m.PropertyName,
			MatchedName:  m.MatchedName,
			Score:        m.Score,
		}
	}
	if result.Reservation != nil {
		r := newReservationResponse(result.Reservation)
		response.Reservation = &r
	}
	return response
}

// ProviderResponse describes the configured OCR provider
type ProviderResponse struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	Available bool   `json:"available"`
}

// TotalsResponse sums the money and nights of a set of reservations
type TotalsResponse struct {
	Reservations    int             `json:"reservations"`
	Revenue         decimal.Decimal `json:"revenue"`
	PlatformFees    decimal.Decimal `json:"platformFees"`
	CleaningFees    decimal.Decimal `json:"cleaningFees"`
	CheckInFees     decimal.Decimal `json:"checkInFees"`
	CommissionFees  decimal.Decimal `json:"commissionFees"`
	TeamPayments    decimal.Decimal `json:"teamPayments"`
	NetAmount       decimal.Decimal `json:"netAmount"`
	NightsBooked    int             `json:"nightsBooked"`
	AvailableNights int             `json:"availableNights"`
	Occupancy       float64         `json:"occupancy"`
}

func newTotalsResponse(t reports.Totals) TotalsResponse {
	return TotalsResponse{
		Reservations:    t.Reservations,
		Revenue:         t.Revenue,
		PlatformFees:    t.PlatformFees,
		CleaningFees:    t.CleaningFees,
		CheckInFees:     t.CheckInFees,
		CommissionFees:  t.CommissionFees,
		TeamPayments:    t.TeamPayments,
		NetAmount:       t.NetAmount,
		NightsBooked:    t.NightsBooked,
		AvailableNights: t.AvailableNights,
		Occupancy:       t.Occupancy,
	}
}

// PropertyReportResponse holds one property of an owner report
type PropertyReportResponse struct {
	PropertyID   string                `json:"propertyId"`
	PropertyName string                `json:"propertyName"`
	Reservations []ReservationResponse `json:"reservations"`
	Totals       TotalsResponse        `json:"totals"`
}

// OwnerReportResponse is the JSON form of an owner report
type OwnerReportResponse struct {
	Owner       OwnerResponse            `json:"owner"`
	From        string                   `json:"from"`
	To          string                   `json:"to"`
	Properties  []PropertyReportResponse `json:"properties"`
	Totals      TotalsResponse           `json:"totals"`
	GeneratedAt time.Time                `json:"generatedAt"`
}

func newOwnerReportResponse(report *reports.OwnerReport) OwnerReportResponse {
	return OwnerReportResponse{
		Owner: newOwnerResponse(report.Owner),
		From:  formatDate(report.From),
		To:    formatDate(report.To),
		Properties: mapSlice(report.Properties, func(pr *reports.PropertyReport) PropertyReportResponse {
			return PropertyReportResponse{
				PropertyID:   pr.Property.ID,
				PropertyName: pr.Property.Name,
				Reservations: mapSlice(pr.Reservations, newReservationResponse),
				Totals:       newTotalsResponse(pr.Totals),
			}
		}),
		Totals:      newTotalsResponse(report.Totals),
		GeneratedAt: report.GeneratedAt,
	}
}

// PropertyRevenueResponse ranks a property on the dashboard
type PropertyRevenueResponse struct {
	PropertyID   string          `json:"propertyId"`
	PropertyName string          `json:"propertyName"`
	Revenue      decimal.Decimal `json:"revenue"`
	Reservations int             `json:"reservations"`
}

// StatisticsResponse is the dashboard summary
type StatisticsResponse struct {
	From                 string                    `json:"from"`
	To                   string                    `json:"to"`
	TotalRevenue         decimal.Decimal           `json:"totalRevenue"`
	NetProfit            decimal.Decimal           `json:"netProfit"`
	ReservationsByStatus map[string]int            `json:"reservationsByStatus"`
	ActiveProperties     int                       `json:"activeProperties"`
	Occupancy            float64                   `json:"occupancy"`
	TopProperties        []PropertyRevenueResponse `json:"topProperties"`
	UpcomingCheckIns     int                       `json:"upcomingCheckIns"`
}

func newStatisticsResponse(s *reports.Statistics) StatisticsResponse {
	return StatisticsResponse{
		From:                 formatDate(s.From),
		To:                   formatDate(s.To),
		TotalRevenue:         s.TotalRevenue,
		NetProfit:            s.NetProfit,
		ReservationsByStatus: s.ReservationsByStatus,
		ActiveProperties:     s.ActiveProperties,
		Occupancy:            s.Occupancy,
		TopProperties: mapSlice(s.TopProperties, func(p reports.PropertyRevenue) PropertyRevenueResponse {
			return PropertyRevenueResponse{
				PropertyID:   p.PropertyID,
				PropertyName: p.PropertyName,
				Revenue:      p.Revenue,
				Reservations: p.Reservations,
			}
		}),
		UpcomingCheckIns: s.UpcomingCheckIns,
	}
}

// DemoGenerateRequest sizes a demo data set; zero values take the defaults
type DemoGenerateRequest struct {
	Owners                  int  `json:"owners"`
	PropertiesPerOwner      int  `json:"propertiesPerOwner"`
	ReservationsPerProperty *int `json:"reservationsPerProperty"`
}

func (r *DemoGenerateRequest) toDomain() demo.GenerateOptions {
	options := demo.DefaultGenerateOptions()
	if r.Owners != 0 {
		options.Owners = r.Owners
	}
	if r.PropertiesPerOwner != 0 {
		options.PropertiesPerOwner = r.PropertiesPerOwner
	}
	if r.ReservationsPerProperty != nil {
		options.ReservationsPerProperty = *r.ReservationsPerProperty
	}
	return options
}

// DemoSummaryResponse counts the demo records created or deleted
type DemoSummaryResponse struct {
	Owners        int64 `json:"owners"`
	CleaningTeams int64 `json:"cleaningTeams"`
	Properties    int64 `json:"properties"`
	Reservations  int64 `json:"reservations"`
	Schedules     int64 `json:"schedules"`
}

func newDemoSummaryResponse(s *demo.Summary) DemoSummaryResponse {
	return DemoSummaryResponse{
		Owners:        s.Owners,
		CleaningTeams: s.CleaningTeams,
		Properties:    s.Properties,
		Reservations:  s.Reservations,
		Schedules:     s.Schedules,
	}
}
