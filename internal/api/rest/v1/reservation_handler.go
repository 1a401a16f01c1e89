package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/reservations"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const defaultUpcomingDays = 7

// ReservationHandler defines the interface for handling reservation-related operations
type ReservationHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Update(ctx *gin.Context)
	UpdateStatus(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	Upcoming(ctx *gin.Context)
}

type reservationHandler struct {
	reservationService reservations.ReservationService
	logger             logger.Logger
}

// NewReservationHandler creates a new ReservationHandler
func NewReservationHandler(reservationService reservations.ReservationService, logger logger.Logger) ReservationHandler {
	return &reservationHandler{reservationService: reservationService, logger: logger}
}

// UpcomingResponse lists the arrivals and departures of the next days
type UpcomingResponse struct {
	Days      int                   `json:"days"`
	CheckIns  []ReservationResponse `json:"checkIns"`
	CheckOuts []ReservationResponse `json:"checkOuts"`
}

// Create handles the POST request to create a reservation
// @Summary Create a reservation
// @Description Computes the cost breakdown from the property and rejects overlapping stays.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param requestBody body ReservationRequest true "Reservation"
// @Success 201 {object} ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reservations [post]
func (handler *reservationHandler) Create(ctx *gin.Context) {
	var request ReservationRequest
	if !bindRequest(ctx, &request) {
		return
	}
	reservation, err := request.toDomain("")
	if err != nil {
		respondError(ctx, handler.logger, "create reservation", err)
		return
	}

	created, err := handler.reservationService.Create(ctx, reservation)
	if err != nil {
		respondError(ctx, handler.logger, "create reservation", err)
		return
	}
	ctx.JSON(http.StatusCreated, newReservationResponse(created))
}

// List handles the GET request to list reservations
// @Summary List reservations
// @Tags Reservation
// @Produce json
// @Param propertyId query string false "Property ID"
// @Param status query string false "Status"
// @Param platform query string false "Platform"
// @Param guestName query string false "Guest name contains"
// @Param from query string false "Stays overlapping from (YYYY-MM-DD)"
// @Param to query string false "Stays overlapping until (YYYY-MM-DD)"
// @Param page query int false "Page, starting at 1"
// @Param pageSize query int false "Rows per page"
// @Success 200 {object} PaginatedResponse[ReservationResponse]
// @Failure 400 {object} ErrorResponse
// @Router /reservations [get]
func (handler *reservationHandler) List(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := reservations.NewReservationQuery()
	query.Query = pagingQuery(ctx, page)
	query.PropertyID = ctx.Query("propertyId")
	query.Status = ctx.Query("status")
	query.Platform = ctx.Query("platform")
	query.GuestName = ctx.Query("guestName")

	var err error
	if query.From, err = httputil.ParseOptionalDate(ctx.Query("from")); err != nil {
		respondError(ctx, handler.logger, "list reservations", err)
		return
	}
	if query.To, err = httputil.ParseOptionalDate(ctx.Query("to")); err != nil {
		respondError(ctx, handler.logger, "list reservations", err)
		return
	}

	list, total, err := handler.reservationService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list reservations", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newReservationResponse))
}

// GetByID handles the GET request to retrieve a reservation by ID
// @Summary Retrieve a reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} ReservationResponse
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id} [get]
func (handler *reservationHandler) GetByID(ctx *gin.Context) {
	reservation, err := handler.reservationService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get reservation", err)
		return
	}
	ctx.JSON(http.StatusOK, newReservationResponse(reservation))
}

// Update handles the PUT request to replace a reservation
// @Summary Update a reservation
// @Description Status and source are kept; use the status endpoint to change the status.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param requestBody body ReservationRequest true "Reservation"
// @Success 200 {object} ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /reservations/{id} [put]
func (handler *reservationHandler) Update(ctx *gin.Context) {
	var request ReservationRequest
	if !bindRequest(ctx, &request) {
		return
	}
	reservation, err := request.toDomain(ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "update reservation", err)
		return
	}

	updated, err := handler.reservationService.Update(ctx, reservation)
	if err != nil {
		respondError(ctx, handler.logger, "update reservation", err)
		return
	}
	ctx.JSON(http.StatusOK, newReservationResponse(updated))
}

// UpdateStatus handles the PATCH request to move a reservation to another status
// @Summary Change the status of a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param requestBody body StatusRequest true "Target status"
// @Success 200 {object} ReservationResponse
// @Failure 400 {object} ErrorResponse
// @Router /reservations/{id}/status [patch]
func (handler *reservationHandler) UpdateStatus(ctx *gin.Context) {
	var request StatusRequest
	if !bindRequest(ctx, &request) {
		return
	}

	reservation, err := handler.reservationService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		respondError(ctx, handler.logger, "update reservation status", err)
		return
	}
	ctx.JSON(http.StatusOK, newReservationResponse(reservation))
}

// DeleteByID handles the DELETE request to delete a reservation by ID
// @Summary Delete a reservation by ID
// @Tags Reservation
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /reservations/{id} [delete]
func (handler *reservationHandler) DeleteByID(ctx *gin.Context) {
	reservationID := ctx.Param("id")
	if err := handler.reservationService.DeleteByID(ctx, reservationID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete reservation %s", reservationID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// Upcoming handles the GET request listing check-ins and check-outs of the next days
// @Summary Upcoming check-ins and check-outs
// @Tags Reservation
// @Produce json
// @Param days query int false "Days ahead, 1 to 365, default 7"
// @Success 200 {object} UpcomingResponse
// @Failure 400 {object} ErrorResponse
// @Router /reservations/upcoming [get]
func (handler *reservationHandler) Upcoming(ctx *gin.Context) {
	days := 0
	if value := ctx.Query("days"); len(value) > 0 {
		days = strutil.ConvertToInt(value)
		if days == 0 {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid days value %q", value)})
			return
		}
	}

	checkIns, err := handler.reservationService.UpcomingCheckIns(ctx, days)
	if err != nil {
		respondError(ctx, handler.logger, "list upcoming check-ins", err)
		return
	}
	checkOuts, err := handler.reservationService.UpcomingCheckOuts(ctx, days)
	if err != nil {
		respondError(ctx, handler.logger, "list upcoming check-outs", err)
		return
	}

	if days == 0 {
		days = defaultUpcomingDays
	}
	ctx.JSON(http.StatusOK, UpcomingResponse{
		Days:      days,
		CheckIns:  mapSlice(checkIns, newReservationResponse),
		CheckOuts: mapSlice(checkOuts, newReservationResponse),
	})
}
