package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CleaningHandler defines the interface for cleaning teams and schedules
type CleaningHandler interface {
	CreateTeam(ctx *gin.Context)
	ListTeams(ctx *gin.Context)
	GetTeamByID(ctx *gin.Context)
	UpdateTeam(ctx *gin.Context)
	DeleteTeamByID(ctx *gin.Context)
	ListSchedules(ctx *gin.Context)
	CompleteSchedule(ctx *gin.Context)
	CancelSchedule(ctx *gin.Context)
}

type cleaningHandler struct {
	teamService     cleaning.TeamService
	scheduleService cleaning.ScheduleService
	logger          logger.Logger
}

// NewCleaningHandler creates a new CleaningHandler
func NewCleaningHandler(teamService cleaning.TeamService, scheduleService cleaning.ScheduleService, logger logger.Logger) CleaningHandler {
	return &cleaningHandler{teamService: teamService, scheduleService: scheduleService, logger: logger}
}

// CreateTeam handles the POST request to create a cleaning team
// @Summary Create a cleaning team
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param requestBody body TeamRequest true "Team"
// @Success 201 {object} TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /cleaning-teams [post]
func (handler *cleaningHandler) CreateTeam(ctx *gin.Context) {
	var request TeamRequest
	if !bindRequest(ctx, &request) {
		return
	}

	team, err := handler.teamService.Create(ctx, request.toDomain(""))
	if err != nil {
		respondError(ctx, handler.logger, "create cleaning team", err)
		return
	}
	ctx.JSON(http.StatusCreated, newTeamResponse(team))
}

// ListTeams handles the GET request to list cleaning teams
// @Summary List cleaning teams
// @Tags Cleaning
// @Produce json
// @Param name query string false "Name contains"
// @Param status query string false "active or inactive"
// @Success 200 {object} PaginatedResponse[TeamResponse]
// @Router /cleaning-teams [get]
func (handler *cleaningHandler) ListTeams(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	query := &cleaning.TeamQuery{
		Query:  pagingQuery(ctx, page),
		Name:   ctx.Query("name"),
		Status: ctx.Query("status"),
	}

	list, total, err := handler.teamService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list cleaning teams", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newTeamResponse))
}

// GetTeamByID handles the GET request to retrieve a cleaning team by ID
// @Summary Retrieve a cleaning team by ID
// @Tags Cleaning
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} TeamResponse
// @Failure 404 {object} ErrorResponse
// @Router /cleaning-teams/{id} [get]
func (handler *cleaningHandler) GetTeamByID(ctx *gin.Context) {
	team, err := handler.teamService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "get cleaning team", err)
		return
	}
	ctx.JSON(http.StatusOK, newTeamResponse(team))
}

// UpdateTeam handles the PUT request to replace a cleaning team
// @Summary Update a cleaning team
// @Tags Cleaning
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Param requestBody body TeamRequest true "Team"
// @Success 200 {object} TeamResponse
// @Router /cleaning-teams/{id} [put]
func (handler *cleaningHandler) UpdateTeam(ctx *gin.Context) {
	var request TeamRequest
	if !bindRequest(ctx, &request) {
		return
	}

	team, err := handler.teamService.Update(ctx, request.toDomain(ctx.Param("id")))
	if err != nil {
		respondError(ctx, handler.logger, "update cleaning team", err)
		return
	}
	ctx.JSON(http.StatusOK, newTeamResponse(team))
}

// DeleteTeamByID handles the DELETE request to delete a cleaning team
// @Summary Delete a cleaning team by ID
// @Tags Cleaning
// @Param id path string true "Team ID"
// @Success 204
// @Failure 409 {object} ErrorResponse
// @Router /cleaning-teams/{id} [delete]
func (handler *cleaningHandler) DeleteTeamByID(ctx *gin.Context) {
	teamID := ctx.Param("id")
	if err := handler.teamService.DeleteByID(ctx, teamID); err != nil {
		respondError(ctx, handler.logger, fmt.Sprintf("delete cleaning team %s", teamID), err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// ListSchedules handles the GET request to list cleaning schedules
// @Summary List cleaning schedules
// @Tags Cleaning
// @Produce json
// @Param teamId query string false "Team ID"
// @Param propertyId query string false "Property ID"
// @Param status query string false "scheduled, completed or cancelled"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} PaginatedResponse[ScheduleResponse]
// @Router /cleaning-schedules [get]
func (handler *cleaningHandler) ListSchedules(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}
	from, err := httputil.ParseOptionalDate(ctx.Query("from"))
	if err != nil {
		respondError(ctx, handler.logger, "list cleaning schedules", err)
		return
	}
	to, err := httputil.ParseOptionalDate(ctx.Query("to"))
	if err != nil {
		respondError(ctx, handler.logger, "list cleaning schedules", err)
		return
	}
	query := &cleaning.ScheduleQuery{
		Query:      pagingQuery(ctx, page),
		TeamID:     ctx.Query("teamId"),
		PropertyID: ctx.Query("propertyId"),
		Status:     ctx.Query("status"),
		From:       from,
		To:         to,
	}

	list, total, err := handler.scheduleService.List(ctx, query)
	if err != nil {
		respondError(ctx, handler.logger, "list cleaning schedules", err)
		return
	}
	ctx.JSON(http.StatusOK, newPaginatedResponse(list, total, page, newScheduleResponse))
}

// CompleteSchedule handles the POST request to mark a cleaning as done
// @Summary Complete a cleaning schedule
// @Tags Cleaning
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Router /cleaning-schedules/{id}/complete [post]
func (handler *cleaningHandler) CompleteSchedule(ctx *gin.Context) {
	schedule, err := handler.scheduleService.Complete(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "complete cleaning schedule", err)
		return
	}
	ctx.JSON(http.StatusOK, newScheduleResponse(schedule))
}

// CancelSchedule handles the POST request to cancel a cleaning
// @Summary Cancel a cleaning schedule
// @Tags Cleaning
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Router /cleaning-schedules/{id}/cancel [post]
func (handler *cleaningHandler) CancelSchedule(ctx *gin.Context) {
	schedule, err := handler.scheduleService.Cancel(ctx, ctx.Param("id"))
	if err != nil {
		respondError(ctx, handler.logger, "cancel cleaning schedule", err)
		return
	}
	ctx.JSON(http.StatusOK, newScheduleResponse(schedule))
}
