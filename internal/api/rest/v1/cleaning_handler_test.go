//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/cleaning"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/apperrors"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	teamID     = "7c9e6679-7425-40de-944b-e07fc1f90ae7"
	scheduleID = "9b2f1e3a-6c5d-4e8f-a7b6-1d0c9e8f7a6b"
)

func newCleaningTestHandler(t *testing.T) (CleaningHandler, *MockTeamService, *MockScheduleService) {
	teamService := new(MockTeamService)
	scheduleService := new(MockScheduleService)
	return NewCleaningHandler(teamService, scheduleService, testLogger(t)), teamService, scheduleService
}

func TestCleaningHandler_CreateTeam_DefaultsToActive(t *testing.T) {
	handler, teamService, _ := newCleaningTestHandler(t)

	teamService.On("Create", mock.Anything, mock.MatchedBy(func(team *cleaning.Team) bool {
		return team.Name == "Equipa Lisboa" && team.Status == cleaning.TeamStatusActive && team.Rate.Equal(decimal.NewFromInt(12))
	})).Return(&cleaning.Team{ID: teamID, Name: "Equipa Lisboa", Status: cleaning.TeamStatusActive, Rate: decimal.NewFromInt(12)}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/cleaning/teams", `{"name":"Equipa Lisboa","rate":12}`))
	handler.CreateTeam(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response TeamResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, teamID, response.ID)
	assert.Equal(t, cleaning.TeamStatusActive, response.Status)
	teamService.AssertExpectations(t)
}

func TestCleaningHandler_CreateTeam_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"rate":12}`},
		{name: "negative rate", body: `{"name":"Equipa Lisboa","rate":-1}`},
		{name: "unknown status", body: `{"name":"Equipa Lisboa","status":"busy"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, teamService, _ := newCleaningTestHandler(t)

			c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/cleaning/teams", tt.body))
			handler.CreateTeam(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			teamService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCleaningHandler_CreateTeam_DuplicateName(t *testing.T) {
	handler, teamService, _ := newCleaningTestHandler(t)

	teamService.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: a cleaning team named \"Equipa Lisboa\" already exists", apperrors.ErrConflict))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/cleaning/teams", `{"name":"Equipa Lisboa"}`))
	handler.CreateTeam(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestCleaningHandler_DeleteTeamByID_Assigned(t *testing.T) {
	handler, teamService, _ := newCleaningTestHandler(t)

	teamService.On("DeleteByID", mock.Anything, teamID).
		Return(fmt.Errorf("%w: cleaning team %s is assigned to 2 properties", apperrors.ErrConflict, teamID))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodDelete, "/api/cleaning/teams/"+teamID, ""), idParam(teamID))
	handler.DeleteTeamByID(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	teamService.AssertExpectations(t)
}

func TestCleaningHandler_ListSchedules_ParsesDates(t *testing.T) {
	handler, _, scheduleService := newCleaningTestHandler(t)

	scheduleService.On("List", mock.Anything, mock.MatchedBy(func(q *cleaning.ScheduleQuery) bool {
		return q.TeamID == teamID && q.Status == cleaning.ScheduleStatusScheduled &&
			q.From.Equal(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)) &&
			q.To.Equal(time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))
	})).Return([]*cleaning.Schedule{{
		ID:            scheduleID,
		TeamID:        teamID,
		PropertyID:    propertyID,
		ScheduledDate: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
		Status:        cleaning.ScheduleStatusScheduled,
	}}, int64(1), nil)

	url := fmt.Sprintf("/api/cleaning/schedules?teamId=%s&status=scheduled&from=2026-03-01&to=2026-03-31", teamID)
	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, url, ""))
	handler.ListSchedules(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response PaginatedResponse[ScheduleResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 1)
	assert.Equal(t, "2026-03-04", response.Data[0].ScheduledDate)
	scheduleService.AssertExpectations(t)
}

func TestCleaningHandler_ListSchedules_InvalidDate(t *testing.T) {
	handler, _, scheduleService := newCleaningTestHandler(t)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodGet, "/api/cleaning/schedules?from=01/03/2026", ""))
	handler.ListSchedules(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "expected YYYY-MM-DD")
	scheduleService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCleaningHandler_CompleteSchedule(t *testing.T) {
	handler, _, scheduleService := newCleaningTestHandler(t)

	scheduleService.On("Complete", mock.Anything, scheduleID).
		Return(&cleaning.Schedule{ID: scheduleID, Status: cleaning.ScheduleStatusCompleted}, nil)

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/cleaning/schedules/"+scheduleID+"/complete", ""), idParam(scheduleID))
	handler.CompleteSchedule(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var response ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, cleaning.ScheduleStatusCompleted, response.Status)
	scheduleService.AssertExpectations(t)
}

func TestCleaningHandler_CancelSchedule_AlreadyDone(t *testing.T) {
	handler, _, scheduleService := newCleaningTestHandler(t)

	scheduleService.On("Cancel", mock.Anything, scheduleID).
		Return(nil, fmt.Errorf("%w: cleaning schedule is already completed", apperrors.ErrValidation))

	c, w := newTestContext(testutil.NewJSONRequest(t, http.MethodPost, "/api/cleaning/schedules/"+scheduleID+"/cancel", ""), idParam(scheduleID))
	handler.CancelSchedule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already completed")
	scheduleService.AssertExpectations(t)
}
