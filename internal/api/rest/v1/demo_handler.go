package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/demo"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DemoHandler defines the interface for demo data management
type DemoHandler interface {
	Generate(ctx *gin.Context)
	Reset(ctx *gin.Context)
}

type demoHandler struct {
	demoService demo.DemoService
	logger      logger.Logger
}

// NewDemoHandler creates a new DemoHandler
func NewDemoHandler(demoService demo.DemoService, logger logger.Logger) DemoHandler {
	return &demoHandler{demoService: demoService, logger: logger}
}

// Generate handles the POST request creating a demo data set. An empty body uses the defaults.
// @Summary Generate demo data
// @Tags Demo
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param requestBody body DemoGenerateRequest false "Sizes"
// @Success 201 {object} DemoSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Router /demo/generate [post]
func (handler *demoHandler) Generate(ctx *gin.Context) {
	var request DemoGenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "invalid request body: " + err.Error()})
		return
	}

	summary, err := handler.demoService.Generate(ctx, request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "generate demo data", err)
		return
	}
	ctx.JSON(http.StatusCreated, newDemoSummaryResponse(summary))
}

// Reset handles the POST request deleting every demo record
// @Summary Delete demo data
// @Tags Demo
// @Security BearerAuth
// @Produce json
// @Success 200 {object} DemoSummaryResponse
// @Router /demo/reset [post]
func (handler *demoHandler) Reset(ctx *gin.Context) {
	summary, err := handler.demoService.Reset(ctx)
	if err != nil {
		respondError(ctx, handler.logger, "reset demo data", err)
		return
	}
	ctx.JSON(http.StatusOK, newDemoSummaryResponse(summary))
}
