package v1

import (
	"fmt"
	"net/http"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/domain/paging"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/httputil"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// validatable is implemented by request DTOs
type validatable interface {
	Validate() error
}

// respondError writes err with the status mapped from its kind. Internal errors are
// logged and hidden from the client.
func respondError(ctx *gin.Context, log logger.Logger, action string, err error) {
	status := httputil.StatusFromError(err)

	var errorResponse ErrorResponse
	if status == http.StatusInternalServerError {
		if log != nil {
			log.Error(action, " failed: ", err)
		}
		errorResponse.Message = fmt.Sprintf("%s failed", action)
	} else {
		errorResponse.Message = fmt.Sprintf("%s failed: %v", action, err)
	}
	ctx.AbortWithStatusJSON(status, errorResponse)
}

// bindRequest decodes the JSON body into request and validates it, answering 400 on failure
func bindRequest(ctx *gin.Context, request validatable) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid request body: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return false
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return false
	}
	return true
}

// parsePage reads page and pageSize, answering 400 when they are out of range
func parsePage(ctx *gin.Context) (httputil.Page, bool) {
	page, err := httputil.ParsePage(ctx.Query("page"), ctx.Query("pageSize"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return page, false
	}
	return page, true
}

// pagingQuery converts the page and the sortBy/sortOrder parameters into a repository query
func pagingQuery(ctx *gin.Context, page httputil.Page) paging.Query {
	return paging.Query{
		Limit:     page.Size,
		Offset:    page.Offset(),
		SortBy:    ctx.Query("sortBy"),
		SortOrder: ctx.Query("sortOrder"),
	}
}
