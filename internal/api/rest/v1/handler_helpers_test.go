//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/logger"
	"github.com/bilalmachraa82/MariaIntelligence-1-sub008/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
)

var testToday = time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

// newTestContext returns a gin context serving req with the given path params
func newTestContext(req *http.Request, params ...gin.Param) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = params
	return c, w
}

func idParam(id string) gin.Param {
	return gin.Param{Key: "id", Value: id}
}

func testLogger(t *testing.T) logger.Logger {
	return testutil.SetupTestLogger(t)
}
