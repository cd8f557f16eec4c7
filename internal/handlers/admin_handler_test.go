package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/audit"
	"github.com/Ashraf9242/PeerEdu-updated-sub000/internal/notify"
)

type noopNotify struct{}

func (noopNotify) Dispatch(notify.Event) {}

type noopAudit struct{}

func (noopAudit) Dispatch(audit.Event) {}

// brokenDB opens a gorm handle against a port nothing listens on. Opening
// succeeds because database/sql connects lazily; every query then fails,
// which lets handler error paths run without a live postgres.
func brokenDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.Open("host=127.0.0.1 port=1 user=app dbname=app sslmode=disable"),
		&gorm.Config{
			DisableAutomaticPing: true,
			Logger:               gormlogger.Default.LogMode(gormlogger.Silent),
		},
	)
	if err != nil {
		t.Fatalf("open gorm handle: %v", err)
	}
	return db
}

// A metrics response full of zeros is indistinguishable from an empty
// platform, so query failures must surface as an error instead.
func TestMetricsSurfacesQueryErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewAdminHandler(brokenDB(t), noopNotify{}, noopAudit{}, zap.NewNop())

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/admin/metrics", nil)

	h.Metrics(c)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when metric queries fail, got %d: %s", w.Code, w.Body.String())
	}
}
