package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/acadledger-api/pkg/errors"
)

func TestMetricsServiceExposesCollectors(t *testing.T) {
	svc := NewMetricsService()
	svc.ObserveHTTPRequest(http.MethodPost, "/api/v1/grades", http.StatusCreated, 25*time.Millisecond)
	svc.RecordLedgerOp("assign_grade", nil)
	svc.RecordLedgerOp("assign_grade", appErrors.ErrForbidden)

	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodGet, "/metrics", nil)
	require.NoError(t, err)
	svc.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "http_requests_total")
	assert.Contains(t, body, `ledger_operations_total{operation="assign_grade",outcome="ok"} 1`)
	assert.Contains(t, body, `ledger_operations_total{operation="assign_grade",outcome="FORBIDDEN"} 1`)
	assert.Contains(t, body, "goroutines_total")
}

func TestRecordLedgerOpNilReceiver(t *testing.T) {
	var svc *MetricsService
	assert.NotPanics(t, func() { svc.RecordLedgerOp("enroll_student", nil) })
}
