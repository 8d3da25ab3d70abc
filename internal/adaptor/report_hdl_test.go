package adaptor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"referral-service/internal/adaptor"
	"referral-service/internal/usecase"
)

type stubReportService struct {
	body string
	err  error
}

func (s *stubReportService) GenerateReferralReport(_ context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=referral_report.csv")
	if s.body != "" {
		fmt.Fprint(w, s.body)
	}
	return s.err
}

// rejectingWriter fails every body write but records the response status
type rejectingWriter struct {
	header http.Header
	status int
}

func (w *rejectingWriter) Header() http.Header {
	if w.header == nil {
		w.header = http.Header{}
	}
	return w.header
}

func (w *rejectingWriter) Write([]byte) (int, error) { return 0, errors.New("connection reset") }
func (w *rejectingWriter) WriteHeader(code int)      { w.status = code }

func TestReportHandler(t *testing.T) {
	t.Run("streams CSV with attachment headers", func(t *testing.T) {
		h := adaptor.NewReportHandler(&stubReportService{body: "Name,Email\n"}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/report/referrals", nil)
		rec := httptest.NewRecorder()
		h.GenerateReport(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Equal(t, "attachment; filename=referral_report.csv", rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "Name,Email\n", rec.Body.String())
	})

	t.Run("failure before any output returns 500", func(t *testing.T) {
		h := adaptor.NewReportHandler(&stubReportService{err: usecase.ErrReportGeneration}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/report/referrals", nil)
		rec := httptest.NewRecorder()
		h.GenerateReport(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Failed to generate CSV report.")
	})

	t.Run("failed header write with no bytes out still returns 500", func(t *testing.T) {
		// The sink rejects the header line itself, so nothing reaches the
		// client and the error envelope must still be attempted.
		h := adaptor.NewReportHandler(&stubReportService{
			body: "Name,Email\n",
			err:  usecase.ErrReportGeneration,
		}, zap.NewNop())

		w := &rejectingWriter{}
		req := httptest.NewRequest(http.MethodGet, "/api/report/referrals", nil)
		h.GenerateReport(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.status)
	})

	t.Run("failure mid-stream leaves the partial body untouched", func(t *testing.T) {
		h := adaptor.NewReportHandler(&stubReportService{
			body: "Name,Email\npartial",
			err:  usecase.ErrReportGeneration,
		}, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/api/report/referrals", nil)
		rec := httptest.NewRecorder()
		h.GenerateReport(rec, req)

		assert.Equal(t, "Name,Email\npartial", rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "Failed to generate")
	})
}
