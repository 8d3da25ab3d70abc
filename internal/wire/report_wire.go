package wire

import (
	"referral-service/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReport configures the CSV report route
func wireReport(r chi.Router, reportHandler *adaptor.ReportHandler) {
	r.Get("/api/report/referrals", reportHandler.GenerateReport)
}
