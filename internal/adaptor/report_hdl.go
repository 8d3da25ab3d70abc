package adaptor

import (
	"net/http"

	"referral-service/internal/usecase"
	"referral-service/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log,
	}
}

// trackingWriter records whether any body bytes reached the client
type trackingWriter struct {
	http.ResponseWriter
	wroteBody bool
}

func (tw *trackingWriter) Write(b []byte) (int, error) {
	n, err := tw.ResponseWriter.Write(b)
	if n > 0 {
		tw.wroteBody = true
	}
	return n, err
}

// GenerateReport handles GET /api/report/referrals
func (h *ReportHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	tw := &trackingWriter{ResponseWriter: w}

	if err := h.service.GenerateReferralReport(r.Context(), tw); err != nil {
		// Once CSV bytes are on the wire the response cannot be rewritten;
		// the caller sees a truncated report and the cause stays in the logs.
		if tw.wroteBody {
			h.log.Warn("Report stream failed after partial write", zap.Error(err))
			return
		}

		utils.ResponseInternalError(w, "Failed to generate CSV report.")
	}
}
