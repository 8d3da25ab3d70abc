package usecase

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"referral-service/internal/data/entity"
	"referral-service/internal/data/repository"

	"go.uber.org/zap"
)

const (
	reportFilename = "referral_report.csv"
	reportHeader   = "Name,Email,Referral Code,Referrer Code,Profile Completed,Phone Number,Address,Referred Users"
)

type ReportService interface {
	GenerateReferralReport(ctx context.Context, w http.ResponseWriter) error
}

type reportService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewReportService(userRepo repository.UserRepository, log *zap.Logger) ReportService {
	return &reportService{
		userRepo: userRepo,
		log:      log,
	}
}

// GenerateReferralReport streams the whole user collection as CSV rows, one
// per user in store order. Rows are written as they are read, so a failure
// mid-stream leaves the sink partially written. All failures are logged with
// their cause and re-signaled uniformly as ErrReportGeneration.
func (s *reportService) GenerateReferralReport(ctx context.Context, w http.ResponseWriter) error {
	s.log.Info("Starting referral report generation")

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+reportFilename)

	if _, err := fmt.Fprintln(w, reportHeader); err != nil {
		s.log.Error("Failed to write report header", zap.Error(err))
		return ErrReportGeneration
	}

	count := 0
	err := s.userRepo.StreamAll(ctx, func(user *entity.User) error {
		if err := writeReportRow(w, user); err != nil {
			return fmt.Errorf("write row for %s: %w", user.Email, err)
		}
		count++
		return nil
	})
	if err != nil {
		s.log.Error("Failed to generate referral report",
			zap.Error(err),
			zap.Int("rows_written", count))
		return ErrReportGeneration
	}

	s.log.Info("Referral report generated", zap.Int("rows", count))
	return nil
}

func writeReportRow(w http.ResponseWriter, user *entity.User) error {
	referred := strings.Join(user.ReferredUsers, ";")

	_, err := fmt.Fprintf(w, "%s,%s,%s,%s,%t,%s,%s,%s\n",
		sanitizeField(user.Name),
		sanitizeField(user.Email),
		sanitizeField(user.ReferralCode),
		sanitizeField(user.ReferrerCode),
		user.ProfileCompleted,
		sanitizeField(user.PhoneNumber),
		sanitizeField(user.Address),
		sanitizeField(referred),
	)
	return err
}

// sanitizeField replaces literal commas with spaces. Deliberately not a
// CSV-compliant quoting scheme.
func sanitizeField(value string) string {
	return strings.ReplaceAll(value, ",", " ")
}
