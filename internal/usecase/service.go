package usecase

import (
	"referral-service/internal/data/repository"
	"referral-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Referral ReferralService
	Report   ReportService
}

func NewService(repo *repository.Repository, codes utils.CodeGenerator, log *zap.Logger) *Service {
	return &Service{
		Referral: NewReferralService(repo.User, codes, log),
		Report:   NewReportService(repo.User, log),
	}
}
