package adaptor

import (
	"referral-service/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	User   *UserHandler
	Report *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:   NewUserHandler(service.Referral, log),
		Report: NewReportHandler(service.Report, log),
	}
}
