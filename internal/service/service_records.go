package service

import (
	"context"
	"time"

	"github.com/medidesk/clinic-backend/internal/config"
	"github.com/medidesk/clinic-backend/internal/logger"
	"github.com/medidesk/clinic-backend/internal/store"
	"github.com/medidesk/clinic-backend/models"
)

// recordsService is the concrete implementation of RecordsService.
//
// Its single responsibility beyond delegation is the query deadline: every
// repository call runs under a context bounded by queryTimeout, so a slow
// query aborts instead of holding a pooled connection indefinitely.
type recordsService struct {
	recordsRepository store.RecordsRepository
	queryTimeout      time.Duration
	logger            *logger.Logger
}

// NewRecordsService constructs a RecordsService wired to the given
// RecordsRepository with the per-query deadline from cfg.
func NewRecordsService(recordsRepository store.RecordsRepository, cfg config.DB, logger *logger.Logger) RecordsService {
	return &recordsService{
		recordsRepository: recordsRepository,
		queryTimeout:      cfg.QueryTimeout,
		logger:            logger,
	}
}

func (s *recordsService) Appointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.Appointments(ctx, patientID)
}

func (s *recordsService) LatestAppointments(ctx context.Context, patientID *int64) ([]models.Appointment, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.LatestAppointments(ctx, patientID)
}

func (s *recordsService) BillTotals(ctx context.Context, patientID *int64) (models.BillTotals, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.BillTotals(ctx, patientID)
}

func (s *recordsService) Ticket(ctx context.Context, patientID *int64) ([]models.Ticket, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.Ticket(ctx, patientID)
}

func (s *recordsService) PaymentTotal(ctx context.Context, patientID *int64) (models.PaymentTotal, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.PaymentTotal(ctx, patientID)
}

func (s *recordsService) DiscountTotal(ctx context.Context, patientID *int64) (models.DiscountTotal, error) {
	ctx, cancel := s.withQueryDeadline(ctx)
	defer cancel()

	return s.recordsRepository.DiscountTotal(ctx, patientID)
}

// withQueryDeadline bounds ctx by the configured query timeout. A zero
// timeout leaves the context untouched.
func (s *recordsService) withQueryDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, s.queryTimeout)
}
