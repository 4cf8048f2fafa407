package bookings

import (
	"context"
	"fmt"

	"courtdesk/internal/reva"
	"courtdesk/internal/shared/config"
	"courtdesk/internal/shared/constants"
	"courtdesk/pkg/cache"
	"courtdesk/pkg/logger"
)

type Service interface {
	GetDetail(ctx context.Context, sessionID, bookingID string) (*DetailResponse, error)
	AdjustProduct(ctx context.Context, sessionID, bookingID string, productID, delta int) (*DetailResponse, error)
	TogglePayment(ctx context.Context, sessionID, bookingID string) (*DetailResponse, error)
}

type service struct {
	cacheService cache.Service
	cfg          *config.Config
	logger       *logger.Logger
}

func NewService(cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		cacheService: cacheService,
		cfg:          cfg,
		logger:       logger.GetDefault(),
	}
}

func (s *service) GetDetail(ctx context.Context, sessionID, bookingID string) (*DetailResponse, error) {
	record, err := s.loadSnapshot(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, sessionID, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := s.loadPayment(ctx, sessionID, bookingID, record)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(record, products, status)
}

func (s *service) AdjustProduct(ctx context.Context, sessionID, bookingID string, productID, delta int) (*DetailResponse, error) {
	record, err := s.loadSnapshot(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	products, err := s.loadProducts(ctx, sessionID, bookingID)
	if err != nil {
		return nil, err
	}

	products = SetQuantity(products, productID, delta)

	key := constants.BuildProductSelectionKey(sessionID, bookingID)
	if err := s.cacheService.Set(ctx, key, products, s.cfg.Redis.SessionTTL); err != nil {
		return nil, fmt.Errorf("store product selection: %w", err)
	}

	status, err := s.loadPayment(ctx, sessionID, bookingID, record)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(record, products, status)
}

func (s *service) TogglePayment(ctx context.Context, sessionID, bookingID string) (*DetailResponse, error) {
	record, err := s.loadSnapshot(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	status, err := s.loadPayment(ctx, sessionID, bookingID, record)
	if err != nil {
		return nil, err
	}

	status = status.Toggled()

	key := constants.BuildPaymentStatusKey(sessionID, bookingID)
	if err := s.cacheService.Set(ctx, key, status, s.cfg.Redis.SessionTTL); err != nil {
		return nil, fmt.Errorf("store payment status: %w", err)
	}

	s.logger.LogPaymentToggled(ctx, bookingID, string(status))

	products, err := s.loadProducts(ctx, sessionID, bookingID)
	if err != nil {
		return nil, err
	}

	return s.buildDetail(record, products, status)
}

// loadSnapshot reads the record captured at agenda fetch time. The detail
// view never performs a second upstream lookup.
func (s *service) loadSnapshot(ctx context.Context, bookingID string) (reva.BookingRecord, error) {
	var record reva.BookingRecord
	err := s.cacheService.Get(ctx, constants.BuildBookingSnapshotKey(bookingID), &record)
	if err == cache.ErrCacheMiss {
		return reva.BookingRecord{}, ErrBookingNotFound
	}
	if err != nil {
		return reva.BookingRecord{}, fmt.Errorf("load booking snapshot: %w", err)
	}
	return record, nil
}

func (s *service) loadProducts(ctx context.Context, sessionID, bookingID string) ([]ProductLine, error) {
	var products []ProductLine
	err := s.cacheService.Get(ctx, constants.BuildProductSelectionKey(sessionID, bookingID), &products)
	if err == cache.ErrCacheMiss {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load product selection: %w", err)
	}
	return products, nil
}

func (s *service) loadPayment(ctx context.Context, sessionID, bookingID string, record reva.BookingRecord) (PaymentStatus, error) {
	var status PaymentStatus
	err := s.cacheService.Get(ctx, constants.BuildPaymentStatusKey(sessionID, bookingID), &status)
	if err == cache.ErrCacheMiss {
		// No toggle yet this session; derive from the record itself
		if record.PaymentStatus == string(PaymentStatusPaid) {
			return PaymentStatusPaid, nil
		}
		return PaymentStatusPending, nil
	}
	if err != nil {
		return "", fmt.Errorf("load payment status: %w", err)
	}
	return status, nil
}

func (s *service) buildDetail(record reva.BookingRecord, products []ProductLine, status PaymentStatus) (*DetailResponse, error) {
	breakdown, err := ComputeBreakdown(record, products)
	if err != nil {
		return nil, err
	}

	badges := Classify(record)

	clientName := record.ClientName()
	if clientName == "" {
		clientName = "Cliente Ocasional"
	}

	return &DetailResponse{
		BookingID:     string(record.BookingID),
		ClientName:    clientName,
		CreatedBy:     badges.CreatedByLabel(),
		Badges:        badges,
		StatusLabel:   badges.StatusLabel(),
		FieldName:     record.FieldName,
		SportName:     record.SportName,
		Establishment: record.Establishment,
		PictureURL:    record.PictureURL,
		Date:          record.StartDateKey(),
		StartClock:    shortClock(record.StartClock()),
		EndClock:      shortClock(record.EndClock()),
		PaymentStatus: status,
		PaymentLabel:  status.ActionLabel(),
		Products:      products,
		Pricing:       toPricingResponse(breakdown),
	}, nil
}

// shortClock trims "HH:mm:ss" to "HH:mm" for display.
func shortClock(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}
