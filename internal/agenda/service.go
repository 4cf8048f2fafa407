package agenda

import (
	"context"
	"fmt"
	"time"

	"courtdesk/internal/bookings"
	"courtdesk/internal/reva"
	"courtdesk/internal/shared/config"
	"courtdesk/internal/shared/constants"
	"courtdesk/pkg/cache"
	"courtdesk/pkg/logger"
)

type Service interface {
	GetAgenda(ctx context.Context, sessionID, startDate, endDate string) (*AgendaResponse, error)
	ToggleSection(ctx context.Context, sessionID, title string) (CollapseState, error)
}

type service struct {
	client       reva.Client
	cacheService cache.Service
	cfg          *config.Config
	logger       *logger.Logger
	now          func() time.Time
}

func NewService(client reva.Client, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		client:       client,
		cacheService: cacheService,
		cfg:          cfg,
		logger:       logger.GetDefault(),
		now:          time.Now,
	}
}

func (s *service) GetAgenda(ctx context.Context, sessionID, startDate, endDate string) (*AgendaResponse, error) {
	if err := validateRange(startDate, endDate); err != nil {
		return nil, err
	}

	records, err := s.fetchRange(ctx, startDate, endDate)
	if err != nil {
		if reva.IsFetchError(err) {
			// Upstream failure is masked: the operator gets the fallback
			// venue name and an empty list instead of an error screen
			s.logger.ErrorWithContext(ctx, "agenda fetch degraded", err, map[string]interface{}{
				"start": startDate,
				"end":   endDate,
			})
			return &AgendaResponse{
				VenueName: s.cfg.Reva.FallbackVenueName,
				Start:     startDate,
				End:       endDate,
				Degraded:  true,
				Sections:  []SectionResponse{},
			}, nil
		}
		return nil, err
	}

	sections, err := Aggregate(records)
	if err != nil {
		return nil, err
	}

	// A fresh aggregation fully replaces prior derived state, collapse
	// flags included
	if err := s.cacheService.Delete(ctx, constants.BuildCollapseStateKey(sessionID)); err != nil {
		s.logger.ErrorWithContext(ctx, "collapse state reset failed", err, map[string]interface{}{
			"session_id": sessionID,
		})
	}

	s.snapshotRecords(ctx, records)

	view := &AgendaResponse{
		VenueName: s.venueName(records),
		Start:     startDate,
		End:       endDate,
		Sections:  make([]SectionResponse, 0, len(sections)),
	}

	now := s.now()
	for _, section := range sections {
		label, err := SectionLabel(section.Title, now)
		if err != nil {
			return nil, err
		}

		rows := make([]BookingRow, 0, len(section.Bookings))
		for _, record := range section.Bookings {
			rows = append(rows, toBookingRow(record))
		}

		view.Sections = append(view.Sections, SectionResponse{
			Title:      section.Title,
			Label:      label,
			Count:      section.Count,
			CountLabel: CountLabel(section.Count),
			Collapsed:  false,
			Bookings:   rows,
		})
	}

	s.logger.LogAgendaBuilt(ctx, startDate, endDate, len(view.Sections), len(records))
	return view, nil
}

func (s *service) ToggleSection(ctx context.Context, sessionID, title string) (CollapseState, error) {
	key := constants.BuildCollapseStateKey(sessionID)

	state := NewCollapseState()
	if err := s.cacheService.Get(ctx, key, &state); err != nil && err != cache.ErrCacheMiss {
		return nil, fmt.Errorf("load collapse state: %w", err)
	}

	state = state.Toggle(title)

	if err := s.cacheService.Set(ctx, key, state, s.cfg.Redis.SessionTTL); err != nil {
		return nil, fmt.Errorf("store collapse state: %w", err)
	}

	return state, nil
}

// fetchRange serves raw records through the short-lived fetch cache so quick
// filter changes don't hammer the upstream API.
func (s *service) fetchRange(ctx context.Context, startDate, endDate string) ([]reva.BookingRecord, error) {
	var records []reva.BookingRecord
	err := s.cacheService.GetOrSet(ctx,
		constants.BuildFetchRangeKey(startDate, endDate),
		s.cfg.Redis.FetchCacheTTL,
		func() (interface{}, error) {
			return s.client.FetchBookings(ctx, startDate, endDate)
		},
		&records,
	)
	if err != nil {
		return nil, err
	}
	return records, nil
}

// snapshotRecords stores each record by booking id so the detail view can
// work purely off data already fetched, with no second upstream lookup.
func (s *service) snapshotRecords(ctx context.Context, records []reva.BookingRecord) {
	for _, record := range records {
		if record.BookingID == "" {
			continue
		}
		key := constants.BuildBookingSnapshotKey(string(record.BookingID))
		if err := s.cacheService.Set(ctx, key, record, s.cfg.Redis.SnapshotTTL); err != nil {
			s.logger.ErrorWithContext(ctx, "booking snapshot failed", err, map[string]interface{}{
				"booking_id": string(record.BookingID),
			})
		}
	}
}

// venueName derives the header name from the first record that carries one.
func (s *service) venueName(records []reva.BookingRecord) string {
	for _, record := range records {
		if record.Establishment != "" {
			return record.Establishment
		}
	}
	return s.cfg.Reva.FallbackVenueName
}

func toBookingRow(record reva.BookingRecord) BookingRow {
	return BookingRow{
		BookingID:     string(record.BookingID),
		Date:          record.StartDateKey(),
		StartClock:    shortClock(record.StartClock()),
		EndClock:      shortClock(record.EndClock()),
		FieldName:     record.FieldName,
		Establishment: record.Establishment,
		ClientName:    record.ClientName(),
		PictureURL:    record.PictureURL,
		Badges:        bookings.Classify(record),
	}
}

// shortClock trims "HH:mm:ss" to "HH:mm" for display.
func shortClock(clock string) string {
	if len(clock) >= 5 {
		return clock[:5]
	}
	return clock
}

func validateRange(startDate, endDate string) error {
	start, err := time.Parse(dateKeyLayout, startDate)
	if err != nil {
		return fmt.Errorf("%w: start %q", ErrInvalidDateRange, startDate)
	}
	end, err := time.Parse(dateKeyLayout, endDate)
	if err != nil {
		return fmt.Errorf("%w: end %q", ErrInvalidDateRange, endDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end %q before start %q", ErrInvalidDateRange, endDate, startDate)
	}
	return nil
}
