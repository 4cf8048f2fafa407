package agenda

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"courtdesk/internal/reva"
	"courtdesk/internal/shared/config"
	"courtdesk/internal/shared/constants"
	"courtdesk/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memCache is an in-memory cache.Service that keeps the JSON round-trip
// behavior of the Redis-backed implementation.
type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memCache) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memCache) Exists(_ context.Context, key string) bool {
	_, ok := m.data[key]
	return ok
}

func (m *memCache) GetOrSet(ctx context.Context, key string, ttl time.Duration, fetcher func() (interface{}, error), dest interface{}) error {
	if err := m.Get(ctx, key, dest); err == nil {
		return nil
	}
	data, err := fetcher()
	if err != nil {
		return err
	}
	if err := m.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	return m.Get(ctx, key, dest)
}

func (m *memCache) Ping(_ context.Context) error {
	return nil
}

// stubClient returns canned records or a canned error.
type stubClient struct {
	records []reva.BookingRecord
	err     error
	calls   int
}

func (s *stubClient) FetchBookings(_ context.Context, _, _ string) ([]reva.BookingRecord, error) {
	s.calls++
	return s.records, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		Reva: config.RevaConfig{FallbackVenueName: "Mi Club"},
		Redis: config.RedisConfig{
			FetchCacheTTL: 2 * time.Minute,
			SnapshotTTL:   12 * time.Hour,
			SessionTTL:    12 * time.Hour,
		},
	}
}

func newTestService(client reva.Client, store cache.Service) *service {
	svc := NewService(client, store, testConfig()).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetAgenda_BuildsSectionsAndSnapshots(t *testing.T) {
	rec := record("b-1", "2025-03-10 09:00:00", "2025-03-10 10:30:00", "Cancha 1")
	rec.Establishment = "Club Central"
	client := &stubClient{records: []reva.BookingRecord{rec}}
	store := newMemCache()
	svc := newTestService(client, store)

	view, err := svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, "Club Central", view.VenueName)
	assert.False(t, view.Degraded)
	require.Len(t, view.Sections, 1)
	assert.Equal(t, "2025-03-10", view.Sections[0].Title)
	assert.Equal(t, "HOY, LUNES 10 DE MARZO", view.Sections[0].Label)
	assert.Equal(t, "1 Reserva", view.Sections[0].CountLabel)

	require.Len(t, view.Sections[0].Bookings, 1)
	row := view.Sections[0].Bookings[0]
	assert.Equal(t, "09:00", row.StartClock)
	assert.Equal(t, "10:30", row.EndClock)

	// Detail snapshots are written during aggregation.
	assert.True(t, store.Exists(context.Background(), constants.BuildBookingSnapshotKey("b-1")))
}

func TestGetAgenda_FallbackVenueNameWhenRecordsCarryNone(t *testing.T) {
	client := &stubClient{records: []reva.BookingRecord{
		record("b-1", "2025-03-10 09:00:00", "2025-03-10 10:00:00", "Cancha 1"),
	}}
	svc := newTestService(client, newMemCache())

	view, err := svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, "Mi Club", view.VenueName)
}

func TestGetAgenda_UpstreamFailureYieldsDegradedView(t *testing.T) {
	client := &stubClient{err: &reva.FetchError{Op: "status", StatusCode: 503, Err: errors.New("unavailable")}}
	svc := newTestService(client, newMemCache())

	view, err := svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-11")
	require.NoError(t, err)

	assert.True(t, view.Degraded)
	assert.Equal(t, "Mi Club", view.VenueName)
	assert.Empty(t, view.Sections)
}

func TestGetAgenda_InvalidRange(t *testing.T) {
	svc := newTestService(&stubClient{}, newMemCache())

	_, err := svc.GetAgenda(context.Background(), "sess-1", "2025-03-11", "2025-03-10")
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.GetAgenda(context.Background(), "sess-1", "10/03/2025", "2025-03-10")
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestGetAgenda_SecondCallServedFromFetchCache(t *testing.T) {
	client := &stubClient{records: []reva.BookingRecord{
		record("b-1", "2025-03-10 09:00:00", "2025-03-10 10:00:00", "Cancha 1"),
	}}
	svc := newTestService(client, newMemCache())

	_, err := svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-10")
	require.NoError(t, err)
	_, err = svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-10")
	require.NoError(t, err)

	assert.Equal(t, 1, client.calls)
}

func TestGetAgenda_ResetsCollapseState(t *testing.T) {
	client := &stubClient{records: []reva.BookingRecord{
		record("b-1", "2025-03-10 09:00:00", "2025-03-10 10:00:00", "Cancha 1"),
	}}
	store := newMemCache()
	svc := newTestService(client, store)

	state, err := svc.ToggleSection(context.Background(), "sess-1", "2025-03-10")
	require.NoError(t, err)
	assert.True(t, state.Collapsed("2025-03-10"))

	_, err = svc.GetAgenda(context.Background(), "sess-1", "2025-03-10", "2025-03-10")
	require.NoError(t, err)

	assert.False(t, store.Exists(context.Background(), constants.BuildCollapseStateKey("sess-1")))
}

func TestToggleSection_PersistsAcrossCalls(t *testing.T) {
	svc := newTestService(&stubClient{}, newMemCache())
	ctx := context.Background()

	state, err := svc.ToggleSection(ctx, "sess-1", "2025-03-10")
	require.NoError(t, err)
	assert.True(t, state.Collapsed("2025-03-10"))

	state, err = svc.ToggleSection(ctx, "sess-1", "2025-03-11")
	require.NoError(t, err)
	assert.True(t, state.Collapsed("2025-03-10"))
	assert.True(t, state.Collapsed("2025-03-11"))

	state, err = svc.ToggleSection(ctx, "sess-1", "2025-03-10")
	require.NoError(t, err)
	assert.False(t, state.Collapsed("2025-03-10"))
	assert.True(t, state.Collapsed("2025-03-11"))
}

func TestToggleSection_SessionsAreIsolated(t *testing.T) {
	svc := newTestService(&stubClient{}, newMemCache())
	ctx := context.Background()

	_, err := svc.ToggleSection(ctx, "sess-a", "2025-03-10")
	require.NoError(t, err)

	state, err := svc.ToggleSection(ctx, "sess-b", "2025-03-11")
	require.NoError(t, err)
	assert.False(t, state.Collapsed("2025-03-10"))
	assert.True(t, state.Collapsed("2025-03-11"))
}
