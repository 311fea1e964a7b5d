package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/availability"
	"masgolf/internal/domain"
	"masgolf/internal/storage"
)

var kst = time.FixedZone("KST", 9*60*60)

// fixedNow is Thursday 2026-10-15 10:00 in Seoul.
func fixedNow() time.Time {
	return time.Date(2026, 10, 15, 10, 0, 0, 0, kst)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, kst)
}

func bookingConfig() config.BookingConfig {
	return config.BookingConfig{
		Timezone:        "Asia/Seoul",
		Location:        kst,
		DefaultDuration: 60,
		MaxHorizonDays:  90,
		ContactPhone:    "080-028-8888",
	}
}

type fakeSettingsRepo struct {
	settings *domain.BookingSettings
	err      error
	saved    []domain.BookingSettings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*domain.BookingSettings, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Upsert(_ context.Context, settings domain.BookingSettings) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, settings)
	r.settings = &settings
	return nil
}

type fakeBookingRepo struct {
	mu        sync.Mutex
	bookings  []domain.Booking
	err       error
	createErr error
	nextID    int64
	loads     int
}

func (r *fakeBookingRepo) Create(_ context.Context, booking domain.Booking) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return 0, r.createErr
	}
	if err := r.checkSlot(booking); err != nil {
		return 0, err
	}
	r.nextID++
	booking.ID = r.nextID
	r.bookings = append(r.bookings, booking)
	return booking.ID, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, b := range r.bookings {
		if b.ID == id {
			b := b
			return &b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) List(_ context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	var out []domain.Booking
	for _, b := range r.bookings {
		if filter.Date != nil && !sameDate(b.Date, *filter.Date) {
			continue
		}
		out = append(out, b)
	}
	total := len(out)
	if filter.Offset < len(out) {
		out = out[filter.Offset:]
	} else {
		out = nil
	}
	if len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, total, nil
}

// ListOccupying returns every booking of the date regardless of status.
func (r *fakeBookingRepo) ListOccupying(_ context.Context, date time.Time) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.Booking
	for _, b := range r.bookings {
		if sameDate(b.Date, date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			if status.Occupies() && !r.bookings[i].Status.Occupies() {
				if err := r.checkSlot(r.bookings[i]); err != nil {
					return err
				}
			}
			r.bookings[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

// checkSlot mirrors the overlap check the Postgres repository runs under its date lock.
func (r *fakeBookingRepo) checkSlot(booking domain.Booking) error {
	var sameDay []domain.Booking
	for _, b := range r.bookings {
		if sameDate(b.Date, booking.Date) {
			sameDay = append(sameDay, b)
		}
	}
	conflict, err := availability.BookingConflict(booking, sameDay)
	if err != nil {
		return err
	}
	if conflict {
		return domain.ErrSlotUnavailable
	}
	return nil
}

type fakeBlockRepo struct {
	blocks []domain.BookingBlock
	err    error
	nextID int64
}

func (r *fakeBlockRepo) Create(_ context.Context, block domain.BookingBlock) (int64, error) {
	r.nextID++
	block.ID = r.nextID
	r.blocks = append(r.blocks, block)
	return block.ID, nil
}

func (r *fakeBlockRepo) Delete(_ context.Context, id int64) error {
	for i := range r.blocks {
		if r.blocks[i].ID == id {
			r.blocks = append(r.blocks[:i], r.blocks[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeBlockRepo) ListByDate(_ context.Context, date time.Time) ([]domain.BookingBlock, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.BookingBlock
	for _, b := range r.blocks {
		if sameDate(b.Date, date) {
			out = append(out, b)
		}
	}
	return out, nil
}

// ListBlocking also returns virtual blocks; filtering them is the caller's job here.
func (r *fakeBlockRepo) ListBlocking(ctx context.Context, date time.Time) ([]domain.BookingBlock, error) {
	return r.ListByDate(ctx, date)
}

type fakeHoursRepo struct {
	hours  []domain.OperatingHours
	err    error
	nextID int64
}

func (r *fakeHoursRepo) Create(_ context.Context, hours domain.OperatingHours) (int64, error) {
	r.nextID++
	hours.ID = r.nextID
	r.hours = append(r.hours, hours)
	return hours.ID, nil
}

func (r *fakeHoursRepo) GetByID(_ context.Context, id int64) (*domain.OperatingHours, error) {
	for _, h := range r.hours {
		if h.ID == id {
			h := h
			return &h, nil
		}
	}
	return nil, nil
}

func (r *fakeHoursRepo) Update(_ context.Context, hours domain.OperatingHours) error {
	for i := range r.hours {
		if r.hours[i].ID == hours.ID {
			r.hours[i] = hours
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeHoursRepo) Delete(_ context.Context, id int64) error {
	for i := range r.hours {
		if r.hours[i].ID == id {
			r.hours = append(r.hours[:i], r.hours[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeHoursRepo) List(_ context.Context) ([]domain.OperatingHours, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]domain.OperatingHours(nil), r.hours...), nil
}

func (r *fakeHoursRepo) ListAvailableByDay(_ context.Context, dayOfWeek int) ([]domain.OperatingHours, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []domain.OperatingHours
	for _, h := range r.hours {
		if h.DayOfWeek == dayOfWeek && h.IsAvailable {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	sessions map[string]domain.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]domain.Session{}}
}

func (r *fakeSessionRepo) CreateSession(_ context.Context, session domain.Session) error {
	r.sessions[session.ID] = session
	return nil
}

func (r *fakeSessionRepo) GetSessionByRefreshToken(_ context.Context, refreshToken string) (*domain.Session, error) {
	for _, s := range r.sessions {
		if s.RefreshToken == refreshToken {
			s := s
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeSessionRepo) DeleteSession(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

func (r *fakeSessionRepo) DeleteSessionsByLogin(_ context.Context, login string) error {
	for id, s := range r.sessions {
		if s.Login == login {
			delete(r.sessions, id)
		}
	}
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
	types   map[string]string
	err     error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (s *fakeStorage) PutObject(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.objects[key] = data
	s.types[key] = contentType
	return "https://storage.test/masgolf/" + key, nil
}

func (s *fakeStorage) GetObject(_ context.Context, key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	data, ok := s.objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return data, nil
}

func sameDate(a, b time.Time) bool {
	return a.Format(domain.DateLayout) == b.Format(domain.DateLayout)
}

type fixture struct {
	settings *fakeSettingsRepo
	bookings *fakeBookingRepo
	blocks   *fakeBlockRepo
	hours    *fakeHoursRepo
}

func newFixture() *fixture {
	return &fixture{
		settings: &fakeSettingsRepo{},
		bookings: &fakeBookingRepo{},
		blocks:   &fakeBlockRepo{},
		hours:    &fakeHoursRepo{},
	}
}

func (f *fixture) availability() *AvailabilityServiceImpl {
	logger := zap.NewNop()
	settings := NewSettingsService(f.settings, fixedNow, logger)
	return NewAvailabilityService(settings, f.bookings, f.blocks, f.hours, bookingConfig(), fixedNow, logger)
}

func rule(dayOfWeek int, start, end string) domain.OperatingHours {
	return domain.OperatingHours{DayOfWeek: dayOfWeek, StartTime: start, EndTime: end, IsAvailable: true}
}
