package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/clinibook/clinibook/internal/platform/cache"
)

// Service resolves availability and commits bookings against a Store.
// The clock is injectable so slot cut-offs are testable.
type Service struct {
	store Store
	slots *cache.SlotCache
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetSlotCache attaches an optional availability cache. The booking path
// never reads it; it only invalidates entries after a commit.
func (s *Service) SetSlotCache(c *cache.SlotCache) { s.slots = c }

// SetClock overrides the service clock.
func (s *Service) SetClock(now func() time.Time) { s.now = now }

// AvailableDoctors returns, for every doctor of the clinic with at least one
// open slot on the given date, the doctor and their open slots in ascending
// time order. Doctors whose day is fully booked are omitted.
func (s *Service) AvailableDoctors(ctx context.Context, clinicID uuid.UUID, date time.Time) ([]DoctorAvailability, error) {
	doctors, err := s.store.ListDoctors(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	var out []DoctorAvailability
	for _, d := range doctors {
		open, err := s.openSlots(ctx, d.ID, date, now)
		if err != nil {
			return nil, err
		}
		if len(open) == 0 {
			continue
		}
		out = append(out, DoctorAvailability{Doctor: d, OpenSlots: open})
	}
	return out, nil
}

// openSlots computes the doctor's open slots for a date, consulting the
// cache first. Cached entries may be slightly stale; bookings correct that.
func (s *Service) openSlots(ctx context.Context, doctorID uuid.UUID, date time.Time, now time.Time) ([]time.Time, error) {
	if cached, ok := s.slots.GetOpenSlots(ctx, doctorID, date); ok {
		return cached, nil
	}
	appts, err := s.store.ListAppointments(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	booked := make(map[time.Time]bool, len(appts))
	for _, a := range appts {
		booked[a.StartAt.UTC()] = true
	}
	open := []time.Time{}
	for t := range CandidateSlots(date, now) {
		if !booked[t] {
			open = append(open, t)
		}
	}
	s.slots.SetOpenSlots(ctx, doctorID, date, open)
	return open, nil
}

// IsSlotAvailable reports whether the given slot is open for booking: the
// doctor belongs to the clinic, the timestamp is inside a working window,
// strictly in the future, and not already taken. A doctor outside the
// clinic yields false, not an error.
func (s *Service) IsSlotAvailable(ctx context.Context, clinicID, doctorID uuid.UUID, at time.Time) (bool, error) {
	at = at.UTC()
	d, err := s.store.GetDoctor(ctx, doctorID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if d.ClinicID != clinicID {
		return false, nil
	}
	if !InWorkingWindow(at) || !at.After(s.now()) {
		return false, nil
	}
	taken, err := s.store.AppointmentExists(ctx, doctorID, at)
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// Doctor returns the engine's view of a doctor, or ErrNotFound.
func (s *Service) Doctor(ctx context.Context, doctorID uuid.UUID) (*Doctor, error) {
	return s.store.GetDoctor(ctx, doctorID)
}
