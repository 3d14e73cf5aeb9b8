package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/JaninduMunasinghe/university-timetable-management/internals/features/rooms/model"
	"github.com/JaninduMunasinghe/university-timetable-management/internals/helpers/dbtime"
)

var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomAlreadyBooked = errors.New("room is already booked")
)

// RoomStore is the narrow persistence surface the reconciler needs.
type RoomStore interface {
	FindRoomByID(id uuid.UUID) (*model.RoomModel, error)
	SaveRoom(room *model.RoomModel) error
}

// BookingStore queries and creates booking rows.
type BookingStore interface {
	// FindFinishedBookings returns bookings for the room on the given date
	// whose end time is <= the reference time of day.
	FindFinishedBookings(roomID uuid.UUID, date time.Time, endBefore dbtime.Tod) ([]model.RoomBookingModel, error)
	CreateBooking(b *model.RoomBookingModel) error
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

// AvailabilityService owns the room-availability state machine.
type AvailabilityService struct {
	Rooms    RoomStore
	Bookings BookingStore
	Clock    Clock
}

func NewAvailabilityService(rooms RoomStore, bookings BookingStore, clock Clock) *AvailabilityService {
	if clock == nil {
		clock = RealClock{}
	}
	return &AvailabilityService{Rooms: rooms, Bookings: bookings, Clock: clock}
}

// Reconcile updates the stored availability flag for a room on a date,
// as of the given instant: when no booking has finished yet (end <= asOf),
// the room is marked available. Bookings still in progress or in the
// future leave the flag untouched.
func (s *AvailabilityService) Reconcile(roomID uuid.UUID, date time.Time, asOf time.Time) error {
	finished, err := s.Bookings.FindFinishedBookings(roomID, date, dbtime.From(asOf))
	if err != nil {
		return err
	}

	room, err := s.Rooms.FindRoomByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}

	if len(finished) == 0 {
		room.Availability = true
		return s.Rooms.SaveRoom(room)
	}
	return nil
}

// BookRoom records a booking, reconciles availability at the current
// instant, then claims the room: an unavailable room rejects the attempt,
// otherwise the flag flips to false. Check-then-write is two round trips
// with no lock; concurrent bookings of the same room are last-writer-wins.
func (s *AvailabilityService) BookRoom(roomID uuid.UUID, date time.Time, start, end dbtime.Tod) error {
	booking := model.RoomBookingModel{
		RoomID:    roomID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.Bookings.CreateBooking(&booking); err != nil {
		return err
	}

	if err := s.Reconcile(roomID, date, s.Clock.Now()); err != nil {
		return err
	}

	room, err := s.Rooms.FindRoomByID(roomID)
	if err != nil {
		return err
	}
	if room == nil {
		return ErrRoomNotFound
	}
	if !room.Availability {
		return ErrRoomAlreadyBooked
	}

	room.Availability = false
	return s.Rooms.SaveRoom(room)
}
