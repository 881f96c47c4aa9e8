// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hotelapp-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrRoomUnavailable is the expected conflict outcome: the requested
	// range overlaps an existing booking for the same room.
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")

	// ErrInvalidDateRange rejects empty or inverted ranges up front.
	ErrInvalidDateRange = errors.New("booking end date must be after start date")

	// ErrRoomNotFound means the referenced room does not exist.
	ErrRoomNotFound = errors.New("room not found")
)

// BookingService owns the no-double-booking invariant. The check and the
// insert run inside one transaction, serialized per room by an in-process
// lock, so concurrent attempts for the same room cannot both pass the
// availability check. Unrelated rooms never wait on each other.
//
// The per-room lock is only correct in a single-process deployment; a
// multi-instance setup would need the equivalent lock on the database side.
type BookingService struct {
	DB *gorm.DB

	mu        sync.Mutex
	roomLocks map[uint]*sync.Mutex
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:        db,
		roomLocks: make(map[uint]*sync.Mutex),
	}
}

func (s *BookingService) roomLock(roomID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.roomLocks[roomID]
	if !ok {
		lock = &sync.Mutex{}
		s.roomLocks[roomID] = lock
	}
	return lock
}

// countOverlapping applies the half-open overlap predicate:
// [existing.start, existing.end) intersects [start, end) iff
// existing.start < end AND existing.end > start.
func countOverlapping(db *gorm.DB, roomID uint, start, end time.Time) (int64, error) {
	var count int64
	err := db.Model(&models.Booking{}).
		Where("room_id = ? AND start_date < ? AND end_date > ?", roomID, end, start).
		Count(&count).Error
	return count, err
}

// IsRoomAvailable reports whether the room has no booking overlapping the
// half-open range [start, end). Pure query, no side effects; boundary-touching
// ranges (one booking ending exactly when another starts) do not conflict.
func (s *BookingService) IsRoomAvailable(roomID uint, start, end time.Time) (bool, error) {
	count, err := countOverlapping(s.DB, roomID, start, end)
	if err != nil {
		return false, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return count == 0, nil
}

// CreateBooking re-validates availability and inserts the booking in one
// atomic step. On conflict it returns ErrRoomUnavailable and writes nothing.
// On success the booking carries its assigned ID and a generated reference
// code.
func (s *BookingService) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if booking == nil {
		return nil, errors.New("booking must not be nil")
	}
	if !booking.EndDate.After(booking.StartDate) {
		return nil, ErrInvalidDateRange
	}

	lock := s.roomLock(booking.RoomID)
	lock.Lock()
	defer lock.Unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, booking.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("db error checking room %d: %w", booking.RoomID, err)
		}

		count, err := countOverlapping(tx, booking.RoomID, booking.StartDate, booking.EndDate)
		if err != nil {
			return fmt.Errorf("failed to query overlapping bookings: %w", err)
		}
		if count > 0 {
			return ErrRoomUnavailable
		}

		if booking.ReferenceCode == "" {
			booking.ReferenceCode = uuid.NewString()
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return booking, nil
}
