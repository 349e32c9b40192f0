package bookingRepo

import "tutorly/models"

// BookingRepository is the read-only boundary to the booking service's data.
// This service never creates, reschedules or cancels bookings; it only reads
// what the booking CRUD API has already written.
type BookingRepository interface {
	ListByStudent(studentID string) ([]models.Booking, error)
	GetByID(bookingID string) (*models.Booking, error)
}
