package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"tutorly/database"
	"tutorly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	bookingColl *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("tutorly")
	return &MongoBookingRepo{
		bookingColl: db.Collection("bookings"),
	}
}

// ListByStudent retrieves every booking belonging to a student. Filtering by
// time bucket happens in the session classifier, not in the query.
func (repo *MongoBookingRepo) ListByStudent(studentID string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"student_id": studentID}
	cursor, err := repo.bookingColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings for student %s: %w", studentID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings for student %s: %w", studentID, err)
	}
	return bookings, nil
}

// GetByID retrieves a booking document by ID.
func (repo *MongoBookingRepo) GetByID(bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.bookingColl.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking with id %s: %w", bookingID, err)
	}
	return &booking, nil
}
