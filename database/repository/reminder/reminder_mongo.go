package reminderRepo

import (
	"context"
	"fmt"
	"time"

	"tutorly/database"
	"tutorly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReminderRepo implements ReminderRepository using MongoDB.
type MongoReminderRepo struct {
	reminderColl *mongo.Collection
}

// NewMongoReminderRepo constructs a new instance of MongoReminderRepo.
func NewMongoReminderRepo() ReminderRepository {
	db := database.MongoClient.Database("tutorly")
	return &MongoReminderRepo{
		reminderColl: db.Collection("session_reminders"),
	}
}

// Insert stores a fired reminder.
func (repo *MongoReminderRepo) Insert(reminder models.SessionReminder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := repo.reminderColl.InsertOne(ctx, reminder); err != nil {
		return fmt.Errorf("error inserting reminder for booking %s: %w", reminder.BookingID, err)
	}
	return nil
}

// ListByStudent retrieves the most recent reminders for a student.
func (repo *MongoReminderRepo) ListByStudent(studentID string, limit int64) ([]models.SessionReminder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"student_id": studentID}
	opts := options.Find().SetSort(bson.M{"fired_at": -1}).SetLimit(limit)
	cursor, err := repo.reminderColl.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching reminders for student %s: %w", studentID, err)
	}
	defer cursor.Close(ctx)

	var reminders []models.SessionReminder
	if err := cursor.All(ctx, &reminders); err != nil {
		return nil, fmt.Errorf("error decoding reminders for student %s: %w", studentID, err)
	}
	return reminders, nil
}
