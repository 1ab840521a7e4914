package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/RichardBobik/eye-know-api-2/internal/core/domain"
)

const auditCollection = "auth_events"

// AuditRepository persists auth events to the auth_events collection.
type AuditRepository struct {
	db *mongo.Database
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.AuthEvent) error {
	doc := bson.M{
		"event_id":    event.ID,
		"type":        event.Type,
		"success":     event.Success,
		"at":          event.At.UTC(),
		"recorded_at": time.Now().UTC(),
	}
	if event.Email != "" {
		doc["email"] = event.Email
	}
	if event.UserID != "" {
		doc["user_id"] = event.UserID
	}
	if event.RequestID != "" {
		doc["request_id"] = event.RequestID
	}
	if event.Detail != "" {
		doc["detail"] = event.Detail
	}

	if _, err := r.db.Collection(auditCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert auth event: %w", err)
	}
	return nil
}
