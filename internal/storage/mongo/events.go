package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fxlibrary/fxlibrary/internal/models"
)

// eventDoc — документ коллекции событий.
// UserID хранится строкой; пустая строка — анонимное событие.
type eventDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Type      string             `bson:"type"`
	UserID    string             `bson:"user_id,omitempty"`
	Payload   map[string]any     `bson:"payload,omitempty"`
	CreatedAt time.Time          `bson:"created_at"`
	ExpiresAt time.Time          `bson:"expires_at"`
}

// SaveEvent сохраняет событие и возвращает его с присвоенным ID.
func (m *EventStorage) SaveEvent(ctx context.Context, e models.Event) (*models.Event, error) {
	const op = "storage/mongo/events/SaveEvent"

	doc := eventDoc{
		Type:      string(e.Type),
		Payload:   e.Payload,
		CreatedAt: e.CreatedAt.UTC(),
		ExpiresAt: e.ExpiresAt.UTC(),
	}

	if e.UserID != uuid.Nil {
		doc.UserID = e.UserID.String()
	}

	res, err := m.events.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected inserted id type %T", op, res.InsertedID)
	}

	e.ID = oid.Hex()

	return &e, nil
}
