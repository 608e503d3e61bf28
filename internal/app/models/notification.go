package models

import (
	"time"
)

// Notification is a fire-and-forget audit record of a dispatched message.
// The core never reads these back.
type Notification struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	RecipientUserID int64     `bson:"recipientUserId" json:"recipient_user_id"`
	Title           string    `bson:"title" json:"title"`
	Message         string    `bson:"message" json:"message"`
	CreatedAt       time.Time `bson:"createdAt" json:"created_at"`
}
