package models

// Notification is an at-most-once informational message for one recipient.
// It is created best-effort after the state change it reports; a lost
// notification is never correctness-critical.
type Notification struct {
	ID          string `bson:"id" json:"id"`
	RecipientID string `bson:"recipientId" json:"recipientId"`
	Message     string `bson:"message" json:"message"`
	Timestamp   int64  `bson:"timestamp" json:"timestamp"` // unix millis
	IsRead      bool   `bson:"isRead" json:"isRead"`
}
