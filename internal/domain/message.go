package domain

import "time"

// Message is immutable once created except for the IsRead flag.
type Message struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	IsRead     bool      `json:"isRead"`
	CreatedAt  time.Time `json:"createdAt"`
}

type NewMessage struct {
	SenderID   string
	ReceiverID string
	Content    string
}

// Conversation is the derived per-counterpart view of a user's messages:
// the most recent message exchanged with that counterpart and the number of
// messages the user has received from them but not read yet.
type Conversation struct {
	UserID      string  `json:"userId"`
	LastMessage Message `json:"lastMessage"`
	UnreadCount int     `json:"unreadCount"`
}
