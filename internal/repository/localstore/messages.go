package localstore

import (
	"context"
	"sort"
	"strings"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/google/uuid"
)

type messageRepository struct {
	s *Store
}

func NewMessageRepository(s *Store) *messageRepository {
	return &messageRepository{s: s}
}

func (r *messageRepository) Create(ctx context.Context, input domain.NewMessage) (*domain.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, domain.ErrEmptyMessageContent
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msg := domain.Message{
		ID:         uuid.NewString(),
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		IsRead:     false,
		CreatedAt:  r.s.now(),
	}

	r.s.db.Messages = append(r.s.db.Messages, msg)
	if err := r.s.save(); err != nil {
		return nil, err
	}
	out := msg
	return &out, nil
}

// Conversation returns every message exchanged between the two users in
// either direction, oldest first.
func (r *messageRepository) Conversation(ctx context.Context, userID1, userID2 string) ([]domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	results := []domain.Message{}
	for i := range r.s.db.Messages {
		m := &r.s.db.Messages[i]
		if (m.SenderID == userID1 && m.ReceiverID == userID2) ||
			(m.SenderID == userID2 && m.ReceiverID == userID1) {
			results = append(results, *m)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.Before(results[j].CreatedAt)
	})
	return results, nil
}

// Conversations builds one summary per counterpart in a single pass: the
// most recent message wins as lastMessage, and every unread message received
// by the user increments unreadCount. Summaries come back sorted by last
// message time, newest first.
func (r *messageRepository) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	byCounterpart := make(map[string]*domain.Conversation)
	for i := range r.s.db.Messages {
		m := &r.s.db.Messages[i]
		var other string
		switch userID {
		case m.SenderID:
			other = m.ReceiverID
		case m.ReceiverID:
			other = m.SenderID
		default:
			continue
		}

		conv, ok := byCounterpart[other]
		if !ok {
			conv = &domain.Conversation{UserID: other, LastMessage: *m}
			byCounterpart[other] = conv
		} else if m.CreatedAt.After(conv.LastMessage.CreatedAt) {
			conv.LastMessage = *m
		}
		if m.ReceiverID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}

	results := make([]domain.Conversation, 0, len(byCounterpart))
	for _, conv := range byCounterpart {
		results = append(results, *conv)
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].LastMessage.CreatedAt.After(results[j].LastMessage.CreatedAt)
	})
	return results, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.db.Messages {
		m := &r.s.db.Messages[i]
		if m.ID != id {
			continue
		}
		if m.IsRead {
			return nil
		}
		m.IsRead = true
		return r.s.save()
	}
	return domain.ErrMessageNotFound
}
