package service

import (
	"context"

	"github.com/dom/job-board-website/internal/domain"
	"github.com/dom/job-board-website/internal/repository"
)

// Notifier pushes live events to connected clients. The websocket hub
// implements it; tests and headless setups can leave it nil.
type Notifier interface {
	NotifyNewMessage(userID string, msg *domain.Message)
}

type MessageService struct {
	userRepo    repository.UserRepository
	messageRepo repository.MessageRepository
	notifier    Notifier
}

func NewMessageService(userRepo repository.UserRepository, messageRepo repository.MessageRepository, notifier Notifier) *MessageService {
	return &MessageService{
		userRepo:    userRepo,
		messageRepo: messageRepo,
		notifier:    notifier,
	}
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) (*domain.Message, error) {
	if _, err := s.userRepo.GetByID(ctx, receiverID); err != nil {
		return nil, err
	}

	msg, err := s.messageRepo.Create(ctx, domain.NewMessage{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	})
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.NotifyNewMessage(receiverID, msg)
	}
	return msg, nil
}

func (s *MessageService) Conversations(ctx context.Context, userID string) ([]domain.Conversation, error) {
	return s.messageRepo.Conversations(ctx, userID)
}

func (s *MessageService) Conversation(ctx context.Context, userID, contactID string) ([]domain.Message, error) {
	return s.messageRepo.Conversation(ctx, userID, contactID)
}

func (s *MessageService) MarkRead(ctx context.Context, id string) error {
	return s.messageRepo.MarkRead(ctx, id)
}

func (s *MessageService) SearchUsers(ctx context.Context, currentUserID, term string) ([]domain.UserSummary, error) {
	return s.userRepo.Search(ctx, currentUserID, term)
}
