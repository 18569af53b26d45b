package service

import (
	"context"
	"strconv"
	"time"

	"studylink/internal/cache"
	"studylink/internal/domain"
	"studylink/internal/dto"
	"studylink/internal/logger"
	"studylink/internal/util"
	"studylink/internal/validation"

	"go.uber.org/zap"
)

// ChatService defines the interface for teacher-student messaging.
type ChatService interface {
	// GetThread returns the conversation with otherUserID oldest first and
	// marks the caller's incoming messages in it as read.
	GetThread(ctx context.Context, userID, otherUserID string) (*dto.ThreadResponse, error)
	SendMessage(ctx context.Context, senderID string, req *dto.ChatRequest) (*dto.SendMessageResponse, error)
	UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error)
}

type chatServiceImpl struct {
	chatRepo  domain.ChatRepository
	cache     domain.Cache
	validator *validation.Validator
	countTTL  time.Duration
}

// NewChatService creates a new instance of ChatService. countTTL bounds
// how stale a cached unread count may get.
func NewChatService(chatRepo domain.ChatRepository, cacheClient domain.Cache, validator *validation.Validator, countTTL time.Duration) ChatService {
	return &chatServiceImpl{
		chatRepo:  chatRepo,
		cache:     cacheClient,
		validator: validator,
		countTTL:  countTTL,
	}
}

func (s *chatServiceImpl) GetThread(ctx context.Context, userID, otherUserID string) (*dto.ThreadResponse, error) {
	messages, err := s.chatRepo.GetThread(ctx, userID, otherUserID)
	if err != nil {
		return nil, err
	}

	// Reading a thread flips its incoming messages to read.
	if err := s.chatRepo.MarkThreadRead(ctx, userID, otherUserID); err != nil {
		return nil, err
	}
	s.invalidateUnreadCount(ctx, userID)

	views := make([]dto.ChatMessageView, 0, len(messages))
	for i := range messages {
		views = append(views, dto.NewChatMessageView(&messages[i]))
	}
	return &dto.ThreadResponse{Messages: views}, nil
}

func (s *chatServiceImpl) SendMessage(ctx context.Context, senderID string, req *dto.ChatRequest) (*dto.SendMessageResponse, error) {
	if errs := s.validator.ValidateSendChatRequest(req.ReceiverID, req.Message); len(errs) > 0 {
		return nil, errs
	}

	msg := &domain.ChatMessage{
		ID:         util.NewULID(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Message:    req.Message,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.chatRepo.InsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	s.invalidateUnreadCount(ctx, req.ReceiverID)

	return &dto.SendMessageResponse{Success: true, MessageID: msg.ID}, nil
}

func (s *chatServiceImpl) UnreadCount(ctx context.Context, userID string) (*dto.UnreadCountResponse, error) {
	key := cache.UnreadCountKey(userID)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if count, convErr := strconv.Atoi(cached); convErr == nil {
			return &dto.UnreadCountResponse{UnreadCount: count}, nil
		}
	} else if err != domain.ErrCacheMiss {
		logger.Get().Warn("unread count cache read failed", zap.Error(err), zap.String("key", key))
	}

	count, err := s.chatRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, strconv.Itoa(count), s.countTTL); err != nil {
		logger.Get().Warn("unread count cache write failed", zap.Error(err), zap.String("key", key))
	}

	return &dto.UnreadCountResponse{UnreadCount: count}, nil
}

// invalidateUnreadCount drops the cached counter; the next read rebuilds
// it from the store. Cache failures never fail the request.
func (s *chatServiceImpl) invalidateUnreadCount(ctx context.Context, userID string) {
	key := cache.UnreadCountKey(userID)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Warn("unread count cache invalidation failed", zap.Error(err), zap.String("key", key))
	}
}
