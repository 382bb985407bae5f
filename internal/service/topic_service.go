package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/phrazzld/newsroom-api/internal/platform/logger"
	"github.com/phrazzld/newsroom-api/internal/store"
)

// TopicService lists topics.
type TopicService interface {
	ListTopics(ctx context.Context) ([]domain.Topic, error)
}

type topicServiceImpl struct {
	topics store.TopicStore
	logger *slog.Logger
}

// NewTopicService creates a TopicService backed by the given store.
func NewTopicService(topics store.TopicStore, logger *slog.Logger) (TopicService, error) {
	if topics == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "topic store cannot be nil", Err: ErrNilDependency}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &topicServiceImpl{
		topics: topics,
		logger: logger.With("component", "topic_service"),
	}, nil
}

func (s *topicServiceImpl) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	topics, err := s.topics.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list topics", "error", err)
		return nil, NewServiceError("list_topics", "failed to list topics", domain.MsgPathNotFound, err)
	}
	return topics, nil
}
