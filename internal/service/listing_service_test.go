package service

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/newsroom-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicService_ListTopics(t *testing.T) {
	ctx := context.Background()
	topics := new(MockTopicStore)
	svc, err := NewTopicService(topics, nil)
	require.NoError(t, err)

	want := []domain.Topic{{Slug: "cats", Description: "Not dogs"}}
	topics.On("List", ctx).Return(want, nil).Once()
	topics.On("List", ctx).Return(nil, errors.New("connection refused")).Once()

	got, err := svc.ListTopics(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.ListTopics(ctx)
	var se *ServiceError
	assert.ErrorAs(t, err, &se)
	topics.AssertExpectations(t)
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()
	users := new(MockUserStore)
	svc, err := NewUserService(users, nil)
	require.NoError(t, err)

	want := []domain.User{{Username: "lurker", Name: "do_nothing"}}
	users.On("List", ctx).Return(want, nil)

	got, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	users.AssertExpectations(t)
}

func TestNewListingServices_NilStore(t *testing.T) {
	_, err := NewTopicService(nil, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
	_, err = NewUserService(nil, nil)
	assert.ErrorIs(t, err, ErrNilDependency)
}
