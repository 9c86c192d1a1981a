package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/pkg/utils"
)

type fakeChatRepo struct {
	insertFn     func(message *db_models.ChatMessage, ctx context.Context) error
	listRecentFn func(ctx context.Context, limit int) ([]db_models.ChatMessage, error)
	listSinceFn  func(ctx context.Context, since int64, limit int) ([]db_models.ChatMessage, error)
	setPinnedFn  func(ctx context.Context, id uuid.UUID, pinned bool) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (f *fakeChatRepo) InsertTx(message *db_models.ChatMessage, ctx context.Context) error {
	if f.insertFn == nil {
		return nil
	}
	return f.insertFn(message, ctx)
}

func (f *fakeChatRepo) ListRecent(ctx context.Context, limit int) ([]db_models.ChatMessage, error) {
	if f.listRecentFn == nil {
		return nil, nil
	}
	return f.listRecentFn(ctx, limit)
}

func (f *fakeChatRepo) ListSince(ctx context.Context, since int64, limit int) ([]db_models.ChatMessage, error) {
	if f.listSinceFn == nil {
		return nil, nil
	}
	return f.listSinceFn(ctx, since, limit)
}

func (f *fakeChatRepo) SetPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	if f.setPinnedFn == nil {
		return nil
	}
	return f.setPinnedFn(ctx, id, pinned)
}

func (f *fakeChatRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if f.deleteFn == nil {
		return nil
	}
	return f.deleteFn(ctx, id)
}

func TestPostMessage_TrimsAndStores(t *testing.T) {
	var stored *db_models.ChatMessage
	repo := &fakeChatRepo{
		insertFn: func(message *db_models.ChatMessage, ctx context.Context) error {
			stored = message
			return nil
		},
	}
	svc := NewChatService(repo, &fakeProfileRepo{})

	require.NoError(t, svc.PostMessage(context.Background(), uuid.New(), "  big session today  "))
	require.NotNil(t, stored)
	assert.Equal(t, "big session today", stored.Body)
}

func TestPostMessage_RejectsEmptyAndOversized(t *testing.T) {
	svc := NewChatService(&fakeChatRepo{}, &fakeProfileRepo{})

	assert.ErrorIs(t, svc.PostMessage(context.Background(), uuid.New(), "   "), utils.ErrInvalidInput)
	assert.ErrorIs(t, svc.PostMessage(context.Background(), uuid.New(), strings.Repeat("x", 2001)), utils.ErrInvalidInput)
}

func TestListMessages_EnrichesWithAuthor(t *testing.T) {
	authorID := uuid.New()
	repo := &fakeChatRepo{
		listRecentFn: func(ctx context.Context, limit int) ([]db_models.ChatMessage, error) {
			return []db_models.ChatMessage{
				{BaseModel: db_models.BaseModel{ID: uuid.New()}, AccountID: authorID, Body: "first"},
			}, nil
		},
	}
	profileRepo := &fakeProfileRepo{
		findByAccountFn: func(ctx context.Context, id uuid.UUID) (*db_models.Profile, error) {
			return &db_models.Profile{AccountID: id, FirstName: "Dom", LastName: "D"}, nil
		},
	}
	svc := NewChatService(repo, profileRepo)

	messages, err := svc.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Dom D", messages[0].AuthorName)
	assert.Equal(t, "first", messages[0].Body)
}

func TestListMessages_SinceUsesIncrementalQuery(t *testing.T) {
	var gotSince int64
	repo := &fakeChatRepo{
		listSinceFn: func(ctx context.Context, since int64, limit int) ([]db_models.ChatMessage, error) {
			gotSince = since
			return nil, nil
		},
	}
	svc := NewChatService(repo, &fakeProfileRepo{})

	_, err := svc.ListMessages(context.Background(), 1_700_000_000)
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000), gotSince)
}

func TestListMessages_MissingProfileStillListsMessage(t *testing.T) {
	repo := &fakeChatRepo{
		listRecentFn: func(ctx context.Context, limit int) ([]db_models.ChatMessage, error) {
			return []db_models.ChatMessage{
				{BaseModel: db_models.BaseModel{ID: uuid.New()}, AccountID: uuid.New(), Body: "hello"},
			}, nil
		},
	}
	svc := NewChatService(repo, &fakeProfileRepo{})

	messages, err := svc.ListMessages(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Empty(t, messages[0].AuthorName)
}
