package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

const chatPageSize = 100

type ChatServiceInterface interface {
	PostMessage(ctx context.Context, accountID uuid.UUID, body string) error
	// ListMessages is a full re-query; clients poll it after any change
	// signal, so repeated or reordered calls converge on the same state.
	ListMessages(ctx context.Context, since int64) ([]response_models.ChatMessageResponse, error)
	PinMessage(ctx context.Context, messageID uuid.UUID, pinned bool) error
	DeleteMessage(ctx context.Context, messageID uuid.UUID) error
}

type ChatService struct {
	chatRepo    repositories.ChatRepository
	profileRepo repositories.ProfileRepository
}

func NewChatService(chatRepo repositories.ChatRepository, profileRepo repositories.ProfileRepository) ChatServiceInterface {
	return &ChatService{
		chatRepo:    chatRepo,
		profileRepo: profileRepo,
	}
}

func (c *ChatService) PostMessage(ctx context.Context, accountID uuid.UUID, body string) error {
	body = strings.TrimSpace(body)
	if body == "" || len(body) > 2000 {
		return utils.ErrInvalidInput
	}

	message := &db_models.ChatMessage{
		AccountID: accountID,
		Body:      body,
	}
	if err := c.chatRepo.InsertTx(message, ctx); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ChatService) ListMessages(ctx context.Context, since int64) ([]response_models.ChatMessageResponse, error) {
	var messages []db_models.ChatMessage
	var err error
	if since > 0 {
		messages, err = c.chatRepo.ListSince(ctx, since, chatPageSize)
	} else {
		messages, err = c.chatRepo.ListRecent(ctx, chatPageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ChatMessageResponse, 0, len(messages))
	for _, m := range messages {
		resp := response_models.ChatMessageResponse{
			ID:        m.ID.String(),
			AccountID: m.AccountID.String(),
			Body:      m.Body,
			Pinned:    m.Pinned,
			PostedAt:  m.CreatedAt,
		}
		if profile, err := c.profileRepo.FindByAccountId(ctx, m.AccountID); err == nil && profile != nil {
			resp.AuthorName = strings.TrimSpace(profile.FirstName + " " + profile.LastName)
			resp.AuthorAvatar = profile.AvatarURL
		}
		out = append(out, resp)
	}
	return out, nil
}

func (c *ChatService) PinMessage(ctx context.Context, messageID uuid.UUID, pinned bool) error {
	if err := c.chatRepo.SetPinned(ctx, messageID, pinned); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (c *ChatService) DeleteMessage(ctx context.Context, messageID uuid.UUID) error {
	if err := c.chatRepo.Delete(ctx, messageID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
