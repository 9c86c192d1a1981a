package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"redeemedstrength/internal/models/db_models"
	"redeemedstrength/internal/models/response_models"
	"redeemedstrength/internal/repositories"
	"redeemedstrength/pkg/utils"
)

const assistantHistoryLimit = 20

const assistantSystemPrompt = `You are the front-desk coach for Redeemed Strength, a faith-driven strength and transformation program with a correctional-facility theme. You answer questions about the three plans (membership, transformation, coaching), training, nutrition, and day-to-day use of the program. Be direct, encouraging, and brief. If a question is about billing disputes or medical conditions, tell the member to contact the coaching team directly. Use the provided program notes when they are relevant; do not invent plan details that are not in them.`

type AssistantServiceInterface interface {
	Ask(ctx context.Context, accountID uuid.UUID, question string) (*response_models.AssistantReply, error)
	History(ctx context.Context, accountID uuid.UUID) ([]response_models.AssistantMessageResponse, error)
	// IndexDoc embeds a coaching document so retrieval can find it.
	IndexDoc(ctx context.Context, docID, title, content string, tags []string) error
}

type AssistantService struct {
	assistantRepo repositories.AssistantRepository
	docRepo       repositories.ICoachingDocRepository
	embedder      utils.EmbeddingClientInterface
	primary       utils.AssistantClientInterface
	fallback      utils.AssistantClientInterface
}

func NewAssistantService(
	assistantRepo repositories.AssistantRepository,
	docRepo repositories.ICoachingDocRepository,
	embedder utils.EmbeddingClientInterface,
	primary utils.AssistantClientInterface,
	fallback utils.AssistantClientInterface,
) AssistantServiceInterface {
	return &AssistantService{
		assistantRepo: assistantRepo,
		docRepo:       docRepo,
		embedder:      embedder,
		primary:       primary,
		fallback:      fallback,
	}
}

func (a *AssistantService) Ask(ctx context.Context, accountID uuid.UUID, question string) (*response_models.AssistantReply, error) {
	question = strings.TrimSpace(question)
	if question == "" || len(question) > 4000 {
		return nil, utils.ErrInvalidInput
	}

	history, err := a.assistantRepo.ListByAccount(ctx, accountID, assistantHistoryLimit)
	if err != nil {
		log.Printf("assistant: history fetch failed for %s: %v", accountID, err)
		history = nil
	}

	system := assistantSystemPrompt
	if docs := a.retrieveDocs(ctx, question); docs != "" {
		system = system + "\n\nProgram notes:\n" + docs
	}

	turns := make([]utils.ChatTurn, 0, len(history))
	for _, m := range history {
		turns = append(turns, utils.ChatTurn{Role: string(m.Role), Content: m.Content})
	}

	answer, err := a.primary.Complete(ctx, system, turns, question)
	if err != nil {
		log.Printf("assistant: primary completion failed: %v", err)
		if a.fallback == nil {
			return nil, utils.ErrAssistantUnavailable
		}
		answer, err = a.fallback.Complete(ctx, system, turns, question)
		if err != nil {
			log.Printf("assistant: fallback completion failed: %v", err)
			return nil, utils.ErrAssistantUnavailable
		}
	}

	userMsg := &db_models.AssistantMessage{AccountID: accountID, Role: db_models.AssistantRoleUser, Content: question}
	if err := a.assistantRepo.InsertTx(userMsg, ctx); err != nil {
		log.Printf("assistant: persisting question failed: %v", err)
	}
	replyMsg := &db_models.AssistantMessage{AccountID: accountID, Role: db_models.AssistantRoleAssistant, Content: answer}
	if err := a.assistantRepo.InsertTx(replyMsg, ctx); err != nil {
		log.Printf("assistant: persisting reply failed: %v", err)
	}

	return &response_models.AssistantReply{Answer: answer}, nil
}

// retrieveDocs is best-effort: a failed embedding just means an unaugmented
// prompt.
func (a *AssistantService) retrieveDocs(ctx context.Context, question string) string {
	vector, err := a.embedder.Embed(ctx, question)
	if err != nil {
		log.Printf("assistant: embedding failed: %v", err)
		return ""
	}
	docs, err := a.docRepo.GetDocsByVector(vector, 4)
	if err != nil {
		log.Printf("assistant: doc retrieval failed: %v", err)
		return ""
	}

	var sb strings.Builder
	for _, doc := range docs {
		sb.WriteString(fmt.Sprintf("- %s: %s\n", doc.Title, doc.Content))
	}
	return sb.String()
}

func (a *AssistantService) History(ctx context.Context, accountID uuid.UUID) ([]response_models.AssistantMessageResponse, error) {
	messages, err := a.assistantRepo.ListByAccount(ctx, accountID, assistantHistoryLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	out := make([]response_models.AssistantMessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, response_models.AssistantMessageResponse{
			Role:     string(m.Role),
			Content:  m.Content,
			PostedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (a *AssistantService) IndexDoc(ctx context.Context, docID, title, content string, tags []string) error {
	if docID == "" || content == "" {
		return utils.ErrInvalidInput
	}
	vector, err := a.embedder.Embed(ctx, title+"\n"+content)
	if err != nil {
		return err
	}
	return a.docRepo.CreateDoc(db_models.CoachingDoc{
		DocID:     docID,
		Title:     title,
		Content:   content,
		Tags:      tags,
		Embedding: vector,
	})
}
