package utils

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
)

type ChatTurn struct {
	Role    string // "user" | "assistant"
	Content string
}

type AssistantClientInterface interface {
	Complete(ctx context.Context, system string, history []ChatTurn, user string) (string, error)
}

type EmbeddingClientInterface interface {
	Embed(ctx context.Context, text string) (pgvector.Vector, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (o *OpenAIClient) Complete(ctx context.Context, system string, history []ChatTurn, user string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
	}
	for _, turn := range history {
		role := openai.ChatMessageRoleUser
		if turn.Role == "assistant" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Content})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: user,
	})

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    o.model,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAIClient) Embed(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := o.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3, // "text-embedding-3-small", 1536 dims
	})
	if err != nil {
		return pgvector.Vector{}, err
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, errors.New("openai: empty embedding response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}
