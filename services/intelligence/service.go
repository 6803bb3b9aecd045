// File: services/intelligence/service.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"konsulta/models"
	"konsulta/utils"

	"go.uber.org/zap"
)

// systemInstruction frames every prompt sent to the model. The persona
// answers in Bahasa Indonesia and never reveals it is a language model.
const systemInstruction = `Anda adalah Dosen Pembimbing Akademik (PA) AI yang ramah, membantu, dan berpengetahuan luas dengan nama 'Prof. Gemini'.
Anda bertugas untuk menjawab pertanyaan mahasiswa seputar peraturan akademik, pemilihan mata kuliah, strategi belajar, dan kehidupan kampus di universitas fiktif di Indonesia.
Selalu panggil pengguna dengan sebutan 'mahasiswa' atau 'Anda'.
Berikan jawaban yang jelas, terstruktur, dan suportif dalam Bahasa Indonesia.
Jangan pernah menyebutkan bahwa Anda adalah model bahasa atau AI.`

// fallbackReply is returned to the user when the model call fails.
const fallbackReply = "Maaf, sepertinya sedang ada gangguan pada sistem. Silakan coba lagi nanti."

// ProviderError wraps a failure from the generative model backend so
// handlers can map it separately from validation failures.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string { return fmt.Sprintf("ai provider: %v", e.Err) }
func (e *ProviderError) Unwrap() error { return e.Err }

// contentGenerator is the slice of the model client Chat depends on.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type DefaultAIService struct {
	client   contentGenerator
	ctxStore ContextStore
}

func NewDefaultAIService(apiKey string, ctxStore ContextStore) *DefaultAIService {
	return &DefaultAIService{
		client:   NewGeminiClient(apiKey),
		ctxStore: ctxStore,
	}
}

func (s *DefaultAIService) Chat(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", fmt.Errorf("empty message")
	}

	aiCtx, err := s.ctxStore.Get(ctx, userID)
	if err != nil {
		utils.GetLogger().Warn("failed to load chat context, starting fresh",
			zap.String("userID", userID), zap.Error(err))
		aiCtx = &models.AIContext{}
	}

	prompt := buildPrompt(aiCtx.History, message)
	reply, err := s.client.GenerateContent(ctx, prompt)
	if err != nil {
		utils.GetLogger().Error("gemini call failed",
			zap.String("userID", userID), zap.Error(err))
		return fallbackReply, &ProviderError{Err: err}
	}

	aiCtx.History = append(aiCtx.History,
		models.ChatMessage{Sender: "user", Text: message},
		models.ChatMessage{Sender: "ai", Text: reply},
	)
	if err := s.ctxStore.Set(ctx, userID, aiCtx); err != nil {
		utils.GetLogger().Warn("failed to persist chat context",
			zap.String("userID", userID), zap.Error(err))
	}

	return reply, nil
}

func (s *DefaultAIService) Reset(ctx context.Context, userID string) error {
	return s.ctxStore.Clear(ctx, userID)
}

// buildPrompt replays the stored history under the persona instruction
// so each stateless GenerateContent call still reads as a conversation.
func buildPrompt(history []models.ChatMessage, message string) string {
	var sb strings.Builder
	sb.WriteString(systemInstruction)
	sb.WriteString("\n\n")
	for _, msg := range history {
		switch msg.Sender {
		case "user":
			sb.WriteString("Mahasiswa: ")
		default:
			sb.WriteString("Prof. Gemini: ")
		}
		sb.WriteString(msg.Text)
		sb.WriteString("\n")
	}
	sb.WriteString("Mahasiswa: ")
	sb.WriteString(message)
	sb.WriteString("\nProf. Gemini:")
	return sb.String()
}
