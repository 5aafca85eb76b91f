package stylist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/nomad-essentials/storefront/models"
)

// Responder forwards a transcript to a completion backend and returns one
// reply string. The session maps any error to a fixed fallback, so
// implementations are free to fail loudly.
type Responder interface {
	Reply(ctx context.Context, system string, transcript []models.ChatMessage) (string, error)
}

// GeminiResponder answers through the Gemini API.
type GeminiResponder struct {
	APIKey string
	Model  string
}

const defaultModel = "gemini-3-flash-preview"

// Reply sends the full transcript, with the last user turn as the message
// and everything before it as chat history.
func (g *GeminiResponder) Reply(ctx context.Context, system string, transcript []models.ChatMessage) (string, error) {
	if g.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}
	if len(transcript) == 0 || transcript[len(transcript)-1].Role != models.RoleUser {
		return "", fmt.Errorf("transcript must end with a user turn")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.APIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %v", err)
	}
	defer client.Close()

	modelName := g.Model
	if modelName == "" {
		modelName = defaultModel
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	model.SetTemperature(0.7)
	model.SetTopP(0.9)

	chat := model.StartChat()
	for _, turn := range transcript[:len(transcript)-1] {
		chat.History = append(chat.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := chat.SendMessage(ctx, genai.Text(transcript[len(transcript)-1].Text))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %v", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var reply strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			reply.WriteString(string(text))
		}
	}
	return reply.String(), nil
}
