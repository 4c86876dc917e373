package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
)

// GeminiProvider implements ChatProvider on top of the Google GenAI client.
// A nil client means no credential was configured; Configured reports that
// so callers can fail fast before touching the provider.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

func NewGeminiProvider(client *genai.Client, modelName string) *GeminiProvider {
	return &GeminiProvider{
		client:    client,
		modelName: modelName,
	}
}

func (p *GeminiProvider) Configured() bool {
	return p.client != nil
}

// StartSession builds a fresh chat session with the given system prompt.
// Conversational memory is reconstructed by the caller replaying history
// into it, not by reusing session objects across requests.
func (p *GeminiProvider) StartSession(systemPrompt string) ChatSession {
	model := p.client.GenerativeModel(p.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &geminiSession{session: model.StartChat()}
}

type geminiSession struct {
	session *genai.ChatSession
}

func (s *geminiSession) Send(ctx context.Context, text string, image *ImageData) (string, error) {
	parts := []genai.Part{genai.Text(text)}
	if image != nil {
		parts = append(parts, genai.Blob{MIMEType: image.MIMEType, Data: image.Data})
	}

	resp, err := s.session.SendMessage(ctx, parts...)
	if err != nil {
		return "", err
	}
	return textFromResponse(resp)
}

func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("model returned no candidates")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
