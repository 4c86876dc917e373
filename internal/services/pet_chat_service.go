package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"pawnote_go_backend/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const petAssistantPersona = `You are Pawnote AI, a friendly and supportive pet care assistant.
You help pet owners with:
- General pet care questions and tips
- Understanding vet instructions
- Daily care routines and best practices
- Answering "Is this normal?" type questions
- Providing age-appropriate care guidance

Important guidelines:
- Be warm, supportive, and conversational
- Never diagnose medical conditions - always recommend consulting a vet for health concerns
- Provide practical, actionable advice
- Consider the pet's species, breed, and age when giving advice
- Keep responses concise but helpful`

const defaultImagePrompt = "What do you see in this image? Please provide any relevant pet care advice based on what you observe."

const imagePlaceholder = "[Image]"

const (
	// historyFetchLimit bounds the storage read; replayLimit bounds how many
	// of those turns are resent to the model.
	historyFetchLimit = 20
	replayLimit       = 10

	defaultHistoryLimit = 50
)

var (
	ErrNotConfigured = errors.New("AI service not configured")
	ErrReplyNotSaved = errors.New("reply generated but not saved")
)

type ChatRequest struct {
	SessionID string
	Message   string
	Image     string // data-URI-prefixed base64
	PetID     string
}

type HistoryEntry struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PetChatService orchestrates one chat turn: it composes the system prompt,
// replays bounded history into a fresh provider session, submits the new
// turn and persists both sides of the exchange.
type PetChatService struct {
	store     ChatStoreDB
	provider  ChatProvider
	petCtx    PetContextResolver
	aiTimeout time.Duration
}

func NewPetChatService(
	store ChatStoreDB,
	provider ChatProvider,
	petCtx PetContextResolver,
	aiTimeout time.Duration,
) *PetChatService {
	return &PetChatService{
		store:     store,
		provider:  provider,
		petCtx:    petCtx,
		aiTimeout: aiTimeout,
	}
}

// HandleChat runs one exchange. On provider failure nothing is persisted, so
// the caller can safely retry.
func (s *PetChatService) HandleChat(ctx context.Context, req ChatRequest) (string, error) {
	if !s.provider.Configured() {
		return "", ErrNotConfigured
	}

	systemPrompt := petAssistantPersona
	if petContext := s.petCtx.DescribePet(req.PetID); petContext != "" {
		systemPrompt += "\n\nCurrent pet context: " + petContext
	}

	history, err := s.store.GetRecentMessages(req.SessionID, historyFetchLimit)
	if err != nil {
		return "", fmt.Errorf("failed to load chat history: %w", err)
	}

	session := s.provider.StartSession(systemPrompt)

	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()

	// Rebuild conversational memory from the durable log. Only the text of
	// user turns is resent; stored images are request-scoped and never
	// replayed.
	for _, msg := range replayWindow(history) {
		if _, err := session.Send(ctx, msg.Content, nil); err != nil {
			return "", fmt.Errorf("AI service error: %w", err)
		}
	}

	var reply string
	if req.Image != "" {
		image, err := decodeImagePayload(req.Image)
		if err != nil {
			return "", fmt.Errorf("AI service error: %w", err)
		}
		text := strings.TrimSpace(req.Message)
		if text == "" {
			text = defaultImagePrompt
		}
		reply, err = session.Send(ctx, text, image)
		if err != nil {
			return "", fmt.Errorf("AI service error: %w", err)
		}
	} else {
		reply, err = session.Send(ctx, req.Message, nil)
		if err != nil {
			return "", fmt.Errorf("AI service error: %w", err)
		}
	}

	content := req.Message
	if strings.TrimSpace(content) == "" && req.Image != "" {
		content = imagePlaceholder
	}
	userMsg := &models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Role:      models.RoleUser,
		Content:   content,
		Image:     req.Image,
		PetID:     req.PetID,
	}
	assistantMsg := &models.ChatMessage{
		ID:        uuid.New().String(),
		SessionID: req.SessionID,
		Role:      models.RoleAssistant,
		Content:   reply,
		PetID:     req.PetID,
	}
	if err := s.store.SaveMessagePair(userMsg, assistantMsg); err != nil {
		log.Error().Err(err).Str("sessionID", req.SessionID).Msg("Reply generated but not saved")
		return "", fmt.Errorf("%w: %v", ErrReplyNotSaved, err)
	}

	return reply, nil
}

// replayWindow selects which stored turns are resent to a fresh provider
// session: the most recent replayLimit turns, user role only, kept in
// ascending time order.
func replayWindow(history []models.ChatMessage) []models.ChatMessage {
	if len(history) > replayLimit {
		history = history[len(history)-replayLimit:]
	}
	var window []models.ChatMessage
	for _, msg := range history {
		if msg.Role == models.RoleUser {
			window = append(window, msg)
		}
	}
	return window
}

// decodeImagePayload strips an optional data-URI prefix and decodes the
// base64 body. The MIME type is taken from the prefix when present.
func decodeImagePayload(image string) (*ImageData, error) {
	mimeType := "image/jpeg"
	payload := image
	if i := strings.Index(image, ","); i >= 0 {
		payload = image[i+1:]
		header := image[:i]
		if strings.HasPrefix(header, "data:") {
			if j := strings.IndexAny(header, ";,"); j > 5 {
				mimeType = header[5:j]
			}
		}
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid image payload: %w", err)
	}
	return &ImageData{MIMEType: mimeType, Data: data}, nil
}

// GetChatHistory returns up to limit turns in ascending created_at order,
// projected to role, content and created_at.
func (s *PetChatService) GetChatHistory(sessionID string, limit int) ([]HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	messages, err := s.store.GetMessages(sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	entries := make([]HistoryEntry, len(messages))
	for i, msg := range messages {
		entries[i] = HistoryEntry{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		}
	}
	return entries, nil
}

// ClearChatHistory removes all turns for a session. Clearing a session that
// has no turns succeeds.
func (s *PetChatService) ClearChatHistory(sessionID string) error {
	if err := s.store.DeleteMessages(sessionID); err != nil {
		return fmt.Errorf("failed to clear chat history: %w", err)
	}
	return nil
}
