package services_test

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"
	"time"

	"pawnote_go_backend/internal/models"
	"pawnote_go_backend/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newChatService(store *MockChatStoreDB, provider *MockChatProvider, resolver *MockPetContextResolver) *services.PetChatService {
	return services.NewPetChatService(store, provider, resolver, 30*time.Second)
}

// pairedHistory builds n user/assistant pairs in ascending time order.
func pairedHistory(sessionID string, pairs int) []models.ChatMessage {
	var history []models.ChatMessage
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 1; i <= pairs; i++ {
		history = append(history, models.ChatMessage{
			SessionID: sessionID,
			Role:      models.RoleUser,
			Content:   fmt.Sprintf("question %d", i),
			CreatedAt: base.Add(time.Duration(2*i) * time.Minute),
		})
		history = append(history, models.ChatMessage{
			SessionID: sessionID,
			Role:      models.RoleAssistant,
			Content:   fmt.Sprintf("answer %d", i),
			CreatedAt: base.Add(time.Duration(2*i+1) * time.Minute),
		})
	}
	return history
}

func TestHandleChat(t *testing.T) {
	t.Run("Successful chat persists user and assistant turns", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s1", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Pawnote AI")
		})).Return(mockSession)
		mockSession.On("Send", mock.Anything, "Hello", (*services.ImageData)(nil)).Return("Hi there!", nil).Once()
		mockStore.On("SaveMessagePair",
			mock.MatchedBy(func(msg *models.ChatMessage) bool {
				return msg.Role == models.RoleUser && msg.Content == "Hello" &&
					msg.SessionID == "s1" && msg.Image == "" && msg.ID != ""
			}),
			mock.MatchedBy(func(msg *models.ChatMessage) bool {
				return msg.Role == models.RoleAssistant && msg.Content == "Hi there!" &&
					msg.SessionID == "s1" && msg.Image == ""
			}),
		).Return(nil).Once()

		reply, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Hello",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Hi there!", reply)
		mockStore.AssertExpectations(t)
		mockProvider.AssertExpectations(t)
		mockSession.AssertExpectations(t)
	})

	t.Run("Replays at most 10 recent turns, user role only, in order", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		history := pairedHistory("s1", 8)
		// A stored image must never be forwarded to the provider.
		history[6].Image = "data:image/png;base64,AAAA"

		var sent []string
		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s1", 20).Return(history, nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything, mock.AnythingOfType("string"), (*services.ImageData)(nil)).
			Run(func(args mock.Arguments) {
				sent = append(sent, args.String(1))
			}).
			Return("ok", nil)
		mockStore.On("SaveMessagePair", mock.Anything, mock.Anything).Return(nil)

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "new question",
		})

		assert.NoError(t, err)
		// The last 10 of 16 stored turns span pairs 4..8; only the user halves
		// are replayed, then the new turn follows.
		assert.Equal(t, []string{
			"question 4", "question 5", "question 6", "question 7", "question 8",
			"new question",
		}, sent)
	})

	t.Run("Pet context is appended to the system prompt", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "pet-1").Return("Buddy is a male dog (Labrador), born on 2020-05-01.")
		mockStore.On("GetRecentMessages", "s1", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.MatchedBy(func(prompt string) bool {
			return strings.Contains(prompt, "Current pet context: Buddy is a male dog (Labrador), born on 2020-05-01.")
		})).Return(mockSession)
		mockSession.On("Send", mock.Anything, "Is he eating enough?", (*services.ImageData)(nil)).Return("Sounds normal.", nil)
		mockStore.On("SaveMessagePair",
			mock.MatchedBy(func(msg *models.ChatMessage) bool { return msg.PetID == "pet-1" }),
			mock.MatchedBy(func(msg *models.ChatMessage) bool { return msg.PetID == "pet-1" }),
		).Return(nil)

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Is he eating enough?",
			PetID:     "pet-1",
		})

		assert.NoError(t, err)
		mockProvider.AssertExpectations(t)
	})

	t.Run("Image with empty message uses placeholder and default prompt", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		rawBytes := []byte("tiny-png-bytes")
		imageURI := "data:image/png;base64," + base64.StdEncoding.EncodeToString(rawBytes)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s2", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything,
			"What do you see in this image? Please provide any relevant pet care advice based on what you observe.",
			mock.MatchedBy(func(img *services.ImageData) bool {
				return img != nil && img.MIMEType == "image/png" && string(img.Data) == string(rawBytes)
			}),
		).Return("I see a cat.", nil).Once()
		mockStore.On("SaveMessagePair",
			mock.MatchedBy(func(msg *models.ChatMessage) bool {
				return msg.Role == models.RoleUser && msg.Content == "[Image]" && msg.Image == imageURI
			}),
			mock.MatchedBy(func(msg *models.ChatMessage) bool {
				return msg.Role == models.RoleAssistant && msg.Content == "I see a cat." && msg.Image == ""
			}),
		).Return(nil).Once()

		reply, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s2",
			Message:   "  ",
			Image:     imageURI,
		})

		assert.NoError(t, err)
		assert.Equal(t, "I see a cat.", reply)
		mockStore.AssertExpectations(t)
		mockSession.AssertExpectations(t)
	})

	t.Run("Empty message without image is forwarded and persisted as empty", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s3", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything, "", (*services.ImageData)(nil)).Return("How can I help?", nil).Once()
		mockStore.On("SaveMessagePair",
			mock.MatchedBy(func(msg *models.ChatMessage) bool {
				return msg.Role == models.RoleUser && msg.Content == "" && msg.Image == ""
			}),
			mock.Anything,
		).Return(nil).Once()

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s3",
			Message:   "",
		})

		assert.NoError(t, err)
		mockStore.AssertExpectations(t)
	})

	t.Run("Provider failure persists nothing", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s1", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything, "Hello", (*services.ImageData)(nil)).
			Return("", fmt.Errorf("upstream timeout"))

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Hello",
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "upstream timeout")
		mockStore.AssertNotCalled(t, "SaveMessagePair", mock.Anything, mock.Anything)
	})

	t.Run("Replay failure aborts before the new turn", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		history := pairedHistory("s1", 1)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s1", 20).Return(history, nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything, "question 1", (*services.ImageData)(nil)).
			Return("", fmt.Errorf("provider rejected replay"))

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Hello",
		})

		assert.Error(t, err)
		mockSession.AssertNumberOfCalls(t, "Send", 1)
		mockStore.AssertNotCalled(t, "SaveMessagePair", mock.Anything, mock.Anything)
	})

	t.Run("Missing credential fails fast", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(false)

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Hello",
		})

		assert.ErrorIs(t, err, services.ErrNotConfigured)
		mockProvider.AssertNotCalled(t, "StartSession", mock.Anything)
		mockStore.AssertNotCalled(t, "GetRecentMessages", mock.Anything, mock.Anything)
	})

	t.Run("Store failure after reply is reported distinctly", func(t *testing.T) {
		mockStore := new(MockChatStoreDB)
		mockProvider := new(MockChatProvider)
		mockResolver := new(MockPetContextResolver)
		mockSession := new(MockChatSession)
		service := newChatService(mockStore, mockProvider, mockResolver)

		mockProvider.On("Configured").Return(true)
		mockResolver.On("DescribePet", "").Return("")
		mockStore.On("GetRecentMessages", "s1", 20).Return([]models.ChatMessage(nil), nil)
		mockProvider.On("StartSession", mock.AnythingOfType("string")).Return(mockSession)
		mockSession.On("Send", mock.Anything, "Hello", (*services.ImageData)(nil)).Return("Hi there!", nil)
		mockStore.On("SaveMessagePair", mock.Anything, mock.Anything).Return(fmt.Errorf("db down"))

		_, err := service.HandleChat(context.Background(), services.ChatRequest{
			SessionID: "s1",
			Message:   "Hello",
		})

		assert.ErrorIs(t, err, services.ErrReplyNotSaved)
	})
}

func TestGetChatHistory(t *testing.T) {
	mockStore := new(MockChatStoreDB)
	service := newChatService(mockStore, new(MockChatProvider), new(MockPetContextResolver))

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	messages := []models.ChatMessage{
		{Role: models.RoleUser, Content: "Hello", Image: "data:image/png;base64,AAAA", PetID: "pet-1", CreatedAt: created},
		{Role: models.RoleAssistant, Content: "Hi there!", CreatedAt: created.Add(time.Millisecond)},
	}
	mockStore.On("GetMessages", "s1", 50).Return(messages, nil)

	history, err := service.GetChatHistory("s1", 0)

	assert.NoError(t, err)
	assert.Equal(t, []services.HistoryEntry{
		{Role: "user", Content: "Hello", CreatedAt: created},
		{Role: "assistant", Content: "Hi there!", CreatedAt: created.Add(time.Millisecond)},
	}, history)
	mockStore.AssertExpectations(t)
}

func TestClearChatHistory(t *testing.T) {
	mockStore := new(MockChatStoreDB)
	service := newChatService(mockStore, new(MockChatProvider), new(MockPetContextResolver))

	mockStore.On("DeleteMessages", "s1").Return(nil).Twice()

	// Clearing is idempotent: a second clear also succeeds.
	assert.NoError(t, service.ClearChatHistory("s1"))
	assert.NoError(t, service.ClearChatHistory("s1"))
	mockStore.AssertExpectations(t)
}
