package services_test

import (
	"context"

	"pawnote_go_backend/internal/models"
	"pawnote_go_backend/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockChatStoreDB struct {
	mock.Mock
}

func (m *MockChatStoreDB) SaveMessagePair(userMsg, assistantMsg *models.ChatMessage) error {
	args := m.Called(userMsg, assistantMsg)
	return args.Error(0)
}

func (m *MockChatStoreDB) GetRecentMessages(sessionID string, limit int) ([]models.ChatMessage, error) {
	args := m.Called(sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatStoreDB) GetMessages(sessionID string, limit int) ([]models.ChatMessage, error) {
	args := m.Called(sessionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatMessage), args.Error(1)
}

func (m *MockChatStoreDB) DeleteMessages(sessionID string) error {
	args := m.Called(sessionID)
	return args.Error(0)
}

type MockChatProvider struct {
	mock.Mock
}

func (m *MockChatProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockChatProvider) StartSession(systemPrompt string) services.ChatSession {
	args := m.Called(systemPrompt)
	return args.Get(0).(services.ChatSession)
}

type MockChatSession struct {
	mock.Mock
}

func (m *MockChatSession) Send(ctx context.Context, text string, image *services.ImageData) (string, error) {
	args := m.Called(ctx, text, image)
	return args.String(0), args.Error(1)
}

type MockPetContextResolver struct {
	mock.Mock
}

func (m *MockPetContextResolver) DescribePet(petID string) string {
	args := m.Called(petID)
	return args.String(0)
}

type MockPetServiceDB struct {
	mock.Mock
}

func (m *MockPetServiceDB) CreatePet(pet *models.Pet) error {
	args := m.Called(pet)
	return args.Error(0)
}

func (m *MockPetServiceDB) GetPets(name string) ([]models.Pet, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pet), args.Error(1)
}

func (m *MockPetServiceDB) GetPetByID(id string) (*models.Pet, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetServiceDB) UpdatePet(id string, update services.PetUpdate) (*models.Pet, error) {
	args := m.Called(id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}

func (m *MockPetServiceDB) DeletePet(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockPetServiceDB) FindPetByNameAndBirthDate(name, birthDate string) (*models.Pet, error) {
	args := m.Called(name, birthDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pet), args.Error(1)
}
