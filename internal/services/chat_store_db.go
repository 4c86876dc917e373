package services

import (
	"time"

	"pawnote_go_backend/internal/models"

	"gorm.io/gorm"
)

// DefaultChatStore implements ChatStoreDB
type DefaultChatStore struct {
	db *gorm.DB
}

// NewChatStoreDB creates a new DefaultChatStore
func NewChatStoreDB(db *gorm.DB) ChatStoreDB {
	return &DefaultChatStore{db: db}
}

// SaveMessagePair writes the user turn and the assistant turn of one exchange
// in a single transaction, so a failed write leaves no orphaned user turn.
// The assistant turn is stamped after the user turn to keep replay order stable.
func (s *DefaultChatStore) SaveMessagePair(userMsg, assistantMsg *models.ChatMessage) error {
	now := time.Now().UTC()
	userMsg.CreatedAt = now
	assistantMsg.CreatedAt = now.Add(time.Millisecond)

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userMsg).Error; err != nil {
			return err
		}
		return tx.Create(assistantMsg).Error
	})
}

// GetRecentMessages returns at most limit of the newest turns for a session,
// in ascending created_at order.
func (s *DefaultChatStore) GetRecentMessages(sessionID string, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	result := s.db.Where("session_id = ?", sessionID).
		Order("created_at desc").
		Limit(limit).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	// The query selects the newest rows; flip back to replay order.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetMessages returns the oldest turns for a session in ascending created_at
// order, up to limit.
func (s *DefaultChatStore) GetMessages(sessionID string, limit int) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	result := s.db.Where("session_id = ?", sessionID).
		Order("created_at asc").
		Limit(limit).
		Find(&messages)
	if result.Error != nil {
		return nil, result.Error
	}
	return messages, nil
}

// DeleteMessages removes all turns for a session. Deleting an unknown session
// is not an error.
func (s *DefaultChatStore) DeleteMessages(sessionID string) error {
	return s.db.Where("session_id = ?", sessionID).Delete(&models.ChatMessage{}).Error
}
