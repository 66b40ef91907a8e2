package database

import (
	"errors"
	"fmt"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The participant match is order-independent: whichever side started the
// conversation, the same row is found.
func findConversation(tx *gorm.DB, a, b uuid.UUID) (*types.Conversation, error) {
	var conv types.Conversation
	err := tx.Where(
		"(user_one_id = ? AND user_two_id = ?) OR (user_one_id = ? AND user_two_id = ?)",
		a, b, b, a,
	).First(&conv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrConvNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch conversation: %w", err)
	}

	return &conv, nil
}

// SendMessage resolves or lazily creates the two-party conversation and
// appends the message to it, both inside one transaction.
func SendMessage(senderID, receiverID uuid.UUID, text string) (*types.Message, error) {
	var message types.Message

	err := state.Pool.Transaction(func(tx *gorm.DB) error {
		conv, err := findConversation(tx, senderID, receiverID)
		if errors.Is(err, ErrConvNotFound) {
			conv = &types.Conversation{
				UserOneID: senderID,
				UserTwoID: receiverID,
			}
			if err := tx.Create(conv).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		message = types.Message{
			ConversationID: conv.ID,
			SenderID:       senderID,
			ReceiverID:     receiverID,
			Message:        text,
		}

		return tx.Create(&message).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return &message, nil
}

// GetMessages returns the ordered message list of an existing conversation, or
// ErrConvNotFound if the pair has never chatted.
func GetMessages(userID, peerID uuid.UUID) ([]types.Message, error) {
	conv, err := findConversation(state.Pool, userID, peerID)
	if err != nil {
		return nil, err
	}

	var messages []types.Message
	err = state.Pool.
		Where("conversation_id = ?", conv.ID).
		Order("created_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	return messages, nil
}

func GetMessage(id uuid.UUID) (*types.Message, error) {
	var message types.Message
	err := state.Pool.First(&message, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	return &message, nil
}

func SaveMessage(message *types.Message) error {
	if err := state.Pool.Save(message).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

func DeleteMessage(id uuid.UUID) error {
	if err := state.Pool.Delete(&types.Message{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
