package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreateComment(userID, postID uuid.UUID, text string) (*types.Comment, error) {
	now := time.Now()
	comment := types.Comment{
		Comment:         text,
		CommentedByID:   userID,
		CommentedPostID: postID,
		CommentDate:     now,
		DateUpdated:     now,
	}

	if err := state.Pool.Create(&comment).Error; err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return &comment, nil
}

func GetComment(id uuid.UUID) (*types.Comment, error) {
	var comment types.Comment
	err := state.Pool.First(&comment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCommentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return &comment, nil
}

func SaveComment(comment *types.Comment) error {
	if err := state.Pool.Save(comment).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return nil
}

func DeleteComment(id uuid.UUID) error {
	if err := state.Pool.Delete(&types.Comment{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
