package database

import (
	"errors"
	"time"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ToggleReaction flips the user's reaction of the given kind on a post.
// Reactions are mutually exclusive: setting a like replaces any dislike and
// vice versa. Toggling the same kind twice removes it. Both counters are
// recomputed from the reaction rows inside the same transaction. The returned
// flag reports whether the reaction is now present.
func ToggleReaction(userID, postID uuid.UUID, kind types.ReactionKind) (added bool, err error) {
	err = state.Pool.Transaction(func(tx *gorm.DB) error {
		var existing types.Reaction
		err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			First(&existing).Error

		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			reaction := types.Reaction{
				PostID:    postID,
				UserID:    userID,
				Kind:      kind,
				ReactedAt: time.Now(),
			}
			if err := tx.Create(&reaction).Error; err != nil {
				return err
			}
			added = true

		case err != nil:
			return err

		case existing.Kind == kind:
			// Toggle off
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			added = false

		default:
			// Switch sides: the opposite reaction is replaced
			existing.Kind = kind
			existing.ReactedAt = time.Now()
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			added = true
		}

		return refreshReactionCounters(tx, postID)
	})
	if err != nil {
		return false, err
	}

	return added, nil
}

func refreshReactionCounters(tx *gorm.DB, postID uuid.UUID) error {
	var likes, dislikes int64

	err := tx.Model(&types.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, types.ReactionLike).
		Count(&likes).Error
	if err != nil {
		return err
	}

	err = tx.Model(&types.Reaction{}).
		Where("post_id = ? AND kind = ?", postID, types.ReactionDislike).
		Count(&dislikes).Error
	if err != nil {
		return err
	}

	return tx.Model(&types.Post{}).Where("id = ?", postID).Updates(map[string]any{
		"num_of_likes":     likes,
		"num_of_dis_likes": dislikes,
	}).Error
}
