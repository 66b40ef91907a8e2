package database

import (
	"fmt"
	"time"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUser appends a timestamped edge between the two users and brings both
// denormalized counters in line with the edge count, all in one transaction.
func FollowUser(currentID, targetID uuid.UUID) error {
	if currentID == targetID {
		return ErrSelfFollow
	}

	return state.Pool.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&types.Follow{}).
			Where("follower_id = ? AND followee_id = ?", currentID, targetID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyFollowing
		}

		edge := types.Follow{
			FollowerID: currentID,
			FolloweeID: targetID,
			FollowedAt: time.Now(),
		}
		if err := tx.Create(&edge).Error; err != nil {
			return err
		}

		if err := refreshFollowCounters(tx, currentID); err != nil {
			return err
		}

		return refreshFollowCounters(tx, targetID)
	})
}

// UnfollowUser removes the edge and recomputes both counters exactly. The
// recompute replaces the old floor-only reconciliation: counters can no longer
// stay wrong in either direction.
func UnfollowUser(currentID, targetID uuid.UUID) error {
	return state.Pool.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&types.Follow{}, "follower_id = ? AND followee_id = ?", currentID, targetID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFollowing
		}

		if err := refreshFollowCounters(tx, currentID); err != nil {
			return err
		}

		return refreshFollowCounters(tx, targetID)
	})
}

func refreshFollowCounters(tx *gorm.DB, userID uuid.UUID) error {
	var followers, followings int64

	err := tx.Model(&types.Follow{}).Where("followee_id = ?", userID).Count(&followers).Error
	if err != nil {
		return err
	}

	err = tx.Model(&types.Follow{}).Where("follower_id = ?", userID).Count(&followings).Error
	if err != nil {
		return err
	}

	return tx.Model(&types.User{}).Where("id = ?", userID).Updates(map[string]any{
		"num_of_followers":  followers,
		"num_of_followings": followings,
	}).Error
}

// ListFollowers returns the follower edge list with each referenced user's
// public projection merged in alongside the edge timestamp.
func ListFollowers(userID uuid.UUID) ([]types.FollowerView, error) {
	followers := []types.FollowerView{}
	err := state.Pool.Model(&types.Follow{}).
		Select("users.id AS follower_id, users.username, users.profile_pic, users.num_of_followers, users.num_of_followings, follows.followed_at").
		Joins("JOIN users ON users.id = follows.follower_id").
		Where("follows.followee_id = ?", userID).
		Order("follows.followed_at DESC").
		Scan(&followers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followers: %w", err)
	}

	return followers, nil
}

func ListFollowings(userID uuid.UUID) ([]types.FollowingView, error) {
	followings := []types.FollowingView{}
	err := state.Pool.Model(&types.Follow{}).
		Select("users.id AS followee_id, users.username, users.profile_pic, users.num_of_followers, users.num_of_followings, follows.followed_at").
		Joins("JOIN users ON users.id = follows.followee_id").
		Where("follows.follower_id = ?", userID).
		Order("follows.followed_at DESC").
		Scan(&followings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list followings: %w", err)
	}

	return followings, nil
}
