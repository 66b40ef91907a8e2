package database

import (
	"fmt"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTimelineFeed assembles the viewer's timeline: own posts first, then posts
// from followees, then from followers, then everything else. Each partition is
// sorted by creation time descending; partitions are not interleaved. Any
// failing sub-query fails the whole feed, there is no partial result.
func GetTimelineFeed(userID uuid.UUID) ([]types.PostView, error) {
	followerIDs, followeeIDs, err := edgeIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve social graph: %w", err)
	}

	ownPosts, err := postsByOwners([]uuid.UUID{userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch own posts: %w", err)
	}

	followeePosts, err := postsByOwners(followeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch followee posts: %w", err)
	}

	followerPosts, err := postsByOwners(followerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch follower posts: %w", err)
	}

	known := append(append([]uuid.UUID{userID}, followeeIDs...), followerIDs...)
	otherPosts, err := postsExcludingOwners(known)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch discovery posts: %w", err)
	}

	merged := MergeFeedPartitions(ownPosts, followeePosts, followerPosts, otherPosts)

	return NewPostViews(merged), nil
}

// edgeIDs resolves the viewer's follower and followee ID lists.
func edgeIDs(userID uuid.UUID) (followerIDs, followeeIDs []uuid.UUID, err error) {
	err = state.Pool.Model(&types.Follow{}).
		Where("followee_id = ?", userID).
		Pluck("follower_id", &followerIDs).Error
	if err != nil {
		return nil, nil, err
	}

	err = state.Pool.Model(&types.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("followee_id", &followeeIDs).Error
	if err != nil {
		return nil, nil, err
	}

	return followerIDs, followeeIDs, nil
}

func feedQuery() *gorm.DB {
	return state.Pool.
		Preload("PostedBy").
		Preload("Comments").
		Preload("Comments.CommentedBy").
		Order("created_at DESC")
}

func postsByOwners(ownerIDs []uuid.UUID) ([]types.Post, error) {
	if len(ownerIDs) == 0 {
		return []types.Post{}, nil
	}

	var posts []types.Post
	err := feedQuery().Where("posted_by_id IN ?", ownerIDs).Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}

func postsExcludingOwners(ownerIDs []uuid.UUID) ([]types.Post, error) {
	var posts []types.Post
	err := feedQuery().Where("posted_by_id NOT IN ?", ownerIDs).Find(&posts).Error
	if err != nil {
		return nil, err
	}

	return posts, nil
}
