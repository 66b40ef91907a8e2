package database

import (
	"errors"
	"fmt"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func CreatePost(userID uuid.UUID, image []string, desc string) (*types.Post, error) {
	post := types.Post{
		PostedByID: userID,
		Image:      image,
		Desc:       desc,
	}

	if err := state.Pool.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return &post, nil
}

func GetPost(id uuid.UUID) (*types.Post, error) {
	var post types.Post
	err := state.Pool.First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	return &post, nil
}

// GetPostView fetches a single post with owner and comment authors resolved,
// reaction rows stripped.
func GetPostView(id uuid.UUID) (*types.PostView, error) {
	var post types.Post
	err := state.Pool.
		Preload("PostedBy").
		Preload("Comments").
		Preload("Comments.CommentedBy").
		First(&post, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post: %w", err)
	}

	view := NewPostView(post)

	return &view, nil
}

func SavePost(post *types.Post) error {
	if err := state.Pool.Save(post).Error; err != nil {
		return fmt.Errorf("failed to save post: %w", err)
	}

	return nil
}

// DeletePostCascade removes the post together with its comments and reactions.
// Comments never dangle.
func DeletePostCascade(id uuid.UUID) error {
	return state.Pool.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&types.Comment{}, "commented_post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&types.Reaction{}, "post_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&types.Post{}, "id = ?", id).Error
	})
}

// SearchPosts matches the description case-insensitively as a substring. An
// empty query returns all posts. Results carry the same nested projection as
// single-post retrieval.
func SearchPosts(desc string) ([]types.PostView, error) {
	q := feedQuery()
	if desc != "" {
		q = q.Where("\"desc\" ILIKE ?", "%"+desc+"%")
	}

	var posts []types.Post
	if err := q.Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}

	return NewPostViews(posts), nil
}
