package database

import (
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
)

// Projection helpers. These are pure: they reshape rows that were already
// fetched (with their owner and comment authors preloaded) into the
// denormalized views the API returns.

func NewCommentView(c types.Comment) types.CommentView {
	v := types.CommentView{
		ID:          c.ID,
		Comment:     c.Comment,
		CommentDate: c.CommentDate,
		DateUpdated: c.DateUpdated,
	}

	if c.CommentedBy != nil {
		v.CommentedByID = c.CommentedBy.ID
		v.CommentedByUsername = c.CommentedBy.Username
		v.CommentedByProfilePic = c.CommentedBy.ProfilePic
	}

	return v
}

func NewPostView(p types.Post) types.PostView {
	comments := make([]types.CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, NewCommentView(c))
	}

	v := types.PostView{
		ID:            p.ID,
		Image:         p.Image,
		Desc:          p.Desc,
		NumOfLikes:    p.NumOfLikes,
		NumOfDisLikes: p.NumOfDisLikes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Comments:      comments,
	}

	if p.PostedBy != nil {
		v.PostedBy = types.UserRef{
			ID:         p.PostedBy.ID,
			Username:   p.PostedBy.Username,
			ProfilePic: p.PostedBy.ProfilePic,
		}
	}

	return v
}

func NewPostViews(posts []types.Post) []types.PostView {
	views := make([]types.PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, NewPostView(p))
	}

	return views
}

// MergeFeedPartitions concatenates the feed partitions in priority order and
// drops duplicate post IDs, first occurrence wins. The partitions are disjoint
// by construction so the dedup is a defensive pass.
func MergeFeedPartitions(partitions ...[]types.Post) []types.Post {
	seen := make(map[uuid.UUID]bool)
	merged := []types.Post{}

	for _, partition := range partitions {
		for _, post := range partition {
			if seen[post.ID] {
				continue
			}
			seen[post.ID] = true
			merged = append(merged, post)
		}
	}

	return merged
}
