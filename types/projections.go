package types

import (
	"time"

	"github.com/google/uuid"
)

// Denormalized response shapes. Raw reference rows (reactions, follow edges,
// comment FKs) never reach the caller; these views substitute resolved data.

// UserRef is the owner/author stub embedded in post and comment views.
type UserRef struct {
	ID         uuid.UUID `json:"_id"`
	Username   string    `json:"username"`
	ProfilePic string    `json:"profilePic"`
}

// FollowerView is one entry of the followers list, the referenced user's
// public projection merged with the edge timestamp.
type FollowerView struct {
	FollowerID      uuid.UUID `json:"followerId"`
	Username        string    `json:"username"`
	ProfilePic      string    `json:"profilePic"`
	NumOfFollowers  int       `json:"numOfFollowers"`
	NumOfFollowings int       `json:"numOfFollowings"`
	FollowedAt      time.Time `json:"followedAt"`
}

type FollowingView struct {
	FolloweeID      uuid.UUID `json:"followeeId"`
	Username        string    `json:"username"`
	ProfilePic      string    `json:"profilePic"`
	NumOfFollowers  int       `json:"numOfFollowers"`
	NumOfFollowings int       `json:"numOfFollowings"`
	FollowedAt      time.Time `json:"followedAt"`
}

// CommentView is the flattened comment + author projection.
type CommentView struct {
	ID                    uuid.UUID `json:"_id"`
	Comment               string    `json:"comment"`
	CommentDate           time.Time `json:"commentDate"`
	DateUpdated           time.Time `json:"dateUpdated"`
	CommentedByID         uuid.UUID `json:"commentedById"`
	CommentedByUsername   string    `json:"commentedByUsername"`
	CommentedByProfilePic string    `json:"commentedByProfilePic"`
}

// PostView is a post with its owner resolved and comments flattened. Raw
// like/dislike rows are stripped, only the counters survive.
type PostView struct {
	ID            uuid.UUID     `json:"_id"`
	Image         []string      `json:"image"`
	Desc          string        `json:"desc"`
	PostedBy      UserRef       `json:"postedBy"`
	NumOfLikes    int           `json:"numOfLikes"`
	NumOfDisLikes int           `json:"numOfDisLikes"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
	Comments      []CommentView `json:"comments"`
}

// ProfileView is the fully denormalized account projection used by
// display-account, get-single-user and search-user.
type ProfileView struct {
	ID              uuid.UUID       `json:"_id"`
	Username        string          `json:"username"`
	Email           string          `json:"email"`
	PhoneNumber     string          `json:"phoneNumber"`
	ProfilePic      string          `json:"profilePic"`
	CoverPic        string          `json:"coverPic"`
	Desc            string          `json:"desc"`
	Hometown        string          `json:"from"`
	Relationship    Relationship    `json:"relationship"`
	Role            Role            `json:"role,omitempty"`
	NumOfFollowers  int             `json:"numOfFollowers"`
	NumOfFollowings int             `json:"numOfFollowings"`
	CreatedAt       time.Time       `json:"createdAt"`
	Followers       []FollowerView  `json:"followers"`
	Followings      []FollowingView `json:"followings"`
	Posts           []PostView      `json:"posts"`
}
