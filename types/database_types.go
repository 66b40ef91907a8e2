package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultProfilePic = "https://res.cloudinary.com/duyoxmcxz/image/upload/v1710853324/chat-app/gyri2wzcahcyy2kdducn.png"
	DefaultCoverPic   = "https://res.cloudinary.com/duyoxmcxz/image/upload/v1710852717/chat-app/pcmloll41lgurbxa3uqy.jpg"
)

// Base model to include ID as UUID
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Role is the closed set of permission variants. Authorization decisions go
// through api.Allowed, never through raw string comparison in handlers.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type Relationship string

const (
	RelSingle      Relationship = "single"
	RelEngaged     Relationship = "engaged"
	RelMarried     Relationship = "married"
	RelDivorced    Relationship = "divorced"
	RelComplicated Relationship = "complicated"
	RelDating      Relationship = "dating"
)

func (r Relationship) Valid() bool {
	switch r {
	case RelSingle, RelEngaged, RelMarried, RelDivorced, RelComplicated, RelDating:
		return true
	}
	return false
}

type User struct {
	BaseModel
	Username     string       `gorm:"uniqueIndex;not null" json:"username"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber  string       `gorm:"uniqueIndex;not null" json:"phoneNumber"`
	Password     string       `gorm:"not null" json:"-"`
	ProfilePic   string       `json:"profilePic"`
	CoverPic     string       `json:"coverPic"`
	Desc         string       `gorm:"type:text" json:"desc"`
	Hometown     string       `json:"from"`
	Relationship Relationship `gorm:"default:'single'" json:"relationship"`
	Role         Role         `gorm:"default:'user'" json:"role"`

	// Derived from the follows table but stored for cheap reads. Updated in
	// the same transaction as the edge mutation so they cannot drift.
	NumOfFollowers  int `json:"numOfFollowers"`
	NumOfFollowings int `json:"numOfFollowings"`

	Posts []Post `gorm:"foreignKey:PostedByID" json:"posts,omitempty"`
}

// Follow is a directed, timestamped edge between two users.
type Follow struct {
	BaseModel
	FollowerID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follow_edge" json:"followerId"`
	FolloweeID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_follow_edge" json:"followeeId"`
	FollowedAt time.Time `json:"followedAt"`
	Follower   *User     `gorm:"foreignKey:FollowerID" json:"-"`
	Followee   *User     `gorm:"foreignKey:FolloweeID" json:"-"`
}

type Post struct {
	BaseModel
	PostedByID uuid.UUID `gorm:"type:uuid;not null;index" json:"postedBy"`
	PostedBy   *User     `gorm:"foreignKey:PostedByID" json:"-"`
	Image      []string  `gorm:"type:text[];serializer:json" json:"image"`
	Desc       string    `gorm:"type:text" json:"desc"`

	NumOfLikes    int `json:"numOfLikes"`
	NumOfDisLikes int `json:"numOfDisLikes"`

	Reactions []Reaction `gorm:"foreignKey:PostID" json:"-"`
	Comments  []Comment  `gorm:"foreignKey:CommentedPostID" json:"-"`
}

type ReactionKind string

const (
	ReactionLike    ReactionKind = "like"
	ReactionDislike ReactionKind = "dislike"
)

// Reaction records a like or dislike. The unique index on (post, user) makes
// the one-reaction-per-user-per-post invariant structural.
type Reaction struct {
	BaseModel
	PostID    uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reaction_once" json:"postId"`
	UserID    uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_reaction_once" json:"userId"`
	Kind      ReactionKind `gorm:"not null" json:"kind"`
	ReactedAt time.Time    `json:"reactedAt"`
	User      *User        `gorm:"foreignKey:UserID" json:"-"`
	Post      *Post        `gorm:"foreignKey:PostID" json:"-"`
}

type Comment struct {
	BaseModel
	Comment         string    `gorm:"type:text;not null" json:"comment"`
	CommentedByID   uuid.UUID `gorm:"type:uuid;not null;index" json:"commentedBy"`
	CommentedBy     *User     `gorm:"foreignKey:CommentedByID" json:"-"`
	CommentedPostID uuid.UUID `gorm:"type:uuid;not null;index" json:"commentedPost"`
	CommentDate     time.Time `json:"commentDate"`
	DateUpdated     time.Time `json:"dateUpdated"`
}

// Conversation holds the two participants of a chat. Lookups are
// order-independent so the pair is stored as it was first created.
type Conversation struct {
	BaseModel
	UserOneID uuid.UUID `gorm:"type:uuid;not null;index" json:"userOneId"`
	UserTwoID uuid.UUID `gorm:"type:uuid;not null;index" json:"userTwoId"`
	Messages  []Message `gorm:"foreignKey:ConversationID" json:"messages,omitempty"`
}

type Message struct {
	BaseModel
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index" json:"senderId"`
	ReceiverID     uuid.UUID `gorm:"type:uuid;not null;index" json:"receiverId"`
	Message        string    `gorm:"type:text;not null" json:"message"`
}
