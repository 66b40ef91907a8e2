package database

import "errors"

// Sentinel errors returned by the store-access layer. Route handlers translate
// these into the HTTP error taxonomy, everything unrecognised becomes a 500.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrPostNotFound    = errors.New("post not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrMessageNotFound = errors.New("message not found")
	ErrConvNotFound    = errors.New("conversation not found")

	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicatePhone    = errors.New("phone number already exists")

	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not currently following this user")
)
