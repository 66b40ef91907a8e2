package database

import (
	"errors"
	"fmt"

	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func GetUser(id uuid.UUID) (*types.User, error) {
	var user types.User
	err := state.Pool.First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func GetUserByUsername(username string) (*types.User, error) {
	var user types.User
	err := state.Pool.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

func GetUserByEmail(email string) (*types.User, error) {
	var user types.User
	err := state.Pool.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// CheckDuplicates runs the three existence checks performed at registration.
func CheckDuplicates(username, email, phoneNumber string) error {
	checks := []struct {
		column string
		value  string
		err    error
	}{
		{"username", username, ErrDuplicateUsername},
		{"email", email, ErrDuplicateEmail},
		{"phone_number", phoneNumber, ErrDuplicatePhone},
	}

	for _, c := range checks {
		var count int64
		err := state.Pool.Model(&types.User{}).
			Where(c.column+" = ?", c.value).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check existing %s: %w", c.column, err)
		}
		if count > 0 {
			return c.err
		}
	}

	return nil
}

func CreateUser(user *types.User) error {
	if err := state.Pool.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func SaveUser(user *types.User) error {
	if err := state.Pool.Save(user).Error; err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetProfile builds the fully denormalized account projection: follower and
// following lists with public user data merged in, plus the user's posts with
// the nested comment/author projection.
func GetProfile(id uuid.UUID, includeRole bool) (*types.ProfileView, error) {
	user, err := GetUser(id)
	if err != nil {
		return nil, err
	}

	return buildProfile(user, includeRole)
}

func buildProfile(user *types.User, includeRole bool) (*types.ProfileView, error) {
	followers, err := ListFollowers(user.ID)
	if err != nil {
		return nil, err
	}

	followings, err := ListFollowings(user.ID)
	if err != nil {
		return nil, err
	}

	posts, err := postsByOwners([]uuid.UUID{user.ID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user posts: %w", err)
	}

	profile := &types.ProfileView{
		ID:              user.ID,
		Username:        user.Username,
		Email:           user.Email,
		PhoneNumber:     user.PhoneNumber,
		ProfilePic:      user.ProfilePic,
		CoverPic:        user.CoverPic,
		Desc:            user.Desc,
		Hometown:        user.Hometown,
		Relationship:    user.Relationship,
		NumOfFollowers:  user.NumOfFollowers,
		NumOfFollowings: user.NumOfFollowings,
		CreatedAt:       user.CreatedAt,
		Followers:       followers,
		Followings:      followings,
		Posts:           NewPostViews(posts),
	}

	if includeRole {
		profile.Role = user.Role
	}

	return profile, nil
}

// SearchUsers matches username and/or phone number case-insensitively as
// substrings. With no criteria every user is returned.
func SearchUsers(username, phoneNumber string) ([]types.ProfileView, error) {
	q := state.Pool.Model(&types.User{})
	if username != "" {
		q = q.Where("username ILIKE ?", "%"+username+"%")
	}
	if phoneNumber != "" {
		q = q.Where("phone_number ILIKE ?", "%"+phoneNumber+"%")
	}

	var users []types.User
	if err := q.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	profiles := make([]types.ProfileView, 0, len(users))
	for i := range users {
		profile, err := buildProfile(&users[i], false)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}

	return profiles, nil
}

// DeleteUserCascade removes the account and everything that references it in
// one transaction: posts (with their comments and reactions), the user's own
// comments and reactions elsewhere, follow edges on both sides (with counter
// reconciliation for the counterparties), and all conversations and messages.
func DeleteUserCascade(id uuid.UUID) error {
	return state.Pool.Transaction(func(tx *gorm.DB) error {
		var postIDs []uuid.UUID
		err := tx.Model(&types.Post{}).
			Where("posted_by_id = ?", id).
			Pluck("id", &postIDs).Error
		if err != nil {
			return err
		}

		if len(postIDs) > 0 {
			if err := tx.Delete(&types.Comment{}, "commented_post_id IN ?", postIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&types.Reaction{}, "post_id IN ?", postIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&types.Post{}, "id IN ?", postIDs).Error; err != nil {
				return err
			}
		}

		// Comments and reactions this user left on other posts. The affected
		// posts get their counters recomputed below.
		if err := tx.Delete(&types.Comment{}, "commented_by_id = ?", id).Error; err != nil {
			return err
		}

		var reactedPostIDs []uuid.UUID
		err = tx.Model(&types.Reaction{}).
			Where("user_id = ?", id).
			Pluck("post_id", &reactedPostIDs).Error
		if err != nil {
			return err
		}
		if err := tx.Delete(&types.Reaction{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		for _, postID := range reactedPostIDs {
			if err := refreshReactionCounters(tx, postID); err != nil {
				return err
			}
		}

		// Follow edges on both sides, then reconcile the counterparties.
		var counterparties []uuid.UUID
		err = tx.Model(&types.Follow{}).
			Where("follower_id = ?", id).
			Pluck("followee_id", &counterparties).Error
		if err != nil {
			return err
		}
		var followerSide []uuid.UUID
		err = tx.Model(&types.Follow{}).
			Where("followee_id = ?", id).
			Pluck("follower_id", &followerSide).Error
		if err != nil {
			return err
		}
		counterparties = append(counterparties, followerSide...)

		if err := tx.Delete(&types.Follow{}, "follower_id = ? OR followee_id = ?", id, id).Error; err != nil {
			return err
		}
		for _, other := range counterparties {
			if err := refreshFollowCounters(tx, other); err != nil {
				return err
			}
		}

		var convIDs []uuid.UUID
		err = tx.Model(&types.Conversation{}).
			Where("user_one_id = ? OR user_two_id = ?", id, id).
			Pluck("id", &convIDs).Error
		if err != nil {
			return err
		}
		if len(convIDs) > 0 {
			if err := tx.Delete(&types.Message{}, "conversation_id IN ?", convIDs).Error; err != nil {
				return err
			}
			if err := tx.Delete(&types.Conversation{}, "id IN ?", convIDs).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&types.User{}, "id = ?", id).Error
	})
}
