package users

import (
	"errors"
	"net/http"
	"time"

	authlib "github.com/charlesdev96/charlie-chat-app/auth"
	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

type UpdateAccountRequest struct {
	Username        string             `json:"username"`
	Email           string             `json:"email"`
	PhoneNumber     string             `json:"phoneNumber"`
	ProfilePic      string             `json:"profilePic"`
	CoverPic        string             `json:"coverPic"`
	Desc            string             `json:"desc"`
	Hometown        string             `json:"from"`
	Relationship    types.Relationship `json:"relationship"`
	OldPassword     string             `json:"oldPassword"`
	NewPassword     string             `json:"newPassword"`
	ConfirmPassword string             `json:"confirmPassword"`
}

func UpdateAccountDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Update Account",
		Description: "Partially updates the caller's account. Absent fields keep their stored values. Changing the password requires oldPassword, newPassword and confirmPassword together.",
		Params:      []docs.Parameter{},
		Req:         UpdateAccountRequest{},
		Resp:        types.Response{},
	}
}

func UpdateAccountRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload UpdateAccountRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	user, err := database.GetUser(d.Auth.UserID)
	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "User not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to update account", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if payload.Email != "" {
		if !authlib.IsEmailValid(payload.Email) {
			return uapi.HttpResponse{
				Status: http.StatusBadRequest,
				Json:   types.ApiError{Message: "Please provide a valid email address"},
			}
		}
		user.Email = payload.Email
	}

	if payload.Username != "" {
		user.Username = payload.Username
	}
	if payload.PhoneNumber != "" {
		user.PhoneNumber = payload.PhoneNumber
	}
	if payload.ProfilePic != "" {
		user.ProfilePic = payload.ProfilePic
	}
	if payload.CoverPic != "" {
		user.CoverPic = payload.CoverPic
	}
	if payload.Desc != "" {
		user.Desc = payload.Desc
	}
	if payload.Hometown != "" {
		user.Hometown = payload.Hometown
	}

	if payload.Relationship != "" {
		if !payload.Relationship.Valid() {
			return uapi.HttpResponse{
				Status: http.StatusBadRequest,
				Json:   types.ApiError{Message: "Invalid relationship status"},
			}
		}
		user.Relationship = payload.Relationship
	}

	if payload.OldPassword != "" || payload.NewPassword != "" || payload.ConfirmPassword != "" {
		if payload.OldPassword == "" || payload.NewPassword == "" || payload.ConfirmPassword == "" {
			return uapi.HttpResponse{
				Status: http.StatusBadRequest,
				Json:   types.ApiError{Message: "To change your password, provide oldPassword, newPassword and confirmPassword"},
			}
		}

		if !authlib.ComparePassword(user.Password, payload.OldPassword) {
			return uapi.HttpResponse{
				Status: http.StatusUnauthorized,
				Json:   types.ApiError{Message: "old password must match current password"},
			}
		}

		if payload.NewPassword != payload.ConfirmPassword {
			return uapi.HttpResponse{
				Status: http.StatusBadRequest,
				Json:   types.ApiError{Message: "New passwords do not match"},
			}
		}

		hashed, err := authlib.HashPassword(payload.NewPassword)
		if err != nil {
			state.Logger.Error("Unable to update account", zap.Error(err))
			return uapi.DefaultResponse(http.StatusInternalServerError)
		}
		user.Password = hashed
	}

	user.UpdatedAt = time.Now()

	if err := database.SaveUser(user); err != nil {
		state.Logger.Error("Unable to update account", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	user.Posts = nil

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your account has been updated.", user),
	}
}
