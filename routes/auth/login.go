package auth

import (
	"errors"
	"fmt"
	"net/http"

	authlib "github.com/charlesdev96/charlie-chat-app/auth"
	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username,omitempty" description:"Username, required if no email is given"`
	Email    string `json:"email,omitempty" description:"Email, required if no username is given"`
	Password string `json:"password" description:"Account password"`
}

func LoginDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Login",
		Description: "Authenticates with username+password or email+password and returns a signed session token plus a profile projection.",
		Params:      []docs.Parameter{},
		Req:         LoginRequest{},
		Resp:        AuthResponse{},
	}
}

func LoginRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload LoginRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if (payload.Username == "" && payload.Email == "") || payload.Password == "" {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Please provide username or email and password"},
		}
	}

	var user *types.User
	var err error
	if payload.Email != "" {
		user, err = database.GetUserByEmail(payload.Email)
	} else {
		user, err = database.GetUserByUsername(payload.Username)
	}

	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Invalid username/email or password. Please check your credentials and try again."},
		}
	}
	if err != nil {
		state.Logger.Error("Error Occurred logging in the User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if !authlib.ComparePassword(user.Password, payload.Password) {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Invalid username/email or password. Please check your credentials and try again."},
		}
	}

	token, err := authlib.CreateJWT(user)
	if err != nil {
		state.Logger.Error("Error Occurred logging in the User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	// Follower/following/post lists are not part of the login projection
	user.Posts = nil

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: AuthResponse{
			Status:  true,
			Message: fmt.Sprintf("Hey %s, good to see you again!", user.Username),
			Data:    user,
			Token:   token,
		},
	}
}
