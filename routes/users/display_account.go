package users

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

func DisplayAccountDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Display Account",
		Description: "Returns the caller's own profile with followers, followings and posts fully denormalized.",
		Params:      []docs.Parameter{},
		Resp:        types.Response{},
	}
}

func DisplayAccountRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	profile, err := database.GetProfile(d.Auth.UserID, true)
	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "User not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to display user profile", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	msg := fmt.Sprintf("Great to see you again, %s. Here are your profile details.", profile.Username)

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse(msg, profile),
	}
}
