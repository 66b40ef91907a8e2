package follows

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func UnfollowUserDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Unfollow User",
		Description: "Removes an existing follow edge. Unfollowing someone you do not follow is rejected.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the user to unfollow",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.Response{},
	}
}

func UnfollowUserRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	if targetID == d.Auth.UserID {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "You cannot unfollow yourself"},
		}
	}

	target, err := database.GetUser(targetID)
	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "User not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to unfollow user", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	err = database.UnfollowUser(d.Auth.UserID, targetID)
	if errors.Is(err, database.ErrNotFollowing) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: fmt.Sprintf("You are not currently following %s", target.Username)},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to unfollow user", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse(fmt.Sprintf("You have successfully unfollowed %s", target.Username), nil),
	}
}
