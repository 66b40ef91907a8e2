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

func FollowUserDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Follow User",
		Description: "Follows another user. Following yourself or someone you already follow is rejected.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the user to follow",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.Response{},
	}
}

func FollowUserRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	targetID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	target, err := database.GetUser(targetID)
	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "User not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to follow user", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	err = database.FollowUser(d.Auth.UserID, targetID)
	if errors.Is(err, database.ErrSelfFollow) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "You cannot follow yourself"},
		}
	}
	if errors.Is(err, database.ErrAlreadyFollowing) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: fmt.Sprintf("You are already following %s", target.Username)},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to follow user", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse(fmt.Sprintf("Congratulations!!!, you are now following %s", target.Username), nil),
	}
}
