package users

import (
	"errors"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

type ConfirmDeleteAccountRequest struct {
	ProvidedUsername string `json:"providedUsername"`
}

func ConfirmDeleteAccountDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Confirm Delete Account",
		Description: "Second phase of account deletion. The provided username must match the caller's own username. Removes the account together with its posts, comments, reactions, follow edges and conversations.",
		Params:      []docs.Parameter{},
		Req:         ConfirmDeleteAccountRequest{},
		Resp:        types.Response{},
	}
}

func ConfirmDeleteAccountRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload ConfirmDeleteAccountRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if payload.ProvidedUsername == "" {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Please provide username"},
		}
	}

	user, err := database.GetUser(d.Auth.UserID)
	if errors.Is(err, database.ErrUserNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "User not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to delete account", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if payload.ProvidedUsername != user.Username {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "username did not match"},
		}
	}

	if err := database.DeleteUserCascade(user.ID); err != nil {
		state.Logger.Error("Unable to delete account", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: types.SuccessResponse(
			"Your account has been deleted. We are sad to see you go, but we respect your decision. You are always welcome back whenever you are ready.",
			nil,
		),
	}
}
