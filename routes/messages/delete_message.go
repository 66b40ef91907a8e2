package messages

import (
	"errors"
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

func DeleteMessageDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Delete Message",
		Description: "Removes a message from a conversation. Only the sender may delete a message.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the message",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.Response{},
	}
}

func DeleteMessageRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	message, err := database.GetMessage(id)
	if errors.Is(err, database.ErrMessageNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Message not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to delete message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if message.SenderID != d.Auth.UserID {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Oops! You can only delete messages that you sent yourself."},
		}
	}

	if err := database.DeleteMessage(message.ID); err != nil {
		state.Logger.Error("Unable to delete message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your message has been deleted.", nil),
	}
}
