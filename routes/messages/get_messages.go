package messages

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

type MessagesResponse struct {
	Success       bool            `json:"success"`
	Message       string          `json:"message"`
	NumOfMessages int             `json:"numOfMessages"`
	Data          []types.Message `json:"data"`
}

func GetMessagesDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Messages",
		Description: "Returns the chat history between the caller and another user, oldest first. An empty history is not an error.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the chat partner",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: MessagesResponse{},
	}
}

func GetMessagesRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	peerID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	if _, err := database.GetUser(peerID); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return uapi.HttpResponse{
				Status: http.StatusNotFound,
				Json:   types.ApiError{Message: "User not found"},
			}
		}
		state.Logger.Error("Unable to get messages", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	msgs, err := database.GetMessages(d.Auth.UserID, peerID)
	if errors.Is(err, database.ErrConvNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusOK,
			Json: MessagesResponse{
				Success: true,
				Message: "Your chat history is currently empty. Click the 'New Chat' button to get started!",
				Data:    []types.Message{},
			},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to get messages", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: MessagesResponse{
			Success:       true,
			Message:       fmt.Sprintf("You have %d messages in this chat.", len(msgs)),
			NumOfMessages: len(msgs),
			Data:          msgs,
		},
	}
}
