package messages

import (
	"errors"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/realtime"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SendMessageRequest struct {
	Message string `json:"message" validate:"required,notblank" msg:"A message cannot be empty"`
}

var sendMessageCompiledMessages = uapi.CompileValidationErrors(SendMessageRequest{})

func SendMessageDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Send Message",
		Description: "Sends a direct message to another user, creating the conversation on first contact. The receiver is notified over their websocket connection when online.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the receiving user",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Req:  SendMessageRequest{},
		Resp: types.Response{},
	}
}

func SendMessageRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	receiverID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	var payload SendMessageRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(sendMessageCompiledMessages, err.(validator.ValidationErrors))
	}

	if _, err := database.GetUser(receiverID); err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			return uapi.HttpResponse{
				Status: http.StatusNotFound,
				Json:   types.ApiError{Message: "User not found"},
			}
		}
		state.Logger.Error("Unable to send message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	message, err := database.SendMessage(d.Auth.UserID, receiverID, payload.Message)
	if err != nil {
		state.Logger.Error("Unable to send message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	realtime.NotifyNewMessage(receiverID, message)

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   types.SuccessResponse("Your message has been sent.", message),
	}
}
