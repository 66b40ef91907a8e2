package messages

import (
	"errors"
	"net/http"
	"time"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EditMessageRequest struct {
	Message string `json:"message" validate:"required,notblank" msg:"A message cannot be empty"`
}

var editMessageCompiledMessages = uapi.CompileValidationErrors(EditMessageRequest{})

func EditMessageDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Edit Message",
		Description: "Rewrites a message's text. Only the sender may edit a message.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the message",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Req:  EditMessageRequest{},
		Resp: types.Response{},
	}
}

func EditMessageRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	var payload EditMessageRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(editMessageCompiledMessages, err.(validator.ValidationErrors))
	}

	message, err := database.GetMessage(id)
	if errors.Is(err, database.ErrMessageNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Message not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to edit message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if message.SenderID != d.Auth.UserID {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Oops! You can only edit messages that you sent yourself."},
		}
	}

	message.Message = payload.Message
	message.UpdatedAt = time.Now()

	if err := database.SaveMessage(message); err != nil {
		state.Logger.Error("Unable to edit message", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your message has been updated.", message),
	}
}
