package comments

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

type UpdateCommentRequest struct {
	Comment string `json:"comment" validate:"required,notblank" msg:"A comment cannot be empty"`
}

var updateCommentCompiledMessages = uapi.CompileValidationErrors(UpdateCommentRequest{})

func UpdateCommentDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Update Comment",
		Description: "Rewrites a comment's text. Only the author may edit a comment.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the comment",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Req:  UpdateCommentRequest{},
		Resp: types.Response{},
	}
}

func UpdateCommentRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	var payload UpdateCommentRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(updateCommentCompiledMessages, err.(validator.ValidationErrors))
	}

	comment, err := database.GetComment(id)
	if errors.Is(err, database.ErrCommentNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Comment not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to update comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if comment.CommentedByID != d.Auth.UserID {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Hold on a second! You can only edit your own comments."},
		}
	}

	comment.Comment = payload.Comment
	comment.DateUpdated = time.Now()

	if err := database.SaveComment(comment); err != nil {
		state.Logger.Error("Unable to update comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your comment has been updated.", comment),
	}
}
