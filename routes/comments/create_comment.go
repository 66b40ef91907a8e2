package comments

import (
	"errors"
	"net/http"

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

type CreateCommentRequest struct {
	Comment string `json:"comment" validate:"required,notblank" msg:"A comment cannot be empty"`
}

var createCommentCompiledMessages = uapi.CompileValidationErrors(CreateCommentRequest{})

func CreateCommentDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Create Comment",
		Description: "Adds a comment on an existing post.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the post to comment on",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Req:  CreateCommentRequest{},
		Resp: types.Response{},
	}
}

func CreateCommentRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	var payload CreateCommentRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(createCommentCompiledMessages, err.(validator.ValidationErrors))
	}

	if _, err := database.GetPost(postID); err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return uapi.HttpResponse{
				Status: http.StatusNotFound,
				Json:   types.ApiError{Message: "Post not found"},
			}
		}
		state.Logger.Error("Unable to create comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	comment, err := database.CreateComment(d.Auth.UserID, postID, payload.Comment)
	if err != nil {
		state.Logger.Error("Unable to create comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   types.SuccessResponse("Comment added!", comment),
	}
}
