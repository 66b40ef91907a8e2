package comments

import (
	"errors"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/api"
	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func DeleteCommentDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Delete Comment",
		Description: "Removes a comment. Allowed for the author or an administrator.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the comment",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.Response{},
	}
}

func DeleteCommentRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	comment, err := database.GetComment(id)
	if errors.Is(err, database.ErrCommentNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Comment not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to delete comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if comment.CommentedByID != d.Auth.UserID && !api.Allowed(d.Auth.Role, types.RoleAdmin) {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Oops! Only the author or an administrator can delete this comment."},
		}
	}

	if err := database.DeleteComment(comment.ID); err != nil {
		state.Logger.Error("Unable to delete comment", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your comment has been deleted.", nil),
	}
}
