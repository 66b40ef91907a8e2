package posts

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

func DeletePostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Delete Post",
		Description: "Deletes a post together with its comments and reactions. Allowed for the author or an administrator.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the post",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Resp: types.Response{},
	}
}

func DeletePostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	post, err := database.GetPost(id)
	if errors.Is(err, database.ErrPostNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Post not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to delete post", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if post.PostedByID != d.Auth.UserID && !api.Allowed(d.Auth.Role, types.RoleAdmin) {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Oops! Only the author or an administrator can delete this post."},
		}
	}

	if err := database.DeletePostCascade(post.ID); err != nil {
		state.Logger.Error("Unable to delete post", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your post has been deleted.", nil),
	}
}
