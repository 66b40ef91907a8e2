package posts

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
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UpdatePostRequest struct {
	Image []string `json:"image"`
	Desc  string   `json:"desc"`
}

func UpdatePostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Update Post",
		Description: "Updates a post's description and images. Only the author may edit a post.",
		Params: []docs.Parameter{
			{
				Name:        "id",
				In:          "path",
				Description: "The ID of the post",
				Required:    true,
				Schema:      docs.IdSchema,
			},
		},
		Req:  UpdatePostRequest{},
		Resp: types.Response{},
	}
}

func UpdatePostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	var payload UpdatePostRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	post, err := database.GetPost(id)
	if errors.Is(err, database.ErrPostNotFound) {
		return uapi.HttpResponse{
			Status: http.StatusNotFound,
			Json:   types.ApiError{Message: "Post not found"},
		}
	}
	if err != nil {
		state.Logger.Error("Unable to update post", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	if post.PostedByID != d.Auth.UserID {
		return uapi.HttpResponse{
			Status: http.StatusUnauthorized,
			Json:   types.ApiError{Message: "Oops! It looks like you can't edit this post. Only the author can make changes."},
		}
	}

	if payload.Desc != "" {
		post.Desc = payload.Desc
	}
	if payload.Image != nil {
		post.Image = payload.Image
	}
	post.UpdatedAt = time.Now()

	if err := database.SavePost(post); err != nil {
		state.Logger.Error("Unable to update post", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse("Your post has been updated.", post),
	}
}
