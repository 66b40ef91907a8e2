package posts

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

func LikePostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Like Post",
		Description: "Toggles the caller's like on a post. Liking a disliked post switches the reaction; liking twice removes it.",
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

func LikePostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	return toggleReactionRoute(d, r, types.ReactionLike,
		"You rock this post!",
		"Your like has been removed",
	)
}

func toggleReactionRoute(d uapi.RouteData, r *http.Request, kind types.ReactionKind, onMsg, offMsg string) uapi.HttpResponse {
	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uapi.DefaultResponse(http.StatusBadRequest)
	}

	if _, err := database.GetPost(postID); err != nil {
		if errors.Is(err, database.ErrPostNotFound) {
			return uapi.HttpResponse{
				Status: http.StatusNotFound,
				Json:   types.ApiError{Message: "Post not found"},
			}
		}
		state.Logger.Error("Unable to toggle reaction", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	added, err := database.ToggleReaction(d.Auth.UserID, postID, kind)
	if err != nil {
		state.Logger.Error("Unable to toggle reaction", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	msg := offMsg
	if added {
		msg = onMsg
	}

	post, err := database.GetPostView(postID)
	if err != nil {
		state.Logger.Error("Unable to toggle reaction", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json:   types.SuccessResponse(msg, post),
	}
}
