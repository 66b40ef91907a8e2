package posts

import (
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

type TimelineResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	NumOfPosts int              `json:"numOfPosts"`
	Data       []types.PostView `json:"data"`
}

func TimelineDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Timeline",
		Description: "Aggregated feed: the caller's own posts, then posts from followed accounts, then followers, then everyone else. Each section is ordered newest first and duplicates keep their first position.",
		Params:      []docs.Parameter{},
		Resp:        TimelineResponse{},
	}
}

func TimelineRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	feed, err := database.GetTimelineFeed(d.Auth.UserID)
	if err != nil {
		state.Logger.Error("Unable to build timeline", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: TimelineResponse{
			Success:    true,
			Message:    "See what your friends are up to!",
			NumOfPosts: len(feed),
			Data:       feed,
		},
	}
}
