package posts

import (
	"fmt"
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"go.uber.org/zap"
)

type SearchPostResponse struct {
	Success    bool             `json:"success"`
	Message    string           `json:"message"`
	NumOfPosts int              `json:"numOfPosts"`
	Data       []types.PostView `json:"data"`
}

func SearchPostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Search Post",
		Description: "Case-insensitive substring search over post descriptions. Without a query every post is returned.",
		Params: []docs.Parameter{
			{
				Name:        "desc",
				In:          "query",
				Description: "Description fragment to match",
				Schema:      docs.IdSchema,
			},
		},
		Resp: SearchPostResponse{},
	}
}

func SearchPostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	desc := r.URL.Query().Get("desc")

	posts, err := database.SearchPosts(desc)
	if err != nil {
		state.Logger.Error("Unable to search posts", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: SearchPostResponse{
			Success:    true,
			Message:    fmt.Sprintf("We found %d posts related to your search", len(posts)),
			NumOfPosts: len(posts),
			Data:       posts,
		},
	}
}
