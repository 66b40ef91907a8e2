package follows

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

type FollowersResponse struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message"`
	NumOfFollowers int                  `json:"numOfFollowers"`
	Data           []types.FollowerView `json:"data"`
}

func GetFollowersDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Followers",
		Description: "Lists the accounts following the caller, most recent first.",
		Params:      []docs.Parameter{},
		Resp:        FollowersResponse{},
	}
}

func GetFollowersRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	followers, err := database.ListFollowers(d.Auth.UserID)
	if err != nil {
		state.Logger.Error("Unable to list followers", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: FollowersResponse{
			Success:        true,
			Message:        fmt.Sprintf("You have %d followers.", len(followers)),
			NumOfFollowers: len(followers),
			Data:           followers,
		},
	}
}
