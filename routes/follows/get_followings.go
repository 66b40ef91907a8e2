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

type FollowingsResponse struct {
	Success         bool                  `json:"success"`
	Message         string                `json:"message"`
	NumOfFollowings int                   `json:"numOfFollowings"`
	Data            []types.FollowingView `json:"data"`
}

func GetFollowingsDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Get Followings",
		Description: "Lists the accounts the caller follows, most recent first.",
		Params:      []docs.Parameter{},
		Resp:        FollowingsResponse{},
	}
}

func GetFollowingsRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	followings, err := database.ListFollowings(d.Auth.UserID)
	if err != nil {
		state.Logger.Error("Unable to list followings", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: FollowingsResponse{
			Success:         true,
			Message:         fmt.Sprintf("You are following %d people.", len(followings)),
			NumOfFollowings: len(followings),
			Data:            followings,
		},
	}
}
