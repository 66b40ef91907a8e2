package users

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

type SearchUserResponse struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	NumOfUsers int                 `json:"numOfUsers"`
	Data       []types.ProfileView `json:"data"`
}

func SearchUserDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Search User",
		Description: "Case-insensitive substring search on username and/or phone number. Without criteria every user is returned.",
		Params: []docs.Parameter{
			{
				Name:        "username",
				In:          "query",
				Description: "Username fragment to match",
				Schema:      docs.IdSchema,
			},
			{
				Name:        "phoneNumber",
				In:          "query",
				Description: "Phone number fragment to match",
				Schema:      docs.IdSchema,
			},
		},
		Resp: SearchUserResponse{},
	}
}

func SearchUserRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	username := r.URL.Query().Get("username")
	phoneNumber := r.URL.Query().Get("phoneNumber")

	profiles, err := database.SearchUsers(username, phoneNumber)
	if err != nil {
		state.Logger.Error("Unable to complete search", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: SearchUserResponse{
			Success:    true,
			Message:    fmt.Sprintf("Hooray!, we found %d social media companions. Get ready for some epic connections!", len(profiles)),
			NumOfUsers: len(profiles),
			Data:       profiles,
		},
	}
}
