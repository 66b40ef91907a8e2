package users

import (
	"net/http"

	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/uapi"
)

type DeleteAccountPrompt struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func DeleteAccountDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Delete Account",
		Description: "First phase of account deletion. Returns a prompt asking the caller to re-enter their username on the confirmation endpoint.",
		Params:      []docs.Parameter{},
		Resp:        DeleteAccountPrompt{},
	}
}

func DeleteAccountRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	return uapi.HttpResponse{
		Status: http.StatusOK,
		Json: DeleteAccountPrompt{
			Status:  "prompt",
			Message: "To confirm account deletion, please re-enter your username.",
		},
	}
}
