package posts

import (
	"net/http"

	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"
)

func DislikePostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Dislike Post",
		Description: "Toggles the caller's dislike on a post. Disliking a liked post switches the reaction; disliking twice removes it.",
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

func DislikePostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	return toggleReactionRoute(d, r, types.ReactionDislike,
		"Your dislike has been registered.",
		"Second thoughts? We got you.",
	)
}
