package comments

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Comments", "Comments attached to posts."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/comment/create-comment/{id}",
		OpId:    "create_comment",
		Method:  uapi.POST,
		Docs:    CreateCommentDocs,
		Handler: CreateCommentRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/comment/update-comment/{id}",
		OpId:    "update_comment",
		Method:  uapi.PATCH,
		Docs:    UpdateCommentDocs,
		Handler: UpdateCommentRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/comment/delete-comment/{id}",
		OpId:    "delete_comment",
		Method:  uapi.DELETE,
		Docs:    DeleteCommentDocs,
		Handler: DeleteCommentRoute,
	}.Route(r)
}
