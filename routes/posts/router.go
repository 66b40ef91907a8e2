package posts

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Posts", "Post creation, reactions, search and the aggregated timeline feed."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/post/create-post",
		OpId:    "create_post",
		Method:  uapi.POST,
		Docs:    CreatePostDocs,
		Handler: CreatePostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/time-line-post",
		OpId:    "timeline",
		Method:  uapi.GET,
		Docs:    TimelineDocs,
		Handler: TimelineRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/search-post",
		OpId:    "search_post",
		Method:  uapi.GET,
		Docs:    SearchPostDocs,
		Handler: SearchPostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/get-post/{id}",
		OpId:    "get_post",
		Method:  uapi.GET,
		Docs:    GetPostDocs,
		Handler: GetPostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/update-post/{id}",
		OpId:    "update_post",
		Method:  uapi.PATCH,
		Docs:    UpdatePostDocs,
		Handler: UpdatePostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/delete-post/{id}",
		OpId:    "delete_post",
		Method:  uapi.DELETE,
		Docs:    DeletePostDocs,
		Handler: DeletePostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/like/{id}",
		OpId:    "like_post",
		Method:  uapi.PATCH,
		Docs:    LikePostDocs,
		Handler: LikePostRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/post/dislike/{id}",
		OpId:    "dislike_post",
		Method:  uapi.PATCH,
		Docs:    DislikePostDocs,
		Handler: DislikePostRoute,
	}.Route(r)
}
