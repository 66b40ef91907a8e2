package follows

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Follows", "Directed follow relationships between accounts."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/user/follow-user/{id}",
		OpId:    "follow_user",
		Method:  uapi.PATCH,
		Docs:    FollowUserDocs,
		Handler: FollowUserRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/unfollow-user/{id}",
		OpId:    "unfollow_user",
		Method:  uapi.PATCH,
		Docs:    UnfollowUserDocs,
		Handler: UnfollowUserRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/get-followers",
		OpId:    "get_followers",
		Method:  uapi.GET,
		Docs:    GetFollowersDocs,
		Handler: GetFollowersRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/get-followings",
		OpId:    "get_followings",
		Method:  uapi.GET,
		Docs:    GetFollowingsDocs,
		Handler: GetFollowingsRoute,
	}.Route(r)
}
