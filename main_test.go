package main

import (
	"net/http"
	"testing"

	"github.com/charlesdev96/charlie-chat-app/api"
	"github.com/charlesdev96/charlie-chat-app/constants"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	authroutes "github.com/charlesdev96/charlie-chat-app/routes/auth"
	"github.com/charlesdev96/charlie-chat-app/routes/comments"
	"github.com/charlesdev96/charlie-chat-app/routes/files"
	"github.com/charlesdev96/charlie-chat-app/routes/follows"
	"github.com/charlesdev96/charlie-chat-app/routes/messages"
	"github.com/charlesdev96/charlie-chat-app/routes/posts"
	"github.com/charlesdev96/charlie-chat-app/routes/users"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

// The route table is the documented interface clients depend on; every
// pattern here is load-bearing.
func TestRegisteredRoutePatterns(t *testing.T) {
	docs.DocsSetupData = &docs.SetupData{
		URL:         "http://localhost",
		ErrorStruct: types.ApiError{},
		Info:        docs.Info{Title: "test", Version: "1.0"},
	}
	docs.Setup()
	api.Setup()

	r := chi.NewRouter()

	routers := []uapi.APIRouter{
		authroutes.Router{},
		users.Router{},
		follows.Router{},
		posts.Router{},
		comments.Router{},
		messages.Router{},
		files.Router{},
	}

	for _, router := range routers {
		name, desc := router.Tag()
		docs.AddTag(name, desc)
		uapi.State.SetCurrentTag(name)
		router.Routes(r)
	}

	registered := make(map[string]bool)
	err := chi.Walk(r, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("walk: %v", err)
	}

	want := []string{
		"POST " + constants.APIBase + "/auth/register",
		"POST " + constants.APIBase + "/auth/login",
		"GET " + constants.APIBase + "/user/display-account",
		"GET " + constants.APIBase + "/user/search-user",
		"GET " + constants.APIBase + "/user/get-single-user/{id}",
		"PATCH " + constants.APIBase + "/user/update-account",
		"GET " + constants.APIBase + "/user/delete-account",
		"DELETE " + constants.APIBase + "/user/confirm-account",
		"PATCH " + constants.APIBase + "/user/follow-user/{id}",
		"PATCH " + constants.APIBase + "/user/unfollow-user/{id}",
		"GET " + constants.APIBase + "/user/get-followers",
		"GET " + constants.APIBase + "/user/get-followings",
		"POST " + constants.APIBase + "/post/create-post",
		"GET " + constants.APIBase + "/post/time-line-post",
		"GET " + constants.APIBase + "/post/search-post",
		"GET " + constants.APIBase + "/post/get-post/{id}",
		"PATCH " + constants.APIBase + "/post/update-post/{id}",
		"DELETE " + constants.APIBase + "/post/delete-post/{id}",
		"PATCH " + constants.APIBase + "/post/like/{id}",
		"PATCH " + constants.APIBase + "/post/dislike/{id}",
		"POST " + constants.APIBase + "/comment/create-comment/{id}",
		"PATCH " + constants.APIBase + "/comment/update-comment/{id}",
		"DELETE " + constants.APIBase + "/comment/delete-comment/{id}",
		"POST " + constants.APIBase + "/message/send-message/{id}",
		"GET " + constants.APIBase + "/message/get-message/{id}",
		"PATCH " + constants.APIBase + "/message/edit-message/{id}",
		"DELETE " + constants.APIBase + "/message/delete-message/{id}",
		"POST " + constants.APIBase + "/file-upload",
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("missing route %s", route)
		}
	}
}
