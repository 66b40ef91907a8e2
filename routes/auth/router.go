package auth

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Auth", "Registration and login. Both endpoints hand out a signed session token."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern:      constants.APIBase + "/auth/register",
		OpId:         "register",
		Method:       uapi.POST,
		Docs:         RegisterDocs,
		Handler:      RegisterRoute,
		AuthOptional: true,
	}.Route(r)

	uapi.Route{
		Pattern:      constants.APIBase + "/auth/login",
		OpId:         "login",
		Method:       uapi.POST,
		Docs:         LoginDocs,
		Handler:      LoginRoute,
		AuthOptional: true,
	}.Route(r)
}
