package api

import (
	"net/http"
	"strings"

	"github.com/charlesdev96/charlie-chat-app/auth"
	"github.com/charlesdev96/charlie-chat-app/constants"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"golang.org/x/exp/slices"
)

type DefaultResponder struct{}

func (d DefaultResponder) New(err string, ctx map[string]string) any {
	return types.ApiError{
		Message: err,
		Context: ctx,
	}
}

// Allowed is the authorization policy: it reports whether the role is in the
// permitted set. An empty set permits any valid role.
func Allowed(role types.Role, permitted ...types.Role) bool {
	if !role.Valid() {
		return false
	}

	if len(permitted) == 0 {
		return true
	}

	return slices.Contains(permitted, role)
}

// Authorize is the access control gate run before every route handler. A
// missing or malformed Authorization header fails with Forbidden; an invalid
// or expired token, or a role outside the route's allowed set, fails with
// Unauthorized. On success the decoded claims are attached to the request.
func Authorize(r uapi.Route, req *http.Request) (uapi.AuthData, uapi.HttpResponse, bool) {
	if r.AuthOptional {
		return uapi.AuthData{}, uapi.HttpResponse{}, true
	}

	header := req.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return uapi.AuthData{}, uapi.DefaultResponse(http.StatusForbidden), false
	}

	token := strings.TrimPrefix(header, "Bearer ")

	claims, err := auth.VerifyJWT(token)
	if err != nil {
		return uapi.AuthData{}, uapi.DefaultResponse(http.StatusUnauthorized), false
	}

	if !Allowed(claims.Role, r.AllowedRoles...) {
		return uapi.AuthData{}, uapi.DefaultResponse(http.StatusUnauthorized), false
	}

	return uapi.AuthData{
		UserID:      claims.UserID,
		Username:    claims.Username,
		PhoneNumber: claims.PhoneNumber,
		Role:        claims.Role,
		Email:       claims.Email,
		Authorized:  true,
	}, uapi.HttpResponse{}, true
}

func Setup() {
	uapi.SetupState(uapi.UAPIState{
		Logger:    state.Logger,
		Authorize: Authorize,
		Constants: &uapi.UAPIConstants{
			ResourceNotFound:    constants.ResourceNotFound,
			BadRequest:          constants.BadRequest,
			Forbidden:           constants.Forbidden,
			Unauthorized:        constants.Unauthorized,
			InternalServerError: constants.InternalServerError,
			MethodNotAllowed:    constants.MethodNotAllowed,
			BodyRequired:        constants.BodyRequired,
		},
		DefaultResponder: DefaultResponder{},
	})

	docs.AddSecuritySchema("BearerAuth", "Authorization", "JWT session token, presented as 'Bearer <token>'")
}
