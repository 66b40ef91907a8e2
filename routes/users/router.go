package users

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Users", "Account management: profile display, search, updates and two-phase account deletion."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/user/display-account",
		OpId:    "display_account",
		Method:  uapi.GET,
		Docs:    DisplayAccountDocs,
		Handler: DisplayAccountRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/search-user",
		OpId:    "search_user",
		Method:  uapi.GET,
		Docs:    SearchUserDocs,
		Handler: SearchUserRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/get-single-user/{id}",
		OpId:    "get_single_user",
		Method:  uapi.GET,
		Docs:    GetSingleUserDocs,
		Handler: GetSingleUserRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/update-account",
		OpId:    "update_account",
		Method:  uapi.PATCH,
		Docs:    UpdateAccountDocs,
		Handler: UpdateAccountRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/delete-account",
		OpId:    "delete_account",
		Method:  uapi.GET,
		Docs:    DeleteAccountDocs,
		Handler: DeleteAccountRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/user/confirm-account",
		OpId:    "confirm_delete_account",
		Method:  uapi.DELETE,
		Docs:    ConfirmDeleteAccountDocs,
		Handler: ConfirmDeleteAccountRoute,
	}.Route(r)
}
