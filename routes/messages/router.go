package messages

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Messages", "Direct messages between two accounts. Conversations are created lazily on first send."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/message/send-message/{id}",
		OpId:    "send_message",
		Method:  uapi.POST,
		Docs:    SendMessageDocs,
		Handler: SendMessageRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/message/get-message/{id}",
		OpId:    "get_messages",
		Method:  uapi.GET,
		Docs:    GetMessagesDocs,
		Handler: GetMessagesRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/message/edit-message/{id}",
		OpId:    "edit_message",
		Method:  uapi.PATCH,
		Docs:    EditMessageDocs,
		Handler: EditMessageRoute,
	}.Route(r)

	uapi.Route{
		Pattern: constants.APIBase + "/message/delete-message/{id}",
		OpId:    "delete_message",
		Method:  uapi.DELETE,
		Docs:    DeleteMessageDocs,
		Handler: DeleteMessageRoute,
	}.Route(r)
}
