package files

import (
	"github.com/charlesdev96/charlie-chat-app/constants"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-chi/chi/v5"
)

type Router struct{}

func (b Router) Tag() (string, string) {
	return "Files", "Media upload. Files are stored on the media host and referenced by URL."
}

func (b Router) Routes(r *chi.Mux) {
	uapi.Route{
		Pattern: constants.APIBase + "/file-upload",
		OpId:    "file_upload",
		Method:  uapi.POST,
		Docs:    FileUploadDocs,
		Handler: FileUploadRoute,
	}.Route(r)
}
