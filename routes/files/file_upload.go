package files

import (
	"net/http"

	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// Multipart bodies are capped at 32 MiB before the media host sees them.
const maxUploadSize = 32 << 20

type UploadedFile struct {
	Src string `json:"src"`
}

type FileUploadResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    []UploadedFile `json:"data"`
}

func FileUploadDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "File Upload",
		Description: "Uploads one or more files as multipart form data and returns their hosted URLs. Use the returned URLs as post images or profile pictures.",
		Params:      []docs.Parameter{},
		Resp:        FileUploadResponse{},
	}
}

func FileUploadRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Expected multipart form data"},
		}
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File) == 0 {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Please attach at least one file"},
		}
	}

	var uploaded []UploadedFile

	for _, headers := range r.MultipartForm.File {
		for _, header := range headers {
			file, err := header.Open()
			if err != nil {
				state.Logger.Error("Unable to read uploaded file", zap.String("filename", header.Filename), zap.Error(err))
				return uapi.DefaultResponse(http.StatusInternalServerError)
			}

			res, err := state.Cloudinary.Upload.Upload(d.Context, file, uploader.UploadParams{
				Folder:       state.Config.Cloudinary.Folder,
				ResourceType: "auto",
			})

			file.Close()

			if err != nil {
				state.Logger.Error("Unable to upload file", zap.String("filename", header.Filename), zap.Error(err))
				return uapi.DefaultResponse(http.StatusInternalServerError)
			}

			uploaded = append(uploaded, UploadedFile{Src: res.SecureURL})
		}
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json: FileUploadResponse{
			Success: true,
			Message: "Your files have been uploaded.",
			Data:    uploaded,
		},
	}
}
