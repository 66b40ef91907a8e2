package posts

import (
	"net/http"

	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type CreatePostRequest struct {
	Image []string `json:"image"`
	Desc  string   `json:"desc" validate:"required,notblank" msg:"A post needs a description"`
}

var createPostCompiledMessages = uapi.CompileValidationErrors(CreatePostRequest{})

func CreatePostDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Create Post",
		Description: "Creates a post owned by the caller. Image URLs usually come from the file upload endpoint.",
		Params:      []docs.Parameter{},
		Req:         CreatePostRequest{},
		Resp:        types.Response{},
	}
}

func CreatePostRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload CreatePostRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(createPostCompiledMessages, err.(validator.ValidationErrors))
	}

	post, err := database.CreatePost(d.Auth.UserID, payload.Image, payload.Desc)
	if err != nil {
		state.Logger.Error("Unable to create post", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json:   types.SuccessResponse("Post created successfully!", post),
	}
}
