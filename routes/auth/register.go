package auth

import (
	"errors"
	"net/http"

	authlib "github.com/charlesdev96/charlie-chat-app/auth"
	"github.com/charlesdev96/charlie-chat-app/database"
	docs "github.com/charlesdev96/charlie-chat-app/doclib"
	"github.com/charlesdev96/charlie-chat-app/state"
	"github.com/charlesdev96/charlie-chat-app/types"
	"github.com/charlesdev96/charlie-chat-app/uapi"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=5,nospaces" msg:"Username must be at least 5 characters with no spaces"`
	Email           string `json:"email" validate:"required" msg:"Please provide an email address"`
	PhoneNumber     string `json:"phoneNumber" validate:"required" msg:"Please provide a phone number"`
	Password        string `json:"password" validate:"required,min=6" msg:"Password must be at least 6 characters"`
	ConfirmPassword string `json:"confirmPassword" validate:"required" msg:"Please confirm your password"`
}

type AuthResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    *types.User `json:"data"`
	Token   string      `json:"token"`
}

var registerCompiledMessages = uapi.CompileValidationErrors(RegisterRequest{})

func RegisterDocs() *docs.Doc {
	return &docs.Doc{
		Summary:     "Register",
		Description: "Creates a new account. The credential is hashed before persistence and a signed session token is issued.",
		Params:      []docs.Parameter{},
		Req:         RegisterRequest{},
		Resp:        AuthResponse{},
	}
}

func RegisterRoute(d uapi.RouteData, r *http.Request) uapi.HttpResponse {
	var payload RegisterRequest

	resp, ok := uapi.MarshalReq(r, &payload)
	if !ok {
		return resp
	}

	if err := state.Validator.Struct(payload); err != nil {
		return uapi.ValidatorErrorResponse(registerCompiledMessages, err.(validator.ValidationErrors))
	}

	if !authlib.IsEmailValid(payload.Email) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Please provide a valid email address"},
		}
	}

	if payload.Password != payload.ConfirmPassword {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "Passwords do not match."},
		}
	}

	err := database.CheckDuplicates(payload.Username, payload.Email, payload.PhoneNumber)
	if errors.Is(err, database.ErrDuplicateUsername) ||
		errors.Is(err, database.ErrDuplicateEmail) ||
		errors.Is(err, database.ErrDuplicatePhone) {
		return uapi.HttpResponse{
			Status: http.StatusBadRequest,
			Json:   types.ApiError{Message: "User already exist"},
		}
	}
	if err != nil {
		state.Logger.Error("Error Occurred Registering User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	hashed, err := authlib.HashPassword(payload.Password)
	if err != nil {
		state.Logger.Error("Error Occurred Registering User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	user := types.User{
		Username:     payload.Username,
		Email:        payload.Email,
		PhoneNumber:  payload.PhoneNumber,
		Password:     hashed,
		ProfilePic:   types.DefaultProfilePic,
		CoverPic:     types.DefaultCoverPic,
		Relationship: types.RelSingle,
		Role:         types.RoleUser,
	}

	if err := database.CreateUser(&user); err != nil {
		state.Logger.Error("Error Occurred Registering User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	token, err := authlib.CreateJWT(&user)
	if err != nil {
		state.Logger.Error("Error Occurred Registering User", zap.Error(err))
		return uapi.DefaultResponse(http.StatusInternalServerError)
	}

	return uapi.HttpResponse{
		Status: http.StatusCreated,
		Json: AuthResponse{
			Status:  true,
			Message: "User has been registered successfully",
			Data:    &user,
			Token:   token,
		},
	}
}
