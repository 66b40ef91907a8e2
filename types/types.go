package types

type Response struct {
	Success bool              `json:"success" description:"Indicates if the request was successful"`
	Context map[string]string `json:"context,omitempty" description:"Context of the response"`
	Message *string           `json:"message,omitempty" description:"Message of the response"`
	JSON    any               `json:"data,omitempty" description:"JSON data of the response"`
}

type ApiError struct {
	Context map[string]string `json:"context,omitempty" description:"Context of the error. Usually used for validation error contexts"`
	Message string            `json:"message" description:"Message of the error"`
}

// Success wraps data in the standard response envelope.
func SuccessResponse(msg string, data any) Response {
	return Response{
		Success: true,
		Message: &msg,
		JSON:    data,
	}
}
