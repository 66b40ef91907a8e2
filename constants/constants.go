package constants

// Versioned base path every resource group hangs off.
const APIBase = "/api/v1"

const (
	ResourceNotFound    = `{"success":false,"message":"We looked everywhere but couldn't find what you were after!"}`
	EndpointNotFound    = `{"success":false,"message":"You got the path wrong or something, this endpoint doesn't exist!"}`
	BadRequest          = `{"success":false,"message":"Something about that request doesn't add up. Check your values and try again!"}`
	Forbidden           = `{"success":false,"message":"Sorry, you must be logged in to access this route"}`
	Unauthorized        = `{"success":false,"message":"You're not allowed to do that. Did you forget a token somewhere?"}`
	InternalServerError = `{"success":false,"message":"Something went wrong on our end. Sorry about that!"}`
	MethodNotAllowed    = `{"success":false,"message":"That method is not allowed for this endpoint!"}`
	BodyRequired        = `{"success":false,"message":"A body is required for this endpoint!"}`
)
