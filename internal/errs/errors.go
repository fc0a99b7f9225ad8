package errs

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrInvalidRequestBody  = Error("invalid request body")
	ErrUsernameTaken       = Error("Username already exists.")
	ErrInvalidCredentials  = Error("Invalid username or password.")
	ErrUserNotFound        = Error("user not found")
	ErrUnauthorized        = Error("unauthorized")
	ErrForbidden           = Error("forbidden")
	ErrDrawingNotFound     = Error("Drawing not found")
	ErrMissingDrawingData  = Error("Drawing data is required.")
	ErrInvalidParams       = Error("invalid params")
	ErrInvalidUsername     = Error("username is required")
	ErrInvalidPassword     = Error("password is required")
	ErrInvalidImageData    = Error("invalid image data")
	ErrExportNotConfigured = Error("drawing export is not configured")
)
