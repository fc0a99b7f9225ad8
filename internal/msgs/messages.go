package msgs

const (
	MsgUserRegistered     = "User registered successfully."
	MsgLoginSuccessful    = "Login successful."
	MsgDrawingDeleted     = "Drawing deleted successfully"
	MsgAllDrawingsDeleted = "All drawings deleted successfully"
)
