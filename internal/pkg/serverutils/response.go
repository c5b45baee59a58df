package serverutils

// ErrorResponse is the uniform failure body: {"error": "..."}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessMarker is the body of operations that return no row, e.g. deletes.
type SuccessMarker struct {
	Success bool `json:"success"`
}

func Success() SuccessMarker {
	return SuccessMarker{Success: true}
}
