package entity

// ValidationError marks errors caused by bad client input so the HTTP
// layer can map them to a 400 instead of a 500.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
