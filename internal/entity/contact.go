package entity

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// ContactRequest is the simulated contact form payload. Nothing is
// persisted; the handler only validates and acknowledges.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func ValidateContactRequest(c *ContactRequest) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Message = strings.TrimSpace(c.Message)

	if c.Name == "" || c.Email == "" || c.Message == "" {
		return &ValidationError{Message: "missing fields"}
	}
	if !govalidator.IsEmail(c.Email) {
		return &ValidationError{Message: "invalid email format"}
	}
	if len(c.Message) > 5000 {
		return &ValidationError{Message: "message must not exceed 5000 characters"}
	}
	return nil
}
