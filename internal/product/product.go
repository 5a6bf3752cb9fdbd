// Package product defines the catalog's sole entity and the single validation
// module used by both the REST handlers and the CLI form controller. The store
// layer carries matching CHECK constraints and stays authoritative.
package product

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Product is a persisted catalog record. ID is assigned by the store on
// creation and never changes.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

// Input carries the client-supplied fields of a product. Price is a pointer so
// that a missing price can be told apart from a price of zero.
type Input struct {
	Name        string   `json:"name"        validate:"required,max=60"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       *float64 `json:"price"       validate:"required,gte=0"`
	Image       string   `json:"image,omitempty"`
}

// ValidationError aggregates all violated field rules of one input.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

// fieldMessages maps field+rule to the human-readable message reported to the
// user. One table, shared by every caller.
var fieldMessages = map[string]string{
	"Name.required":        "Please provide a name for this product.",
	"Name.max":             "Name cannot be more than 60 characters",
	"Description.required": "Please provide a description for this product.",
	"Description.max":      "Description cannot be more than 500 characters",
	"Price.required":       "Please provide a price for this product.",
	"Price.gte":            "Price cannot be negative.",
}

var validate = validator.New()

// Validate checks in against the field rules and returns a *ValidationError
// listing every violation, or nil when the input is valid.
func Validate(in Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		key := fieldErr.Field() + "." + fieldErr.Tag()
		if msg, known := fieldMessages[key]; known {
			messages = append(messages, msg)
		} else {
			messages = append(messages, fieldErr.Field()+" failed on rule: "+fieldErr.Tag())
		}
	}
	return &ValidationError{Messages: messages}
}
