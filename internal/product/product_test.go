package product

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func Test_Validate(t *testing.T) {
	testCases := []struct {
		name             string
		input            Input
		expectedMessages []string
	}{
		{
			name:  "Valid - all fields",
			input: Input{Name: "Widget", Description: "A widget", Price: floatPtr(9.99)},
		},
		{
			name:  "Valid - price zero",
			input: Input{Name: "Widget", Description: "A widget", Price: floatPtr(0)},
		},
		{
			name:  "Valid - with image",
			input: Input{Name: "Widget", Description: "A widget", Price: floatPtr(1), Image: "https://img.example.com/products/w.png"},
		},
		{
			name:             "Invalid - empty name",
			input:            Input{Name: "", Description: "x", Price: floatPtr(1)},
			expectedMessages: []string{"Please provide a name for this product."},
		},
		{
			name:             "Invalid - name too long",
			input:            Input{Name: strings.Repeat("a", 61), Description: "x", Price: floatPtr(1)},
			expectedMessages: []string{"Name cannot be more than 60 characters"},
		},
		{
			name:  "Valid - name at limit",
			input: Input{Name: strings.Repeat("a", 60), Description: "x", Price: floatPtr(1)},
		},
		{
			name:             "Invalid - empty description",
			input:            Input{Name: "Widget", Description: "", Price: floatPtr(1)},
			expectedMessages: []string{"Please provide a description for this product."},
		},
		{
			name:             "Invalid - description too long",
			input:            Input{Name: "Widget", Description: strings.Repeat("d", 501), Price: floatPtr(1)},
			expectedMessages: []string{"Description cannot be more than 500 characters"},
		},
		{
			name:  "Valid - description at limit",
			input: Input{Name: "Widget", Description: strings.Repeat("d", 500), Price: floatPtr(1)},
		},
		{
			name:             "Invalid - missing price",
			input:            Input{Name: "Widget", Description: "x", Price: nil},
			expectedMessages: []string{"Please provide a price for this product."},
		},
		{
			name:             "Invalid - negative price",
			input:            Input{Name: "Widget", Description: "x", Price: floatPtr(-1)},
			expectedMessages: []string{"Price cannot be negative."},
		},
		{
			name:  "Invalid - everything wrong at once",
			input: Input{Name: "", Description: "", Price: nil},
			expectedMessages: []string{
				"Please provide a name for this product.",
				"Please provide a description for this product.",
				"Please provide a price for this product.",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.input)
			if len(tc.expectedMessages) == 0 {
				assert.NoError(t, err)
				return
			}
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), "expected a *ValidationError, got %v", err)
			assert.Equal(t, tc.expectedMessages, vErr.Messages)
		})
	}
}

func Test_ValidationError_JoinsMessages(t *testing.T) {
	err := Validate(Input{Name: "", Description: "", Price: nil})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t,
		"Please provide a name for this product., Please provide a description for this product., Please provide a price for this product.",
		vErr.Error())
}
