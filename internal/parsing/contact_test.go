package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContactInfo(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		email    string
		phone    string
		linkedin string
	}{
		{
			name:     "All fields present",
			text:     "Jane Doe\njane.doe@example.com\n+1 555-123-4567\nlinkedin.com/in/janedoe",
			email:    "jane.doe@example.com",
			phone:    "555-123-4567",
			linkedin: "https://linkedin.com/in/janedoe",
		},
		{
			name:  "Email only",
			text:  "Contact: someone@mail.co",
			email: "someone@mail.co",
		},
		{
			name:  "Phone with dots",
			text:  "Call 555.123.4567 anytime",
			phone: "555.123.4567",
		},
		{
			name:  "Phone with parentheses",
			text:  "(555) 123-4567",
			phone: "555) 123-4567",
		},
		{
			name:  "First email wins",
			text:  "first@example.com and second@example.com",
			email: "first@example.com",
		},
		{
			name:  "First phone wins",
			text:  "555-111-2222 or 555-333-4444",
			phone: "555-111-2222",
		},
		{
			name:     "LinkedIn normalized with https prefix",
			text:     "profile at linkedin.com/in/jane_doe-1",
			linkedin: "https://linkedin.com/in/jane_doe-1",
		},
		{
			name: "No matches leaves everything empty",
			text: "A resume with no contact details at all.",
		},
		{
			name: "Short TLD rejected",
			text: "broken@example.c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractContactInfo(tt.text)
			assert.Equal(t, tt.email, info.Email)
			assert.Equal(t, tt.phone, info.Phone)
			assert.Equal(t, tt.linkedin, info.LinkedIn)
		})
	}
}
