package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixedCredentials_Verify(t *testing.T) {
	v := NewFixedCredentials("admin", "12345")

	tests := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"correct pair", "admin", "12345", true},
		{"wrong password", "admin", "54321", false},
		{"unknown user", "root", "12345", false},
		{"both wrong", "root", "toor", false},
		{"empty", "", "", false},
		{"case sensitive", "Admin", "12345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Verify(tt.username, tt.password))
		})
	}
}
