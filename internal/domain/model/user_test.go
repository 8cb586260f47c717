//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/inkwell-dev/inkwell/internal/errors"
)

func validRegisterRequest() RegisterRequest {
	return RegisterRequest{
		Name:      "Alice Example",
		Email:     "alice@example.com",
		Password:  "sup3rsecret",
		Password2: "sup3rsecret",
	}
}

func TestRegisterRequest_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*RegisterRequest)
		wantMsgs []string
	}{
		{
			name:   "valid request",
			mutate: func(*RegisterRequest) {},
		},
		{
			name:     "missing name",
			mutate:   func(r *RegisterRequest) { r.Name = "" },
			wantMsgs: []string{"Please fill in all fields."},
		},
		{
			name:     "missing email",
			mutate:   func(r *RegisterRequest) { r.Email = "" },
			wantMsgs: []string{"Please fill in all fields."},
		},
		{
			name: "password mismatch",
			mutate: func(r *RegisterRequest) {
				r.Password2 = "somethingelse"
			},
			wantMsgs: []string{"Passwords do not match"},
		},
		{
			name: "password too short",
			mutate: func(r *RegisterRequest) {
				r.Password = "abc12"
				r.Password2 = "abc12"
			},
			wantMsgs: []string{"Password must be at least 6 characters long."},
		},
		{
			name: "password exactly at minimum length",
			mutate: func(r *RegisterRequest) {
				r.Password = "abc123"
				r.Password2 = "abc123"
			},
		},
		{
			name: "all failures collected, in form order",
			mutate: func(r *RegisterRequest) {
				r.Name = ""
				r.Password = "abc"
				r.Password2 = "xyz"
			},
			wantMsgs: []string{
				"Please fill in all fields.",
				"Passwords do not match",
				"Password must be at least 6 characters long.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := req.Validate()
			if len(tt.wantMsgs) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			verrs, ok := apperrors.AsValidationErrors(err)
			require.True(t, ok, "expected ValidationErrors, got %T", err)
			assert.Equal(t, tt.wantMsgs, verrs.Messages())
		})
	}
}

func TestRegisterRequest_Validate_ShortMismatchedPassword(t *testing.T) {
	// A short confirmation that also mismatches must report both problems.
	req := validRegisterRequest()
	req.Password = "abc"
	req.Password2 = "abcd"

	err := req.Validate()
	require.Error(t, err)
	verrs, ok := apperrors.AsValidationErrors(err)
	require.True(t, ok)
	assert.Len(t, verrs, 2)
	assert.True(t, apperrors.IsValidation(verrs[0]))
	assert.True(t, apperrors.IsValidation(verrs[1]))
}
