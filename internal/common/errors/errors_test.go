package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code   ErrorCode
		status int
	}{
		{ErrCodeRequiredFieldMissing, 400},
		{ErrCodeInvalidNationalID, 400},
		{ErrCodeInvalidEmail, 400},
		{ErrCodePhotoMissing, 400},
		{ErrCodeAttachmentTooLarge, 400},
		{ErrCodeUnsupportedMedia, 400},
		{ErrCodeMalformedRequest, 400},
		{ErrCodeSchemaValidation, 400},
		{ErrCodeFontUnavailable, 500},
		{ErrCodeRenderFailed, 500},
		{ErrCodeEmailSendFailed, 500},
		{ErrCodeInternal, 500},
		{ErrorCode("SOMETHING_NEW"), 500},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.code))
		})
	}
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(ErrCodeRequiredFieldMissing))
	assert.True(t, IsValidation(ErrCodeInvalidNationalID))
	assert.True(t, IsValidation(ErrCodePhotoMissing))

	assert.False(t, IsValidation(ErrCodeRenderFailed))
	assert.False(t, IsValidation(ErrCodeFontUnavailable))
	assert.False(t, IsValidation(ErrCodeInternal))
	assert.False(t, IsValidation(ErrorCode("SOMETHING_NEW")), "unknown codes are not validation")
}

func TestNormalize(t *testing.T) {
	stdErr := NewRenderFailedError(errors.New("boom"))
	assert.Same(t, stdErr, Normalize(stdErr), "already-structured errors pass through")

	wrapped := Normalize(errors.New("boom"))
	require.NotNil(t, wrapped)
	assert.Equal(t, ErrCodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Details, "boom")
}

func TestStandardError_Error(t *testing.T) {
	stdErr := NewInvalidEmailError("nope")
	assert.Contains(t, stdErr.Error(), string(ErrCodeInvalidEmail))
	assert.False(t, stdErr.Retryable)
}
