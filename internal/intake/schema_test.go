package intake

import (
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobapply-server/internal/common/errors"
)

func jsonBody(t *testing.T, sub jsonSubmission) []byte {
	t.Helper()
	body, err := json.Marshal(sub)
	require.NoError(t, err)
	return body
}

func TestParseJSON_Success(t *testing.T) {
	body := jsonBody(t, jsonSubmission{
		Fields: map[string]string{FieldPosition: "ช่างเทคนิค"},
		Photo: &jsonAttachment{
			Filename: "me.png",
			Content:  base64.StdEncoding.EncodeToString(pngStub),
		},
		Resume: &jsonAttachment{
			Filename:    "resume.pdf",
			ContentType: "application/pdf",
			Content:     base64.StdEncoding.EncodeToString([]byte("%PDF-1.4")),
		},
	})

	sub, stdErr := ParseJSON(body, testIntakeConfig())

	require.Nil(t, stdErr)
	assert.Equal(t, "ช่างเทคนิค", sub.Get(FieldPosition))
	require.NotNil(t, sub.Photo)
	assert.Equal(t, "image/png", sub.Photo.ContentType, "sniffed type overrides the declared one")
	require.NotNil(t, sub.Resume)
	assert.Equal(t, "application/pdf", sub.Resume.ContentType)
}

func TestParseJSON_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing fields object", body: `{"photo": {"filename": "a.png", "content": "aaaa"}}`},
		{name: "non-string field value", body: `{"fields": {"age": 30}}`},
		{name: "unknown top-level key", body: `{"fields": {}, "extra": true}`},
		{name: "attachment without content", body: `{"fields": {}, "photo": {"filename": "a.png"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stdErr := ParseJSON([]byte(tt.body), testIntakeConfig())

			require.NotNil(t, stdErr)
			assert.Equal(t, errors.ErrCodeSchemaValidation, stdErr.Code)
		})
	}
}

func TestParseJSON_MalformedBody(t *testing.T) {
	_, stdErr := ParseJSON([]byte(`{not json`), testIntakeConfig())

	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeMalformedRequest, stdErr.Code)
}

func TestParseJSON_BadBase64(t *testing.T) {
	body := jsonBody(t, jsonSubmission{
		Fields: map[string]string{},
		Photo:  &jsonAttachment{Filename: "a.png", Content: "!!! not base64 !!!"},
	})

	_, stdErr := ParseJSON(body, testIntakeConfig())

	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeMalformedRequest, stdErr.Code)
}

func TestParseJSON_OversizedAttachment(t *testing.T) {
	cfg := testIntakeConfig()
	cfg.MaxPhotoBytes = 8

	body := jsonBody(t, jsonSubmission{
		Fields: map[string]string{},
		Photo: &jsonAttachment{
			Filename: "big.png",
			Content:  base64.StdEncoding.EncodeToString(pngStub),
		},
	})

	_, stdErr := ParseJSON(body, cfg)

	require.NotNil(t, stdErr)
	assert.Equal(t, errors.ErrCodeAttachmentTooLarge, stdErr.Code)
}
