package notify

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() *Message {
	return &Message{
		From:     "noreply@example.com",
		To:       "admin@example.com",
		ReplyTo:  "applicant@example.com",
		Subject:  "ใบสมัครงานใหม่: ช่างเทคนิค",
		HTMLBody: "<html><body>hello</body></html>",
		Attachments: []Attachment{
			{Filename: "doc.pdf", ContentType: "application/pdf", Content: []byte("%PDF-1.4 test")},
			{Filename: "photo.png", ContentType: "image/png", Content: bytes.Repeat([]byte{0xAB}, 200)},
		},
	}
}

func TestBuildMIME_ParsesAsValidMail(t *testing.T) {
	msg := testMessage()
	messageID, raw := BuildMIME(msg, "smtp.example.com")

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	assert.Equal(t, msg.From, parsed.Header.Get("From"))
	assert.Equal(t, msg.To, parsed.Header.Get("To"))
	assert.Equal(t, msg.ReplyTo, parsed.Header.Get("Reply-To"))
	assert.Equal(t, messageID, parsed.Header.Get("Message-ID"))
	assert.Contains(t, messageID, "@smtp.example.com>")

	decoded, err := new(mime.WordDecoder).DecodeHeader(parsed.Header.Get("Subject"))
	require.NoError(t, err)
	assert.Equal(t, msg.Subject, decoded)
}

func TestBuildMIME_AttachmentsRoundTrip(t *testing.T) {
	msg := testMessage()
	_, raw := BuildMIME(msg, "smtp.example.com")

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/mixed", mediaType)

	mr := multipart.NewReader(parsed.Body, params["boundary"])

	// first part is the HTML body
	part, err := mr.NextPart()
	require.NoError(t, err)
	body, err := io.ReadAll(part)
	require.NoError(t, err)
	assert.Contains(t, string(body), "hello")

	// then one part per attachment, base64 round-trippable
	for _, want := range msg.Attachments {
		part, err = mr.NextPart()
		require.NoError(t, err)
		assert.Equal(t, want.Filename, part.FileName())

		encoded, err := io.ReadAll(part)
		require.NoError(t, err)
		content, err := base64.StdEncoding.DecodeString(
			strings.ReplaceAll(strings.ReplaceAll(string(encoded), "\r", ""), "\n", ""))
		require.NoError(t, err)
		assert.Equal(t, want.Content, content)
	}

	_, err = mr.NextPart()
	assert.Equal(t, io.EOF, err)
}

func TestBuildMIME_NoAttachmentsIsPlainHTML(t *testing.T) {
	msg := testMessage()
	msg.Attachments = nil
	_, raw := BuildMIME(msg, "smtp.example.com")

	parsed, err := mail.ReadMessage(bytes.NewReader(raw))
	require.NoError(t, err)

	mediaType, _, err := mime.ParseMediaType(parsed.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "text/html", mediaType)
}

func TestBuildMIME_Base64LinesWithinLimit(t *testing.T) {
	msg := testMessage()
	_, raw := BuildMIME(msg, "smtp.example.com")

	inBody := false
	for _, line := range strings.Split(string(raw), "\r\n") {
		if strings.HasPrefix(line, "Content-Transfer-Encoding") {
			inBody = true
			continue
		}
		if inBody && len(line) > 0 && !strings.HasPrefix(line, "--") {
			assert.LessOrEqual(t, len(line), base64LineLength+2)
		}
	}
}

func TestSanitizeLocalPart(t *testing.T) {
	assert.Equal(t, "admin", sanitizeLocalPart("admin@example.com"))
	assert.Equal(t, "verylongad", sanitizeLocalPart("verylongaddressname@example.com"))
	assert.Equal(t, "user", sanitizeLocalPart("@example.com"))
	assert.Equal(t, "ab12", sanitizeLocalPart("a.b+1-2@example.com"))
}
