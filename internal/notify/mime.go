package notify

import (
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/google/uuid"
)

// base64LineLength is the RFC 2045 maximum encoded line length.
const base64LineLength = 76

// BuildMIME serializes a message as a multipart/mixed MIME document with an
// HTML body part and base64-encoded attachments. hostname feeds the
// Message-ID domain.
func BuildMIME(msg *Message, hostname string) (messageID string, raw []byte) {
	messageID = generateMessageID(msg.To, hostname)
	boundary := "mixed-" + uuid.NewString()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", msg.From))
	b.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	if msg.ReplyTo != "" {
		b.WriteString(fmt.Sprintf("Reply-To: %s\r\n", msg.ReplyTo))
	}
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", encodeSubject(msg.Subject)))
	b.WriteString(fmt.Sprintf("Message-ID: %s\r\n", messageID))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")

	if len(msg.Attachments) == 0 {
		b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		b.WriteString("\r\n")
		b.WriteString(msg.HTMLBody)
		return messageID, []byte(b.String())
	}

	b.WriteString(fmt.Sprintf("Content-Type: multipart/mixed; boundary=%q\r\n", boundary))
	b.WriteString("\r\n")

	b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTMLBody)
	b.WriteString("\r\n")

	for _, a := range msg.Attachments {
		ct := a.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		b.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		b.WriteString(fmt.Sprintf("Content-Type: %s; name=%q\r\n", ct, a.Filename))
		b.WriteString("Content-Transfer-Encoding: base64\r\n")
		b.WriteString(fmt.Sprintf("Content-Disposition: attachment; filename=%q\r\n", a.Filename))
		b.WriteString("\r\n")
		writeBase64(&b, a.Content)
	}

	b.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return messageID, []byte(b.String())
}

// writeBase64 encodes data wrapped to the MIME line limit.
func writeBase64(b *strings.Builder, data []byte) {
	encoded := base64.StdEncoding.EncodeToString(data)
	for len(encoded) > base64LineLength {
		b.WriteString(encoded[:base64LineLength])
		b.WriteString("\r\n")
		encoded = encoded[base64LineLength:]
	}
	if len(encoded) > 0 {
		b.WriteString(encoded)
		b.WriteString("\r\n")
	}
}

// encodeSubject RFC 2047-encodes the subject when it carries non-ASCII
// text, which the bilingual subjects always do.
func encodeSubject(subject string) string {
	return mime.QEncoding.Encode("UTF-8", subject)
}

func generateMessageID(to, hostname string) string {
	return fmt.Sprintf("<%d.%s@%s>", time.Now().UnixNano(), sanitizeLocalPart(to), hostname)
}

func sanitizeLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")
	local = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, local)
	if local == "" {
		return "user"
	}
	if len(local) > 10 {
		local = local[:10]
	}
	return local
}
