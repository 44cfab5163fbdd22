package intake

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/errors"
)

// submissionSchema validates the JSON submission body shape before any
// decoding. Field-level rules (required fields, national ID, email) stay in
// Validate so both intake paths share them.
const submissionSchema = `{
  "type": "object",
  "required": ["fields"],
  "additionalProperties": false,
  "properties": {
    "fields": {
      "type": "object",
      "additionalProperties": {"type": "string"}
    },
    "photo": {"$ref": "#/definitions/attachment"},
    "resume": {"$ref": "#/definitions/attachment"}
  },
  "definitions": {
    "attachment": {
      "type": "object",
      "required": ["filename", "content"],
      "additionalProperties": false,
      "properties": {
        "filename": {"type": "string", "minLength": 1, "maxLength": 255},
        "contentType": {"type": "string", "maxLength": 100},
        "content": {"type": "string", "minLength": 1}
      }
    }
  }
}`

// jsonAttachment mirrors the wire shape of an uploaded file in a JSON
// submission: content is base64.
type jsonAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType,omitempty"`
	Content     string `json:"content"`
}

type jsonSubmission struct {
	Fields map[string]string `json:"fields"`
	Photo  *jsonAttachment   `json:"photo,omitempty"`
	Resume *jsonAttachment   `json:"resume,omitempty"`
}

// ParseJSON reads an application/json submission body into a Submission.
func ParseJSON(body []byte, cfg config.IntakeConfig) (*Submission, *errors.StandardError) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(submissionSchema),
		gojsonschema.NewBytesLoader(body),
	)
	if err != nil {
		return nil, errors.NewMalformedRequestError(err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, errors.NewSchemaValidationError(strings.Join(msgs, "; "))
	}

	var js jsonSubmission
	if err := json.Unmarshal(body, &js); err != nil {
		return nil, errors.NewMalformedRequestError(err)
	}

	sub := &Submission{Fields: js.Fields}
	if sub.Fields == nil {
		sub.Fields = make(map[string]string)
	}

	photo, stdErr := decodeAttachment(js.Photo, FilePhoto, cfg.MaxPhotoBytes)
	if stdErr != nil {
		return nil, stdErr
	}
	if photo != nil {
		ct := http.DetectContentType(photo.Data)
		if !photoContentTypes[ct] {
			return nil, errors.NewUnsupportedMediaError(FilePhoto, ct)
		}
		photo.ContentType = ct
		sub.Photo = photo
	}

	resume, stdErr := decodeAttachment(js.Resume, FileResume, cfg.MaxResumeBytes)
	if stdErr != nil {
		return nil, stdErr
	}
	if resume != nil {
		if !hasResumeExtension(resume.Filename) {
			return nil, errors.NewUnsupportedMediaError(FileResume, resume.Filename)
		}
		if resume.ContentType == "" {
			resume.ContentType = "application/octet-stream"
		}
		sub.Resume = resume
	}

	return sub, nil
}

func decodeAttachment(a *jsonAttachment, field string, limit int64) (*File, *errors.StandardError) {
	if a == nil {
		return nil, nil
	}

	data, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		return nil, errors.NewMalformedRequestError(err)
	}
	if int64(len(data)) > limit {
		return nil, errors.NewAttachmentTooLargeError(field, limit)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &File{
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Data:        data,
	}, nil
}
