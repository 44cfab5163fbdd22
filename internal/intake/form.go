package intake

import (
	"io"
	"net/http"
	"strings"

	"jobapply-server/internal/common/config"
	"jobapply-server/internal/common/errors"
)

// photoContentTypes are the accepted sniffed types for the photo upload.
var photoContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// resumeExtensions are the accepted resume file extensions; resume content
// sniffing is unreliable for office formats so the extension decides.
var resumeExtensions = []string{".pdf", ".doc", ".docx"}

// ParseMultipart reads a multipart form request into a Submission. File
// size limits and content types are enforced here; field-level validation
// happens in Validate.
func ParseMultipart(r *http.Request, cfg config.IntakeConfig) (*Submission, *errors.StandardError) {
	if err := r.ParseMultipartForm(cfg.MaxFormMemory); err != nil {
		return nil, errors.NewMalformedRequestError(err)
	}

	sub := &Submission{Fields: make(map[string]string)}
	for key, values := range r.MultipartForm.Value {
		if len(values) > 0 {
			sub.Fields[key] = values[0]
		}
	}

	photo, stdErr := readFile(r, FilePhoto, cfg.MaxPhotoBytes)
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

	resume, stdErr := readFile(r, FileResume, cfg.MaxResumeBytes)
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

// readFile returns nil without error when the field is absent; presence
// requirements are validation's concern.
func readFile(r *http.Request, field string, limit int64) (*File, *errors.StandardError) {
	f, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, errors.NewMalformedRequestError(err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
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
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func hasResumeExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range resumeExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

func trim(s string) string {
	return strings.TrimSpace(s)
}
