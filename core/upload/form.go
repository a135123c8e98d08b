package upload

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/dmitrymomot/uploads/core/logger"
)

// Form field names recognised by the classifier.
const (
	FieldName = "name"
	FieldFile = "file"
)

// FormData accumulates the recognised fields of one request.
type FormData struct {
	Name           string
	File           []byte
	HasFile        bool
	ClientFilename string
	StorageName    string
}

// readForm consumes every part of mr. Each part is buffered in full, then
// dispatched on its form name. A later file field replaces an earlier one.
func (s *Service) readForm(ctx context.Context, mr *Stream, id string) (FormData, error) {
	var data FormData

	for {
		if err := ctx.Err(); err != nil {
			return FormData{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		part, err := mr.NextPart()
		// Only a bare io.EOF ends the form; NextPart wraps the EOF of a cut-off body.
		if err == io.EOF {
			if !mr.Terminated() {
				return FormData{}, fmt.Errorf("%w: %w", ErrDecode, ErrUnterminated)
			}
			return data, nil
		}
		if err != nil {
			return FormData{}, fmt.Errorf("%w: %w", ErrDecode, err)
		}

		buf, err := io.ReadAll(part)
		_ = part.Close()
		if err != nil {
			return FormData{}, fmt.Errorf("%w: field %q: %w", ErrDecode, part.FormName(), err)
		}

		switch field := part.FormName(); field {
		case FieldName:
			data.Name = s.decodeName(ctx, buf)

		case FieldFile:
			filename := part.FileName()
			if filename == "" {
				return FormData{}, ErrMissingFilename
			}
			storageName, err := DeriveName(filename, id, s.maxExtLen)
			if err != nil {
				return FormData{}, err
			}
			if data.HasFile {
				s.logger.DebugContext(ctx, "file field replaces earlier candidate",
					logger.Component("upload"),
					logger.Filename("previous_filename", data.ClientFilename),
					logger.Filename("client_filename", filename),
				)
			}
			data.File = buf
			data.HasFile = true
			data.ClientFilename = filename
			data.StorageName = storageName

		default:
			s.logger.DebugContext(ctx, "ignoring form field",
				logger.Component("upload"),
				logger.Key("field", field),
				logger.BytesIn(int64(len(buf))),
			)
		}
	}
}

// decodeName returns the text of the name field, or "" when it is not valid UTF-8.
func (s *Service) decodeName(ctx context.Context, buf []byte) string {
	if !utf8.Valid(buf) {
		s.logger.WarnContext(ctx, "name field is not valid UTF-8, using empty name",
			logger.Component("upload"),
			logger.BytesIn(int64(len(buf))),
		)
		return ""
	}
	return norm.NFC.String(string(buf))
}
