package upload

import (
	"bytes"
	"io"
	"mime/multipart"
)

// Stream is a multipart body read part by part. It watches the raw bytes for
// the closing delimiter, so a body cut off between parts is never taken for
// a complete form.
type Stream struct {
	parts *multipart.Reader
	body  *terminatedReader
}

// NewStream wraps body, a multipart stream delimited by boundary.
func NewStream(body io.Reader, boundary string) *Stream {
	tr := newTerminatedReader(body, boundary)
	return &Stream{
		parts: multipart.NewReader(tr, boundary),
		body:  tr,
	}
}

// NextPart returns the next part, or io.EOF after the last one.
func (s *Stream) NextPart() (*multipart.Part, error) {
	return s.parts.NextPart()
}

// Terminated reports whether the closing delimiter has been read.
func (s *Stream) Terminated() bool {
	return s.body.terminated
}

// terminatedReader records whether "--boundary--" appeared at the start of a
// line. tail carries the last bytes of the previous read so a delimiter split
// across reads is still found.
type terminatedReader struct {
	r          io.Reader
	delim      []byte
	tail       []byte
	terminated bool
}

func newTerminatedReader(r io.Reader, boundary string) *terminatedReader {
	return &terminatedReader{
		r:     r,
		delim: []byte("\n--" + boundary + "--"),
		// The body may open with the closing delimiter (a form without parts).
		tail: []byte("\n"),
	}
}

func (t *terminatedReader) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if n > 0 && !t.terminated {
		t.observe(p[:n])
	}
	return n, err
}

func (t *terminatedReader) observe(chunk []byte) {
	keep := len(t.delim) - 1
	head := chunk[:min(len(chunk), keep)]

	seam := make([]byte, 0, len(t.tail)+len(head))
	seam = append(seam, t.tail...)
	seam = append(seam, head...)
	if bytes.Contains(seam, t.delim) || bytes.Contains(chunk, t.delim) {
		t.terminated = true
		t.tail = nil
		return
	}

	if len(chunk) >= keep {
		t.tail = append(t.tail[:0], chunk[len(chunk)-keep:]...)
		return
	}
	t.tail = append(t.tail[:0], seam[max(0, len(seam)-keep):]...)
}
