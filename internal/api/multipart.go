package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"
)

// Attachment is a binary file field, already validated by the caller.
type Attachment struct {
	Field       string
	Filename    string
	ContentType string
	Data        []byte
}

// Form collects text fields and attachments for a multipart submission.
type Form struct {
	fields map[string]string
	files  []Attachment
}

func NewForm() *Form {
	return &Form{fields: make(map[string]string)}
}

func (f *Form) Set(name, value string) {
	f.fields[name] = value
}

func (f *Form) Attach(a Attachment) {
	f.files = append(f.files, a)
}

func (f *Form) encode() (contentType string, body *bytes.Buffer, err error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for name, value := range f.fields {
		if err := w.WriteField(name, value); err != nil {
			return "", nil, err
		}
	}

	for _, a := range f.files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(
			`form-data; name=%q; filename=%q`,
			escapeQuotes(a.Field), escapeQuotes(a.Filename),
		))
		h.Set("Content-Type", a.ContentType)

		part, err := w.CreatePart(h)
		if err != nil {
			return "", nil, err
		}
		if _, err := part.Write(a.Data); err != nil {
			return "", nil, err
		}
	}

	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return w.FormDataContentType(), buf, nil
}

func escapeQuotes(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return r.Replace(s)
}
