package upload

import (
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"
)

func header(name, contentType string, size int64) *multipart.FileHeader {
	h := textproto.MIMEHeader{}
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Header:   h,
		Size:     size,
	}
}

func TestValidateDocument(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr bool
	}{
		{"pdf ok", header("proof.pdf", "application/pdf", 1024), false},
		{"jpeg ok", header("site.jpg", "image/jpeg", 5*1024*1024), false},
		{"png ok", header("router.png", "image/png", 100), false},
		{"docx ok", header("report.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 2048), false},
		{"legacy doc ok", header("report.doc", "application/msword", 2048), false},
		{"plain text rejected", header("notes.txt", "text/plain", 10), true},
		{"zip rejected", header("archive.zip", "application/zip", 10), true},
		{"exactly at limit", header("big.pdf", "application/pdf", MaxFileSize), false},
		{"over limit", header("huge.pdf", "application/pdf", MaxFileSize + 1), true},
		{"missing file", nil, true},
		{"no content type, pdf extension", header("proof.pdf", "", 1024), false},
		{"no content type, exe extension", header("malware.exe", "", 1024), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(tt.fh)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDocument() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestInvalidTypeMessage(t *testing.T) {
	// The UI shows this string verbatim; it must not drift.
	err := ValidateDocument(header("notes.txt", "text/plain", 10))
	if !errors.Is(err, ErrInvalidType) {
		t.Fatalf("expected ErrInvalidType, got %v", err)
	}
	want := "Invalid file type. Only PDF, JPEG, PNG, and Word documents are allowed."
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
