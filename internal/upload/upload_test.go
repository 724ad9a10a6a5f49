package upload

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo1"; filename="%s"`, filename))
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["photo1"][0]
}

func TestSaver_Save(t *testing.T) {
	dir := t.TempDir()
	saver, err := NewSaver(dir)
	require.NoError(t, err)

	content := []byte("fake image bytes")
	fh := makeFileHeader(t, "foto-sekolah.jpg", "image/jpeg", content)

	name, err := saver.Save(fh)
	require.NoError(t, err)
	assert.Equal(t, ".jpg", filepath.Ext(name))
	// Generated name, not the client's filename.
	assert.NotEqual(t, "foto-sekolah.jpg", name)

	written, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, content, written)
}

func TestSaver_Save_RejectsUnsupportedExtension(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "laporan.pdf", "application/pdf", []byte("%PDF-1.4"))
	_, err = saver.Save(fh)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaver_Save_RejectsMismatchedContentType(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "script.png", "text/html", []byte("<html>"))
	_, err = saver.Save(fh)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestSaver_Save_RejectsOversizedFile(t *testing.T) {
	saver, err := NewSaver(t.TempDir())
	require.NoError(t, err)

	fh := makeFileHeader(t, "besar.jpg", "image/jpeg", []byte("small"))
	fh.Size = MaxFileSize + 1

	_, err = saver.Save(fh)
	assert.ErrorIs(t, err, ErrFileTooLarge)
}
