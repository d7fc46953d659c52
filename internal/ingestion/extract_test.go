package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_PlainText(t *testing.T) {
	content, err := ExtractText("resume.txt", []byte("Ada Lovelace\nEngineer"))
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace\nEngineer", content)
}

func TestExtractText_ExtensionIsCaseInsensitive(t *testing.T) {
	content, err := ExtractText("RESUME.TXT", []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestExtractText_UnsupportedType(t *testing.T) {
	for _, name := range []string{"resume.doc", "resume.png", "resume", "archive.zip"} {
		t.Run(name, func(t *testing.T) {
			_, err := ExtractText(name, []byte("data"))
			var uerr *UnsupportedTypeError
			require.ErrorAs(t, err, &uerr)
			assert.Equal(t, name, uerr.Filename)
		})
	}
}

func TestExtractText_CorruptPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("not a pdf"))
	require.Error(t, err)
}

func TestExtractText_CorruptDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("not a docx"))
	require.Error(t, err)
}

func TestReadLimited(t *testing.T) {
	data, err := ReadLimited(strings.NewReader("small"), 100)
	require.NoError(t, err)
	assert.Equal(t, []byte("small"), data)

	_, err = ReadLimited(strings.NewReader("this is too long"), 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit")
}
