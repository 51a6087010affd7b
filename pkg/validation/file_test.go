package validation

import (
	"bytes"
	"errors"
	"mime/multipart"
	"testing"

	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestValidateFile(t *testing.T) {
	t.Run("png принимается и курсор возвращается в начало", func(t *testing.T) {
		r := bytes.NewReader(pngHeader)
		err := ValidateFile(&multipart.FileHeader{Filename: "a.png", Size: int64(len(pngHeader))}, r, config.UploadTicketPhoto, "photo")
		require.NoError(t, err)
		assert.Equal(t, int64(len(pngHeader)), int64(r.Len()))
	})

	t.Run("текст отклоняется", func(t *testing.T) {
		r := bytes.NewReader([]byte("just some text"))
		err := ValidateFile(&multipart.FileHeader{Filename: "a.png", Size: 14}, r, config.UploadTicketPhoto, "photo")
		var vErr *apperrors.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "photo", vErr.Field)
	})

	t.Run("слишком большой файл", func(t *testing.T) {
		r := bytes.NewReader(pngHeader)
		err := ValidateFile(&multipart.FileHeader{Filename: "a.png", Size: 11 * 1024 * 1024}, r, config.UploadTicketPhoto, "photo")
		var vErr *apperrors.ValidationError
		assert.True(t, errors.As(err, &vErr))
	})

	t.Run("неизвестный контекст", func(t *testing.T) {
		err := ValidateFile(&multipart.FileHeader{}, bytes.NewReader(nil), "nope", "photo")
		assert.Error(t, err)
	})
}
