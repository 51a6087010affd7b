package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"slices"

	"smart-gmao/pkg/config"
	apperrors "smart-gmao/pkg/errors"
)

// ValidateFile проверяет размер и MIME-тип файла.
// contextName - ключ из config.UploadContexts, field - имя поля формы для ошибки.
func ValidateFile(fileHeader *multipart.FileHeader, file io.ReadSeeker, contextName, field string) error {
	rules, ok := config.UploadContexts[contextName]
	if !ok {
		return fmt.Errorf("внутренняя ошибка: неизвестный контекст загрузки '%s'", contextName)
	}

	if rules.MaxSizeMB > 0 {
		maxSizeBytes := rules.MaxSizeMB * 1024 * 1024
		if fileHeader.Size > maxSizeBytes {
			return apperrors.NewValidationError(field, "размер файла (%.2f MB) превышает лимит в %d MB",
				float64(fileHeader.Size)/1024/1024, rules.MaxSizeMB)
		}
	}

	// Тип определяем по первым 512 байтам, а не по расширению
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return fmt.Errorf("ошибка чтения файла: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("ошибка обработки файла: %w", err)
	}

	mimeType := http.DetectContentType(buffer[:n])
	if !slices.Contains(rules.AllowedMimeTypes, mimeType) {
		return apperrors.NewValidationError(field, "недопустимый формат файла: %s", mimeType)
	}
	return nil
}
