// pkg/filestorage/local_filestorage.go

package filestorage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix - маршрут, по которому echo отдаёт basePath как статику.
const URLPrefix = "/uploads/"

type FileStorageInterface interface {
	// Save возвращает публичный URL сохранённого файла.
	Save(file io.Reader, originalFileName string, prefix string) (fileURL string, err error)
	Delete(fileURL string) error
}

type LocalFileStorage struct {
	basePath string
	now      func() time.Time
}

func NewLocalFileStorage(basePath string) (*LocalFileStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию: %w", err)
	}
	return &LocalFileStorage{basePath: basePath, now: time.Now}, nil
}

func (s *LocalFileStorage) Save(file io.Reader, originalFileName string, prefix string) (string, error) {
	now := s.now()
	ext := strings.ToLower(filepath.Ext(originalFileName))
	uniqueFileName := fmt.Sprintf("%s-%s%s", now.Format("2006-01-02"), uuid.New().String(), ext)

	datePath := now.Format("2006/01/02")
	fullDirPath := filepath.Join(s.basePath, prefix, datePath)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return "", err
	}

	return URLPrefix + filepath.ToSlash(filepath.Join(prefix, datePath, uniqueFileName)), nil
}

// Delete принимает URL вида "/uploads/tickets/2024/08/21/file.jpg"; отсутствующий файл не ошибка.
func (s *LocalFileStorage) Delete(fileURL string) error {
	relativePath := filepath.Clean(strings.TrimPrefix(fileURL, URLPrefix))
	if strings.HasPrefix(relativePath, "..") || filepath.IsAbs(relativePath) {
		return fmt.Errorf("недопустимый путь к файлу: %s", fileURL)
	}

	err := os.Remove(filepath.Join(s.basePath, relativePath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
