package helper

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Almacenamiento de blobs en disco local. Las rutas generadas son opacas
// (uuid + extensión saneada) y relativas a MediaRoot; el backend real de
// archivos queda detrás de este helper.

const defaultMediaRoot = "./media"

func MediaRoot() string {
	if v := strings.TrimSpace(os.Getenv("MEDIA_ROOT")); v != "" {
		return v
	}
	return defaultMediaRoot
}

var extSanitizer = regexp.MustCompile(`[^a-z0-9.]+`)

func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	ext = extSanitizer.ReplaceAllString(ext, "")
	if ext == "" || len(ext) > 10 {
		return ".bin"
	}
	return ext
}

// GenerateBlobPath: <folder>/<uuid><ext>, sin depender del nombre original.
func GenerateBlobPath(folder, originalName string) string {
	return filepath.ToSlash(filepath.Join(folder, uuid.NewString()+safeExt(originalName)))
}

// SaveBlob escribe el contenido y devuelve la ruta relativa generada.
func SaveBlob(folder, originalName string, src io.Reader) (string, error) {
	rel := GenerateBlobPath(folder, originalName)
	abs := filepath.Join(MediaRoot(), filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return "", fmt.Errorf("preparando directorio de media: %w", err)
	}
	dst, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("creando archivo de media: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(abs)
		return "", fmt.Errorf("escribiendo archivo de media: %w", err)
	}
	return rel, nil
}

// SaveMultipartBlob guarda un *multipart.FileHeader con tope de tamaño.
func SaveMultipartBlob(folder string, fh *multipart.FileHeader, maxBytes int64) (string, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("El archivo supera el tamaño máximo (%dMB)", maxBytes/(1024*1024)))
	}
	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "No se pudo abrir el archivo subido")
	}
	defer src.Close()
	return SaveBlob(folder, fh.Filename, src)
}

// RemoveBlob borra un blob por su ruta relativa; ignora el not-found.
func RemoveBlob(rel string) error {
	if strings.TrimSpace(rel) == "" {
		return nil
	}
	abs := filepath.Join(MediaRoot(), filepath.FromSlash(rel))
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
