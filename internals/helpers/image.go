package helper

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Pipeline de fotos de perfil: decode (jpg/png/webp) → resize → webp q85.

const (
	maxImageBytes = 5 * 1024 * 1024
	photoMaxSide  = 512
	webpQuality   = 85
)

// ProcessProfilePhoto valida, redimensiona y convierte la imagen subida a
// webp, y la guarda bajo <folder>. Devuelve la ruta relativa del blob.
func ProcessProfilePhoto(folder string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxImageBytes {
		return "", fiber.NewError(fiber.StatusRequestEntityTooLarge, "La imagen supera el tamaño máximo (5MB)")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "No se pudo abrir la imagen subida")
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	var img image.Image
	switch ext {
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Archivo JPEG no válido")
		}
	case ".png":
		img, err = png.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Archivo PNG no válido")
		}
	case ".webp":
		img, err = webp.Decode(src)
		if err != nil {
			return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Archivo WebP no válido")
		}
	default:
		return "", fiber.NewError(fiber.StatusUnsupportedMediaType, "Formato no soportado (jpg, jpeg, png, webp)")
	}

	// Fit mantiene proporción; nunca agranda más allá del original.
	img = imaging.Fit(img, photoMaxSide, photoMaxSide, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo convertir la imagen a WebP")
	}

	rel, err := SaveBlob(folder, uuid.NewString()+".webp", buf)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "No se pudo guardar la imagen")
	}
	return rel, nil
}
