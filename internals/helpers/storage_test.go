package helper

import (
	"strings"
	"testing"
)

func TestSafeExt(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
	}{
		{name: "extensión normal", filename: "evidencia.pdf", want: ".pdf"},
		{name: "mayúsculas se normalizan", filename: "FOTO.JPG", want: ".jpg"},
		{name: "caracteres raros se eliminan", filename: "informe.p df", want: ".pdf"},
		{name: "sin extensión cae a .bin", filename: "archivo", want: ".bin"},
		{name: "extensión absurda cae a .bin", filename: "x.estaextensionesmuylarga", want: ".bin"},
		{name: "solo cuenta la última extensión", filename: "taller.final.docx", want: ".docx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := safeExt(tt.filename); got != tt.want {
				t.Errorf("safeExt(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestGenerateBlobPath(t *testing.T) {
	rel := GenerateBlobPath("anexos", "../../etc/passwd.txt")

	if !strings.HasPrefix(rel, "anexos/") {
		t.Errorf("la ruta debe quedar bajo la carpeta pedida, got %q", rel)
	}
	if !strings.HasSuffix(rel, ".txt") {
		t.Errorf("la ruta debe conservar la extensión saneada, got %q", rel)
	}
	if strings.Contains(rel, "..") || strings.Contains(rel, "passwd") {
		t.Errorf("la ruta no debe depender del nombre original, got %q", rel)
	}
}

func TestGenerateBlobPathEsOpaca(t *testing.T) {
	a := GenerateBlobPath("fotos", "misma.png")
	b := GenerateBlobPath("fotos", "misma.png")
	if a == b {
		t.Error("dos blobs del mismo nombre deben recibir rutas distintas")
	}
}
