// Package images administra el directorio de imágenes de mascotas. Las
// imágenes se copian (no se mueven) dentro del directorio de datos y las
// rutas guardadas son siempre relativas a él.
package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const dirName = "pet_images"

var unsafeChars = regexp.MustCompile(`[^a-z0-9]+`)

type Store struct {
	dataDir string
}

func NewStore(dataDir string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(dataDir, dirName), 0o755); err != nil {
		return nil, fmt.Errorf("images dir: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// Save copia srcPath al directorio administrado como
// pet_images/<nombre-sano>_<petID><ext> y devuelve esa ruta relativa.
// La copia pasa por un archivo de staging con nombre uuid y un rename,
// así nunca queda una imagen a medio escribir bajo el nombre final.
func (s *Store) Save(petName string, petID int64, srcPath string) (string, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("open source image: %w", err)
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(srcPath))
	name := sanitizeName(petName)
	rel := filepath.Join(dirName, fmt.Sprintf("%s_%d%s", name, petID, ext))

	staging := filepath.Join(s.dataDir, dirName, uuid.NewString()+".tmp")
	dst, err := os.Create(staging)
	if err != nil {
		return "", fmt.Errorf("stage image: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(staging)
		return "", fmt.Errorf("copy image: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(staging)
		return "", fmt.Errorf("copy image: %w", err)
	}

	if err := os.Rename(staging, filepath.Join(s.dataDir, rel)); err != nil {
		os.Remove(staging)
		return "", fmt.Errorf("place image: %w", err)
	}
	return rel, nil
}

// Resolve devuelve la ruta absoluta de una ruta relativa guardada.
func (s *Store) Resolve(rel string) string {
	return filepath.Join(s.dataDir, rel)
}

// Remove borra la imagen; que no exista no es error.
func (s *Store) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dataDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func sanitizeName(name string) string {
	safe := unsafeChars.ReplaceAllString(strings.ToLower(name), "_")
	safe = strings.Trim(safe, "_")
	if safe == "" {
		safe = "pet"
	}
	return safe
}
