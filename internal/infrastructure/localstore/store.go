// Package localstore implementa la persistencia local del almoxarifado:
// un almacén clave/valor respaldado por archivos, donde cada clave guarda
// una colección como arreglo JSON, más los adaptadores de repositorio que
// mantienen cada colección en memoria y la reescriben en cada mutación.
package localstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/almoxarifado/internal/domain/repository"
)

// Claves de las colecciones persistidas. Los nombres vienen de los datos
// ya escritos por versiones anteriores de la aplicación; no cambiarlos.
const (
	productsKey  = "inventory_products"
	movementsKey = "inventory_movements"
	outputsKey   = "inventory_outputs"
)

var _ repository.Store = (*FileStore)(nil)

// FileStore guarda cada clave como archivo <clave>.json dentro de un
// directorio de datos. La escritura es síncrona: archivo temporal + rename
// para no dejar un JSON a medio escribir.
type FileStore struct {
	dir string
}

// NewFileStore construye el almacén creando el directorio si no existe.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de datos: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get devuelve el contenido de la clave; found=false si nunca se escribió.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("leer %s: %w", key, err)
	}
	return raw, true, nil
}

// Put escribe el valor de forma durable (temporal + rename atómico).
func (s *FileStore) Put(key string, value []byte) error {
	target := s.path(key)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		return fmt.Errorf("escribir %s: %w", key, err)
	}
	return nil
}
