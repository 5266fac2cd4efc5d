package localstore

import "github.com/jhoicas/almoxarifado/internal/domain/repository"

var _ repository.Store = (*MemStore)(nil)

// MemStore implementación en memoria de repository.Store para pruebas.
// Cuenta las escrituras (útil para verificar que la migración de carga es
// idempotente) y permite inyectar un fallo de escritura vía PutErr.
type MemStore struct {
	data map[string][]byte

	Puts   int   // escrituras realizadas
	PutErr error // si no es nil, Put falla con este error
}

// NewMemStore construye un almacén en memoria vacío.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string][]byte{}}
}

// Get devuelve una copia del valor de la clave.
func (s *MemStore) Get(key string) ([]byte, bool, error) {
	raw, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

// Put guarda una copia del valor.
func (s *MemStore) Put(key string, value []byte) error {
	if s.PutErr != nil {
		return s.PutErr
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.data[key] = cp
	s.Puts++
	return nil
}
