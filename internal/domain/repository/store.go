package repository

// Store define el puerto hacia el almacén persistido clave/valor.
// Cada clave guarda una colección serializada como arreglo JSON; la
// escritura es síncrona (write-through en cada mutación).
type Store interface {
	// Get devuelve el valor de la clave. found=false si la clave no existe.
	Get(key string) (value []byte, found bool, err error)
	// Put escribe el valor de la clave de forma durable.
	Put(key string, value []byte) error
}
