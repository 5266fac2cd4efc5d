package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidUnit       = errors.New("unidad de medida inválida")
	ErrNegativeQuantity  = errors.New("la cantidad no puede ser negativa")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
