package inventory

// Summary contadores de la vista de control de stock.
type Summary struct {
	TotalProducts int // productos registrados
	TotalItems    int // suma de todas las cantidades
	LowStock      int // 0 < cantidad <= umbral
	OutOfStock    int // cantidad en cero
}

// Summary calcula los contadores sobre la instantánea actual del ledger.
func (uc *UseCase) Summary() Summary {
	var s Summary
	for _, p := range uc.ledger.List() {
		s.TotalProducts++
		s.TotalItems += p.Quantity
		switch {
		case p.Quantity <= 0:
			s.OutOfStock++
		case p.Quantity <= uc.policy.LowStockThreshold:
			s.LowStock++
		}
	}
	return s
}
