// Package report arma el informe de situación del almoxarifado (resumen,
// productos y movimientos recientes) y delega el render en un generador.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almoxarifado/internal/application/inventory"
	"github.com/jhoicas/almoxarifado/internal/domain/entity"
)

const recentMovements = 20 // movimientos incluidos en el informe

// Data contenido del informe, ya listo para renderizar.
type Data struct {
	GeneratedAt time.Time
	Summary     inventory.Summary
	Products    []entity.Product
	Movements   []entity.StockMovement // más reciente primero, acotado
}

// Generator puerto de render del informe (implementado con Maroto).
type Generator interface {
	GenerateStockReport(ctx context.Context, data Data) ([]byte, error)
}

// StockReportUseCase arma el informe desde el estado actual del inventario.
type StockReportUseCase struct {
	inv *inventory.UseCase
	gen Generator
}

// NewStockReportUseCase construye el caso de uso.
func NewStockReportUseCase(inv *inventory.UseCase, gen Generator) *StockReportUseCase {
	return &StockReportUseCase{inv: inv, gen: gen}
}

// Generate produce los bytes del informe.
func (uc *StockReportUseCase) Generate(ctx context.Context) ([]byte, error) {
	movements := uc.inv.Movements()
	if len(movements) > recentMovements {
		movements = movements[:recentMovements]
	}
	data := Data{
		GeneratedAt: time.Now(),
		Summary:     uc.inv.Summary(),
		Products:    uc.inv.Products(),
		Movements:   movements,
	}
	raw, err := uc.gen.GenerateStockReport(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("generar informe: %w", err)
	}
	return raw, nil
}
