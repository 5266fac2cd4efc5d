package entity

import "time"

// Output es el registro histórico de salidas anterior al log unificado de
// movimientos. Se mantiene por compatibilidad con datos ya persistidos:
// cada salida nueva se escribe en ambos logs.
type Output struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	Quantity        int       `json:"quantity"`
	Destination     string    `json:"destination"`
	ResponsibleName string    `json:"responsibleName"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"createdAt"`
}
