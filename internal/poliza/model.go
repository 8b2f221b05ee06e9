package poliza

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados de pago de una póliza. La transición es siempre derivada del
// saldo, nunca se asigna a mano fuera de AplicarPago.
const (
	EstadoPendiente          = "pendiente"
	EstadoParcialmentePagado = "parcialmente_pagado"
	EstadoPagado             = "pagado"
)

var ErrMontoInvalido = errors.New("el monto del pago debe ser mayor que cero")

// Poliza concentra los campos contables de una póliza emitida.
// PrimaTotal queda fija en la emisión; MontoPagado solo crece y el resto
// se deriva. La única vía de mutación es el conciliador de pagos.
type Poliza struct {
	gorm.Model
	NumeroPoliza   string          `gorm:"size:50;not null;uniqueIndex" json:"numeroPoliza"`
	Tomador        string          `gorm:"size:255" json:"tomador"`
	PrimaTotal     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"primaTotal"`
	MontoPagado    decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"montoPagado"`
	SaldoPendiente decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"saldoPendiente"`
	EstadoPago     string          `gorm:"size:50;not null;default:'pendiente';index" json:"estadoPago"`
	TasaComision   decimal.Decimal `gorm:"type:numeric(6,4);not null" json:"tasaComision"`
	AgenteID       uint            `gorm:"not null;index" json:"agenteId"`
}

// AplicarPago acredita un pago al libro de la póliza y deriva el nuevo
// estado. Es total para cualquier monto positivo; un sobrepago deja el
// saldo en negativo (saldo a favor) y la póliza en "pagado".
func (p *Poliza) AplicarPago(monto decimal.Decimal) error {
	if monto.LessThanOrEqual(decimal.Zero) {
		return ErrMontoInvalido
	}
	p.MontoPagado = p.MontoPagado.Add(monto)
	p.SaldoPendiente = p.PrimaTotal.Sub(p.MontoPagado)
	p.EstadoPago = derivarEstado(p.MontoPagado, p.SaldoPendiente)
	return nil
}

func derivarEstado(pagado, saldo decimal.Decimal) string {
	switch {
	case saldo.LessThanOrEqual(decimal.Zero):
		return EstadoPagado
	case pagado.GreaterThan(decimal.Zero):
		return EstadoParcialmentePagado
	default:
		return EstadoPendiente
	}
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Poliza{})
}
