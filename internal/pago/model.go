// internal/pago/model.go
package pago

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pago es un abono aplicado contra el saldo de una póliza, junto con la
// comisión devengada para el agente que lo procesó. Una vez creado es
// inmutable: correcciones se hacen con pólizas/endosos, nunca editando
// el pago. LiquidacionID marca el pago como reclamado por una
// liquidación para que ninguna ventana posterior lo vuelva a contar.
type Pago struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	PolizaID              uint            `gorm:"not null;index" json:"polizaId"`
	Monto                 decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"monto"`
	FechaPago             time.Time       `gorm:"not null;index" json:"fechaPago"`
	ReferenciaTransaccion string          `gorm:"size:100;index" json:"referenciaTransaccion"`
	ComisionGanada        decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"comisionGanada"`
	AgenteID              uint            `gorm:"not null;index" json:"agenteId"`
	NumeroAnexo           string          `gorm:"size:50" json:"numeroAnexo"`
	LiquidacionID         *uint           `gorm:"index" json:"liquidacionId"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pago{})
}
