package liquidacion

import (
	"errors"
	"fmt"
	"time"

	"github.com/SegurosCumbre/api-corredora/internal/documento"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Estados de una liquidación. La transición es de un solo sentido:
// generada → pagada.
const (
	EstadoGenerada = "generada"
	EstadoPagada   = "pagada"
)

var (
	ErrEstadoDesconocido  = errors.New("estado de liquidación desconocido")
	ErrTransicionInvalida = errors.New("una liquidación pagada no puede volver a generada")
)

// Deduccion es un descuento con nombre dentro de una liquidación
// (anticipos, retenciones, cargos administrativos).
type Deduccion struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	LiquidacionID uint            `gorm:"not null;index" json:"liquidacionId"`
	Descripcion   string          `gorm:"size:255;not null" json:"descripcion"`
	Monto         decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"monto"`
}

// Liquidacion es el estado de cuenta pagadero de un agente: la suma de
// las comisiones devengadas en una ventana de fechas menos las
// deducciones. El pago neto puede ser negativo si las deducciones
// superan a las comisiones.
type Liquidacion struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	AgenteID          uint            `gorm:"not null;index" json:"agenteId"`
	NombreAgente      string          `gorm:"size:255" json:"nombreAgente"`
	FechaInicio       time.Time       `gorm:"not null" json:"fechaInicio"`
	FechaFin          time.Time       `gorm:"not null" json:"fechaFin"`
	TotalComisiones   decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalComisiones"`
	TotalDeducciones  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"totalDeducciones"`
	PagoNeto          decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"pagoNeto"`
	Estado            string          `gorm:"size:50;not null;default:'generada';index" json:"estado"`
	RutaDocumento     string          `gorm:"size:512" json:"rutaDocumento"`
	RutaDocumentoPago string          `gorm:"size:512" json:"rutaDocumentoPago"`

	Deducciones []Deduccion `gorm:"foreignKey:LiquidacionID;constraint:OnDelete:CASCADE" json:"deducciones"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CambiarEstado aplica la transición de estado. Repetir el estado
// actual es un no-op; retroceder de pagada a generada se rechaza.
func (l *Liquidacion) CambiarEstado(nuevo string) error {
	if nuevo != EstadoGenerada && nuevo != EstadoPagada {
		return fmt.Errorf("%w: %q", ErrEstadoDesconocido, nuevo)
	}
	if l.Estado == EstadoPagada && nuevo == EstadoGenerada {
		return ErrTransicionInvalida
	}
	l.Estado = nuevo
	return nil
}

// Vista aplana la liquidación para el renderizador de documentos.
func (l *Liquidacion) Vista() documento.VistaLiquidacion {
	return documento.VistaLiquidacion{
		ID:               l.ID,
		NombreAgente:     l.NombreAgente,
		FechaInicio:      l.FechaInicio,
		FechaFin:         l.FechaFin,
		TotalComisiones:  l.TotalComisiones,
		TotalDeducciones: l.TotalDeducciones,
		PagoNeto:         l.PagoNeto,
		Estado:           l.Estado,
		CreadaEn:         l.CreatedAt,
	}
}

// Migrate crea las tablas en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Liquidacion{}, &Deduccion{})
}
