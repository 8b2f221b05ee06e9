// internal/liquidacion/dto.go
package liquidacion

import "github.com/shopspring/decimal"

type DeduccionDTO struct {
	Descripcion string          `json:"descripcion" validate:"required"`
	Monto       decimal.Decimal `json:"monto" validate:"required"`
}

// CrearLiquidacionDTO es el cuerpo de POST /liquidaciones. Las fechas
// vienen como "2006-01-02" y delimitan una ventana inclusiva.
type CrearLiquidacionDTO struct {
	AgenteID    uint           `json:"agenteId" validate:"required"`
	FechaInicio string         `json:"fechaInicio" validate:"required"`
	FechaFin    string         `json:"fechaFin" validate:"required"`
	Deducciones []DeduccionDTO `json:"deducciones" validate:"dive"`
}

// ActualizarLiquidacionDTO es el cuerpo de PUT /liquidaciones/{id}.
// Al menos un campo debe venir presente.
type ActualizarLiquidacionDTO struct {
	Estado               *string `json:"estado"`
	GenerarDocumentoPago bool    `json:"generarDocumentoPago"`
	GenerarDocumentoPre  bool    `json:"generarDocumentoPre"`
}

// GenerarDocumentoDTO es el cuerpo de POST /liquidaciones/{id}/documentos,
// el camino manual de reintento cuando un renderizado falló.
type GenerarDocumentoDTO struct {
	Tipo string `json:"tipo" validate:"required,oneof=pre-liquidacion pago"`
}
