// internal/pago/repository.go
package pago

import (
	"time"

	"gorm.io/gorm"
)

// Repository encapsula el acceso a datos de Pagos.
type Repository struct {
	DB *gorm.DB
}

// NewRepository instancia un nuevo repositorio.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// WithDB devuelve una copia del repo usando un *gorm.DB específico (ej.: tx).
func (r *Repository) WithDB(db *gorm.DB) *Repository {
	if db == nil {
		db = r.DB
	}
	return &Repository{DB: db}
}

// Crear inserta un pago nuevo. No existe Update ni Delete: los pagos son
// inmutables.
func (r *Repository) Crear(p *Pago) error {
	return r.DB.Create(p).Error
}

// ExisteReferencia indica si ya hay un pago con la misma referencia
// externa para la misma póliza. Guarda de idempotencia contra la
// re-aplicación del mismo archivo bancario.
func (r *Repository) ExisteReferencia(polizaID uint, referencia string) (bool, error) {
	var cuenta int64
	err := r.DB.Model(&Pago{}).
		Where("poliza_id = ? AND referencia_transaccion = ?", polizaID, referencia).
		Count(&cuenta).Error
	return cuenta > 0, err
}

// ListarPorPoliza devuelve los pagos de una póliza en orden cronológico.
func (r *Repository) ListarPorPoliza(polizaID uint) ([]Pago, error) {
	var pagos []Pago
	err := r.DB.
		Where("poliza_id = ?", polizaID).
		Order("fecha_pago ASC, id ASC").
		Find(&pagos).Error
	return pagos, err
}

// ListarSinLiquidar devuelve los pagos de un agente dentro de la ventana
// [desde, hasta] (inclusive) que todavía no fueron reclamados por
// ninguna liquidación.
func (r *Repository) ListarSinLiquidar(agenteID uint, desde, hasta time.Time) ([]Pago, error) {
	var pagos []Pago
	err := r.DB.
		Where("agente_id = ? AND fecha_pago >= ? AND fecha_pago <= ? AND liquidacion_id IS NULL",
			agenteID, desde, hasta).
		Order("fecha_pago ASC, id ASC").
		Find(&pagos).Error
	return pagos, err
}

// ListarPorLiquidacion devuelve los pagos reclamados por una liquidación.
func (r *Repository) ListarPorLiquidacion(liquidacionID uint) ([]Pago, error) {
	var pagos []Pago
	err := r.DB.
		Where("liquidacion_id = ?", liquidacionID).
		Order("fecha_pago ASC, id ASC").
		Find(&pagos).Error
	return pagos, err
}

// ReclamarParaLiquidacion marca los pagos como incluidos en una
// liquidación. Se ejecuta dentro de la misma transacción que crea la
// liquidación; es la única escritura permitida sobre un pago existente.
func (r *Repository) ReclamarParaLiquidacion(ids []uint, liquidacionID uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.DB.Model(&Pago{}).
		Where("id IN ? AND liquidacion_id IS NULL", ids).
		Update("liquidacion_id", liquidacionID).Error
}
