// internal/poliza/repository.go
package poliza

import "gorm.io/gorm"

// Repository encapsula el acceso a datos de Pólizas.
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

// Crear inserta una póliza nueva.
func (r *Repository) Crear(p *Poliza) error {
	return r.DB.Create(p).Error
}

// BuscarPorNumero busca una póliza por su número de negocio.
func (r *Repository) BuscarPorNumero(numero string) (*Poliza, error) {
	var p Poliza
	if err := r.DB.Where("numero_poliza = ?", numero).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// BuscarPorID busca una póliza por su ID.
func (r *Repository) BuscarPorID(id uint) (*Poliza, error) {
	var p Poliza
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// ListarTodas devuelve todas las pólizas ordenadas por número.
func (r *Repository) ListarTodas() ([]Poliza, error) {
	var polizas []Poliza
	err := r.DB.Order("numero_poliza ASC").Find(&polizas).Error
	return polizas, err
}

// ListarPorEstado devuelve las pólizas con un estado de pago dado.
func (r *Repository) ListarPorEstado(estado string) ([]Poliza, error) {
	var polizas []Poliza
	err := r.DB.Where("estado_pago = ?", estado).Order("numero_poliza ASC").Find(&polizas).Error
	return polizas, err
}

// ActualizarLibro persiste únicamente los campos contables de la póliza.
// Se usa dentro de la transacción de cada fila de conciliación.
func (r *Repository) ActualizarLibro(p *Poliza) error {
	return r.DB.Model(&Poliza{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"monto_pagado":    p.MontoPagado,
		"saldo_pendiente": p.SaldoPendiente,
		"estado_pago":     p.EstadoPago,
	}).Error
}
