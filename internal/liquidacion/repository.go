// internal/liquidacion/repository.go
package liquidacion

import (
	"gorm.io/gorm"

	"github.com/SegurosCumbre/api-corredora/internal/documento"
)

// Repository encapsula el acceso a datos de Liquidaciones.
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

// Crear inserta la liquidación junto con sus deducciones.
func (r *Repository) Crear(l *Liquidacion) error {
	return r.DB.Create(l).Error
}

// BuscarPorID busca una liquidación con sus deducciones.
func (r *Repository) BuscarPorID(id uint) (*Liquidacion, error) {
	var l Liquidacion
	if err := r.DB.Preload("Deducciones").First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// ListarTodas devuelve todas las liquidaciones, las más recientes primero.
func (r *Repository) ListarTodas() ([]Liquidacion, error) {
	var liquidaciones []Liquidacion
	err := r.DB.Preload("Deducciones").Order("created_at DESC").Find(&liquidaciones).Error
	return liquidaciones, err
}

// ListarPorAgente devuelve las liquidaciones de un agente.
func (r *Repository) ListarPorAgente(agenteID uint) ([]Liquidacion, error) {
	var liquidaciones []Liquidacion
	err := r.DB.Preload("Deducciones").
		Where("agente_id = ?", agenteID).
		Order("created_at DESC").
		Find(&liquidaciones).Error
	return liquidaciones, err
}

// ActualizarEstado persiste solo el campo estado.
func (r *Repository) ActualizarEstado(id uint, estado string) error {
	return r.DB.Model(&Liquidacion{}).Where("id = ?", id).Update("estado", estado).Error
}

// GuardarRuta persiste la ruta del documento según su tipo. Es una
// actualización separada de la transacción que creó o actualizó la
// liquidación: el renderizado nunca condiciona el estado.
func (r *Repository) GuardarRuta(id uint, tipo documento.TipoDocumento, ruta string) error {
	columna := "ruta_documento"
	if tipo == documento.TipoPago {
		columna = "ruta_documento_pago"
	}
	return r.DB.Model(&Liquidacion{}).Where("id = ?", id).Update(columna, ruta).Error
}
