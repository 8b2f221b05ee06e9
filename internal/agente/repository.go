package agente

import "gorm.io/gorm"

type Repository interface {
	Crear(db *gorm.DB, a *Agente) error
	BuscarPorID(db *gorm.DB, id uint) (*Agente, error)
	ListarTodos(db *gorm.DB) ([]Agente, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Crear(db *gorm.DB, a *Agente) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Agente, error) {
	var agente Agente
	if err := db.First(&agente, id).Error; err != nil {
		return nil, err
	}
	return &agente, nil
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]Agente, error) {
	var agentes []Agente
	err := db.Order("apellido ASC, nombre ASC").Find(&agentes).Error
	return agentes, err
}
