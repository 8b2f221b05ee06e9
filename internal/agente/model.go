package agente

import "gorm.io/gorm"

// Agente es un corredor responsable de pólizas; cobra comisiones por
// los pagos que procesa y recibe liquidaciones periódicas.
type Agente struct {
	gorm.Model
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo" gorm:"unique"`
	Telefono string `json:"telefono"`
	Activo   bool   `json:"activo" gorm:"default:true"`
}

// NombreCompleto devuelve "Nombre Apellido" para documentos y reportes.
func (a *Agente) NombreCompleto() string {
	if a.Apellido == "" {
		return a.Nombre
	}
	return a.Nombre + " " + a.Apellido
}

// Migrate crea la tabla en la base de datos.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Agente{})
}
