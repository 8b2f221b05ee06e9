package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB arma la conexión a partir de variables de entorno.
func GetDB() (*gorm.DB, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	puerto, err := strconv.ParseUint(dbPort, 10, 32)
	if err != nil {
		puerto = 5432 // puerto por defecto de PostgreSQL
	}

	dbNombre := os.Getenv("DB_NAME")
	dbSecretID := os.Getenv("DB_SECRET_ID")
	return ConectarBaseDatos(uint(puerto), dbHost, dbNombre, dbSecretID)
}
