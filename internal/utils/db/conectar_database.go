package db

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConectarBaseDatos abre la conexión Postgres usada por toda la API.
func ConectarBaseDatos(puerto uint, host, nombre, secretID string) (*gorm.DB, error) {
	sslDeshabilitado := os.Getenv("DB_SSL_MODE_DISABLE")
	var sslMode string
	if sslDeshabilitado == "true" {
		sslMode = " sslmode=disable"
	}
	usuario, contrasena, err := obtenerCredenciales(secretID)
	if err != nil {
		return nil, err
	}
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d%s", host, usuario, contrasena, nombre, puerto, sslMode)
	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		return nil, fmt.Errorf("error al conectar a la base de datos: %w", err)
	}

	return database, nil
}
