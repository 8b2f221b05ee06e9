package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciales struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obtenerCredenciales resuelve usuario/contraseña de la base de datos.
// Primero variables de entorno; si no están, Secrets Manager.
func obtenerCredenciales(secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	contrasena := os.Getenv("DB_PASSWORD")
	if usuario != "" && contrasena != "" {
		return usuario, contrasena, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("error al cargar configuración AWS: %w", err)
	}
	secrets := secretsmanager.NewFromConfig(cfg)

	input := &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	}
	result, err := secrets.GetSecretValue(context.TODO(), input)
	if err != nil {
		return "", "", fmt.Errorf("error al leer el secreto %q: %w", secretID, err)
	}

	var cred credenciales
	if err := json.Unmarshal([]byte(*result.SecretString), &cred); err != nil {
		return "", "", fmt.Errorf("secreto %q con formato inválido: %w", secretID, err)
	}

	return cred.Username, cred.Password, nil
}
