// Package documento define el contrato con el servicio externo que
// renderiza liquidaciones. El núcleo solo conoce esta interfaz: una
// vista aplanada entra, una ruta de almacenamiento sale.
package documento

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// TipoDocumento distingue el estado de cuenta previo del definitivo.
type TipoDocumento string

const (
	TipoPreLiquidacion TipoDocumento = "pre-liquidacion"
	TipoPago           TipoDocumento = "pago"
)

// VistaLiquidacion es la proyección que consume el renderizador.
type VistaLiquidacion struct {
	ID               uint            `json:"id"`
	NombreAgente     string          `json:"nombreAgente"`
	FechaInicio      time.Time       `json:"fechaInicio"`
	FechaFin         time.Time       `json:"fechaFin"`
	TotalComisiones  decimal.Decimal `json:"totalComisiones"`
	TotalDeducciones decimal.Decimal `json:"totalDeducciones"`
	PagoNeto         decimal.Decimal `json:"pagoNeto"`
	Estado           string          `json:"estado"`
	CreadaEn         time.Time       `json:"creadaEn"`
}

// Gateway renderiza una liquidación y devuelve la ruta del documento.
type Gateway interface {
	Generar(vista VistaLiquidacion, tipo TipoDocumento) (string, error)
}

// GatewayHTTP llama al servicio de renderizado vía HTTP.
type GatewayHTTP struct {
	URL     string
	Cliente *http.Client
}

func NewGatewayHTTP(url string) *GatewayHTTP {
	return &GatewayHTTP{
		URL:     url,
		Cliente: &http.Client{Timeout: 30 * time.Second},
	}
}

func (g *GatewayHTTP) Generar(vista VistaLiquidacion, tipo TipoDocumento) (string, error) {
	payload := struct {
		Tipo        TipoDocumento    `json:"tipo"`
		Liquidacion VistaLiquidacion `json:"liquidacion"`
	}{Tipo: tipo, Liquidacion: vista}

	cuerpo, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("error al serializar la liquidación: %w", err)
	}

	resp, err := g.Cliente.Post(g.URL, "application/json", bytes.NewBuffer(cuerpo))
	if err != nil {
		return "", fmt.Errorf("error al llamar al renderizador: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("el renderizador respondió %d", resp.StatusCode)
	}

	var salida struct {
		Ruta string `json:"ruta"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&salida); err != nil {
		return "", fmt.Errorf("respuesta del renderizador inválida: %w", err)
	}
	if salida.Ruta == "" {
		return "", fmt.Errorf("el renderizador no devolvió ruta de documento")
	}
	return salida.Ruta, nil
}
