package documento_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SegurosCumbre/api-corredora/internal/documento"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vistaDePrueba() documento.VistaLiquidacion {
	return documento.VistaLiquidacion{
		ID:               7,
		NombreAgente:     "María Quintero",
		FechaInicio:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		FechaFin:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		TotalComisiones:  decimal.NewFromInt(100_000),
		TotalDeducciones: decimal.NewFromInt(10_000),
		PagoNeto:         decimal.NewFromInt(90_000),
		Estado:           "generada",
	}
}

func TestGatewayHTTP_Generar(t *testing.T) {
	servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var entrada struct {
			Tipo        string                     `json:"tipo"`
			Liquidacion documento.VistaLiquidacion `json:"liquidacion"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&entrada))
		assert.Equal(t, "pre-liquidacion", entrada.Tipo)
		assert.Equal(t, uint(7), entrada.Liquidacion.ID)

		_ = json.NewEncoder(w).Encode(map[string]string{"ruta": "/documentos/liq-7.pdf"})
	}))
	defer servidor.Close()

	gw := documento.NewGatewayHTTP(servidor.URL)
	ruta, err := gw.Generar(vistaDePrueba(), documento.TipoPreLiquidacion)
	require.NoError(t, err)
	assert.Equal(t, "/documentos/liq-7.pdf", ruta)
}

func TestGatewayHTTP_ErroresDelRenderizador(t *testing.T) {
	t.Run("respuesta no-200", func(t *testing.T) {
		servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "sin plantilla", http.StatusInternalServerError)
		}))
		defer servidor.Close()

		_, err := documento.NewGatewayHTTP(servidor.URL).Generar(vistaDePrueba(), documento.TipoPago)
		assert.Error(t, err)
	})

	t.Run("respuesta sin ruta", func(t *testing.T) {
		servidor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{})
		}))
		defer servidor.Close()

		_, err := documento.NewGatewayHTTP(servidor.URL).Generar(vistaDePrueba(), documento.TipoPago)
		assert.Error(t, err)
	})

	t.Run("servicio caído", func(t *testing.T) {
		_, err := documento.NewGatewayHTTP("http://127.0.0.1:1/documentos").Generar(vistaDePrueba(), documento.TipoPago)
		assert.Error(t, err)
	})
}
