package conciliacion_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SegurosCumbre/api-corredora/internal/conciliacion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solicitudDeCarga(t *testing.T, csv string) *http.Request {
	t.Helper()
	var cuerpo bytes.Buffer
	escritor := multipart.NewWriter(&cuerpo)
	archivo, err := escritor.CreateFormFile("archivo", "pagos.csv")
	require.NoError(t, err)
	_, err = archivo.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, escritor.Close())

	req := httptest.NewRequest(http.MethodPost, "/pagos/carga", &cuerpo)
	req.Header.Set("Content-Type", escritor.FormDataContentType())
	return req
}

func TestCargarPagos_RespondeSiempre200ConReporte(t *testing.T) {
	db := nuevaBD(t)
	sembrarPoliza(t, db, "POL-001", 1000, "0.10", 1)
	handler := conciliacion.NewHandler(conciliacion.NewConciliador(db))

	csv := encabezado +
		"POL-001,400,2024-03-01,TRX-1,,\n" +
		"POL-404,100,2024-03-01,,,\n"

	grabadora := httptest.NewRecorder()
	handler.CargarPagos(grabadora, solicitudDeCarga(t, csv))

	require.Equal(t, http.StatusOK, grabadora.Code, "los fallos por fila no cambian el código HTTP")

	var respuesta struct {
		Mensaje string `json:"mensaje"`
		conciliacion.ResultadoCarga
	}
	require.NoError(t, json.Unmarshal(grabadora.Body.Bytes(), &respuesta))
	assert.Equal(t, 2, respuesta.TotalFilas)
	assert.Equal(t, 1, respuesta.Aplicadas)
	assert.Equal(t, 1, respuesta.Fallidas)
	require.Len(t, respuesta.Resultados, 2)
	assert.True(t, respuesta.Resultados[0].Exito)
	assert.False(t, respuesta.Resultados[1].Exito)
	assert.NotEmpty(t, respuesta.LoteID)
}

func TestCargarPagos_ArchivoVacioEs400(t *testing.T) {
	db := nuevaBD(t)
	handler := conciliacion.NewHandler(conciliacion.NewConciliador(db))

	grabadora := httptest.NewRecorder()
	handler.CargarPagos(grabadora, solicitudDeCarga(t, ""))

	assert.Equal(t, http.StatusBadRequest, grabadora.Code)
}

func TestCargarPagos_SinArchivoEs400(t *testing.T) {
	db := nuevaBD(t)
	handler := conciliacion.NewHandler(conciliacion.NewConciliador(db))

	var cuerpo bytes.Buffer
	escritor := multipart.NewWriter(&cuerpo)
	require.NoError(t, escritor.Close())
	req := httptest.NewRequest(http.MethodPost, "/pagos/carga", &cuerpo)
	req.Header.Set("Content-Type", escritor.FormDataContentType())

	grabadora := httptest.NewRecorder()
	handler.CargarPagos(grabadora, req)

	assert.Equal(t, http.StatusBadRequest, grabadora.Code)
}
