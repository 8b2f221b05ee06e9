package liquidacion

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/SegurosCumbre/api-corredora/internal/documento"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

const formatoFecha = "2006-01-02"

var validate = validator.New()

type Handler struct {
	Servicio *Servicio
}

func NewHandler(s *Servicio) *Handler {
	return &Handler{Servicio: s}
}

// POST /liquidaciones
func (h *Handler) CrearLiquidacion(w http.ResponseWriter, r *http.Request) {
	var in CrearLiquidacionDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(in); err != nil {
		http.Error(w, "agenteId, fechaInicio y fechaFin son obligatorios", http.StatusBadRequest)
		return
	}

	inicio, err := time.Parse(formatoFecha, in.FechaInicio)
	if err != nil {
		http.Error(w, "fechaInicio inválida, se espera AAAA-MM-DD", http.StatusBadRequest)
		return
	}
	fin, err := time.Parse(formatoFecha, in.FechaFin)
	if err != nil {
		http.Error(w, "fechaFin inválida, se espera AAAA-MM-DD", http.StatusBadRequest)
		return
	}

	deducciones := make([]Deduccion, 0, len(in.Deducciones))
	for _, d := range in.Deducciones {
		deducciones = append(deducciones, Deduccion{Descripcion: d.Descripcion, Monto: d.Monto})
	}

	l, err := h.Servicio.Crear(SolicitudCrear{
		AgenteID:    in.AgenteID,
		FechaInicio: inicio,
		FechaFin:    fin,
		Deducciones: deducciones,
	})
	if err != nil {
		if errors.Is(err, ErrVentanaInvalida) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, "error al crear la liquidación", http.StatusInternalServerError)
		return
	}

	mensaje := "liquidación creada"
	if l.RutaDocumento == "" {
		mensaje = "liquidación creada; documento pendiente de renderizado"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje":       mensaje,
		"liquidacionId": l.ID,
		"rutaDocumento": l.RutaDocumento,
	})
}

// PUT /liquidaciones/{id}
func (h *Handler) ActualizarLiquidacion(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de liquidación inválido", http.StatusBadRequest)
		return
	}

	var in ActualizarLiquidacionDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	resultado, err := h.Servicio.Actualizar(uint(id), SolicitudActualizar{
		Estado:               in.Estado,
		GenerarDocumentoPago: in.GenerarDocumentoPago,
		GenerarDocumentoPre:  in.GenerarDocumentoPre,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			http.Error(w, "liquidación no encontrada", http.StatusNotFound)
		case errors.Is(err, ErrSinCambios),
			errors.Is(err, ErrEstadoDesconocido),
			errors.Is(err, ErrTransicionInvalida):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, "error al actualizar la liquidación", http.StatusInternalServerError)
		}
		return
	}

	mensaje := "liquidación actualizada"
	if len(resultado.Pendientes) > 0 {
		mensaje = "liquidación actualizada; documento pendiente de renderizado"
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"mensaje":           mensaje,
		"rutaDocumento":     resultado.Liquidacion.RutaDocumento,
		"rutaDocumentoPago": resultado.Liquidacion.RutaDocumentoPago,
	})
}

// POST /liquidaciones/{id}/documentos
// Reintento manual de un renderizado que quedó pendiente.
func (h *Handler) GenerarDocumento(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de liquidación inválido", http.StatusBadRequest)
		return
	}

	var in GenerarDocumentoDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(in); err != nil {
		http.Error(w, "tipo debe ser 'pre-liquidacion' o 'pago'", http.StatusBadRequest)
		return
	}

	ruta, err := h.Servicio.Renderizar(uint(id), documento.TipoDocumento(in.Tipo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "liquidación no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "error al generar el documento", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"mensaje": "documento generado",
		"ruta":    ruta,
	})
}

// GET /liquidaciones?agenteId=
func (h *Handler) ListarLiquidaciones(w http.ResponseWriter, r *http.Request) {
	var (
		liquidaciones []Liquidacion
		err           error
	)
	if crudo := r.URL.Query().Get("agenteId"); crudo != "" {
		agenteID, errConv := strconv.Atoi(crudo)
		if errConv != nil {
			http.Error(w, "agenteId inválido", http.StatusBadRequest)
			return
		}
		liquidaciones, err = h.Servicio.Repo.ListarPorAgente(uint(agenteID))
	} else {
		liquidaciones, err = h.Servicio.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "error al buscar liquidaciones", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(liquidaciones)
}

// GET /liquidaciones/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de liquidación inválido", http.StatusBadRequest)
		return
	}

	l, err := h.Servicio.Repo.BuscarPorID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "liquidación no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "error al buscar liquidación", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(l)
}
