package agente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler encapsula DB y repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type crearAgenteRequest struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Correo   string `json:"correo"`
	Telefono string `json:"telefono"`
}

// POST /agentes
func (h *Handler) CrearAgente(w http.ResponseWriter, r *http.Request) {
	var req crearAgenteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nombre == "" || req.Correo == "" {
		http.Error(w, "nombre y correo son obligatorios", http.StatusBadRequest)
		return
	}

	a := Agente{
		Nombre:   req.Nombre,
		Apellido: req.Apellido,
		Correo:   req.Correo,
		Telefono: req.Telefono,
		Activo:   true,
	}
	if err := h.Repository.Crear(h.DB, &a); err != nil {
		http.Error(w, "error al guardar agente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// GET /agentes
func (h *Handler) ListarAgentes(w http.ResponseWriter, r *http.Request) {
	agentes, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "error al buscar agentes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(agentes)
}

// GET /agentes/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID de agente inválido", http.StatusBadRequest)
		return
	}

	agente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "agente no encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "error al buscar agente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(agente)
}
