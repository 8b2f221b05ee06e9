package pago

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/SegurosCumbre/api-corredora/internal/poliza"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo    *Repository
	Polizas *poliza.Repository
}

func NewHandler(repo *Repository, polizas *poliza.Repository) *Handler {
	return &Handler{Repo: repo, Polizas: polizas}
}

// GET /polizas/{numero}/pagos
func (h *Handler) ListarPorPoliza(w http.ResponseWriter, r *http.Request) {
	numero := mux.Vars(r)["numero"]

	p, err := h.Polizas.BuscarPorNumero(numero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "póliza no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "error al buscar póliza", http.StatusInternalServerError)
		return
	}

	pagos, err := h.Repo.ListarPorPoliza(p.ID)
	if err != nil {
		http.Error(w, "error al buscar pagos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pagos)
}
