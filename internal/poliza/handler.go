package poliza

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /polizas?estado=pendiente
func (h *Handler) ListarPolizas(w http.ResponseWriter, r *http.Request) {
	var (
		polizas []Poliza
		err     error
	)
	if estado := r.URL.Query().Get("estado"); estado != "" {
		polizas, err = h.Repo.ListarPorEstado(estado)
	} else {
		polizas, err = h.Repo.ListarTodas()
	}
	if err != nil {
		http.Error(w, "error al buscar pólizas", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(polizas)
}

// GET /polizas/{numero}
func (h *Handler) BuscarPorNumero(w http.ResponseWriter, r *http.Request) {
	numero := mux.Vars(r)["numero"]

	p, err := h.Repo.BuscarPorNumero(numero)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "póliza no encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "error al buscar póliza", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}
