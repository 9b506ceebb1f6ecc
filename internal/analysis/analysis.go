// Package analysis persists joint evaluations per user: the handler runs the
// pipeline, stores spec and result JSON side by side, and serves them back.
package analysis

import (
	"encoding/json"
	"net/http"
	"strconv"

	"BoltLab/internal/auth"
	vdi "BoltLab/internal/calc/vdi"
	"BoltLab/internal/repo"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string        `json:"name"`
	Joint vdi.JointSpec `json:"joint"`
}

type SaveResponse struct {
	ID    int              `json:"id"`
	State vdi.DerivedState `json:"state"`
}

func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "Name required", http.StatusBadRequest)
		return
	}

	state, err := vdi.Evaluate(req.Joint)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	specJSON, err := json.Marshal(req.Joint)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}
	resultJSON, err := json.Marshal(state)
	if err != nil {
		http.Error(w, "Encoding error", http.StatusInternalServerError)
		return
	}

	id, err := h.Repo.SaveAnalysis(r.Context(), userID, req.Name, specJSON, resultJSON)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SaveResponse{ID: id, State: state})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	analyses, err := h.Repo.ListAnalyses(r.Context(), userID)
	if err != nil {
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.GetAnalysis(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}
