package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

type AvailabilityChecker interface {
	IsAvailable(slot uint64) (bool, error)
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}

type AvailabilityHandler struct {
	checker AvailabilityChecker
}

func NewAvailabilityHandler(checker AvailabilityChecker) *AvailabilityHandler {
	return &AvailabilityHandler{
		checker: checker,
	}
}

// HandleRequest reports whether a manual relay is possible for the slot
func (h *AvailabilityHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slot, err := strconv.ParseUint(vars["slot"], 10, 64)
	if err != nil {
		JSONError(w, fmt.Errorf("invalid slot: %s", err), http.StatusBadRequest)
		return
	}

	available, err := h.checker.IsAvailable(slot)
	if err != nil {
		JSONError(w, fmt.Errorf("availability check failed: %s", err), http.StatusBadGateway)
		return
	}

	data, _ := json.Marshal(&AvailabilityResponse{Available: available})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
