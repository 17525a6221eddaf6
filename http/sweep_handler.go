package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"credit-planner/domain"
	"credit-planner/service"
)

type SweepHandler struct {
	service *service.SweepService
}

func NewSweepHandler(service *service.SweepService) *SweepHandler {
	return &SweepHandler{service: service}
}

// CalculateSweep evaluates every candidate term for the parameters in the
// request body and returns the per-term results of each calculated mode.
func (h *SweepHandler) CalculateSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var params domain.CreditParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	output, err := h.service.CalculateSweep(params)
	if err != nil {
		log.Printf("Error calculating sweep: %v", err)
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	// Codificar JSON en buffer primero para evitar escribir header si falla
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(output); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}
