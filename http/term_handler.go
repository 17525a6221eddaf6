package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"credit-planner/domain"
	"credit-planner/service"
)

type termRequest struct {
	domain.CreditParameters
	Years int `json:"years"`
}

type TermHandler struct {
	service *service.SweepService
}

func NewTermHandler(service *service.SweepService) *TermHandler {
	return &TermHandler{service: service}
}

// CalculateTerm returns the plain schedule for a single term.
func (h *TermHandler) CalculateTerm(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req termRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CalculateTerm(req.CreditParameters, req.Years)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrInvalidArgument) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
