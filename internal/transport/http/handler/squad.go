package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sc-Mae/squad-service/internal/transport/http/dto"
	"github.com/Sc-Mae/squad-service/internal/usecase"
)

// SquadHandler обрабатывает запросы для отрядов
type SquadHandler struct {
	squadUseCase *usecase.SquadUseCase
}

// NewSquadHandler создает новый handler для отрядов
func NewSquadHandler(squadUseCase *usecase.SquadUseCase) *SquadHandler {
	return &SquadHandler{
		squadUseCase: squadUseCase,
	}
}

// CreateSquad обрабатывает POST /squad/add
func (h *SquadHandler) CreateSquad(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSquadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	squadEntity := dto.ToSquadEntity(&req)
	squad, err := h.squadUseCase.CreateSquad(r.Context(), squadEntity)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.CreateSquadResponse{
		Squad: dto.ToSquadDTO(squad),
	}

	respondJSON(w, http.StatusCreated, response)
}

// GetSquad обрабатывает GET /squad/get
func (h *SquadHandler) GetSquad(w http.ResponseWriter, r *http.Request) {
	squadName := r.URL.Query().Get("squad_name")
	if squadName == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "squad_name query parameter is required")
		return
	}

	squad, err := h.squadUseCase.GetSquadWithMembers(r.Context(), squadName)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.ToSquadDTO(squad)
	respondJSON(w, http.StatusOK, response)
}

// ImportSquads обрабатывает POST /squad/import
func (h *SquadHandler) ImportSquads(w http.ResponseWriter, r *http.Request) {
	count, err := h.squadUseCase.ImportSquads(r.Context(), r.Body)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.ImportSquadsResponse{
		ImportedSquads: count,
	}

	respondJSON(w, http.StatusCreated, response)
}
