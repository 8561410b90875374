package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sc-Mae/squad-service/internal/transport/http/dto"
	"github.com/Sc-Mae/squad-service/internal/usecase"
)

// MemberHandler обрабатывает запросы для участников
type MemberHandler struct {
	memberUseCase *usecase.MemberUseCase
}

// NewMemberHandler создает новый handler для участников
func NewMemberHandler(memberUseCase *usecase.MemberUseCase) *MemberHandler {
	return &MemberHandler{
		memberUseCase: memberUseCase,
	}
}

// AddMember обрабатывает POST /squad/members/add
func (h *MemberHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req dto.AddMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	member := dto.ToMemberEntity(&req.Member)
	memberID, err := h.memberUseCase.AddMember(r.Context(), req.SquadName, &member)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.AddMemberResponse{
		MemberID: memberID,
	}

	respondJSON(w, http.StatusCreated, response)
}

// ListMembers обрабатывает GET /squad/members/list
func (h *MemberHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	squadName := r.URL.Query().Get("squad_name")
	if squadName == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "squad_name query parameter is required")
		return
	}

	summaries, err := h.memberUseCase.ListMembers(r.Context(), squadName)
	if err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.ListMembersResponse{
		SquadName: squadName,
		Members:   dto.ToMemberSummaryDTOs(summaries),
	}

	respondJSON(w, http.StatusOK, response)
}

// RemoveMember обрабатывает POST /squad/members/remove
func (h *MemberHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	var req dto.RemoveMemberRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "invalid request body")
		return
	}

	if req.MemberID == "" {
		respondError(w, http.StatusBadRequest, "INVALID_INPUT", "member_id is required")
		return
	}

	if err := h.memberUseCase.RemoveMember(r.Context(), req.MemberID); err != nil {
		handleUseCaseError(w, err)
		return
	}

	response := dto.RemoveMemberResponse{
		MemberID: req.MemberID,
		Removed:  true,
	}

	respondJSON(w, http.StatusOK, response)
}
