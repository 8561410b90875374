package dto

import (
	"github.com/Sc-Mae/squad-service/internal/domain/entity"
)

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail содержит детали ошибки
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MemberDTO представляет участника отряда
type MemberDTO struct {
	MemberID       string   `json:"member_id,omitempty"`
	Name           string   `json:"name" validate:"required"`
	Age            int      `json:"age" validate:"gte=0"`
	SecretIdentity string   `json:"secretIdentity" validate:"required"`
	Powers         []string `json:"powers" validate:"required,min=1,dive,required"`
}

// MemberSummaryDTO краткая информация об участнике
type MemberSummaryDTO struct {
	MemberID string `json:"member_id"`
	Name     string `json:"name"`
}

// SquadDTO представляет отряд
type SquadDTO struct {
	SquadName  string      `json:"squadName"`
	HomeTown   string      `json:"homeTown"`
	Formed     int         `json:"formed"`
	Status     string      `json:"status"`
	SecretBase string      `json:"secretBase"`
	Active     bool        `json:"active"`
	Members    []MemberDTO `json:"members"`
}

// CreateSquadRequest запрос на создание отряда
type CreateSquadRequest struct {
	SquadName  string      `json:"squadName" validate:"required"`
	HomeTown   string      `json:"homeTown" validate:"required"`
	Formed     int         `json:"formed" validate:"gt=0"`
	Status     string      `json:"status"`
	SecretBase string      `json:"secretBase" validate:"required"`
	Active     bool        `json:"active"`
	Members    []MemberDTO `json:"members" validate:"dive"`
}

// CreateSquadResponse ответ на создание отряда
type CreateSquadResponse struct {
	Squad SquadDTO `json:"squad"`
}

// ImportSquadsResponse ответ на импорт документа с отрядами
type ImportSquadsResponse struct {
	ImportedSquads int `json:"imported_squads"`
}

// AddMemberRequest запрос на добавление участника
type AddMemberRequest struct {
	SquadName string    `json:"squad_name" validate:"required"`
	Member    MemberDTO `json:"member" validate:"required"`
}

// AddMemberResponse ответ на добавление участника
type AddMemberResponse struct {
	MemberID string `json:"member_id"`
}

// ListMembersResponse ответ со списком участников отряда
type ListMembersResponse struct {
	SquadName string             `json:"squad_name"`
	Members   []MemberSummaryDTO `json:"members"`
}

// RemoveMemberRequest запрос на удаление участника
type RemoveMemberRequest struct {
	MemberID string `json:"member_id" validate:"required"`
}

// RemoveMemberResponse ответ на удаление участника
type RemoveMemberResponse struct {
	MemberID string `json:"member_id"`
	Removed  bool   `json:"removed"`
}

// ToSquadEntity преобразует запрос в доменную сущность
func ToSquadEntity(req *CreateSquadRequest) *entity.SquadWithMembers {
	status := req.Status
	if status == "" {
		status = "active"
	}

	swm := &entity.SquadWithMembers{
		Squad: entity.Squad{
			SquadName:  req.SquadName,
			HomeTown:   req.HomeTown,
			Formed:     req.Formed,
			Status:     status,
			SecretBase: req.SecretBase,
			Active:     req.Active,
		},
	}

	swm.Members = make([]entity.Member, 0, len(req.Members))
	for _, m := range req.Members {
		swm.Members = append(swm.Members, ToMemberEntity(&m))
	}

	return swm
}

// ToMemberEntity преобразует DTO участника в доменную сущность
func ToMemberEntity(m *MemberDTO) entity.Member {
	return entity.Member{
		Name:           m.Name,
		Age:            m.Age,
		SecretIdentity: m.SecretIdentity,
		Powers:         m.Powers,
	}
}

// ToSquadDTO преобразует доменную сущность в DTO
func ToSquadDTO(swm *entity.SquadWithMembers) SquadDTO {
	dto := SquadDTO{
		SquadName:  swm.Squad.SquadName,
		HomeTown:   swm.Squad.HomeTown,
		Formed:     swm.Squad.Formed,
		Status:     swm.Squad.Status,
		SecretBase: swm.Squad.SecretBase,
		Active:     swm.Squad.Active,
	}

	dto.Members = make([]MemberDTO, 0, len(swm.Members))
	for _, m := range swm.Members {
		dto.Members = append(dto.Members, MemberDTO{
			MemberID:       m.MemberID,
			Name:           m.Name,
			Age:            m.Age,
			SecretIdentity: m.SecretIdentity,
			Powers:         m.Powers,
		})
	}

	return dto
}

// ToMemberSummaryDTOs преобразует сводки участников в DTO
func ToMemberSummaryDTOs(summaries []entity.MemberSummary) []MemberSummaryDTO {
	dtos := make([]MemberSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		dtos = append(dtos, MemberSummaryDTO{
			MemberID: s.MemberID,
			Name:     s.Name,
		})
	}
	return dtos
}
