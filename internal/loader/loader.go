package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/Sc-Mae/squad-service/internal/domain/entity"
	domainErrors "github.com/Sc-Mae/squad-service/internal/domain/errors"
)

// MemberDocument описывает участника в исходном JSON-документе
type MemberDocument struct {
	Name           string   `json:"name" validate:"required"`
	Age            *int     `json:"age" validate:"required,gte=0"`
	SecretIdentity string   `json:"secretIdentity" validate:"required"`
	Powers         []string `json:"powers" validate:"required,min=1,dive,required"`
}

// SquadDocument описывает отряд в исходном JSON-документе
type SquadDocument struct {
	SquadName  string           `json:"squadName" validate:"required"`
	HomeTown   string           `json:"homeTown" validate:"required"`
	Formed     *int             `json:"formed" validate:"required,gt=0"`
	Status     string           `json:"status"`
	SecretBase string           `json:"secretBase" validate:"required"`
	Active     *bool            `json:"active"`
	Members    []MemberDocument `json:"members" validate:"required,dive"`
}

var validate = validator.New()

// Load разбирает JSON-документ с одним отрядом или массивом отрядов
// и строит доменные сущности. Неполный или неверно типизированный
// документ возвращает ошибку PARSE_ERROR без частичного результата.
func Load(r io.Reader) ([]*entity.SquadWithMembers, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read squad document: %w", err)
	}

	docs, err := decodeDocuments(data)
	if err != nil {
		return nil, err
	}

	squads := make([]*entity.SquadWithMembers, 0, len(docs))
	for i, doc := range docs {
		squad, err := buildSquad(i, doc)
		if err != nil {
			return nil, err
		}
		squads = append(squads, squad)
	}

	return squads, nil
}

// decodeDocuments принимает и одиночный объект, и массив отрядов
func decodeDocuments(data []byte) ([]SquadDocument, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, parseError("document is empty")
	}

	if trimmed[0] == '[' {
		var docs []SquadDocument
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, parseError(describeJSONError(err))
		}
		return docs, nil
	}

	var doc SquadDocument
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, parseError(describeJSONError(err))
	}
	return []SquadDocument{doc}, nil
}

// buildSquad валидирует документ и собирает сущности отряда
func buildSquad(index int, doc SquadDocument) (*entity.SquadWithMembers, error) {
	if err := validate.Struct(doc); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			msg := fmt.Sprintf("squad %d: field %s failed %q validation", index, f.Namespace(), f.Tag())
			return nil, parseError(msg)
		}
		return nil, parseError(fmt.Sprintf("squad %d: %v", index, err))
	}

	// status и active в части исходных документов отсутствуют
	status := doc.Status
	if status == "" {
		status = "active"
	}
	active := true
	if doc.Active != nil {
		active = *doc.Active
	}

	now := time.Now()
	squad := &entity.SquadWithMembers{
		Squad: entity.Squad{
			SquadName:  doc.SquadName,
			HomeTown:   doc.HomeTown,
			Formed:     *doc.Formed,
			Status:     status,
			SecretBase: doc.SecretBase,
			Active:     active,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	squad.Members = make([]entity.Member, 0, len(doc.Members))
	for _, m := range doc.Members {
		squad.Members = append(squad.Members, entity.Member{
			MemberID:       uuid.NewString(),
			Name:           m.Name,
			Age:            *m.Age,
			SecretIdentity: m.SecretIdentity,
			Powers:         DedupePowers(m.Powers),
			SquadName:      doc.SquadName,
			CreatedAt:      now,
		})
	}

	return squad, nil
}

// DedupePowers убирает повторы, сохраняя порядок из документа
func DedupePowers(powers []string) []string {
	seen := make(map[string]struct{}, len(powers))
	result := make([]string, 0, len(powers))
	for _, p := range powers {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// describeJSONError превращает ошибки encoding/json в понятное сообщение
func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("invalid JSON at offset %d: %v", syntaxErr.Offset, syntaxErr)
	}

	return err.Error()
}

func parseError(message string) *domainErrors.DomainError {
	return domainErrors.NewDomainError(
		"PARSE_ERROR",
		message,
		domainErrors.ErrParse,
	)
}
