package usecase

import (
	"context"
	"encoding/xml"
	"fmt"
)

// ExportUseCase выгружает отряды в XML
type ExportUseCase struct {
	squadUseCase *SquadUseCase
}

// NewExportUseCase создает новый usecase для экспорта
func NewExportUseCase(squadUseCase *SquadUseCase) *ExportUseCase {
	return &ExportUseCase{
		squadUseCase: squadUseCase,
	}
}

type xmlMember struct {
	Name           string   `xml:"name"`
	Age            int      `xml:"age"`
	SecretIdentity string   `xml:"secretIdentity"`
	Powers         []string `xml:"powers>power"`
}

type xmlSquad struct {
	SquadName  string      `xml:"squadName"`
	HomeTown   string      `xml:"homeTown"`
	Formed     int         `xml:"formed"`
	Status     string      `xml:"status"`
	SecretBase string      `xml:"secretBase"`
	Active     bool        `xml:"active"`
	Members    []xmlMember `xml:"members>member"`
}

type xmlSquads struct {
	XMLName xml.Name   `xml:"squads"`
	Squads  []xmlSquad `xml:"squad"`
}

// ExportSquadsXML возвращает все отряды в виде XML-документа
func (uc *ExportUseCase) ExportSquadsXML(ctx context.Context) ([]byte, error) {
	squads, err := uc.squadUseCase.ListSquads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list squads for export: %w", err)
	}

	doc := xmlSquads{Squads: make([]xmlSquad, 0, len(squads))}
	for _, swm := range squads {
		xs := xmlSquad{
			SquadName:  swm.Squad.SquadName,
			HomeTown:   swm.Squad.HomeTown,
			Formed:     swm.Squad.Formed,
			Status:     swm.Squad.Status,
			SecretBase: swm.Squad.SecretBase,
			Active:     swm.Squad.Active,
		}
		for _, m := range swm.Members {
			xs.Members = append(xs.Members, xmlMember{
				Name:           m.Name,
				Age:            m.Age,
				SecretIdentity: m.SecretIdentity,
				Powers:         m.Powers,
			})
		}
		doc.Squads = append(doc.Squads, xs)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal squads to XML: %w", err)
	}

	return append([]byte(xml.Header), data...), nil
}
