package entity

import "time"

type Member struct {
	MemberID       string
	Name           string
	Age            int
	SecretIdentity string
	Powers         []string
	SquadName      string
	CreatedAt      time.Time
}

// MemberSummary краткая информация об участнике для списков
type MemberSummary struct {
	MemberID string
	Name     string
}
