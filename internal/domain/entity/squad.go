package entity

import "time"

type Squad struct {
	SquadName  string
	HomeTown   string
	Formed     int
	Status     string
	SecretBase string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SquadWithMembers объединяет отряд и его участников в порядке добавления
type SquadWithMembers struct {
	Squad   Squad
	Members []Member
}
