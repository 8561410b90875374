package entity

type Statistics struct {
	TotalSquads    int            `json:"total_squads"`
	ActiveSquads   int            `json:"active_squads"`
	TotalMembers   int            `json:"total_members"`
	TotalPowers    int            `json:"total_powers"`
	MembersBySquad map[string]int `json:"members_by_squad"`
}
