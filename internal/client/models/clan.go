package models

// Clan mirrors a backend clan document. Members holds usernames; the backend
// guarantees a username belongs to at most one clan at a time.
type Clan struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Leader      string   `json:"leader"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// ClanAction is the single membership action available to a viewer for a
// given clan. Exactly one applies: leaders delete, members leave, everyone
// else may join.
type ClanAction int

const (
	ActionJoin ClanAction = iota
	ActionLeave
	ActionDelete
)

func (a ClanAction) String() string {
	switch a {
	case ActionLeave:
		return "Leave"
	case ActionDelete:
		return "Delete"
	default:
		return "Join"
	}
}

// IsLeader reports whether viewer leads the clan.
func (c *Clan) IsLeader(viewer string) bool {
	return c.Leader == viewer
}

// HasMember reports whether viewer is in the clan's member set.
func (c *Clan) HasMember(viewer string) bool {
	for _, m := range c.Members {
		if m == viewer {
			return true
		}
	}
	return false
}

// ActionFor derives the one action the viewer may take on this clan.
// Leadership wins over plain membership.
func (c *Clan) ActionFor(viewer string) ClanAction {
	if c.IsLeader(viewer) {
		return ActionDelete
	}
	if c.HasMember(viewer) {
		return ActionLeave
	}
	return ActionJoin
}
