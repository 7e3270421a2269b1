package aggregate

import (
	"github.com/google/uuid"
)

type AgentKind string

const (
	AgentAnonymous AgentKind = "anonymous"
	AgentUser      AgentKind = "user"
	AgentSystem    AgentKind = "system"
)

// Agent is the acting identity behind a command. It is passed through to the permission
// service and recorded on events; the aggregate never interprets it.
type Agent struct {
	kind AgentKind
	id   uuid.UUID
	role string
}

func Anonymous() Agent {
	return Agent{kind: AgentAnonymous}
}

func System() Agent {
	return Agent{kind: AgentSystem}
}

func User(id uuid.UUID, role string) Agent {
	return Agent{kind: AgentUser, id: id, role: role}
}

func ReconstructAgent(kind AgentKind, id uuid.UUID, role string) Agent {
	return Agent{kind: kind, id: id, role: role}
}

func (a Agent) Kind() AgentKind   { return a.kind }
func (a Agent) ID() uuid.UUID     { return a.id }
func (a Agent) Role() string      { return a.role }
func (a Agent) IsSystem() bool    { return a.kind == AgentSystem }
func (a Agent) IsAnonymous() bool { return a.kind == "" || a.kind == AgentAnonymous }

func (a Agent) String() string {
	if a.kind == AgentUser {
		return string(a.kind) + ":" + a.id.String()
	}
	if a.kind == "" {
		return string(AgentAnonymous)
	}
	return string(a.kind)
}
