package specification

import (
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/google/uuid"
)

// ActorByID matches the actor with the given public id.
func ActorByID(id uuid.UUID) Specification[actor.Actor] {
	return New("actor_by_id",
		func(a actor.Actor) bool { return a.PublicID() == id },
		"actors.public_id = ?", id,
	)
}
