package repository

import (
	"context"
	"fmt"

	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/amirasaad/ledger/pkg/repository"
	"github.com/amirasaad/ledger/pkg/specification"
	"gorm.io/gorm"
)

type actorRepository struct {
	uow *UoW
}

// Get implements repository.ActorRepository.
func (r *actorRepository) Get(
	ctx context.Context,
	specs ...specification.Specification[actor.Actor],
) (actor.Actor, error) {
	if len(specs) == 0 {
		return nil, repository.ErrNoSpecification
	}
	u := r.uow

	var matches []actor.Actor
	for _, a := range u.newActors {
		if specification.All(a, specs...) {
			matches = append(matches, a)
		}
	}

	q := actorQuery(u.session(ctx))
	for _, s := range specs {
		query, args := s.Where()
		q = q.Where(query, args...)
	}
	var rows []actorRow
	if err := WrapError(func() error { return q.Limit(2).Scan(&rows).Error }); err != nil {
		return nil, fmt.Errorf("get actor %v: %w", specification.Names(specs...), err)
	}
	for i := range rows {
		a, err := mapRowToActor(&rows[i])
		if err != nil {
			return nil, err
		}
		matches = append(matches, a)
	}

	switch len(matches) {
	case 0:
		return nil, domain.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return nil, repository.ErrMultipleResults
	}
}

// Create implements repository.ActorRepository. The actor is inserted by SaveChanges.
func (r *actorRepository) Create(_ context.Context, a actor.Actor) error {
	if !r.uow.InTransaction() {
		return repository.ErrReadOnly
	}
	if _, ok := actor.AsPerson(a); !ok {
		return fmt.Errorf("unsupported actor kind %q", a.Kind())
	}
	r.uow.newActors = append(r.uow.newActors, a)
	return nil
}

func actorQuery(db *gorm.DB) *gorm.DB {
	return db.Table("actors").
		Select("actors.internal_key, actors.public_id, actors.kind, persons.first_name, persons.last_name").
		Joins("LEFT JOIN persons ON persons.actor_key = actors.internal_key")
}

// getActor loads the single actor matching query.
func getActor(db *gorm.DB, query string, args ...any) (actor.Actor, error) {
	var row actorRow
	err := WrapError(func() error {
		return actorQuery(db).Where(query, args...).Take(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return mapRowToActor(&row)
}
