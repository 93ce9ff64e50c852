// Package actor models the owners of accounts.
//
// Actor is a tagged variant: every concrete owner type reports its Kind, and new
// owner types are added as new kinds rather than by embedding an existing one.
// The ledger only ever reads actors.
package actor

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind tags the concrete actor variant.
type Kind string

const (
	// KindPerson is a natural person.
	KindPerson Kind = "person"
)

// Actor is the owner of an account.
type Actor interface {
	InternalKey() uint
	PublicID() uuid.UUID
	Kind() Kind
}

// IsBlankError is returned when a required text field is empty or whitespace.
type IsBlankError struct {
	Property string
	Value    string
}

func (e *IsBlankError) Error() string {
	if strings.TrimSpace(e.Value) == "" {
		return fmt.Sprintf("%s cannot be null or whitespace", e.Property)
	}
	return fmt.Sprintf("invalid value for %s: '%s'", e.Property, e.Value)
}

// Person is the natural-person variant of Actor.
type Person struct {
	internalKey uint
	publicID    uuid.UUID
	firstName   string
	lastName    string
}

// NewPerson creates a Person with a fresh public id.
// Both names are required and must not be blank.
func NewPerson(firstName, lastName string) (*Person, error) {
	if strings.TrimSpace(firstName) == "" {
		return nil, &IsBlankError{Property: "FirstName", Value: firstName}
	}
	if strings.TrimSpace(lastName) == "" {
		return nil, &IsBlankError{Property: "LastName", Value: lastName}
	}
	return &Person{
		publicID:  uuid.New(),
		firstName: firstName,
		lastName:  lastName,
	}, nil
}

// NewPersonFromData creates a Person from raw data (used for DB hydration, seeding and fixtures).
func NewPersonFromData(internalKey uint, publicID uuid.UUID, firstName, lastName string) *Person {
	return &Person{
		internalKey: internalKey,
		publicID:    publicID,
		firstName:   firstName,
		lastName:    lastName,
	}
}

func (p *Person) InternalKey() uint   { return p.internalKey }
func (p *Person) PublicID() uuid.UUID { return p.publicID }
func (p *Person) Kind() Kind          { return KindPerson }
func (p *Person) FirstName() string   { return p.firstName }
func (p *Person) LastName() string    { return p.lastName }

// AssignInternalKey records the storage key once the person has been inserted.
func (p *Person) AssignInternalKey(key uint) {
	p.internalKey = key
}

// AsPerson narrows an Actor to a Person.
func AsPerson(a Actor) (*Person, bool) {
	p, ok := a.(*Person)
	return p, ok
}
