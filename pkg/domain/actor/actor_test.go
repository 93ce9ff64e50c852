package actor_test

import (
	"errors"
	"testing"

	"github.com/amirasaad/ledger/pkg/domain/actor"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	p, err := actor.NewPerson("John", "Smith")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, p.PublicID())
	assert.Equal(t, actor.KindPerson, p.Kind())
	assert.Equal(t, "John", p.FirstName())
	assert.Equal(t, "Smith", p.LastName())
	assert.Zero(t, p.InternalKey())
}

func TestNewPerson_Blank(t *testing.T) {
	tests := []struct {
		name     string
		first    string
		last     string
		property string
	}{
		{"empty first name", "", "Smith", "FirstName"},
		{"whitespace first name", "   ", "Smith", "FirstName"},
		{"empty last name", "John", "", "LastName"},
		{"tab last name", "John", "\t", "LastName"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := actor.NewPerson(tt.first, tt.last)
			assert.Nil(t, p)

			var blank *actor.IsBlankError
			require.True(t, errors.As(err, &blank))
			assert.Equal(t, tt.property, blank.Property)
			assert.Contains(t, err.Error(), "cannot be null or whitespace")
		})
	}
}

func TestAsPerson(t *testing.T) {
	id := uuid.New()
	var a actor.Actor = actor.NewPersonFromData(7, id, "Emma", "Johnson")

	p, ok := actor.AsPerson(a)
	require.True(t, ok)
	assert.Equal(t, uint(7), p.InternalKey())
	assert.Equal(t, id, p.PublicID())

	p.AssignInternalKey(9)
	assert.Equal(t, uint(9), a.InternalKey())
}
