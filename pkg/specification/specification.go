// Package specification provides named, reusable predicates used to compose repository lookups.
//
// A specification has two forms: an in-memory predicate, and a SQL fragment that the
// persistence layer pushes down into its WHERE clause. Both must describe the same rows.
package specification

// Specification is a named predicate over T.
type Specification[T any] interface {
	// Name identifies the specification in logs and errors.
	Name() string
	// IsSatisfiedBy evaluates the predicate against an in-memory entity.
	IsSatisfiedBy(entity T) bool
	// Where returns the predicate as a SQL condition with positional arguments.
	Where() (query string, args []any)
}

type spec[T any] struct {
	name  string
	pred  func(T) bool
	query string
	args  []any
}

// New builds a Specification from its two forms.
func New[T any](name string, pred func(T) bool, query string, args ...any) Specification[T] {
	return spec[T]{name: name, pred: pred, query: query, args: args}
}

func (s spec[T]) Name() string                { return s.name }
func (s spec[T]) IsSatisfiedBy(entity T) bool { return s.pred(entity) }
func (s spec[T]) Where() (string, []any)      { return s.query, s.args }

// All reports whether entity satisfies every specification.
// An empty set is satisfied by everything; repositories reject it before calling All.
func All[T any](entity T, specs ...Specification[T]) bool {
	for _, s := range specs {
		if !s.IsSatisfiedBy(entity) {
			return false
		}
	}
	return true
}

// Names lists the names of specs, for logging.
func Names[T any](specs ...Specification[T]) []string {
	names := make([]string, 0, len(specs))
	for _, s := range specs {
		names = append(names, s.Name())
	}
	return names
}
