package oncecell

type settings struct {
	name     string
	observer Observer
}

// Option configures a Cell created by New, or every cell a Group creates.
type Option func(*settings)

// WithObserver attaches an Observer that receives launch, coalesce, hit,
// settle, and reset events for the lifetime of the cell.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		s.observer = o
	}
}

// WithName tags the cell's events with a name, for observers watching more
// than one cell.
func WithName(name string) Option {
	return func(s *settings) {
		s.name = name
	}
}
