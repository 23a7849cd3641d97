package mediator

// Source names the surface that last received direct user input.
type Source int

const (
	None Source = iota
	SurfaceA
	SurfaceB
)

// String returns the source's name.
func (s Source) String() string {
	switch s {
	case SurfaceA:
		return "a"
	case SurfaceB:
		return "b"
	}
	return "none"
}

// Arbiter tracks the active source. Only gesture starts change it; scroll
// steps never do, otherwise the corrections a mediator issues would claim the
// source for the surface being corrected.
type Arbiter struct {
	active Source
}

// Touch marks s as the active source.
func (a *Arbiter) Touch(s Source) {
	a.active = s
}

// Active returns the active source.
func (a *Arbiter) Active() Source {
	return a.active
}

// From reports whether events from s originate from user input.
func (a *Arbiter) From(s Source) bool {
	return s != None && a.active == s
}
