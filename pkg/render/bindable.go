package render

// Bindable is any GPU resource that activates against the current context
// and must be deactivated afterwards. Bound state is global per context;
// the scoped helper below is the only way the renderer manipulates it.
type Bindable interface {
	Bind()
	Unbind()
}

// Bound binds bs in order, runs fn, and unbinds everything in reverse
// order on every exit path: normal return, error return, or panic.
func Bound(fn func() error, bs ...Bindable) error {
	for _, b := range bs {
		b.Bind()
		defer b.Unbind()
	}
	return fn()
}
