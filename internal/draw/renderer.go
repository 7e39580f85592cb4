package draw

// Renderer is the production implementation of the composers' drawing
// primitives. It is stateless; all cross-frame animation state lives in the
// explicit state structs the caller owns.
type Renderer struct{}

// New returns the default renderer.
func New() Renderer { return Renderer{} }
