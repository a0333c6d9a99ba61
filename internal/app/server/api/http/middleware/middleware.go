package middleware

import (
	"github.com/danielgtaylor/huma/v2"
)

// Container accumulates middlewares for the handler being wired and hands
// them over as a batch.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Add(mw func(huma.Context, func(huma.Context))) {
	c.middlewares = append(c.middlewares, mw)
}

// GetAllAndClear returns the accumulated middlewares and resets the
// container for the next handler.
func (c *Container) GetAllAndClear() huma.Middlewares {
	mws := c.middlewares
	c.middlewares = nil
	return mws
}
