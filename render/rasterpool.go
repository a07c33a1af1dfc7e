package render

import (
	"golang.org/x/image/vector"
	"sync"
)

// rasterizerPool reuses rasterizer accumulation buffers between canvases so
// rendering a stream of frames does not allocate per shape
type rasterizerPool struct {
	pool sync.Pool
}

// rasterizers is the pool shared by all image canvases
var rasterizers = newRasterizerPool()

func newRasterizerPool() *rasterizerPool {
	p := &rasterizerPool{}
	p.pool.New = func() any {
		return &vector.Rasterizer{}
	}
	return p
}

// Get returns a rasterizer from the pool, it must be Reset before use
func (p *rasterizerPool) Get() *vector.Rasterizer {
	return p.pool.Get().(*vector.Rasterizer)
}

// Put returns the rasterizer to the pool
func (p *rasterizerPool) Put(z *vector.Rasterizer) {
	if z != nil {
		p.pool.Put(z)
	}
}
