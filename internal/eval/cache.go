package eval

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Cache holds compiled programs keyed by expression fingerprint. It is safe
// for concurrent use.
type Cache struct {
	mu   sync.Mutex
	prog map[string]*vm.Program
}

func NewCache() *Cache {
	return &Cache{prog: make(map[string]*vm.Program, 64)}
}

// GetOrCompile returns the program stored under key, compiling src on a miss.
func (c *Cache) GetOrCompile(key, src string, opts ...expr.Option) (*vm.Program, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.prog[key]; ok {
		return p, nil
	}
	p, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, err
	}
	c.prog[key] = p
	return p, nil
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.prog)
}
