package wheel

// Pool keeps row views released by wheels so that later slots can refurbish
// them instead of allocating. Views are bucketed by component and never
// handed across components; reuse order is last-in, first-out.
type Pool struct {
	free map[int][]View
}

// NewPool returns an empty pool.
func NewPool() *Pool {
	return &Pool{free: make(map[int][]View)}
}

// Acquire pops the most recently released view for component, or nil.
func (p *Pool) Acquire(component int) View {
	stack := p.free[component]
	if len(stack) == 0 {
		return nil
	}
	v := stack[len(stack)-1]
	stack[len(stack)-1] = nil
	p.free[component] = stack[:len(stack)-1]
	return v
}

// Release hands a view back for later reuse by the same component.
func (p *Pool) Release(component int, v View) {
	if v == nil {
		return
	}
	p.free[component] = append(p.free[component], v)
}

// Len reports how many views are waiting for component.
func (p *Pool) Len(component int) int {
	return len(p.free[component])
}

// Drop discards every view held for component.
func (p *Pool) Drop(component int) {
	delete(p.free, component)
}
