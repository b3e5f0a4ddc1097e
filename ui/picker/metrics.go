package picker

// Size is a row size: width in cells, height in lines.
type Size struct {
	Width  float64
	Height float64
}

// Metrics memoizes per-component row sizes asked of the delegate. Entries
// live until invalidated by a reload.
type Metrics struct {
	delegate any
	sizes    map[int]Size
}

// NewMetrics returns an empty cache backed by delegate (which may be nil).
func NewMetrics(delegate any) *Metrics {
	return &Metrics{delegate: delegate, sizes: make(map[int]Size)}
}

// Size returns the cached size for component, asking the delegate on a miss.
// Missing capabilities yield zero for that dimension.
func (m *Metrics) Size(component int) Size {
	if s, ok := m.sizes[component]; ok {
		return s
	}
	var s Size
	if p, ok := m.delegate.(WidthProvider); ok {
		s.Width = p.WidthForComponent(component)
	}
	if p, ok := m.delegate.(RowHeightProvider); ok {
		s.Height = p.RowHeightForComponent(component)
	}
	m.sizes[component] = s
	return s
}

// Invalidate drops the cached size of one component.
func (m *Metrics) Invalidate(component int) {
	delete(m.sizes, component)
}

// InvalidateAll drops every cached size.
func (m *Metrics) InvalidateAll() {
	clear(m.sizes)
}

// SetDelegate swaps the delegate and clears the cache.
func (m *Metrics) SetDelegate(delegate any) {
	m.delegate = delegate
	m.InvalidateAll()
}
