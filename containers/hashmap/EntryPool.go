package hashmap

import "sync"

// entryPool recycles chain entries through a sync.Pool. Entries are
// cleared before they go back so values do not outlive their removal.
type entryPool[V any] struct {
	pool sync.Pool
}

func (p *entryPool[V]) get() *entry[V] {
	if e, ok := p.pool.Get().(*entry[V]); ok {
		return e
	}
	return new(entry[V])
}

func (p *entryPool[V]) put(e *entry[V]) {
	var zero V
	e.key = ""
	e.value = zero
	e.next = nil
	p.pool.Put(e)
}
