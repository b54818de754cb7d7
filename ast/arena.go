package ast

// DefaultArenaChunk is the number of nodes allocated at once by an Arena
// created with a non-positive chunk size.
const DefaultArenaChunk = 4096

// Arena hands out nodes from large preallocated chunks. It is owned by a
// single run and passed explicitly to whatever allocates nodes; it is not
// safe for concurrent use.
//
// Reset starts a new run. Nodes handed out before a Reset stay valid for as
// long as they are referenced; the arena only stops handing out memory from
// the chunks it held.
type Arena struct {
	chunkSize int
	chunk     []Node
	allocated int
	chunks    int
}

// NewArena returns an arena that allocates chunkSize nodes at a time.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultArenaChunk
	}
	return &Arena{chunkSize: chunkSize}
}

func (a *Arena) alloc() *Node {
	if a == nil {
		return &Node{}
	}
	if len(a.chunk) == cap(a.chunk) {
		a.chunk = make([]Node, 0, a.chunkSize)
		a.chunks++
	}
	a.chunk = a.chunk[:len(a.chunk)+1]
	a.allocated++
	return &a.chunk[len(a.chunk)-1]
}

// NewAtom is like the package level NewAtom but allocates from the arena.
// A nil arena falls back to the heap.
func (a *Arena) NewAtom(nt NodeType, text string, span Span) *Node {
	n := a.alloc()
	n.setAtom(nt, text, span)
	return n
}

// NewList is like the package level NewList but allocates from the arena.
// A nil arena falls back to the heap.
func (a *Arena) NewList(span Span, list []*Node) *Node {
	n := a.alloc()
	n.setList(span, list)
	return n
}

// Allocated returns the number of nodes handed out since the last Reset.
func (a *Arena) Allocated() int {
	return a.allocated
}

// Chunks returns the number of chunks allocated since the last Reset.
func (a *Arena) Chunks() int {
	return a.chunks
}

// Reset forgets every chunk so the next allocation starts a fresh one.
func (a *Arena) Reset() {
	a.chunk = nil
	a.allocated = 0
	a.chunks = 0
}
