package core

type guard struct {
	name    string
	release func()
}

// guards is a stack of acquired resources, released in reverse order.
type guards struct {
	log   Logger
	stack []guard
}

func (g *guards) push(name string, release func()) {
	g.stack = append(g.stack, guard{name: name, release: release})
}

func (g *guards) unwind() {
	for i := len(g.stack) - 1; i >= 0; i-- {
		g.log.Verbosef("Releasing %s", g.stack[i].name)
		g.stack[i].release()
	}
	g.stack = nil
}
