package interpreter

// Context stores the grid and a robot's running state

type Context struct {
	Grid  *Grid
	State State
	Lost  bool
	Steps int
}

func NewContext(g *Grid, r *Robot) *Context {
	return &Context{
		Grid:  g,
		State: State{X: r.X, Y: r.Y, Heading: r.Heading},
	}
}

// Step runs one command. A move off the grid marks the robot lost and leaves
// State at the last position it held on the grid. Once lost, Step is a no-op.
func (ctx *Context) Step(c Command) bool {
	if ctx.Lost {
		return false
	}
	next := ctx.State.Apply(c)
	if !ctx.Grid.InBounds(next.Position()) {
		ctx.Lost = true
		return false
	}
	ctx.State = next
	ctx.Steps++
	return true
}

// Exec runs cmds in order and stops at the first one that loses the robot.
func (ctx *Context) Exec(cmds []Command) {
	for _, c := range cmds {
		if !ctx.Step(c) {
			return
		}
	}
}

func (ctx *Context) Outcome() Outcome {
	return Outcome{X: ctx.State.X, Y: ctx.State.Y, Heading: ctx.State.Heading, Lost: ctx.Lost}
}

// Process simulates robot on grid. Neither argument is modified.
func Process(g *Grid, r *Robot) Outcome {
	ctx := NewContext(g, r)
	ctx.Exec(r.Commands)
	return ctx.Outcome()
}
