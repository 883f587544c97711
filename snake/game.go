package snake

import (
	"math/rand/v2"
	"slices"

	"github.com/phanxgames/snaek"
)

// Direction is where the snake's head moves on the next step.
type Direction uint8

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// delta is the one-cell move in direction d.
func (d Direction) delta() snaek.Pos {
	switch d {
	case Up:
		return snaek.Pos{Y: -1}
	case Right:
		return snaek.Pos{X: 1}
	case Down:
		return snaek.Pos{Y: 1}
	default:
		return snaek.Pos{X: -1}
	}
}

// Game is the snake simulation on a wrapping grid. It knows nothing about
// drawing or timing; call Step at whatever rate the game should run.
type Game struct {
	cols, rows int16
	rng        *rand.Rand

	body   []snaek.Pos // head first
	dir    Direction
	moved  Direction // direction of the last step
	banana snaek.Pos
	eaten  int
	steps  int
	dead   bool
	won    bool
}

// New creates a game on a cols by rows grid. rng drives banana placement; nil
// seeds a fresh generator.
func New(cols, rows int, rng *rand.Rand) *Game {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Game{
		cols: int16(max(cols, 2)),
		rows: int16(max(rows, 1)),
		rng:  rng,
	}
	g.Restart()
	return g
}

// Restart puts a two-cell snake in the middle of the grid heading right and
// drops a new banana.
func (g *Game) Restart() {
	head := snaek.Pos{X: g.cols / 2, Y: g.rows / 2}
	g.body = append(g.body[:0], head, snaek.Pos{X: head.X - 1, Y: head.Y})
	g.dir, g.moved = Right, Right
	g.eaten, g.steps = 0, 0
	g.dead, g.won = false, false
	g.spawnBanana()
}

// ChangeDirection steers the snake for the next step. Turning back onto the
// segment behind the head is ignored.
func (g *Game) ChangeDirection(d Direction) {
	if d == g.moved.Opposite() {
		return
	}
	g.dir = d
}

// Step advances the snake one cell. Leaving the grid wraps around to the other
// side. Running into any part of the body, tail included, kills the snake.
// Eating the banana grows the snake by one and respawns the banana on a free
// cell. Step does nothing once the game is over.
func (g *Game) Step() {
	if g.dead || g.won {
		return
	}

	next := g.wrap(g.body[0].Add(g.dir.delta()))
	if slices.Contains(g.body, next) {
		g.dead = true
		return
	}

	g.moved = g.dir
	g.steps++
	if next == g.banana {
		g.body = slices.Insert(g.body, 0, next)
		g.eaten++
		g.spawnBanana()
		return
	}
	copy(g.body[1:], g.body[:len(g.body)-1])
	g.body[0] = next
}

func (g *Game) wrap(p snaek.Pos) snaek.Pos {
	p.X = (p.X%g.cols + g.cols) % g.cols
	p.Y = (p.Y%g.rows + g.rows) % g.rows
	return p
}

// spawnBanana moves the banana to a random cell not covered by the snake. With
// no free cell left the game is won.
func (g *Game) spawnBanana() {
	free := int(g.cols)*int(g.rows) - len(g.body)
	if free <= 0 {
		g.won = true
		return
	}
	n := g.rng.IntN(free)
	for y := int16(0); y < g.rows; y++ {
		for x := int16(0); x < g.cols; x++ {
			p := snaek.Pos{X: x, Y: y}
			if slices.Contains(g.body, p) {
				continue
			}
			if n == 0 {
				g.banana = p
				return
			}
			n--
		}
	}
}

// Size returns the grid size in cells.
func (g *Game) Size() (cols, rows int) { return int(g.cols), int(g.rows) }

// Dead reports whether the snake ran into itself.
func (g *Game) Dead() bool { return g.dead }

// Won reports whether the snake fills the whole grid.
func (g *Game) Won() bool { return g.won }

// Over reports whether Step has stopped advancing.
func (g *Game) Over() bool { return g.dead || g.won }

func (g *Game) BananasEaten() int       { return g.eaten }
func (g *Game) Banana() snaek.Pos       { return g.banana }
func (g *Game) Direction() Direction    { return g.dir }
func (g *Game) Len() int                { return len(g.body) }
func (g *Game) Steps() int              { return g.steps }
func (g *Game) Segment(i int) snaek.Pos { return g.body[i] }

// Body returns a copy of the snake's cells, head first.
func (g *Game) Body() []snaek.Pos { return slices.Clone(g.body) }

// Toward returns the direction of the one-cell step from a to b, taking
// wrap-around into account. ok is false when the cells are not adjacent.
func (g *Game) Toward(a, b snaek.Pos) (d Direction, ok bool) {
	for _, dir := range [...]Direction{Up, Right, Down, Left} {
		if g.wrap(a.Add(dir.delta())) == b {
			return dir, true
		}
	}
	return 0, false
}
