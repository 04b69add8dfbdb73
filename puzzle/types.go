package puzzle

import "fmt"

// Color is a tile's (or a solved cell's) color. Undecided is a valid input
// tile color but must never appear in a solved tile (spec section 3).
type Color int

const (
	// Undecided marks an unfixed / not-yet-forced tile ("gray" on the wire).
	Undecided Color = iota
	// White is the "light" color.
	White
	// Black is the "dark" color.
	Black
)

// String renders the wire spelling of c, for logging and error messages.
func (c Color) String() string {
	switch c {
	case White:
		return "light"
	case Black:
		return "dark"
	default:
		return "gray"
	}
}

// Opposite returns the other solved color. It panics on Undecided, since no
// rule in this module needs the opposite of an unfixed color.
func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	default:
		panic("puzzle: Opposite of Undecided is not defined")
	}
}

func colorFromWire(s string) (Color, error) {
	switch s {
	case "gray":
		return Undecided, nil
	case "light":
		return White, nil
	case "dark":
		return Black, nil
	default:
		return Undecided, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
}

// MarshalJSON renders c using its wire spelling.
func (c Color) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON parses c from its wire spelling.
func (c *Color) UnmarshalJSON(data []byte) error {
	var s string
	if err := unmarshalString(data, &s); err != nil {
		return err
	}
	v, err := colorFromWire(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Orientation names one of the four cardinal or four diagonal directions
// used by Dart and Lotus rules.
type Orientation int

const (
	Left Orientation = iota
	Right
	Up
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
)

var orientationWire = map[Orientation]string{
	Left: "left", Right: "right", Up: "up", Down: "down",
	UpRight: "up-right", UpLeft: "up-left", DownRight: "down-right", DownLeft: "down-left",
}

var wireOrientation = func() map[string]Orientation {
	m := make(map[string]Orientation, len(orientationWire))
	for o, s := range orientationWire {
		m[s] = o
	}
	return m
}()

// String renders the wire spelling of o.
func (o Orientation) String() string {
	return orientationWire[o]
}

// MarshalJSON renders o using its wire spelling.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + o.String() + `"`), nil
}

// UnmarshalJSON parses o from its wire spelling.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := unmarshalString(data, &s); err != nil {
		return err
	}
	v, ok := wireOrientation[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
	}
	*o = v
	return nil
}

// IsDiagonal reports whether o is one of the four diagonal orientations,
// used by Lotus rule validation (spec section 4.3).
func (o Orientation) IsDiagonal() bool {
	switch o {
	case UpRight, UpLeft, DownRight, DownLeft:
		return true
	default:
		return false
	}
}

// Tile is a single cell of the input board.
//
// Invariants (spec section 3): if Fixed, Color must be White or Black;
// if !Exists, Color is ignored by every rule.
type Tile struct {
	Exists bool  `json:"exists"`
	Fixed  bool  `json:"fixed"`
	Color  Color `json:"color"`
}

// Connection declares that two cells must share the same solved color.
type Connection struct {
	Y1 int `json:"y1"`
	X1 int `json:"x1"`
	Y2 int `json:"y2"`
	X2 int `json:"x2"`
}

// Puzzle is the decoded request: a rectangular Tile board plus Connections
// and Rules. Validate checks the dimension invariants from spec section 3
// (UnmarshalJSON does not check row shape beyond what is needed to decode).
type Puzzle struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	Tiles       [][]Tile     `json:"tiles"`
	Rules       []Rule       `json:"rules"`
	Connections []Connection `json:"connections"`
}

// Validate checks the grid-shape invariants from spec section 3: every row
// of Tiles has length Width, and there are Height rows. Coordinate-bounds
// and exists-ness invariants referenced by individual rules are checked by
// rules.Compile, where the erroring rule can be identified.
func (p *Puzzle) Validate() error {
	if len(p.Tiles) != p.Height {
		return fmt.Errorf("%w: got %d rows, want height %d", ErrRowCount, len(p.Tiles), p.Height)
	}
	for y, row := range p.Tiles {
		if len(row) != p.Width {
			return fmt.Errorf("%w: row %d has %d cells, want width %d", ErrRowLength, y, len(row), p.Width)
		}
	}
	return nil
}

// InBounds reports whether (y,x) addresses a cell within the puzzle grid.
func (p *Puzzle) InBounds(y, x int) bool {
	return y >= 0 && y < p.Height && x >= 0 && x < p.Width
}

// Exists reports whether the tile at (y,x) exists. Callers must ensure
// InBounds(y,x) first.
func (p *Puzzle) Exists(y, x int) bool {
	return p.Tiles[y][x].Exists
}
