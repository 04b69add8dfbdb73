package puzzle

// Rule is the sum type of puzzle rules (spec section 6). Each wire "type"
// discriminator decodes to one concrete Rule implementation; rules.Compile
// type-switches over Rule to post the corresponding constraints.
type Rule interface {
	// ruleType returns the wire discriminator, e.g. "connectAll". Unexported
	// so that Rule cannot be implemented outside this package - every rule
	// kind the wire format allows is enumerated here.
	ruleType() string
}

// NumberTile is a clue cell carrying a single integer: used by Minesweeper,
// AreaNumber and Viewpoint rules, which share the same {y,x,number} shape.
type NumberTile struct {
	Y      int `json:"y"`
	X      int `json:"x"`
	Number int `json:"number"`
}

// DartTile is a Dart clue: a NumberTile plus the ray direction.
type DartTile struct {
	Y           int         `json:"y"`
	X           int         `json:"x"`
	Orientation Orientation `json:"orientation"`
	Number      int         `json:"number"`
}

// LetterTile assigns a cell to a named connectivity group.
type LetterTile struct {
	Y      int    `json:"y"`
	X      int    `json:"x"`
	Letter string `json:"letter"`
}

// LotusTile marks a lotus symmetry center on the half-grid (spec section 4.3).
type LotusTile struct {
	Y           int         `json:"y"`
	X           int         `json:"x"`
	Orientation Orientation `json:"orientation"`
}

// GalaxyTile marks a galaxy (point-symmetry) center on the half-grid.
type GalaxyTile struct {
	Y int `json:"y"`
	X int `json:"x"`
}

// ConnectAllRule requires every cell of Color to form one 4-connected region.
type ConnectAllRule struct {
	Color Color `json:"color"`
}

func (ConnectAllRule) ruleType() string { return "connectAll" }

// ForbiddenPatternRule forbids every D4 orientation of Pattern from occurring
// anywhere on the board.
type ForbiddenPatternRule struct {
	Pattern [][]Tile `json:"pattern"`
}

func (ForbiddenPatternRule) ruleType() string { return "forbiddenPattern" }

// MinesweeperRule posts a 3x3-neighborhood opposite-color count at each tile.
type MinesweeperRule struct {
	Tiles []NumberTile `json:"tiles"`
}

func (MinesweeperRule) ruleType() string { return "minesweeper" }

// AreaNumberRule pins the size of the 4-connected monochromatic region
// containing each tile (wire tag "number").
type AreaNumberRule struct {
	Tiles []NumberTile `json:"tiles"`
}

func (AreaNumberRule) ruleType() string { return "number" }

// LetterRule groups tiles sharing a Letter into one same-color, connected region.
type LetterRule struct {
	Tiles []LetterTile `json:"tiles"`
}

func (LetterRule) ruleType() string { return "letter" }

// DartRule posts an opposite-color count along a ray from each tile to the board edge.
type DartRule struct {
	Tiles []DartTile `json:"tiles"`
}

func (DartRule) ruleType() string { return "dart" }

// ViewpointRule posts a same-color run-length count (self + four rays) at each tile.
type ViewpointRule struct {
	Tiles []NumberTile `json:"tiles"`
}

func (ViewpointRule) ruleType() string { return "viewpoint" }

// LotusRule posts dihedral symmetry constraints around each lotus center.
type LotusRule struct {
	Tiles []LotusTile `json:"tiles"`
}

func (LotusRule) ruleType() string { return "lotus" }

// GalaxyRule posts point-symmetry constraints around each galaxy center.
type GalaxyRule struct {
	Tiles []GalaxyTile `json:"tiles"`
}

func (GalaxyRule) ruleType() string { return "galaxy" }

// SameShapeRule attaches an AllEqual shape propagator to Color.
type SameShapeRule struct {
	Color Color `json:"color"`
}

func (SameShapeRule) ruleType() string { return "sameShape" }

// UniqueShapeRule attaches an AllDifferent shape propagator to Color.
type UniqueShapeRule struct {
	Color Color `json:"color"`
}

func (UniqueShapeRule) ruleType() string { return "uniqueShape" }

// RegionAreaRule pins the size of every 4-connected Color region to Size.
type RegionAreaRule struct {
	Color Color `json:"color"`
	Size  int   `json:"size"`
}

func (RegionAreaRule) ruleType() string { return "regionArea" }

// CellCountRule requires the total number of Color cells to equal Count exactly
// (never relaxed by off-by-X, per spec section 9).
type CellCountRule struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

func (CellCountRule) ruleType() string { return "cellCount" }

// OffByXRule globally relaxes every numeric clue `= n` to `= n-Number OR = n+Number`.
// At most one may appear in a puzzle (spec section 4.3).
type OffByXRule struct {
	Number int `json:"number"`
}

func (OffByXRule) ruleType() string { return "offByX" }
