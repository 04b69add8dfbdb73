package rules

import "errors"

// Sentinel errors for the semantic-input-error category of spec section 7.
// Compile returns these (bare, or wrapped with %w and the offending
// coordinates) on the first violated rule; there are no partial failures and no retries.
var (
	// ErrGrayFixed indicates a fixed tile whose color is Undecided ("gray").
	ErrGrayFixed = errors.New("rules: gray tile is fixed")

	// ErrConnectAllGray indicates a connectAll rule naming Undecided as its color.
	ErrConnectAllGray = errors.New("rules: connectAll with gray color")

	// ErrEmptyForbiddenPattern indicates a forbiddenPattern rule whose pattern
	// has no non-gray cell to crop a bounding box around.
	ErrEmptyForbiddenPattern = errors.New("rules: empty forbidden pattern")

	// ErrMultipleOffByX indicates more than one offByX rule in a puzzle.
	ErrMultipleOffByX = errors.New("rules: multiple offByX rules")

	// ErrOffByXNonPositive indicates an offByX rule whose number is <= 0.
	ErrOffByXNonPositive = errors.New("rules: offByX with non-positive number")

	// ErrDuplicateAreaNumber indicates two AreaNumber clues pinning the same cell.
	ErrDuplicateAreaNumber = errors.New("rules: duplicate area number")

	// ErrMultipleAreaNumberRules indicates more than one AreaNumber rule in a puzzle.
	ErrMultipleAreaNumberRules = errors.New("rules: multiple area number rules")

	// ErrMultipleRegionAreaRules indicates more than one RegionArea rule of the same color.
	ErrMultipleRegionAreaRules = errors.New("rules: multiple light/dark area size rules")

	// ErrClueOnNonExistingTile indicates a clue coordinate referring to a
	// tile with exists = false.
	ErrClueOnNonExistingTile = errors.New("rules: clue tile on non-existing tile")

	// ErrLotusInvalidPosition indicates a lotus center whose half-grid parity
	// does not match its orientation.
	ErrLotusInvalidPosition = errors.New("rules: lotus on invalid position")

	// ErrLotusOutOfBounds indicates a lotus half-grid coordinate outside the board.
	ErrLotusOutOfBounds = errors.New("rules: lotus out of bounds")

	// ErrGalaxyCorner indicates a galaxy center whose half-grid coordinate is
	// (odd, odd); spec section 9 mandates rejecting this rather than
	// silently applying the 180-degree map.
	ErrGalaxyCorner = errors.New("rules: galaxies on corners may cause unexpected behavior")

	// ErrCoordOutOfBounds indicates a rule references a cell outside the grid.
	ErrCoordOutOfBounds = errors.New("rules: coordinate out of bounds")
)
