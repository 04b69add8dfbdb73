// Package puzzle_test verifies wire decoding of Puzzle/Rule/Color/Orientation
// and Solution's JSON rendering.
package puzzle_test

import (
	"encoding/json"
	"testing"

	"github.com/semiexp/logicpad-solver/puzzle"
	"github.com/stretchr/testify/require"
)

func TestColor_RoundTrip(t *testing.T) {
	for _, c := range []puzzle.Color{puzzle.Undecided, puzzle.White, puzzle.Black} {
		data, err := json.Marshal(c)
		require.NoError(t, err)

		var got puzzle.Color
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, c, got)
	}
}

func TestColor_UnknownRejected(t *testing.T) {
	var c puzzle.Color
	err := json.Unmarshal([]byte(`"purple"`), &c)
	require.ErrorIs(t, err, puzzle.ErrUnknownColor)
}

func TestOrientation_RoundTrip(t *testing.T) {
	for o := puzzle.Left; o <= puzzle.DownLeft; o++ {
		data, err := json.Marshal(o)
		require.NoError(t, err)

		var got puzzle.Orientation
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, o, got)
	}
}

func TestOrientation_IsDiagonal(t *testing.T) {
	require.True(t, puzzle.UpRight.IsDiagonal())
	require.True(t, puzzle.DownLeft.IsDiagonal())
	require.False(t, puzzle.Up.IsDiagonal())
	require.False(t, puzzle.Left.IsDiagonal())
}

func TestPuzzle_UnmarshalJSON_AllRuleKinds(t *testing.T) {
	raw := `{
		"width": 2, "height": 1,
		"tiles": [[{"exists":true,"fixed":false,"color":"gray"},{"exists":true,"fixed":true,"color":"light"}]],
		"connections": [{"y1":0,"x1":0,"y2":0,"x2":1}],
		"rules": [
			{"type":"connectAll","color":"light"},
			{"type":"forbiddenPattern","pattern":[[{"exists":true,"fixed":false,"color":"dark"}]]},
			{"type":"minesweeper","tiles":[{"y":0,"x":0,"number":1}]},
			{"type":"number","tiles":[{"y":0,"x":0,"number":2}]},
			{"type":"letter","tiles":[{"y":0,"x":0,"letter":"A"}]},
			{"type":"dart","tiles":[{"y":0,"x":0,"orientation":"up","number":1}]},
			{"type":"viewpoint","tiles":[{"y":0,"x":0,"number":1}]},
			{"type":"lotus","tiles":[{"y":0,"x":0,"orientation":"up"}]},
			{"type":"galaxy","tiles":[{"y":0,"x":0}]},
			{"type":"sameShape","color":"light"},
			{"type":"uniqueShape","color":"dark"},
			{"type":"regionArea","color":"light","size":3},
			{"type":"cellCount","color":"dark","count":4},
			{"type":"offByX","number":1}
		]
	}`

	var p puzzle.Puzzle
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	require.NoError(t, p.Validate())
	require.Len(t, p.Rules, 14)

	_, ok := p.Rules[0].(*puzzle.ConnectAllRule)
	require.True(t, ok)
	offByX, ok := p.Rules[13].(*puzzle.OffByXRule)
	require.True(t, ok)
	require.Equal(t, 1, offByX.Number)
}

func TestPuzzle_UnmarshalJSON_UnknownRuleType(t *testing.T) {
	raw := `{"width":1,"height":1,"tiles":[[{"exists":true,"fixed":false,"color":"gray"}]],"rules":[{"type":"bogus"}]}`

	var p puzzle.Puzzle
	err := json.Unmarshal([]byte(raw), &p)
	require.ErrorIs(t, err, puzzle.ErrUnknownRuleType)
}

func TestPuzzle_Validate_ShapeMismatch(t *testing.T) {
	p := puzzle.Puzzle{Width: 2, Height: 1, Tiles: [][]puzzle.Tile{{{Exists: true}}}}
	require.ErrorIs(t, p.Validate(), puzzle.ErrRowLength)

	p2 := puzzle.Puzzle{Width: 1, Height: 2, Tiles: [][]puzzle.Tile{{{Exists: true}}}}
	require.ErrorIs(t, p2.Validate(), puzzle.ErrRowCount)
}

func TestSolution_MarshalJSON(t *testing.T) {
	s := puzzle.NewSolution(1, 2)
	s.Set(0, 0, puzzle.White)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `[["light", null]]`, string(data))
}
