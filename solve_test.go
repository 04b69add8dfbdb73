package logicpad_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	logicpad "github.com/semiexp/logicpad-solver"
)

func TestSolve_DecidedModeColorsFixedTile(t *testing.T) {
	req := `{
		"width": 1, "height": 1,
		"tiles": [[{"exists":true,"fixed":true,"color":"light"}]],
		"rules": [], "connections": []
	}`

	out := logicpad.Solve(context.Background(), []byte(req), false)

	var got [][]*string
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got, 1)
	require.Equal(t, "light", *got[0][0])
}

func TestSolve_MalformedJSON_ReturnsErrorEnvelope(t *testing.T) {
	out := logicpad.Solve(context.Background(), []byte(`{not json`), false)

	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out, &env))
	require.NotEmpty(t, env.Error)
}

func TestSolve_SemanticError_ReturnsErrorEnvelope(t *testing.T) {
	req := `{
		"width": 1, "height": 1,
		"tiles": [[{"exists":true,"fixed":false,"color":"gray"}]],
		"rules": [{"type":"connectAll","color":"gray"}], "connections": []
	}`

	out := logicpad.Solve(context.Background(), []byte(req), false)

	var env struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out, &env))
	require.Contains(t, env.Error, "connectAll")
}

func TestSolve_Unsatisfiable_ReturnsBareNull(t *testing.T) {
	req := `{
		"width": 1, "height": 1,
		"tiles": [[{"exists":true,"fixed":true,"color":"light"}]],
		"rules": [{"type":"cellCount","color":"dark","count":1}], "connections": []
	}`

	out := logicpad.Solve(context.Background(), []byte(req), false)
	require.Equal(t, "null", string(out))
}
