package puzzle

import (
	"encoding/json"
	"fmt"
)

// unmarshalString decodes a bare JSON string, shared by Color/Orientation's
// UnmarshalJSON; a decoding error is json.Unmarshal's, returned unchanged.
func unmarshalString(data []byte, out *string) error {
	return json.Unmarshal(data, out)
}

// ruleEnvelope mirrors the wire shape `{"type": "...", ...fields}` used to
// discriminate Rule before decoding into a concrete type.
type ruleEnvelope struct {
	Type string `json:"type"`
}

// UnmarshalJSON decodes p from the wire request schema (spec section 6).
// Puzzle embeds Rule, an interface, so it cannot use the default struct
// decoder for the Rules field; this method decodes every other field
// normally and dispatches each element of a raw-message Rules slice through decodeRule.
func (p *Puzzle) UnmarshalJSON(data []byte) error {
	var wire struct {
		Width       int               `json:"width"`
		Height      int               `json:"height"`
		Tiles       [][]Tile          `json:"tiles"`
		Rules       []json.RawMessage `json:"rules"`
		Connections []Connection      `json:"connections"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	rules := make([]Rule, len(wire.Rules))
	for i, raw := range wire.Rules {
		rule, err := decodeRule(raw)
		if err != nil {
			return err
		}
		rules[i] = rule
	}

	p.Width = wire.Width
	p.Height = wire.Height
	p.Tiles = wire.Tiles
	p.Rules = rules
	p.Connections = wire.Connections
	return nil
}

// decodeRule dispatches a single raw rule object to its concrete Go type
// based on the "type" discriminator.
func decodeRule(raw json.RawMessage) (Rule, error) {
	var env ruleEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, err
	}

	switch env.Type {
	case "connectAll":
		var r ConnectAllRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "forbiddenPattern":
		var r ForbiddenPatternRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "minesweeper":
		var r MinesweeperRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "number":
		var r AreaNumberRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "letter":
		var r LetterRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "dart":
		var r DartRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "viewpoint":
		var r ViewpointRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "lotus":
		var r LotusRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "galaxy":
		var r GalaxyRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "sameShape":
		var r SameShapeRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "uniqueShape":
		var r UniqueShapeRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "regionArea":
		var r RegionAreaRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "cellCount":
		var r CellCountRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	case "offByX":
		var r OffByXRule
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, err
		}
		return &r, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRuleType, env.Type)
	}
}
