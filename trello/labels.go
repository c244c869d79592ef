package trello

import "context"

// CreateLabel defines a new label on a board. LabelColorNone creates a
// label without color.
func (c *Client) CreateLabel(ctx context.Context, boardID, name string, color LabelColor) (*Label, error) {
	if err := ValidateObjectID(boardID); err != nil {
		return nil, err
	}
	args := Arguments{"idBoard": boardID, "name": name}
	if color != LabelColorNone {
		args["color"] = string(color)
	}
	return fetch[*Label](ctx, c, routeLabelCreate, request{args: args})
}
