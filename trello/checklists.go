package trello

import "context"

// GetChecklist retrieves a checklist with its items
func (c *Client) GetChecklist(ctx context.Context, checklistID string, filter ...string) (*Checklist, error) {
	return fetch[*Checklist](ctx, c, routeChecklist, request{ids: ids(checklistID), filter: filter})
}

// GetBoardByChecklist retrieves the board a checklist is on
func (c *Client) GetBoardByChecklist(ctx context.Context, checklistID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeChecklistBoard, request{ids: ids(checklistID), filter: filter})
}

// GetCardsByChecklist retrieves the cards carrying a checklist
func (c *Client) GetCardsByChecklist(ctx context.Context, checklistID string, filter ...string) ([]Card, error) {
	return fetch[[]Card](ctx, c, routeChecklistCards, request{ids: ids(checklistID), filter: filter})
}

// GetCheckItemsByChecklist retrieves the items of a checklist
func (c *Client) GetCheckItemsByChecklist(ctx context.Context, checklistID string) ([]CheckItem, error) {
	return fetch[[]CheckItem](ctx, c, routeChecklistCheckItems, request{ids: ids(checklistID)})
}

// AddCheckItemToChecklist appends an item named name. args may set "pos" or
// "checked".
func (c *Client) AddCheckItemToChecklist(ctx context.Context, checklistID, name string, args Arguments) (*CheckItem, error) {
	body := args.with(Arguments{"name": name})
	return fetch[*CheckItem](ctx, c, routeChecklistAddCheckItem, request{ids: ids(checklistID), args: body})
}
