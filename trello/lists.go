package trello

import "context"

// GetList retrieves a list
func (c *Client) GetList(ctx context.Context, listID string, filter ...string) (*List, error) {
	return fetch[*List](ctx, c, routeList, request{ids: ids(listID), filter: filter})
}

// GetActionsByList retrieves the actions recorded on a list
func (c *Client) GetActionsByList(ctx context.Context, listID string) ([]Action, error) {
	return fetch[[]Action](ctx, c, routeListActions, request{ids: ids(listID)})
}

// GetBoardByList retrieves the board a list is on
func (c *Client) GetBoardByList(ctx context.Context, listID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeListBoard, request{ids: ids(listID), filter: filter})
}

// GetCardsByList retrieves the cards of a list
func (c *Client) GetCardsByList(ctx context.Context, listID string, filter ...string) ([]Card, error) {
	return fetch[[]Card](ctx, c, routeListCards, request{ids: ids(listID), filter: filter})
}

// CreateList creates a list named name on board boardID
func (c *Client) CreateList(ctx context.Context, boardID, name string, args Arguments) (*List, error) {
	if err := ValidateObjectID(boardID); err != nil {
		return nil, err
	}
	body := args.with(Arguments{"name": name, "idBoard": boardID})
	return fetch[*List](ctx, c, routeListCreate, request{args: body})
}
