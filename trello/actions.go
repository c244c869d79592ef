package trello

import "context"

// GetAction retrieves a single action
func (c *Client) GetAction(ctx context.Context, actionID string, filter ...string) (*Action, error) {
	return fetch[*Action](ctx, c, routeAction, request{ids: ids(actionID), filter: filter})
}

// GetBoardByAction retrieves the board an action happened on
func (c *Client) GetBoardByAction(ctx context.Context, actionID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeActionBoard, request{ids: ids(actionID), filter: filter})
}

// GetCardByAction retrieves the card an action refers to
func (c *Client) GetCardByAction(ctx context.Context, actionID string, filter ...string) (*Card, error) {
	return fetch[*Card](ctx, c, routeActionCard, request{ids: ids(actionID), filter: filter})
}

// GetListByAction retrieves the list an action refers to
func (c *Client) GetListByAction(ctx context.Context, actionID string, filter ...string) (*List, error) {
	return fetch[*List](ctx, c, routeActionList, request{ids: ids(actionID), filter: filter})
}

// GetMemberByAction retrieves the member an action refers to
func (c *Client) GetMemberByAction(ctx context.Context, actionID string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeActionMember, request{ids: ids(actionID), filter: filter})
}

// GetMemberCreatorByAction retrieves the member who performed an action
func (c *Client) GetMemberCreatorByAction(ctx context.Context, actionID string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeActionMemberCreator, request{ids: ids(actionID), filter: filter})
}

// GetOrganizationByAction retrieves the workspace an action belongs to
func (c *Client) GetOrganizationByAction(ctx context.Context, actionID string, filter ...string) (*Organization, error) {
	return fetch[*Organization](ctx, c, routeActionOrganization, request{ids: ids(actionID), filter: filter})
}
