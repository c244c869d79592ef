package trello

import "context"

// GetOrganization retrieves a workspace by id or name
func (c *Client) GetOrganization(ctx context.Context, nameOrID string, filter ...string) (*Organization, error) {
	return fetch[*Organization](ctx, c, routeOrganization, request{ids: ids(nameOrID), filter: filter})
}

func (c *Client) GetActionsByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Action, error) {
	return fetch[[]Action](ctx, c, routeOrganizationActions, request{ids: ids(nameOrID), filter: filter})
}

func (c *Client) GetBoardsByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Board, error) {
	return fetch[[]Board](ctx, c, routeOrganizationBoards, request{ids: ids(nameOrID), filter: filter})
}

func (c *Client) GetMembersByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Member, error) {
	return fetch[[]Member](ctx, c, routeOrganizationMembers, request{ids: ids(nameOrID), filter: filter})
}
