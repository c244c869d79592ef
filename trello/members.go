package trello

import "context"

// GetMember retrieves a member by id or username. "me" resolves to the
// member owning the configured token.
func (c *Client) GetMember(ctx context.Context, usernameOrID string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeMember, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetActionsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Action, error) {
	return fetch[[]Action](ctx, c, routeMemberActions, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetBoardsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Board, error) {
	return fetch[[]Board](ctx, c, routeMemberBoards, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetBoardsInvitedByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Board, error) {
	return fetch[[]Board](ctx, c, routeMemberBoardsInvited, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetCardsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Card, error) {
	return fetch[[]Card](ctx, c, routeMemberCards, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetNotificationsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Notification, error) {
	return fetch[[]Notification](ctx, c, routeMemberNotifications, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetOrganizationsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Organization, error) {
	return fetch[[]Organization](ctx, c, routeMemberOrganizations, request{ids: ids(usernameOrID), filter: filter})
}

func (c *Client) GetOrganizationsInvitedByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Organization, error) {
	return fetch[[]Organization](ctx, c, routeMemberOrgsInvited, request{ids: ids(usernameOrID), filter: filter})
}
