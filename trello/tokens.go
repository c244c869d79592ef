package trello

import "context"

// GetToken retrieves information about a token
func (c *Client) GetToken(ctx context.Context, token string, filter ...string) (*Token, error) {
	return fetch[*Token](ctx, c, routeToken, request{ids: ids(token), filter: filter})
}

// GetMemberByToken retrieves the member owning a token
func (c *Client) GetMemberByToken(ctx context.Context, token string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeTokenMember, request{ids: ids(token), filter: filter})
}

// GetWebhooks lists the webhooks registered with the client's token
func (c *Client) GetWebhooks(ctx context.Context) ([]Webhook, error) {
	if c.token == "" {
		return nil, &ConfigurationError{Field: "token", Reason: "listing webhooks requires a token"}
	}
	return fetch[[]Webhook](ctx, c, routeTokenWebhooks, request{ids: ids(c.token)})
}

// GetType resolves an id or name to the kind of object it identifies
func (c *Client) GetType(ctx context.Context, idOrName string) (*Type, error) {
	return fetch[*Type](ctx, c, routeType, request{ids: ids(idOrName)})
}
