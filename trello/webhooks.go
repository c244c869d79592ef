package trello

import (
	"context"
	"net/url"
)

// CreateWebhook registers callbackURL to receive changes on the model
// modelID (a board, card, list, member or workspace).
func (c *Client) CreateWebhook(ctx context.Context, description, callbackURL, modelID string) (*Webhook, error) {
	if err := ValidateObjectID(modelID); err != nil {
		return nil, err
	}
	if u, err := url.Parse(callbackURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, &ValidationError{Value: callbackURL, Reason: "callback must be an absolute URL"}
	}

	args := Arguments{
		"description": description,
		"callbackURL": callbackURL,
		"idModel":     modelID,
	}
	return fetch[*Webhook](ctx, c, routeWebhookCreate, request{args: args})
}

// GetWebhook retrieves a webhook
func (c *Client) GetWebhook(ctx context.Context, webhookID string) (*Webhook, error) {
	return fetch[*Webhook](ctx, c, routeWebhook, request{ids: ids(webhookID)})
}

// DeleteWebhook removes a webhook
func (c *Client) DeleteWebhook(ctx context.Context, webhookID string) error {
	return c.exec(ctx, routeWebhookDelete, request{ids: ids(webhookID)})
}
