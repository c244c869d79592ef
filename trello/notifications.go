package trello

import "context"

// GetNotification retrieves a notification
func (c *Client) GetNotification(ctx context.Context, notificationID string, filter ...string) (*Notification, error) {
	return fetch[*Notification](ctx, c, routeNotification, request{ids: ids(notificationID), filter: filter})
}

// GetBoardByNotification retrieves the board a notification refers to
func (c *Client) GetBoardByNotification(ctx context.Context, notificationID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeNotificationBoard, request{ids: ids(notificationID), filter: filter})
}

// GetCardByNotification retrieves the card a notification refers to
func (c *Client) GetCardByNotification(ctx context.Context, notificationID string, filter ...string) (*Card, error) {
	return fetch[*Card](ctx, c, routeNotificationCard, request{ids: ids(notificationID), filter: filter})
}

// GetListByNotification retrieves the list a notification refers to
func (c *Client) GetListByNotification(ctx context.Context, notificationID string, filter ...string) (*List, error) {
	return fetch[*List](ctx, c, routeNotificationList, request{ids: ids(notificationID), filter: filter})
}

// GetMemberByNotification retrieves the member a notification refers to
func (c *Client) GetMemberByNotification(ctx context.Context, notificationID string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeNotificationMember, request{ids: ids(notificationID), filter: filter})
}

// GetMemberCreatorByNotification retrieves the member who triggered a notification
func (c *Client) GetMemberCreatorByNotification(ctx context.Context, notificationID string, filter ...string) (*Member, error) {
	return fetch[*Member](ctx, c, routeNotificationCreator, request{ids: ids(notificationID), filter: filter})
}

// GetOrganizationByNotification retrieves the workspace a notification refers to
func (c *Client) GetOrganizationByNotification(ctx context.Context, notificationID string, filter ...string) (*Organization, error) {
	return fetch[*Organization](ctx, c, routeNotificationOrg, request{ids: ids(notificationID), filter: filter})
}
