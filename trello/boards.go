package trello

import (
	"context"
	"strconv"
)

// GetBoard retrieves a board. Filters restrict the returned fields.
func (c *Client) GetBoard(ctx context.Context, boardID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeBoard, request{ids: ids(boardID), filter: filter})
}

// GetActionsByBoard retrieves the actions recorded on a board
func (c *Client) GetActionsByBoard(ctx context.Context, boardID string, filter ...string) ([]Action, error) {
	return fetch[[]Action](ctx, c, routeBoardActions, request{ids: ids(boardID), filter: filter})
}

// GetCardsByBoard retrieves the cards of a board. args carries optional
// query parameters such as "fields" or "members".
func (c *Client) GetCardsByBoard(ctx context.Context, boardID string, args Arguments, filter ...string) ([]Card, error) {
	return fetch[[]Card](ctx, c, routeBoardCards, request{ids: ids(boardID), filter: filter, args: args})
}

// GetChecklistsByBoard retrieves every checklist on a board
func (c *Client) GetChecklistsByBoard(ctx context.Context, boardID string) ([]Checklist, error) {
	return fetch[[]Checklist](ctx, c, routeBoardChecklists, request{ids: ids(boardID)})
}

// GetListsByBoard retrieves the lists of a board
func (c *Client) GetListsByBoard(ctx context.Context, boardID string, filter ...string) ([]List, error) {
	return fetch[[]List](ctx, c, routeBoardLists, request{ids: ids(boardID), filter: filter})
}

// GetMembersByBoard retrieves the members of a board
func (c *Client) GetMembersByBoard(ctx context.Context, boardID string, filter ...string) ([]Member, error) {
	return fetch[[]Member](ctx, c, routeBoardMembers, request{ids: ids(boardID), filter: filter})
}

// GetMembersInvitedByBoard retrieves members invited to a board who have not joined yet
func (c *Client) GetMembersInvitedByBoard(ctx context.Context, boardID string, filter ...string) ([]Member, error) {
	return fetch[[]Member](ctx, c, routeBoardMembersInvited, request{ids: ids(boardID), filter: filter})
}

// GetPrefsByBoard retrieves the calling member's preferences on a board
func (c *Client) GetPrefsByBoard(ctx context.Context, boardID string) (*MyPrefs, error) {
	return fetch[*MyPrefs](ctx, c, routeBoardMyPrefs, request{ids: ids(boardID)})
}

// GetOrganizationByBoard retrieves the workspace a board belongs to
func (c *Client) GetOrganizationByBoard(ctx context.Context, boardID string, filter ...string) (*Organization, error) {
	return fetch[*Organization](ctx, c, routeBoardOrganization, request{ids: ids(boardID), filter: filter})
}

// GetLabelsByBoard retrieves the labels defined on a board. A limit of zero
// leaves the server default in place.
func (c *Client) GetLabelsByBoard(ctx context.Context, boardID string, limit int, filter ...string) ([]Label, error) {
	var args Arguments
	if limit > 0 {
		args = Arguments{"limit": strconv.Itoa(limit)}
	}
	return fetch[[]Label](ctx, c, routeBoardLabels, request{ids: ids(boardID), filter: filter, args: args})
}
