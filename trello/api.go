package trello

import (
	"context"
)

// API defines the interface for Trello operations
type API interface {
	// TestConnection verifies the key and token against the API
	TestConnection(ctx context.Context) error

	// Boards
	GetBoard(ctx context.Context, boardID string, filter ...string) (*Board, error)
	GetActionsByBoard(ctx context.Context, boardID string, filter ...string) ([]Action, error)
	GetCardsByBoard(ctx context.Context, boardID string, args Arguments, filter ...string) ([]Card, error)
	GetChecklistsByBoard(ctx context.Context, boardID string) ([]Checklist, error)
	GetListsByBoard(ctx context.Context, boardID string, filter ...string) ([]List, error)
	GetMembersByBoard(ctx context.Context, boardID string, filter ...string) ([]Member, error)
	GetMembersInvitedByBoard(ctx context.Context, boardID string, filter ...string) ([]Member, error)
	GetPrefsByBoard(ctx context.Context, boardID string) (*MyPrefs, error)
	GetOrganizationByBoard(ctx context.Context, boardID string, filter ...string) (*Organization, error)
	GetLabelsByBoard(ctx context.Context, boardID string, limit int, filter ...string) ([]Label, error)

	// Actions
	GetAction(ctx context.Context, actionID string, filter ...string) (*Action, error)
	GetBoardByAction(ctx context.Context, actionID string, filter ...string) (*Board, error)
	GetCardByAction(ctx context.Context, actionID string, filter ...string) (*Card, error)
	GetListByAction(ctx context.Context, actionID string, filter ...string) (*List, error)
	GetMemberByAction(ctx context.Context, actionID string, filter ...string) (*Member, error)
	GetMemberCreatorByAction(ctx context.Context, actionID string, filter ...string) (*Member, error)
	GetOrganizationByAction(ctx context.Context, actionID string, filter ...string) (*Organization, error)

	// Cards
	GetCard(ctx context.Context, cardID string, filter ...string) (*Card, error)
	GetActionsByCard(ctx context.Context, cardID string, actionTypes ...ActionType) ([]Action, error)
	GetAttachmentsByCard(ctx context.Context, cardID string) ([]Attachment, error)
	GetBoardByCard(ctx context.Context, cardID string, filter ...string) (*Board, error)
	GetCheckItemStatesByCard(ctx context.Context, cardID string) ([]CheckItemState, error)
	GetChecklistsByCard(ctx context.Context, cardID string) ([]Checklist, error)
	GetListByCard(ctx context.Context, cardID string, filter ...string) (*List, error)
	GetMembersByCard(ctx context.Context, cardID string) ([]Member, error)
	CreateCard(ctx context.Context, listID, name string, args Arguments) (*Card, error)
	UpdateCard(ctx context.Context, cardID string, args Arguments) (*Card, error)
	DeleteCard(ctx context.Context, cardID string) error
	AddLabelToCard(ctx context.Context, cardID, labelID string) ([]string, error)
	DeleteLabelFromCard(ctx context.Context, cardID, labelID string) error
	AddCommentToCard(ctx context.Context, cardID, text string) (*Action, error)
	AddChecklistToCard(ctx context.Context, cardID, name, sourceChecklistID string) (*Checklist, error)

	// Checklists
	GetChecklist(ctx context.Context, checklistID string, filter ...string) (*Checklist, error)
	GetBoardByChecklist(ctx context.Context, checklistID string, filter ...string) (*Board, error)
	GetCardsByChecklist(ctx context.Context, checklistID string, filter ...string) ([]Card, error)
	GetCheckItemsByChecklist(ctx context.Context, checklistID string) ([]CheckItem, error)
	AddCheckItemToChecklist(ctx context.Context, checklistID, name string, args Arguments) (*CheckItem, error)

	// Lists
	GetList(ctx context.Context, listID string, filter ...string) (*List, error)
	GetActionsByList(ctx context.Context, listID string) ([]Action, error)
	GetBoardByList(ctx context.Context, listID string, filter ...string) (*Board, error)
	GetCardsByList(ctx context.Context, listID string, filter ...string) ([]Card, error)
	CreateList(ctx context.Context, boardID, name string, args Arguments) (*List, error)

	// Labels
	CreateLabel(ctx context.Context, boardID, name string, color LabelColor) (*Label, error)

	// Members
	GetMember(ctx context.Context, usernameOrID string, filter ...string) (*Member, error)
	GetActionsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Action, error)
	GetBoardsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Board, error)
	GetBoardsInvitedByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Board, error)
	GetCardsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Card, error)
	GetNotificationsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Notification, error)
	GetOrganizationsByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Organization, error)
	GetOrganizationsInvitedByMember(ctx context.Context, usernameOrID string, filter ...string) ([]Organization, error)

	// Notifications
	GetNotification(ctx context.Context, notificationID string, filter ...string) (*Notification, error)
	GetBoardByNotification(ctx context.Context, notificationID string, filter ...string) (*Board, error)
	GetCardByNotification(ctx context.Context, notificationID string, filter ...string) (*Card, error)
	GetListByNotification(ctx context.Context, notificationID string, filter ...string) (*List, error)
	GetMemberByNotification(ctx context.Context, notificationID string, filter ...string) (*Member, error)
	GetMemberCreatorByNotification(ctx context.Context, notificationID string, filter ...string) (*Member, error)
	GetOrganizationByNotification(ctx context.Context, notificationID string, filter ...string) (*Organization, error)

	// Organizations
	GetOrganization(ctx context.Context, nameOrID string, filter ...string) (*Organization, error)
	GetActionsByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Action, error)
	GetBoardsByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Board, error)
	GetMembersByOrganization(ctx context.Context, nameOrID string, filter ...string) ([]Member, error)

	// Tokens and types
	GetToken(ctx context.Context, token string, filter ...string) (*Token, error)
	GetMemberByToken(ctx context.Context, token string, filter ...string) (*Member, error)
	GetWebhooks(ctx context.Context) ([]Webhook, error)
	GetType(ctx context.Context, idOrName string) (*Type, error)

	// Webhooks
	CreateWebhook(ctx context.Context, description, callbackURL, modelID string) (*Webhook, error)
	GetWebhook(ctx context.Context, webhookID string) (*Webhook, error)
	DeleteWebhook(ctx context.Context, webhookID string) error
}

var _ API = (*Client)(nil)
