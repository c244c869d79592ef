package trello

import (
	"context"
	"strings"
)

// GetCard retrieves a card
func (c *Client) GetCard(ctx context.Context, cardID string, filter ...string) (*Card, error) {
	return fetch[*Card](ctx, c, routeCard, request{ids: ids(cardID), filter: filter})
}

// GetActionsByCard retrieves a card's actions. actionTypes narrows the
// result to the given action types and is sent as the filter argument.
func (c *Client) GetActionsByCard(ctx context.Context, cardID string, actionTypes ...ActionType) ([]Action, error) {
	var args Arguments
	if len(actionTypes) > 0 {
		names := make([]string, 0, len(actionTypes))
		for _, t := range actionTypes {
			if t != "" {
				names = append(names, string(t))
			}
		}
		if len(names) > 0 {
			args = Arguments{"filter": strings.Join(names, ",")}
		}
	}
	return fetch[[]Action](ctx, c, routeCardActions, request{ids: ids(cardID), args: args})
}

// GetAttachmentsByCard retrieves the attachments of a card
func (c *Client) GetAttachmentsByCard(ctx context.Context, cardID string) ([]Attachment, error) {
	return fetch[[]Attachment](ctx, c, routeCardAttachments, request{ids: ids(cardID)})
}

// GetBoardByCard retrieves the board a card is on
func (c *Client) GetBoardByCard(ctx context.Context, cardID string, filter ...string) (*Board, error) {
	return fetch[*Board](ctx, c, routeCardBoard, request{ids: ids(cardID), filter: filter})
}

// GetCheckItemStatesByCard retrieves the completed check items of a card
func (c *Client) GetCheckItemStatesByCard(ctx context.Context, cardID string) ([]CheckItemState, error) {
	return fetch[[]CheckItemState](ctx, c, routeCardCheckItemStates, request{ids: ids(cardID)})
}

// GetChecklistsByCard retrieves the checklists of a card
func (c *Client) GetChecklistsByCard(ctx context.Context, cardID string) ([]Checklist, error) {
	return fetch[[]Checklist](ctx, c, routeCardChecklists, request{ids: ids(cardID)})
}

// GetListByCard retrieves the list a card is in
func (c *Client) GetListByCard(ctx context.Context, cardID string, filter ...string) (*List, error) {
	return fetch[*List](ctx, c, routeCardList, request{ids: ids(cardID), filter: filter})
}

// GetMembersByCard retrieves the members assigned to a card
func (c *Client) GetMembersByCard(ctx context.Context, cardID string) ([]Member, error) {
	return fetch[[]Member](ctx, c, routeCardMembers, request{ids: ids(cardID)})
}

// CreateCard creates a card named name at the bottom of list listID.
// args may carry any other card field accepted by the API ("desc", "due",
// "idMembers", "pos" ...). The caller's map is not modified.
func (c *Client) CreateCard(ctx context.Context, listID, name string, args Arguments) (*Card, error) {
	if err := ValidateObjectID(listID); err != nil {
		return nil, err
	}
	body := args.with(Arguments{"name": name, "idList": listID})
	return fetch[*Card](ctx, c, routeCardCreate, request{args: body})
}

// UpdateCard sends the fields in args as a partial update of a card
func (c *Client) UpdateCard(ctx context.Context, cardID string, args Arguments) (*Card, error) {
	return fetch[*Card](ctx, c, routeCardUpdate, request{ids: ids(cardID), args: args})
}

// DeleteCard permanently deletes a card
func (c *Client) DeleteCard(ctx context.Context, cardID string) error {
	return c.exec(ctx, routeCardDelete, request{ids: ids(cardID)})
}

// AddLabelToCard attaches an existing board label to a card and returns the
// card's label ids afterwards.
func (c *Client) AddLabelToCard(ctx context.Context, cardID, labelID string) ([]string, error) {
	if err := ValidateObjectID(labelID); err != nil {
		return nil, err
	}
	return fetch[[]string](ctx, c, routeCardAddLabel, request{ids: ids(cardID), args: Arguments{"value": labelID}})
}

// DeleteLabelFromCard detaches a label from a card
func (c *Client) DeleteLabelFromCard(ctx context.Context, cardID, labelID string) error {
	return c.exec(ctx, routeCardRemoveLabel, request{ids: ids(cardID, labelID)})
}

// AddCommentToCard posts a comment and returns the resulting commentCard action
func (c *Client) AddCommentToCard(ctx context.Context, cardID, text string) (*Action, error) {
	return fetch[*Action](ctx, c, routeCardAddComment, request{ids: ids(cardID), args: Arguments{"text": text}})
}

// AddChecklistToCard creates a checklist on a card. When sourceChecklistID
// is set, its items are copied into the new checklist.
func (c *Client) AddChecklistToCard(ctx context.Context, cardID, name, sourceChecklistID string) (*Checklist, error) {
	args := Arguments{"name": name}
	if sourceChecklistID != "" {
		if err := ValidateObjectID(sourceChecklistID); err != nil {
			return nil, err
		}
		args["idChecklistSource"] = sourceChecklistID
	}
	return fetch[*Checklist](ctx, c, routeCardAddChecklist, request{ids: ids(cardID), args: args})
}
