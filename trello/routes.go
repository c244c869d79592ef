package trello

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// paramKind selects the validation applied to a route's path parameters
type paramKind int

const (
	// objectID params must be Trello object ids
	objectID paramKind = iota
	// nameOrID params accept usernames, organization names, tokens and "me"
	nameOrID
)

// route is one API endpoint: a path template below the base URL, its verb and
// how its path parameters are checked.
type route struct {
	template string
	method   string
	params   paramKind
}

func get(template string, kind paramKind) route {
	return route{template: template, method: http.MethodGet, params: kind}
}

func post(template string) route {
	return route{template: template, method: http.MethodPost, params: objectID}
}

// Endpoints of the Trello REST API, grouped by resource.
var (
	routeAction                = get("/actions/{0}", objectID)
	routeActionBoard           = get("/actions/{0}/board", objectID)
	routeActionCard            = get("/actions/{0}/card", objectID)
	routeActionList            = get("/actions/{0}/list", objectID)
	routeActionMember          = get("/actions/{0}/member", objectID)
	routeActionMemberCreator   = get("/actions/{0}/memberCreator", objectID)
	routeActionOrganization    = get("/actions/{0}/organization", objectID)
	routeBoard                 = get("/boards/{0}", objectID)
	routeBoardActions          = get("/boards/{0}/actions", objectID)
	routeBoardCards            = get("/boards/{0}/cards", objectID)
	routeBoardChecklists       = get("/boards/{0}/checklists", objectID)
	routeBoardLabels           = get("/boards/{0}/labels", objectID)
	routeBoardLists            = get("/boards/{0}/lists", objectID)
	routeBoardMembers          = get("/boards/{0}/members", objectID)
	routeBoardMembersInvited   = get("/boards/{0}/membersInvited", objectID)
	routeBoardMyPrefs          = get("/boards/{0}/myPrefs", objectID)
	routeBoardOrganization     = get("/boards/{0}/organization", objectID)
	routeCard                  = get("/cards/{0}", objectID)
	routeCardActions           = get("/cards/{0}/actions", objectID)
	routeCardAttachments       = get("/cards/{0}/attachments", objectID)
	routeCardBoard             = get("/cards/{0}/board", objectID)
	routeCardCheckItemStates   = get("/cards/{0}/checkItemStates", objectID)
	routeCardChecklists        = get("/cards/{0}/checklists", objectID)
	routeCardList              = get("/cards/{0}/list", objectID)
	routeCardMembers           = get("/cards/{0}/members", objectID)
	routeCardCreate            = post("/cards")
	routeCardUpdate            = route{template: "/cards/{0}", method: http.MethodPut, params: objectID}
	routeCardDelete            = route{template: "/cards/{0}", method: http.MethodDelete, params: objectID}
	routeCardAddLabel          = post("/cards/{0}/idLabels")
	routeCardRemoveLabel       = route{template: "/cards/{0}/idLabels/{1}", method: http.MethodDelete, params: objectID}
	routeCardAddComment        = post("/cards/{0}/actions/comments")
	routeCardAddChecklist      = post("/cards/{0}/checklists")
	routeChecklist             = get("/checklists/{0}", objectID)
	routeChecklistBoard        = get("/checklists/{0}/board", objectID)
	routeChecklistCards        = get("/checklists/{0}/cards", objectID)
	routeChecklistCheckItems   = get("/checklists/{0}/checkItems", objectID)
	routeChecklistAddCheckItem = post("/checklists/{0}/checkItems")
	routeLabelCreate           = post("/labels")
	routeList                  = get("/lists/{0}", objectID)
	routeListActions           = get("/lists/{0}/actions", objectID)
	routeListBoard             = get("/lists/{0}/board", objectID)
	routeListCards             = get("/lists/{0}/cards", objectID)
	routeListCreate            = post("/lists")
	routeMember                = get("/members/{0}", nameOrID)
	routeMemberActions         = get("/members/{0}/actions", nameOrID)
	routeMemberBoards          = get("/members/{0}/boards", nameOrID)
	routeMemberBoardsInvited   = get("/members/{0}/boardsInvited", nameOrID)
	routeMemberCards           = get("/members/{0}/cards", nameOrID)
	routeMemberNotifications   = get("/members/{0}/notifications", nameOrID)
	routeMemberOrganizations   = get("/members/{0}/organizations", nameOrID)
	routeMemberOrgsInvited     = get("/members/{0}/organizationsInvited", nameOrID)
	routeNotification          = get("/notifications/{0}", objectID)
	routeNotificationBoard     = get("/notifications/{0}/board", objectID)
	routeNotificationCard      = get("/notifications/{0}/card", objectID)
	routeNotificationList      = get("/notifications/{0}/list", objectID)
	routeNotificationMember    = get("/notifications/{0}/member", objectID)
	routeNotificationCreator   = get("/notifications/{0}/memberCreator", objectID)
	routeNotificationOrg       = get("/notifications/{0}/organization", objectID)
	routeOrganization          = get("/organizations/{0}", nameOrID)
	routeOrganizationActions   = get("/organizations/{0}/actions", nameOrID)
	routeOrganizationBoards    = get("/organizations/{0}/boards", nameOrID)
	routeOrganizationMembers   = get("/organizations/{0}/members", nameOrID)
	routeToken                 = get("/tokens/{0}", nameOrID)
	routeTokenMember           = get("/tokens/{0}/member", nameOrID)
	routeTokenWebhooks         = get("/tokens/{0}/webhooks", nameOrID)
	routeType                  = get("/types/{0}", nameOrID)
	routeWebhook               = get("/webhooks/{0}", objectID)
	routeWebhookCreate         = post("/webhooks")
	routeWebhookDelete         = route{template: "/webhooks/{0}", method: http.MethodDelete, params: objectID}
)

var objectIDPattern = regexp.MustCompile(`^[0-9A-Za-z]+$`)

// ValidateObjectID checks that id looks like a Trello object id or short link.
func ValidateObjectID(id string) error {
	if strings.TrimSpace(id) == "" {
		return &ValidationError{Value: id, Reason: "identifier must not be empty"}
	}
	if !objectIDPattern.MatchString(id) {
		return &ValidationError{Value: id, Reason: "identifier must be alphanumeric"}
	}
	return nil
}

// validateName checks usernames, organization names, tokens and type names.
func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Value: name, Reason: "identifier must not be empty"}
	}
	return nil
}

func (r route) validate(params []string) error {
	for _, p := range params {
		var err error
		if r.params == objectID {
			err = ValidateObjectID(p)
		} else {
			err = validateName(p)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// request collects what varies between calls of the same route
type request struct {
	ids    []string
	filter []string
	args   Arguments
}

func ids(values ...string) []string {
	return values
}

// do validates, builds and dispatches one call
func (c *Client) do(ctx context.Context, r route, req request) ([]byte, error) {
	if err := r.validate(req.ids); err != nil {
		return nil, err
	}

	target, err := NewURL(c.apiKey, c.baseURL+r.template, req.ids...).
		Token(c.token).
		Filter(req.filter...).
		Build()
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("endpoint", r.template).
		Strs("ids", req.ids).
		Msg("Making Trello API request")

	return c.dispatch(ctx, r.method, target, req.args)
}

// fetch calls r and decodes the response into T. An absent body (soft server
// error) yields T's zero value and a nil error.
func fetch[T any](ctx context.Context, c *Client, r route, req request) (T, error) {
	var out T

	body, err := c.do(ctx, r, req)
	if err != nil || len(body) == 0 {
		return out, err
	}

	if err := c.unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("failed to decode %s response: %w", r.template, err)
	}
	return out, nil
}

// exec calls r and discards the response body
func (c *Client) exec(ctx context.Context, r route, req request) error {
	_, err := c.do(ctx, r, req)
	return err
}
