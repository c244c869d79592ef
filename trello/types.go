package trello

import "time"

// LabelColor represents one of the colors Trello allows on a label
type LabelColor string

const (
	// LabelColorNone creates a colorless label
	LabelColorNone   LabelColor = ""
	LabelColorGreen  LabelColor = "green"
	LabelColorYellow LabelColor = "yellow"
	LabelColorOrange LabelColor = "orange"
	LabelColorRed    LabelColor = "red"
	LabelColorPurple LabelColor = "purple"
	LabelColorBlue   LabelColor = "blue"
	LabelColorSky    LabelColor = "sky"
	LabelColorLime   LabelColor = "lime"
	LabelColorPink   LabelColor = "pink"
	LabelColorBlack  LabelColor = "black"
)

// ActionType names the kind of change an Action records
type ActionType string

const (
	ActionCreateCard      ActionType = "createCard"
	ActionUpdateCard      ActionType = "updateCard"
	ActionDeleteCard      ActionType = "deleteCard"
	ActionCommentCard     ActionType = "commentCard"
	ActionAddMemberToCard ActionType = "addMemberToCard"
	ActionMoveCardToBoard ActionType = "moveCardToBoard"
	ActionCreateList      ActionType = "createList"
	ActionUpdateCheckItem ActionType = "updateCheckItemStateOnCard"
	ActionAddChecklist    ActionType = "addChecklistToCard"
	ActionAddAttachment   ActionType = "addAttachmentToCard"
)

// Board represents a Trello board
type Board struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Desc           string     `json:"desc"`
	Closed         bool       `json:"closed"`
	IDOrganization string     `json:"idOrganization"`
	Pinned         bool       `json:"pinned"`
	Starred        bool       `json:"starred"`
	URL            string     `json:"url"`
	ShortURL       string     `json:"shortUrl"`
	Prefs          BoardPrefs `json:"prefs"`
	LabelNames     LabelNames `json:"labelNames"`
	DateLastView   *time.Time `json:"dateLastView"`
}

// BoardPrefs holds the board-wide settings
type BoardPrefs struct {
	PermissionLevel       string `json:"permissionLevel"`
	Voting                string `json:"voting"`
	Comments              string `json:"comments"`
	Invitations           string `json:"invitations"`
	SelfJoin              bool   `json:"selfJoin"`
	CardCovers            bool   `json:"cardCovers"`
	CardAging             string `json:"cardAging"`
	CalendarFeedEnabled   bool   `json:"calendarFeedEnabled"`
	Background            string `json:"background"`
	BackgroundColor       string `json:"backgroundColor"`
	BackgroundImage       string `json:"backgroundImage"`
	BackgroundTile        bool   `json:"backgroundTile"`
	BackgroundBrightness  string `json:"backgroundBrightness"`
	CanBePublic           bool   `json:"canBePublic"`
	CanBeOrg              bool   `json:"canBeOrg"`
	CanBePrivate          bool   `json:"canBePrivate"`
	CanInvite             bool   `json:"canInvite"`
	HideVotes             bool   `json:"hideVotes"`
	ShowCompleteStatus    bool   `json:"showCompleteStatus"`
	IsTemplate            bool   `json:"isTemplate"`
	SwitcherViewsEnabled  bool   `json:"switcherViewsEnabled,omitempty"`
	CardCountsOnListsShow bool   `json:"cardCounts,omitempty"`
}

// MyPrefs holds the calling member's personal settings on a board
type MyPrefs struct {
	ShowSidebar           bool   `json:"showSidebar"`
	ShowSidebarMembers    bool   `json:"showSidebarMembers"`
	ShowSidebarBoardActs  bool   `json:"showSidebarBoardActions"`
	ShowSidebarActivity   bool   `json:"showSidebarActivity"`
	ShowListGuide         bool   `json:"showListGuide"`
	EmailPosition         string `json:"emailPosition"`
	IDEmailList           string `json:"idEmailList"`
	EmailKey              string `json:"emailKey,omitempty"`
	CalendarKey           string `json:"calendarKey,omitempty"`
	FullEmail             string `json:"fullEmail,omitempty"`
	ShowCompactMemberList bool   `json:"showCompactMemberList,omitempty"`
}

// LabelNames maps the legacy label colors of a board to their names
type LabelNames struct {
	Green  string `json:"green"`
	Yellow string `json:"yellow"`
	Orange string `json:"orange"`
	Red    string `json:"red"`
	Purple string `json:"purple"`
	Blue   string `json:"blue"`
	Sky    string `json:"sky"`
	Lime   string `json:"lime"`
	Pink   string `json:"pink"`
	Black  string `json:"black"`
}

// Card represents a Trello card
type Card struct {
	ID               string       `json:"id"`
	IDShort          int64        `json:"idShort"`
	Name             string       `json:"name"`
	Desc             string       `json:"desc"`
	Closed           bool         `json:"closed"`
	IDList           string       `json:"idList"`
	IDBoard          string       `json:"idBoard"`
	IDChecklists     []string     `json:"idChecklists"`
	IDMembers        []string     `json:"idMembers"`
	IDLabels         []string     `json:"idLabels"`
	Labels           []Label      `json:"labels"`
	Attachments      []Attachment `json:"attachments"`
	URL              string       `json:"url"`
	ShortURL         string       `json:"shortUrl"`
	Pos              float64      `json:"pos"`
	Due              *time.Time   `json:"due"`
	DueComplete      bool         `json:"dueComplete"`
	Start            *time.Time   `json:"start"`
	DateLastActivity *time.Time   `json:"dateLastActivity"`
	Badges           Badges       `json:"badges"`
}

// Badges summarises a card's counters as shown on the board
type Badges struct {
	Votes              int64      `json:"votes"`
	CheckItems         int64      `json:"checkItems"`
	CheckItemsChecked  int64      `json:"checkItemsChecked"`
	Comments           int64      `json:"comments"`
	Attachments        int64      `json:"attachments"`
	Due                *time.Time `json:"due"`
	DueComplete        bool       `json:"dueComplete"`
	Fogbugz            string     `json:"fogbugz"`
	ViewingMemberVoted bool       `json:"viewingMemberVoted"`
	Subscribed         bool       `json:"subscribed"`
	Description        bool       `json:"description"`
}

// Attachment is a file or link attached to a card
type Attachment struct {
	ID       string     `json:"id"`
	Bytes    int64      `json:"bytes"`
	Date     *time.Time `json:"date"`
	URL      string     `json:"url"`
	Name     string     `json:"name"`
	MimeType string     `json:"mimeType"`
	IsUpload bool       `json:"isUpload"`
	IDMember string     `json:"idMember"`
}

// CheckItemState is the completion state of one check item on a card
type CheckItemState struct {
	IDCheckItem string `json:"idCheckItem"`
	State       string `json:"state"`
}

// List represents a Trello list
type List struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Closed     bool    `json:"closed"`
	IDBoard    string  `json:"idBoard"`
	Pos        float64 `json:"pos"`
	Subscribed bool    `json:"subscribed"`
}

// Member represents a Trello member
type Member struct {
	ID               string   `json:"id"`
	Username         string   `json:"username"`
	FullName         string   `json:"fullName"`
	Initials         string   `json:"initials"`
	Bio              string   `json:"bio"`
	URL              string   `json:"url"`
	AvatarHash       string   `json:"avatarHash"`
	AvatarURL        string   `json:"avatarUrl"`
	Status           string   `json:"status"`
	Email            string   `json:"email,omitempty"`
	Confirmed        bool     `json:"confirmed"`
	MemberType       string   `json:"memberType"`
	IDBoards         []string `json:"idBoards"`
	IDBoardsPinned   []string `json:"idBoardsPinned"`
	IDOrganizations  []string `json:"idOrganizations"`
	LoginTypes       []string `json:"loginTypes"`
	Trophies         []string `json:"trophies"`
	NewEmail         string   `json:"newEmail,omitempty"`
	OneTimeMessages  []string `json:"oneTimeMessagesDismissed,omitempty"`
	GravatarHash     string   `json:"gravatarHash,omitempty"`
	UploadedAvatarID string   `json:"uploadedAvatarId,omitempty"`
}

// Organization represents a Trello workspace
type Organization struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	DisplayName string   `json:"displayName"`
	Desc        string   `json:"desc"`
	URL         string   `json:"url"`
	Website     string   `json:"website"`
	LogoHash    string   `json:"logoHash"`
	IDBoards    []string `json:"idBoards"`
	Products    []int    `json:"products"`
	PowerUps    []int    `json:"powerUps"`
}

// Action records a single change made on a Trello object
type Action struct {
	ID              string     `json:"id"`
	IDMemberCreator string     `json:"idMemberCreator"`
	Type            ActionType `json:"type"`
	Date            *time.Time `json:"date"`
	Data            ActionData `json:"data"`
	MemberCreator   *Member    `json:"memberCreator,omitempty"`
}

// ActionData carries the objects an Action refers to; only the fields
// relevant to the action type are populated.
type ActionData struct {
	Text         string      `json:"text,omitempty"`
	Board        *ObjectRef  `json:"board,omitempty"`
	Card         *ObjectRef  `json:"card,omitempty"`
	List         *ObjectRef  `json:"list,omitempty"`
	ListBefore   *ObjectRef  `json:"listBefore,omitempty"`
	ListAfter    *ObjectRef  `json:"listAfter,omitempty"`
	Checklist    *ObjectRef  `json:"checklist,omitempty"`
	CheckItem    *ObjectRef  `json:"checkItem,omitempty"`
	Organization *ObjectRef  `json:"organization,omitempty"`
	Member       *ObjectRef  `json:"member,omitempty"`
	Old          interface{} `json:"old,omitempty"`
}

// ObjectRef is the short form of an object embedded in action data
type ObjectRef struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	ShortLink string `json:"shortLink,omitempty"`
	IDShort   int64  `json:"idShort,omitempty"`
}

// Notification represents a notification sent to a member
type Notification struct {
	ID              string     `json:"id"`
	IDMemberCreator string     `json:"idMemberCreator"`
	Type            string     `json:"type"`
	Date            *time.Time `json:"date"`
	Unread          bool       `json:"unread"`
	Data            ActionData `json:"data"`
}

// Checklist represents a checklist on a card
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	IDBoard    string      `json:"idBoard"`
	IDCard     string      `json:"idCard"`
	Pos        float64     `json:"pos"`
	CheckItems []CheckItem `json:"checkItems"`
}

// CheckItem is one entry of a checklist
type CheckItem struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	State       string     `json:"state"`
	IDChecklist string     `json:"idChecklist"`
	Pos         float64    `json:"pos"`
	Due         *time.Time `json:"due"`
	IDMember    string     `json:"idMember"`
}

// Complete reports whether the item is checked
func (ci CheckItem) Complete() bool {
	return ci.State == "complete"
}

// Label represents a label defined on a board
type Label struct {
	ID      string     `json:"id"`
	IDBoard string     `json:"idBoard"`
	Name    string     `json:"name"`
	Color   LabelColor `json:"color"`
	Uses    int        `json:"uses"`
}

// Token describes an API token and what it grants
type Token struct {
	ID          string            `json:"id"`
	Identifier  string            `json:"identifier"`
	IDMember    string            `json:"idMember"`
	DateCreated *time.Time        `json:"dateCreated"`
	DateExpires *time.Time        `json:"dateExpires"`
	Permissions []TokenPermission `json:"permissions"`
}

// TokenPermission is one permission grant of a token
type TokenPermission struct {
	IDModel   string `json:"idModel"`
	ModelType string `json:"modelType"`
	Read      bool   `json:"read"`
	Write     bool   `json:"write"`
}

// Webhook represents a registered webhook
type Webhook struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	IDModel     string `json:"idModel"`
	CallbackURL string `json:"callbackURL"`
	Active      bool   `json:"active"`
}

// Type resolves an id or name to the kind of object it identifies
type Type struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}
