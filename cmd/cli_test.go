package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/trellogo/config"
	"github.com/s0up4200/trellogo/filter"
	"github.com/s0up4200/trellogo/trello"
	"github.com/s0up4200/trellogo/webhook"
)

// fakeTrello serves canned JSON by path and records form bodies
type fakeTrello struct {
	responses map[string]string
	forms     map[string]url.Values
	queries   map[string]url.Values
}

func newFakeTrello(t *testing.T, responses map[string]string) (*fakeTrello, *httptest.Server) {
	t.Helper()

	f := &fakeTrello{
		responses: responses,
		forms:     map[string]url.Values{},
		queries:   map[string]url.Values{},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path
		f.queries[key] = r.URL.Query()
		if r.Method == http.MethodPost || r.Method == http.MethodPut {
			assert.NoError(t, r.ParseForm())
			f.forms[key] = r.PostForm
		}

		body, ok := f.responses[key]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return f, srv
}

// runCLI executes the root command against a config pointing at baseURL
func runCLI(t *testing.T, baseURL string, args ...string) (string, error) {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	for _, name := range []string{"TRELLO_API_KEY", "TRELLO_TOKEN", "TRELLOGO_TRELLO_API_KEY", "TRELLOGO_TRELLO_TOKEN"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	path := filepath.Join(dir, "config.yaml")
	content := fmt.Sprintf(`trello:
  api_key: K
  token: T
  base_url: %s/1
  max_retries: 0
  requests_per_second: 0
filter:
  bugs: hasLabel("bug")
logging:
  level: error
`, baseURL)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{"--config", path, "-o", "json"}, args...))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMemberGet(t *testing.T) {
	fake, srv := newFakeTrello(t, map[string]string{
		"GET /1/members/me": `{"id":"m1","username":"alice","fullName":"Alice"}`,
	})

	out, err := runCLI(t, srv.URL, "member", "get")
	require.NoError(t, err)

	var member trello.Member
	require.NoError(t, json.Unmarshal([]byte(out), &member))
	assert.Equal(t, "alice", member.Username)

	q := fake.queries["GET /1/members/me"]
	assert.Equal(t, "K", q.Get("key"))
	assert.Equal(t, "T", q.Get("token"))
}

func TestBoardCardsWhere(t *testing.T) {
	_, srv := newFakeTrello(t, map[string]string{
		"GET /1/boards/b1/cards": `[
			{"id":"c1","name":"Crash on save","idList":"l1","idMembers":["m1"],"labels":[{"name":"bug","color":"red"}]},
			{"id":"c2","name":"Dark mode","idList":"l2","labels":[{"name":"feature","color":"green"}]}
		]`,
		"GET /1/boards/b1/lists":   `[{"id":"l1","name":"Doing"},{"id":"l2","name":"Backlog"}]`,
		"GET /1/boards/b1/members": `[{"id":"m1","username":"alice"}]`,
	})

	out, err := runCLI(t, srv.URL, "board", "cards", "b1", "--where", `inList("doing") and hasMember("alice")`)
	require.NoError(t, err)

	var cards []filter.CardInfo
	require.NoError(t, json.Unmarshal([]byte(out), &cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "c1", cards[0].ID)
}

func TestCardCreate(t *testing.T) {
	fake, srv := newFakeTrello(t, map[string]string{
		"POST /1/cards": `{"id":"c9","name":"Write docs","idList":"l1"}`,
	})

	out, err := runCLI(t, srv.URL, "card", "create", "--list", "l1", "--name", "Write docs", "--desc", "for the API")
	require.NoError(t, err)

	form := fake.forms["POST /1/cards"]
	assert.Equal(t, "Write docs", form.Get("name"))
	assert.Equal(t, "l1", form.Get("idList"))
	assert.Equal(t, "for the API", form.Get("desc"))

	var card trello.Card
	require.NoError(t, json.Unmarshal([]byte(out), &card))
	assert.Equal(t, "c9", card.ID)
}

func TestNewClientFromConfig(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := &config.Config{Trello: config.TrelloConfig{
		APIKey:       "K",
		BaseURL:      srv.URL,
		StrictErrors: true,
	}}

	c, err := newClient(cfg, logger, nil)
	require.NoError(t, err)

	_, err = c.GetBoard(context.Background(), "abc123")
	var apiErr *trello.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNotFound())
	assert.Equal(t, "trellogo/"+appVersion, gotUA)
}

func TestHandleActionAppliesFilters(t *testing.T) {
	_, srv := newFakeTrello(t, map[string]string{
		"GET /1/cards/c1":         `{"id":"c1","name":"Crash","labels":[{"name":"bug"}]}`,
		"GET /1/cards/c1/list":    `{"id":"l1","name":"Doing"}`,
		"GET /1/cards/c1/members": `[]`,
	})

	var err error
	client, err = trello.NewClient("K", trello.WithBaseURL(srv.URL+"/1"), trello.WithRateLimit(0, 0))
	require.NoError(t, err)
	filters = filter.NewManager()
	require.NoError(t, filters.RegisterFilters(map[string]string{"bugs": `hasLabel("bug")`}))

	p := &webhook.Payload{Action: trello.Action{
		ID:   "a1",
		Type: trello.ActionUpdateCard,
		Data: trello.ActionData{Card: &trello.ObjectRef{ID: "c1"}},
	}}
	assert.NoError(t, handleAction(context.Background(), p))

	p.Action.Data.Card.ID = "gone1"
	assert.NoError(t, handleAction(context.Background(), p))
}

func TestHandleActionLogsMemberLookupFailure(t *testing.T) {
	_, srv := newFakeTrello(t, map[string]string{
		"GET /1/cards/c1":      `{"id":"c1","name":"Crash","labels":[{"name":"bug"}]}`,
		"GET /1/cards/c1/list": `{"id":"l1","name":"Doing"}`,
	})

	previous := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(previous) })

	var logs bytes.Buffer
	logger = zerolog.New(&logs)
	t.Cleanup(func() { logger = zerolog.Nop() })

	var err error
	client, err = trello.NewClient("K", trello.WithBaseURL(srv.URL+"/1"), trello.WithRateLimit(0, 0), trello.WithStrictErrors())
	require.NoError(t, err)
	filters = filter.NewManager()
	require.NoError(t, filters.RegisterFilters(map[string]string{"bugs": `hasLabel("bug")`}))

	p := &webhook.Payload{Action: trello.Action{
		ID:   "a1",
		Type: trello.ActionUpdateCard,
		Data: trello.ActionData{Card: &trello.ObjectRef{ID: "c1"}},
	}}
	require.NoError(t, handleAction(context.Background(), p))

	out := logs.String()
	assert.Contains(t, out, "Card members not available for filtering")
	assert.Contains(t, out, `"card":"c1"`)
	assert.Contains(t, out, "Card matches filter")
}

func TestBoardStatusFlagsAreIndependent(t *testing.T) {
	t.Cleanup(func() {
		boardStatus = "open"
		boardListCmd.Flags().Lookup("status").Changed = false
	})

	require.NoError(t, boardListCmd.Flags().Set("status", "closed"))

	assert.Equal(t, "closed", boardStatus)
	assert.Equal(t, "open", listStatus)
	assert.Equal(t, "open", cardStatus)

	assert.Contains(t, boardListCmd.Flags().Lookup("status").Usage, "board filter")
	assert.Contains(t, boardListsCmd.Flags().Lookup("status").Usage, "list filter")
	assert.Contains(t, boardCardsCmd.Flags().Lookup("status").Usage, "card filter")
}
