package trello

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURLBuild(t *testing.T) {
	const base = "https://api.example.com/1"

	tests := []struct {
		name     string
		url      *URL
		expected string
	}{
		{
			name:     "key only",
			url:      NewURL("K", base+"/boards/{0}", "abc123"),
			expected: base + "/boards/abc123?key=K",
		},
		{
			name:     "key and token",
			url:      NewURL("K", base+"/boards/{0}", "abc123").Token("T"),
			expected: base + "/boards/abc123?key=K&token=T",
		},
		{
			name:     "filters joined in call order",
			url:      NewURL("K", base+"/boards/{0}", "abc123").Token("T").Filter("name", "desc", "closed"),
			expected: base + "/boards/abc123?key=K&token=T&filter=name,desc,closed",
		},
		{
			name:     "empty filters add nothing",
			url:      NewURL("K", base+"/boards/{0}", "abc123").Filter(),
			expected: base + "/boards/abc123?key=K",
		},
		{
			name:     "blank filter entries are dropped",
			url:      NewURL("K", base+"/lists/{0}", "l1").Filter("", "open"),
			expected: base + "/lists/l1?key=K&filter=open",
		},
		{
			name:     "positional params in order",
			url:      NewURL("K", base+"/cards/{0}/idLabels/{1}", "card1", "label2"),
			expected: base + "/cards/card1/idLabels/label2?key=K",
		},
		{
			name:     "no placeholders",
			url:      NewURL("K", base+"/webhooks"),
			expected: base + "/webhooks?key=K",
		},
		{
			name:     "path params are escaped",
			url:      NewURL("K", base+"/members/{0}", "john doe"),
			expected: base + "/members/john%20doe?key=K",
		},
		{
			name:     "query values are escaped",
			url:      NewURL("k&y", base+"/members/{0}", "me").Token("a=b"),
			expected: base + "/members/me?key=k%26y&token=a%3Db",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.url.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.NotRegexp(t, `\{[0-9]+\}`, got)
		})
	}
}

func TestURLBuildIsIdempotent(t *testing.T) {
	u := NewURL("K", "https://api.example.com/1/cards/{0}", "c1").Token("T").Filter("name")

	first, err := u.Build()
	require.NoError(t, err)
	second, err := u.Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestURLBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		url    *URL
		errMsg string
	}{
		{
			name:   "missing key",
			url:    NewURL("", "https://api.example.com/1/boards/{0}", "abc123"),
			errMsg: "API key must be set",
		},
		{
			name:   "empty template",
			url:    NewURL("K", ""),
			errMsg: "URL template is empty",
		},
		{
			name:   "unmatched placeholder",
			url:    NewURL("K", "https://api.example.com/1/cards/{0}/idLabels/{1}", "c1"),
			errMsg: "unmatched placeholder {1}",
		},
		{
			name:   "param without placeholder",
			url:    NewURL("K", "https://api.example.com/1/cards/{0}", "c1", "extra"),
			errMsg: "no placeholder {1}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.url.Build()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
			assert.True(t, errors.Is(err, ErrInvalidConfig))

			var cfgErr *ConfigurationError
			assert.True(t, errors.As(err, &cfgErr))
		})
	}
}
