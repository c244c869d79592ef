package trello

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// DefaultBaseURL is the production Trello REST API root
const DefaultBaseURL = "https://api.trello.com/1"

var placeholderPattern = regexp.MustCompile(`\{[0-9]+\}`)

// URL builds an authenticated Trello request URL from a path template.
//
// Templates carry zero-indexed placeholders ("/cards/{0}/idLabels/{1}") that
// are replaced by the positional path params given to NewURL. The API key is
// always appended as the first query parameter, followed by the token and the
// filter list when they are set.
type URL struct {
	apiKey     string
	template   string
	pathParams []string
	token      string
	filters    []string
}

// NewURL starts a URL for template with the given positional path params
func NewURL(apiKey, template string, pathParams ...string) *URL {
	return &URL{
		apiKey:     apiKey,
		template:   template,
		pathParams: pathParams,
	}
}

// Token sets the member token appended after the key
func (u *URL) Token(token string) *URL {
	u.token = token
	return u
}

// Filter sets the field filters. An empty call clears them.
func (u *URL) Filter(filters ...string) *URL {
	u.filters = nil
	for _, f := range filters {
		if f != "" {
			u.filters = append(u.filters, f)
		}
	}
	return u
}

// Build returns the final URL. It performs no IO and can be called repeatedly.
func (u *URL) Build() (string, error) {
	if u.apiKey == "" {
		return "", &ConfigurationError{Field: "api_key", Reason: "API key must be set, get one at https://trello.com/app-key"}
	}
	if u.template == "" {
		return "", &ConfigurationError{Field: "template", Reason: "URL template is empty"}
	}

	path, err := u.substitute()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(path) + 64)
	sb.WriteString(path)
	sb.WriteString("?key=")
	sb.WriteString(url.QueryEscape(u.apiKey))

	if u.token != "" {
		sb.WriteString("&token=")
		sb.WriteString(url.QueryEscape(u.token))
	}

	if len(u.filters) > 0 {
		sb.WriteString("&filter=")
		for i, f := range u.filters {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(url.QueryEscape(f))
		}
	}

	return sb.String(), nil
}

// substitute replaces every {i} with the escaped i-th path param
func (u *URL) substitute() (string, error) {
	path := u.template
	for i, param := range u.pathParams {
		token := "{" + strconv.Itoa(i) + "}"
		if !strings.Contains(path, token) {
			return "", &ConfigurationError{
				Field:  "template",
				Reason: "no placeholder " + token + " in " + u.template,
			}
		}
		path = strings.ReplaceAll(path, token, url.PathEscape(param))
	}

	if left := placeholderPattern.FindString(path); left != "" {
		return "", &ConfigurationError{
			Field:  "template",
			Reason: "unmatched placeholder " + left + " in " + u.template,
		}
	}

	return path, nil
}
