// Package trello provides a client for the Trello REST API.
//
// Every relationship endpoint of the API (boards, cards, lists, members,
// workspaces, actions, notifications, checklists, labels, tokens, webhooks and
// types) is exposed as one method on Client. The endpoints themselves are a
// declarative table of path templates and verbs; the methods bind that table to
// typed results.
//
// # Usage
//
//	client, err := trello.NewClient(
//		"your-api-key",
//		trello.WithToken("your-token"),
//		trello.WithLogger(logger),
//		trello.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	board, err := client.GetBoard(ctx, "4d5ea62fd76aa1136000000c", "name", "desc")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Optional parameters travel as Arguments, in the query string for reads and
// deletes and as a form body for creates and updates:
//
//	card, err := client.CreateCard(ctx, listID, "Write release notes", trello.Arguments{
//		"desc": "covers 1.4",
//		"pos":  "top",
//	})
//
// # Rate Limits
//
// A 429 answer is retried after 10 seconds, doubling up to one minute, five
// times by default (see WithMaxRetries and WithRateLimitBackoff). A Retry-After
// header longer than the computed wait is honoured. Requests are also paced
// client side at Trello's documented 100 requests per 10 seconds, which
// WithRateLimit adjusts or disables.
//
// # Error Handling
//
// The package defines several error types:
//
//   - ConfigurationError (ErrInvalidConfig): missing API key, bad base URL
//   - ValidationError (ErrInvalidID): malformed identifier argument
//   - TransportError (ErrTransport): connection, IO or decoding failure
//   - RateLimitError (ErrRateLimitExhausted): still rate limited after retries
//   - APIError: error status from the server, strict mode only
//
// By default an error status other than 429 is logged and the call returns a
// nil result with a nil error. Use WithStrictErrors to get an *APIError
// instead:
//
//	var apiErr *trello.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// Handle missing board
//	}
package trello
