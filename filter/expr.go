package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	custom     map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*ExprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.custom, funcs)
	}
}

// ExprCompiler compiles expr-lang expressions against CardInfo
type ExprCompiler struct {
	custom map[string]any
	cache  *lruCache[CompiledFilter]
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) *ExprCompiler {
	c := &ExprCompiler{
		custom: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter. The expression
// is type checked against the card environment and must yield a bool.
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(newEnvironment(CardInfo{}, c.custom)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		custom:     c.custom,
	}

	if c.cache != nil {
		c.cache.put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.clear()
	}
}

// Size returns the number of cached filters
func (c *ExprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.size()
	}
	return 0
}

// Match evaluates the filter against a card
func (f *exprFilter) Match(card CardInfo) (bool, error) {
	result, err := expr.Run(f.program, newEnvironment(card, f.custom))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			CardID:     card.ID,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	matched, _ := result.(bool)
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// addHelperFunctions adds the card independent helpers
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	env["now"] = time.Now
	// Case-insensitive string helpers. contains and startsWith are
	// operators in expr and stay case-sensitive.
	env["containsText"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["hasPrefixText"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
}

// newEnvironment builds the variables and helpers an expression sees for card
func newEnvironment(card CardInfo, custom map[string]any) map[string]any {
	env := make(map[string]any, 48)

	addHelperFunctions(env)

	env["Card"] = card
	env["Name"] = card.Name
	env["Desc"] = card.Desc
	env["Closed"] = card.Closed
	env["URL"] = card.URL
	env["List"] = card.ListName
	env["Labels"] = card.LabelNames
	env["Members"] = card.MemberUsernames
	env["HasDue"] = card.Due != nil
	env["Due"] = timeOrZero(card.Due)
	env["DueComplete"] = card.DueComplete
	env["LastActivity"] = timeOrZero(card.DateLastActivity)
	env["Comments"] = int(card.Badges.Comments)
	env["Attachments"] = int(card.Badges.Attachments)
	env["Votes"] = int(card.Badges.Votes)
	env["CheckItems"] = int(card.Badges.CheckItems)
	env["CheckItemsChecked"] = int(card.Badges.CheckItemsChecked)

	env["hasLabel"] = containsFold(card.LabelNames)
	env["hasMember"] = containsFold(card.MemberUsernames)
	env["inList"] = func(name string) bool {
		return strings.EqualFold(card.ListName, name)
	}
	env["overdue"] = func() bool {
		return card.Due != nil && !card.DueComplete && card.Due.Before(time.Now())
	}
	env["dueWithin"] = func(days int) bool {
		if card.Due == nil || card.DueComplete {
			return false
		}
		return card.Due.Before(time.Now().AddDate(0, 0, days))
	}
	env["inactiveFor"] = func(days int) bool {
		return card.DateLastActivity != nil && card.DateLastActivity.Before(time.Now().AddDate(0, 0, -days))
	}
	env["checklistsDone"] = func() bool {
		return card.Badges.CheckItems > 0 && card.Badges.CheckItemsChecked >= card.Badges.CheckItems
	}

	maps.Copy(env, custom)

	return env
}

func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// containsFold returns a case-insensitive membership test over values
func containsFold(values []string) func(string) bool {
	lower := make([]string, len(values))
	for i, v := range values {
		lower[i] = strings.ToLower(v)
	}
	return func(target string) bool {
		return slices.Contains(lower, strings.ToLower(target))
	}
}
