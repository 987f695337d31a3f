package nav

import (
	"net/url"
	"strings"
)

// Intent is a navigation request: go to Target, remembering From.
type Intent struct {
	Target Destination
	From   Destination
}

// Route encodes the intent in its wire form, e.g. "tasks?fromRoute=notes".
func (i Intent) Route() string {
	return i.Target.Route() + "?" + ArgFromRoute + "=" + i.From.Route()
}

// ParseIntent decodes a route string. A missing or unknown fromRoute
// falls back to Notes.
func ParseIntent(route string) Intent {
	in := Intent{Target: Resolve(route), From: Notes}
	_, query, ok := strings.Cut(route, "?")
	if !ok {
		return in
	}
	values, err := url.ParseQuery(query)
	if err != nil {
		return in
	}
	if from := values.Get(ArgFromRoute); from != "" {
		in.From = Resolve(from)
	}
	return in
}
