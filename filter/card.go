package filter

import (
	"github.com/s0up4200/trellogo/trello"
)

// CardInfo is a card together with the names its ids resolve to on the
// board. Filter expressions are evaluated against it.
type CardInfo struct {
	trello.Card

	ListName        string   `json:"listName"`
	LabelNames      []string `json:"labelNames"`
	MemberUsernames []string `json:"memberUsernames"`
}

// Enrich resolves the list, label and member ids of cards using the lists
// and members of their board. Unknown ids are skipped.
func Enrich(cards []trello.Card, lists []trello.List, members []trello.Member) []CardInfo {
	listNames := make(map[string]string, len(lists))
	for _, l := range lists {
		listNames[l.ID] = l.Name
	}
	usernames := make(map[string]string, len(members))
	for _, m := range members {
		usernames[m.ID] = m.Username
	}

	infos := make([]CardInfo, len(cards))
	for i, card := range cards {
		info := CardInfo{
			Card:     card,
			ListName: listNames[card.IDList],
		}

		for _, label := range card.Labels {
			name := label.Name
			if name == "" {
				name = string(label.Color)
			}
			if name != "" {
				info.LabelNames = append(info.LabelNames, name)
			}
		}

		for _, id := range card.IDMembers {
			if username, ok := usernames[id]; ok {
				info.MemberUsernames = append(info.MemberUsernames, username)
			}
		}

		infos[i] = info
	}

	return infos
}
