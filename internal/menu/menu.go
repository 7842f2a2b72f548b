package menu

import (
	"strings"
	"unicode"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string `koanf:"id"`
	Label string `koanf:"label"`
}

// Title returns the label, falling back to a prettified ID.
func (i Item) Title() string {
	if strings.TrimSpace(i.Label) != "" {
		return i.Label
	}
	return prettyLabel(i.ID)
}

// DefaultItems is the menu shown when nothing else is configured.
func DefaultItems() []Item {
	return menuItemsFromIDs([]string{
		"new-file",
		"open-recent",
		"save",
		"share",
		"settings",
		"quit",
	})
}

// ParseItems reads a comma or newline separated list. Each entry is either
// "id" or "id=Label".
func ParseItems(text string) []Item {
	var items []Item
	for _, line := range splitLines(text) {
		for _, entry := range strings.Split(line, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			id, label, _ := strings.Cut(entry, "=")
			items = append(items, Item{ID: strings.TrimSpace(id), Label: strings.TrimSpace(label)})
		}
	}
	return Normalize(items)
}

// Normalize drops entries without an ID, removes duplicate IDs keeping the
// first, and fills in missing labels.
func Normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item.ID = strings.TrimSpace(item.ID)
		if item.ID == "" {
			continue
		}
		if _, ok := seen[item.ID]; ok {
			continue
		}
		seen[item.ID] = struct{}{}
		item.Label = item.Title()
		out = append(out, item)
	}
	return out
}

// Labels returns the display labels in order.
func Labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Title()
	}
	return labels
}

func menuItemsFromIDs(ids []string) []Item {
	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, Item{ID: id, Label: prettyLabel(id)})
	}
	return items
}

func prettyLabel(id string) string {
	if id == "" {
		return id
	}
	parts := strings.FieldsFunc(id, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
