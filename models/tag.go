package models

import "strings"

// TagSeparator splits a tag name into its hierarchy segments. A tag named
// "parent/child" is a sub-tag of "parent"; there is no separate parent-id
// field anywhere in the protocol.
const TagSeparator = "/"

// FoldTagName lowercases a tag name for the wire. The service stores tag
// names case-insensitively and preserves case for display only, so every
// outgoing name and every comparison must use the folded form.
func FoldTagName(name string) string {
	return strings.ToLower(name)
}

// JoinTagName builds a sub-tag name from its parent and leaf parts.
func JoinTagName(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + TagSeparator + child
}

type Tag struct {
	Name       string     `json:"name"`
	RawName    string     `json:"rawName,omitempty"`
	Label      string     `json:"label,omitempty"`
	SortOrder  int64      `json:"sortOrder"`
	SortType   string     `json:"sortType,omitempty"`
	Color      string     `json:"color,omitempty"`
	Etag       string     `json:"etag,omitempty"`
	Type       int        `json:"type,omitempty"`
	Parent     string     `json:"parent,omitempty"`
	SortOption SortOption `json:"sortOption"`
}

// IsSubtag reports whether the tag sits under a parent tag.
func (t Tag) IsSubtag() bool {
	return strings.Contains(t.Name, TagSeparator)
}

// ParentName derives the parent tag name from the tag's own name. The
// Parent field is authoritative when the server populated it; this helper
// covers records where only the name is known.
func (t Tag) ParentName() string {
	if t.Parent != "" {
		return t.Parent
	}
	idx := strings.LastIndex(t.Name, TagSeparator)
	if idx < 0 {
		return ""
	}
	return t.Name[:idx]
}

// Leaf returns the display segment of the name, "child" for "parent/child".
func (t Tag) Leaf() string {
	idx := strings.LastIndex(t.Name, TagSeparator)
	if idx < 0 {
		return t.Name
	}
	return t.Name[idx+len(TagSeparator):]
}

// TagRename is the payload of the tag rename endpoint.
type TagRename struct {
	Name    string `json:"name"`
	NewName string `json:"newName"`
}
