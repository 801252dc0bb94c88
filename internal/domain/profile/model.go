package profile

import (
	"errors"
	"strings"
)

// DefaultName is shown in the profile header when no current participant is stored.
const DefaultName = "Connor"

// DefaultAvatar is the profile photo.
const DefaultAvatar = "/static/guy7.png"

// DefaultBackgroundColor is the header background before any customization.
const DefaultBackgroundColor = "#87CEEB"

// Domain errors
var (
	ErrUnknownSection = errors.New("unknown profile section")
	ErrUnknownItem    = errors.New("profile item not found")
	ErrNoEditor       = errors.New("no profile editor is open")
)

// Section names one of the three editable profile lists.
type Section string

const (
	SectionActivities Section = "activities"
	SectionGoals      Section = "goals"
	SectionHobbies    Section = "hobbies"
)

// Sections lists the editable sections in display order.
var Sections = []Section{SectionActivities, SectionGoals, SectionHobbies}

// ParseSection converts a form value into a Section.
// POST: Returns ErrUnknownSection for anything but the three section names
func ParseSection(s string) (Section, error) {
	switch Section(s) {
	case SectionActivities, SectionGoals, SectionHobbies:
		return Section(s), nil
	}
	return "", ErrUnknownSection
}

// Noun returns the singular noun used in editor prompts ("activity", "goal", "hobby").
func (s Section) Noun() string {
	switch s {
	case SectionActivities:
		return "activity"
	case SectionGoals:
		return "goal"
	case SectionHobbies:
		return "hobby"
	}
	return "item"
}

// Item is one free-text entry with an identity assigned at creation.
type Item struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Request is the editor's pending operation: AddRequest or EditRequest.
type Request interface {
	Target() Section
	isRequest()
}

// AddRequest appends a new item to Section on save.
type AddRequest struct {
	Section Section
}

// EditRequest replaces the text of ItemID in Section on save.
// Text carries the item's text at the time the editor was opened.
type EditRequest struct {
	Section Section
	ItemID  string
	Text    string
}

// Target returns the section the request applies to.
func (r AddRequest) Target() Section { return r.Section }

// Target returns the section the request applies to.
func (r EditRequest) Target() Section { return r.Section }

func (AddRequest) isRequest()  {}
func (EditRequest) isRequest() {}

// GalleryItem is a fixed showcase image on the profile.
type GalleryItem struct {
	ID    int    `json:"id"`
	Image string `json:"image"`
	Title string `json:"title"`
}

// Gallery returns the profile's showcase items.
func Gallery() []GalleryItem {
	return []GalleryItem{
		{ID: 1, Image: "/static/ppuzzle.jpg", Title: "Puzzle Project"},
		{ID: 2, Image: "/static/scrapbook.jpeg", Title: "Scrapbook"},
		{ID: 3, Image: "/static/birthdaycard.webp", Title: "Birthday Card"},
		{ID: 4, Image: "/static/braindrawing.jpeg", Title: "Brain Drawing"},
	}
}

// Palette is the set of preset background colors offered by the color picker.
var Palette = []string{
	"#ffffff", "#f8f9fa", "#e9ecef", "#dee2e6", "#ced4da", "#adb5bd",
	"#87CEEB", "#6BB6E0", "#4A90E2", "#357ABD", "#2c5aa0", "#1e3a8a",
	"#98FB98", "#90EE90", "#7CFC00", "#32CD32", "#228B22", "#006400",
	"#FFE4E1", "#FFB6C1", "#FFA07A", "#FF7F50", "#FF6347", "#FF4500",
	"#F0E68C", "#DDA0DD", "#D8BFD8", "#DA70D6", "#BA55D3", "#9932CC",
	"#AFEEEE", "#40E0D0", "#00CED1", "#20B2AA", "#008B8B", "#006666",
}

// IsLightSwatch reports whether a palette color needs a border to be visible.
func IsLightSwatch(color string) bool {
	for _, c := range Palette[:6] {
		if c == color {
			return true
		}
	}
	return false
}

// Profile holds the session-local editable profile lists and theming.
// Every list mutation installs a fresh slice; previously returned slices never change.
type Profile struct {
	lists           map[Section][]Item
	editor          Request
	BackgroundColor string // applied as a CSS value without validation
	newID           func() string
}

// New returns a profile seeded with the sample activities, goals, and hobbies.
// PRE: newID returns a unique string per call
// POST: every seeded item has an ID from newID; editor is closed
func New(newID func() string) *Profile {
	p := &Profile{
		lists:           make(map[Section][]Item, len(Sections)),
		BackgroundColor: DefaultBackgroundColor,
		newID:           newID,
	}
	seed := map[Section][]string{
		SectionActivities: {
			"Create my own Playlist",
			"Play a memory game in the computer lab",
			"Recall a favorite song and discuss why you like it",
		},
		SectionGoals: {
			"I would like to read 5 books by the end of this year",
			"I want to learn how to play the guitar",
			"I want to learn how to sell crafts that I make",
		},
		SectionHobbies: {
			"Reading Books",
			"Cooking",
			"Listening to Music",
			"Making Crafts",
			"Shopping",
		},
	}
	for _, s := range Sections {
		items := make([]Item, 0, len(seed[s]))
		for _, text := range seed[s] {
			items = append(items, Item{ID: newID(), Text: text})
		}
		p.lists[s] = items
	}
	return p
}

// Items returns the items of one section in display order.
// INVARIANT: Profile is not mutated
func (p *Profile) Items(section Section) []Item {
	items := p.lists[section]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func (p *Profile) indexOf(section Section, itemID string) int {
	for i, it := range p.lists[section] {
		if it.ID == itemID {
			return i
		}
	}
	return -1
}

// OpenEditor opens the shared modal editor.
// PRE: section is valid; itemID is empty (add) or names an item in section (edit)
// POST: the editor holds an AddRequest or an EditRequest prefilled with the item's text
func (p *Profile) OpenEditor(section Section, itemID string) (Request, error) {
	if _, err := ParseSection(string(section)); err != nil {
		return nil, err
	}
	var req Request = AddRequest{Section: section}
	if itemID != "" {
		idx := p.indexOf(section, itemID)
		if idx < 0 {
			return nil, ErrUnknownItem
		}
		req = EditRequest{Section: section, ItemID: itemID, Text: p.lists[section][idx].Text}
	}
	p.editor = req
	return req, nil
}

// Editor returns the open editor request, if any.
func (p *Profile) Editor() (Request, bool) {
	return p.editor, p.editor != nil
}

// CancelEditor closes the editor without changes.
func (p *Profile) CancelEditor() {
	p.editor = nil
}

// Save applies the open editor's request with the typed text and closes the editor.
// POST: Returns ErrNoEditor if no editor is open; changed reports whether a list changed
func (p *Profile) Save(text string) (bool, error) {
	if p.editor == nil {
		return false, ErrNoEditor
	}
	changed, err := p.Apply(p.editor, text)
	p.editor = nil
	return changed, err
}

// Apply is the single reducer for editor requests.
// PRE: req targets a valid section
// POST: whitespace-only text is a no-op for both add and edit; add appends, edit
// replaces in place; the target list is a fresh slice after any change
func (p *Profile) Apply(req Request, text string) (bool, error) {
	section := req.Target()
	if _, err := ParseSection(string(section)); err != nil {
		return false, err
	}
	text = strings.TrimSpace(text)

	switch r := req.(type) {
	case AddRequest:
		if text == "" {
			return false, nil
		}
		old := p.lists[section]
		next := make([]Item, len(old), len(old)+1)
		copy(next, old)
		p.lists[section] = append(next, Item{ID: p.newID(), Text: text})
		return true, nil

	case EditRequest:
		idx := p.indexOf(section, r.ItemID)
		if idx < 0 {
			return false, ErrUnknownItem
		}
		if text == "" {
			return false, nil
		}
		next := p.Items(section)
		next[idx].Text = text
		p.lists[section] = next
		return true, nil
	}
	return false, ErrUnknownSection
}

// Delete removes one item from a section.
// PRE: itemID names an item in section
// POST: later items keep their relative order; an editor open on the deleted item is closed
func (p *Profile) Delete(section Section, itemID string) error {
	if _, err := ParseSection(string(section)); err != nil {
		return err
	}
	idx := p.indexOf(section, itemID)
	if idx < 0 {
		return ErrUnknownItem
	}
	old := p.lists[section]
	next := make([]Item, 0, len(old)-1)
	next = append(next, old[:idx]...)
	next = append(next, old[idx+1:]...)
	p.lists[section] = next

	if edit, ok := p.editor.(EditRequest); ok && edit.Section == section && edit.ItemID == itemID {
		p.editor = nil
	}
	return nil
}

// SetBackgroundColor sets the header background. No validation is performed.
func (p *Profile) SetBackgroundColor(color string) {
	p.BackgroundColor = color
}
