package projections

import (
	"context"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/profile"
)

// GetProfileViewQuery identifies the client.
type GetProfileViewQuery struct {
	ClientID string
}

// GetProfileViewDeps holds dependencies for the profile view.
type GetProfileViewDeps struct {
	Names    ParticipantNameReader
	Sessions SessionReader
}

// sectionTitles are the list headings on the profile page.
var sectionTitles = map[profile.Section]string{
	profile.SectionActivities: "My Activity Choices for Today",
	profile.SectionGoals:      "My Goals",
	profile.SectionHobbies:    "My Hobbies",
}

// ProfileSectionView is one editable list.
type ProfileSectionView struct {
	Section string         `json:"section"`
	Title   string         `json:"title"`
	Noun    string         `json:"noun"`
	Items   []profile.Item `json:"items"`
}

// SwatchView is one palette entry.
type SwatchView struct {
	Color    string `json:"color"`
	Light    bool   `json:"light"`
	Selected bool   `json:"selected"`
}

// EditorView is the open modal editor.
type EditorView struct {
	Section string `json:"section"`
	ItemID  string `json:"item_id,omitempty"`
	Text    string `json:"text"`
	Title   string `json:"title"`
	IsEdit  bool   `json:"is_edit"`
}

// ProfileView is the profile page.
type ProfileView struct {
	Name            string                `json:"name"`
	Avatar          string                `json:"avatar"`
	BackgroundColor string                `json:"background_color"`
	Sections        []ProfileSectionView  `json:"sections"`
	Palette         []SwatchView          `json:"palette"`
	Gallery         []profile.GalleryItem `json:"gallery"`
	Editor          *EditorView           `json:"editor,omitempty"`
}

func editorView(req profile.Request) *EditorView {
	switch r := req.(type) {
	case profile.AddRequest:
		return &EditorView{Section: string(r.Section), Title: "Add " + r.Section.Noun()}
	case profile.EditRequest:
		return &EditorView{Section: string(r.Section), ItemID: r.ItemID, Text: r.Text, Title: "Edit " + r.Section.Noun(), IsEdit: true}
	}
	return nil
}

// QueryGetProfileView builds the profile page.
// POST: Name falls back to "Connor"; sections are in fixed order
func QueryGetProfileView(ctx context.Context, query GetProfileViewQuery, deps GetProfileViewDeps) (ProfileView, error) {
	name := profile.DefaultName
	if stored, ok := deps.Names.CurrentParticipant(ctx, query.ClientID); ok {
		name = stored
	}
	view := ProfileView{Name: name, Avatar: profile.DefaultAvatar, Gallery: profile.Gallery()}

	err := deps.Sessions.With(query.ClientID, func(st *session.State) error {
		p := st.Profile
		view.BackgroundColor = p.BackgroundColor
		for _, s := range profile.Sections {
			view.Sections = append(view.Sections, ProfileSectionView{
				Section: string(s),
				Title:   sectionTitles[s],
				Noun:    s.Noun(),
				Items:   p.Items(s),
			})
		}
		view.Palette = make([]SwatchView, len(profile.Palette))
		for i, c := range profile.Palette {
			view.Palette[i] = SwatchView{Color: c, Light: profile.IsLightSwatch(c), Selected: c == p.BackgroundColor}
		}
		if req, open := p.Editor(); open {
			view.Editor = editorView(req)
		}
		return nil
	})
	return view, err
}
