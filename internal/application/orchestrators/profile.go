package orchestrators

import (
	"context"
	"log/slog"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/profile"
)

// ProfileDeps holds dependencies for the profile editor actions.
type ProfileDeps struct {
	Sessions SessionRunner
}

// OpenProfileEditorInput chooses add (no ItemID) or edit (ItemID set).
type OpenProfileEditorInput struct {
	ClientID string
	Section  string
	ItemID   string
}

// ExecuteOpenProfileEditor opens the editor for an add or an edit.
// POST: returns the open request; edits are prefilled with the item's current text
func ExecuteOpenProfileEditor(_ context.Context, input OpenProfileEditorInput, deps ProfileDeps) (profile.Request, error) {
	section, err := profile.ParseSection(input.Section)
	if err != nil {
		return nil, err
	}
	var req profile.Request
	err = deps.Sessions.With(input.ClientID, func(st *session.State) error {
		req, err = st.Profile.OpenEditor(section, input.ItemID)
		return err
	})
	return req, err
}

// SaveProfileEditorInput carries the editor's text at save time.
type SaveProfileEditorInput struct {
	ClientID string
	Text     string
}

// ExecuteSaveProfileEditor applies the open request.
// PRE: an editor is open
// POST: changed is false for blank text; the editor closes either way
func ExecuteSaveProfileEditor(_ context.Context, input SaveProfileEditorInput, deps ProfileDeps) (bool, error) {
	var changed bool
	err := deps.Sessions.With(input.ClientID, func(st *session.State) error {
		req, _ := st.Profile.Editor()
		var err error
		changed, err = st.Profile.Save(input.Text)
		if err != nil {
			return err
		}
		if changed {
			slog.Info("profile_event", "event", "item_saved", "client_id", input.ClientID, "section", req.Target())
		}
		return nil
	})
	return changed, err
}

// ExecuteCancelProfileEditor discards the open request.
func ExecuteCancelProfileEditor(_ context.Context, clientID string, deps ProfileDeps) error {
	return deps.Sessions.With(clientID, func(st *session.State) error {
		st.Profile.CancelEditor()
		return nil
	})
}

// DeleteProfileItemInput names the item to remove.
type DeleteProfileItemInput struct {
	ClientID string
	Section  string
	ItemID   string
}

// ExecuteDeleteProfileItem removes one item; later items keep their order.
// POST: an editor targeting the deleted item is closed
func ExecuteDeleteProfileItem(_ context.Context, input DeleteProfileItemInput, deps ProfileDeps) error {
	section, err := profile.ParseSection(input.Section)
	if err != nil {
		return err
	}
	return deps.Sessions.With(input.ClientID, func(st *session.State) error {
		if err := st.Profile.Delete(section, input.ItemID); err != nil {
			return err
		}
		slog.Info("profile_event", "event", "item_deleted", "client_id", input.ClientID, "section", section, "item_id", input.ItemID)
		return nil
	})
}

// SetProfileColorInput carries the chosen background color.
type SetProfileColorInput struct {
	ClientID string
	Color    string
}

// ExecuteSetProfileColor sets the profile background. The value is not validated.
func ExecuteSetProfileColor(_ context.Context, input SetProfileColorInput, deps ProfileDeps) error {
	return deps.Sessions.With(input.ClientID, func(st *session.State) error {
		st.Profile.SetBackgroundColor(input.Color)
		return nil
	})
}
