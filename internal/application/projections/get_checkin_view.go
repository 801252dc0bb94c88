package projections

import (
	"context"

	"github.com/samber/lo"

	"lifeskills/internal/application/session"
	"lifeskills/internal/domain/checkin"
	"lifeskills/internal/domain/participant"
)

// Greeting is the check-in page heading.
const Greeting = "Good Morning!"

// GetCheckInViewQuery identifies the client.
type GetCheckInViewQuery struct {
	ClientID string
}

// GetCheckInViewDeps holds dependencies for the check-in view.
type GetCheckInViewDeps struct {
	CheckIns  CheckInReader
	Sessions  SessionReader
	Directory func() []participant.Participant // defaults to participant.Directory
}

// ParticipantCard is one tile on the check-in grid.
type ParticipantCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	CheckedIn bool   `json:"checked_in"`
}

// OfferView is the survey popup content.
type OfferView struct {
	ParticipantID   string `json:"participant_id"`
	ParticipantName string `json:"participant_name"`
}

// CheckInView is everything the check-in page renders.
type CheckInView struct {
	Greeting     string            `json:"greeting"`
	Participants []ParticipantCard `json:"participants"`
	Summary      checkin.Summary   `json:"summary"`
	Offer        *OfferView        `json:"offer,omitempty"`
}

func participantCards(ps []participant.Participant) []ParticipantCard {
	return lo.Map(ps, func(p participant.Participant, _ int) ParticipantCard {
		return ParticipantCard{ID: p.ID, Name: p.Name, Avatar: p.AvatarOrPlaceholder(), CheckedIn: p.CheckedIn}
	})
}

// QueryGetCheckInView builds the check-in page.
// PRE: ClientID non-empty
// POST: participants are in directory order; Offer is nil unless a survey offer is pending
func QueryGetCheckInView(ctx context.Context, query GetCheckInViewQuery, deps GetCheckInViewDeps) (CheckInView, error) {
	directory := participant.Directory
	if deps.Directory != nil {
		directory = deps.Directory
	}
	board := checkin.NewBoard(directory(), deps.CheckIns.CheckIns(ctx, query.ClientID))
	view := CheckInView{
		Greeting:     Greeting,
		Participants: participantCards(board.Participants()),
		Summary:      board.Summary(),
	}
	err := deps.Sessions.With(query.ClientID, func(st *session.State) error {
		if p, ok := st.Offer.Participant(); ok {
			view.Offer = &OfferView{ParticipantID: p.ID, ParticipantName: p.Name}
		}
		return nil
	})
	return view, err
}
