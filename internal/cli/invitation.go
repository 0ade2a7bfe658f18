package cli

import (
	"context"
	"fmt"

	"github.com/danakir/planvite/internal/models"
)

// EditInvitation walks the invitation fields and collects a local draft.
// Empty input keeps the current value. Nothing touches the network here;
// the draft lives in the current-event store until an explicit 'save'.
func (a *App) EditInvitation(ctx context.Context) error {
	event, ok := a.current.Event()
	if !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	inv := event.Invitation
	var patch models.InvitationPatch

	headline, err := GetSimpleText(a.reader, fmt.Sprintf("Headline [%s]", inv.Headline), a.out)
	if err != nil {
		return err
	}
	if headline != "" {
		patch.Headline = &headline
	}

	body, err := GetSimpleText(a.reader, fmt.Sprintf("Body text [%s]", inv.BodyText), a.out)
	if err != nil {
		return err
	}
	if body != "" {
		patch.BodyText = &body
	}

	rsvp, err := GetSimpleText(a.reader, fmt.Sprintf("RSVP info [%s]", inv.RSVPInfo), a.out)
	if err != nil {
		return err
	}
	if rsvp != "" {
		patch.RSVPInfo = &rsvp
	}

	current := ""
	if inv.BgImageURL != nil {
		current = *inv.BgImageURL
	}
	bg, err := GetSimpleText(a.reader, fmt.Sprintf("Background image URL [%s]", current), a.out)
	if err != nil {
		return err
	}
	if bg != "" {
		patch.BgImageURL = &bg
	}

	a.current.UpdateInvitationDraft(patch)
	fmt.Fprintln(a.out, "Invitation draft updated. Use 'save' to persist it.")
	return nil
}
