package cli

import (
	"context"
	"fmt"
	"strconv"
)

func (a *App) promptID(label string) (int64, error) {
	raw, err := GetSimpleText(a.reader, label, a.out)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Not a valid id: %q\n", raw)
		return 0, err
	}
	return id, nil
}

func (a *App) ListEvents(ctx context.Context) error {
	if err := a.events.FetchAll(ctx); err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	summaries := a.events.Summaries()
	if len(summaries) == 0 {
		fmt.Fprintln(a.out, "No events yet. Use 'create' to plan one.")
		return nil
	}

	for _, s := range summaries {
		fmt.Fprintf(a.out, "%4d  %-30s %s\n", s.ID, s.Name, s.Concept)
	}
	return nil
}

func (a *App) CreateEvent(ctx context.Context) error {
	prompt, err := GetSimpleText(a.reader, "Describe the event you want to plan", a.out)
	if err != nil {
		return err
	}

	event, err := a.events.Create(ctx, prompt)
	if err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Created event %d: %s\n", event.ID, event.Name)
	return nil
}

func (a *App) RemoveEvent(ctx context.Context) error {
	id, err := a.promptID("Event id to remove")
	if err != nil {
		return err
	}

	if err := a.events.Remove(ctx, id); err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	// The detail view may be showing the event that just went away.
	if event, ok := a.current.Event(); ok && event.ID == id {
		a.current.Clear()
	}
	return nil
}

func (a *App) OpenEvent(ctx context.Context) error {
	id, err := a.promptID("Event id to open")
	if err != nil {
		return err
	}

	if err := a.current.Load(ctx, id); err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	event, _ := a.current.Event()
	fmt.Fprintf(a.out, "Opened %q with %d guests\n", event.Name, len(event.Guests))
	return nil
}

func (a *App) ShowEvent(ctx context.Context) error {
	event, ok := a.current.Event()
	if !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	fmt.Fprintf(a.out, "Event %d: %s (%s)\n", event.ID, event.Name, event.Concept)
	fmt.Fprintf(a.out, "Theme: %s (%s)\n", event.Theme.DressCodeName, event.Theme.DressCodeDescription)
	fmt.Fprintf(a.out, "Invitation: %s\n  %s\n  RSVP: %s\n",
		event.Invitation.Headline, event.Invitation.BodyText, event.Invitation.RSVPInfo)
	if event.Invitation.BgImageURL != nil {
		fmt.Fprintf(a.out, "  Background: %s\n", *event.Invitation.BgImageURL)
	}

	fmt.Fprintf(a.out, "Guests (%d):\n", len(event.Guests))
	for _, g := range event.Guests {
		status, _ := g.CanonicalStatus()
		fmt.Fprintf(a.out, "%4d  %-25s %-15s %s\n", g.ID, g.Name, g.Phone, status)
	}
	return nil
}

func (a *App) ShowStats(ctx context.Context) error {
	if _, ok := a.current.Event(); !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	stats := a.current.Stats()
	fmt.Fprintf(a.out, "Guests: %d total, %d confirmed, %d pending, %d declined\n",
		stats.Total, stats.Confirmed, stats.Pending, stats.Declined)
	return nil
}

func (a *App) SaveEvent(ctx context.Context) error {
	event, ok := a.current.Event()
	if !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	if err := a.current.Save(ctx, event); err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	fmt.Fprintln(a.out, "Saved.")
	return nil
}

func (a *App) CloseEvent(ctx context.Context) error {
	a.current.Clear()
	fmt.Fprintln(a.out, "Closed.")
	return nil
}
