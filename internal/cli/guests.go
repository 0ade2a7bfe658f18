package cli

import (
	"context"
	"fmt"
)

func (a *App) AddGuest(ctx context.Context) error {
	event, ok := a.current.Event()
	if !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	name, err := GetSimpleText(a.reader, "Guest name", a.out)
	if err != nil {
		return err
	}
	phone, err := GetSimpleText(a.reader, "Guest phone", a.out)
	if err != nil {
		return err
	}

	guest, err := a.current.AddGuest(ctx, event.ID, name, phone)
	if err != nil {
		a.checkAuth(ctx, err)
		return err
	}

	fmt.Fprintf(a.out, "Added guest %d: %s\n", guest.ID, guest.Name)
	return nil
}

func (a *App) DeleteGuest(ctx context.Context) error {
	if _, ok := a.current.Event(); !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	id, err := a.promptID("Guest id to delete")
	if err != nil {
		return err
	}

	if err := a.current.RemoveGuest(ctx, id); err != nil {
		a.checkAuth(ctx, err)
		return err
	}
	return nil
}

// GuestLink prints the WhatsApp share URL carrying the invitation text to
// the chosen guest.
func (a *App) GuestLink(ctx context.Context) error {
	event, ok := a.current.Event()
	if !ok {
		fmt.Fprintln(a.out, "No event open. Use 'open' first.")
		return nil
	}

	id, err := a.promptID("Guest id")
	if err != nil {
		return err
	}

	for _, g := range event.Guests {
		if g.ID == id {
			fmt.Fprintln(a.out, g.WhatsAppLink(event.Invitation.BodyText))
			return nil
		}
	}

	fmt.Fprintf(a.out, "No guest with id %d\n", id)
	return nil
}
