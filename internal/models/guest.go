package models

import (
	"net/url"
	"strings"
)

// Guest is a single invitee of an event. Status holds the raw server value,
// which may come from either the Hebrew or the English vocabulary; use
// CanonicalStatus before counting or comparing.
type Guest struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Status  string `json:"status"`
	EventID int64  `json:"event_id"`
}

// GuestStatus is one of the three canonical RSVP states.
type GuestStatus string

const (
	StatusConfirmed GuestStatus = "Confirmed"
	StatusPending   GuestStatus = "Pending"
	StatusDeclined  GuestStatus = "Declined"
)

// statusAliases maps both server vocabularies onto the canonical states.
var statusAliases = map[string]GuestStatus{
	"Confirmed":  StatusConfirmed,
	"אישור הגעה": StatusConfirmed,
	"Pending":    StatusPending,
	"ממתין":      StatusPending,
	"Declined":   StatusDeclined,
	"לא מגיע":    StatusDeclined,
}

// NormalizeGuestStatus maps a raw status literal to its canonical state.
// Unknown literals normalize to Pending and are reported with ok=false so
// the caller can flag the anomaly instead of miscounting silently.
func NormalizeGuestStatus(raw string) (status GuestStatus, ok bool) {
	if s, found := statusAliases[strings.TrimSpace(raw)]; found {
		return s, true
	}
	return StatusPending, false
}

// CanonicalStatus normalizes the guest's raw status value.
func (g Guest) CanonicalStatus() (GuestStatus, bool) {
	return NormalizeGuestStatus(g.Status)
}

// WhatsAppLink builds the share URL used to send the invitation text to the
// guest. Everything but digits is stripped from the phone number.
func (g Guest) WhatsAppLink(text string) string {
	var digits strings.Builder
	for _, r := range g.Phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return "https://wa.me/" + digits.String() + "?text=" + url.QueryEscape(text)
}

// GuestStats aggregates guests by canonical status. Anomalies counts guests
// whose raw status matched neither vocabulary (they are tallied as Pending).
type GuestStats struct {
	Total     int
	Confirmed int
	Pending   int
	Declined  int
	Anomalies int
}

// CountGuests normalizes each guest's status and tallies the result.
func CountGuests(guests []Guest) GuestStats {
	stats := GuestStats{Total: len(guests)}
	for _, g := range guests {
		status, ok := g.CanonicalStatus()
		if !ok {
			stats.Anomalies++
		}
		switch status {
		case StatusConfirmed:
			stats.Confirmed++
		case StatusDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}
	return stats
}
