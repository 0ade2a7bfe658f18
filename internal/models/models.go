// Package models defines the domain entities served by the Planvite backend
// and the client-side normalization rules applied to them.
package models

// User identifies the authenticated account, as carried in the token claims.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// Credentials is the login/register request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EventSummary is the projection held by the events-collection store.
// The full entity, guests included, lives only in the current-event store.
type EventSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Concept string `json:"concept"`
}

// Event is the full detail entity owned by the current-event store.
type Event struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Concept    string     `json:"concept"`
	UserID     int64      `json:"user_id"`
	Guests     []Guest    `json:"guests"`
	Invitation Invitation `json:"invitation"`
	Theme      Theme      `json:"theme"`
}

// Summary projects the event down to the shape the collection store keeps.
func (e Event) Summary() EventSummary {
	return EventSummary{ID: e.ID, Name: e.Name, Concept: e.Concept}
}

// Theme describes the generated look of an event.
type Theme struct {
	ID                   int64  `json:"id"`
	Concept              string `json:"concept"`
	DressCodeName        string `json:"dress_code_name"`
	DressCodeDescription string `json:"dress_code_description"`
}

// Invitation is the editable invitation card of an event. BgImageURL is
// optional; nil means the server has no background image set.
type Invitation struct {
	ID         int64   `json:"id"`
	Headline   string  `json:"headline"`
	BodyText   string  `json:"body_text"`
	RSVPInfo   string  `json:"rsvp_info"`
	BgImageURL *string `json:"bg_image_url"`
}

// InvitationPatch is a partial, field-by-field update of an invitation draft.
// Nil fields are left untouched when applied.
type InvitationPatch struct {
	Headline   *string
	BodyText   *string
	RSVPInfo   *string
	BgImageURL *string
}

// Apply merges the patch into inv. Only non-nil fields are copied.
func (p InvitationPatch) Apply(inv *Invitation) {
	if p.Headline != nil {
		inv.Headline = *p.Headline
	}
	if p.BodyText != nil {
		inv.BodyText = *p.BodyText
	}
	if p.RSVPInfo != nil {
		inv.RSVPInfo = *p.RSVPInfo
	}
	if p.BgImageURL != nil {
		inv.BgImageURL = p.BgImageURL
	}
}
