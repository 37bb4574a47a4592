package entity

import "time"

// DefaultWaitlistSource tags sign-ups that did not name where they came from.
const DefaultWaitlistSource = "landing_page"

// WaitlistEntry is an email address registered for launch updates.
type WaitlistEntry struct {
	Email     string    `json:"email"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
}
