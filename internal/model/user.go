package model

import "time"

// User is a registered account. EncryptedPassword is an opaque blob produced
// only by the credential service's cipher; nothing else writes it.
type User struct {
	Username          string // login username, unique key
	EncryptedPassword []byte
	IsAdmin           bool // the first registered user becomes admin
	CreatedAt         time.Time
}
