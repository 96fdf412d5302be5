package user

import "time"

// User is the identity record behind sessions, post authorship and
// comment authorship. The password is only ever held as a bcrypt hash.
type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
