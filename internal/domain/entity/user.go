package entity

import "time"

// User is a login identity. The password is only ever held as a hash.
type User struct {
	ID             uint
	Username       string
	HashedPassword string
	CreatedAt      time.Time
}
