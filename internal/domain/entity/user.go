// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultUserName is the display name assigned when the identity
// provider supplies none.
const DefaultUserName = "User"

// User is the durable local record for one authenticated person.
// It is materialized lazily on first contact and never updated or
// deleted afterwards.
type User struct {
	ID        uuid.UUID // Local identifier generated by the storage layer.
	Subject   string    // Stable subject identifier issued by the external identity provider. Unique per user.
	Email     string    // Contact email reported by the identity provider; may be empty.
	Name      string    // Display name reported by the identity provider; defaults to DefaultUserName.
	CreatedAt time.Time // Timestamp of when this user record was first created.
}
