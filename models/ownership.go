package models

// Owned is implemented by records that belong to exactly one user.
type Owned interface {
	OwnerID() uint
}

// BelongsTo reports whether record is owned by userID. Every read or
// mutation of a Contact or Alert outside authentication goes through
// this check.
func BelongsTo(record Owned, userID uint) bool {
	return record.OwnerID() == userID
}
