// Package shared holds building blocks common to every persisted aggregate.
package shared

import "time"

// Entity carries the system fields shared by all persisted aggregates:
// a store-assigned surrogate id, creation and modification timestamps, and an
// optimistic-concurrency version counter. It is embedded by value — there is
// no polymorphic dispatch over these fields, only field reuse.
//
// A freshly constructed aggregate has a zero Entity; the store assigns id,
// timestamps, and version on insert, and repositories rebuild aggregates with
// RestoreEntity after every save so callers always observe refreshed system
// fields.
type Entity struct {
	id         int64
	createdAt  time.Time
	modifiedAt time.Time
	version    int
}

// RestoreEntity reconstructs system fields from persistence.
func RestoreEntity(id int64, createdAt, modifiedAt time.Time, version int) Entity {
	return Entity{
		id:         id,
		createdAt:  createdAt,
		modifiedAt: modifiedAt,
		version:    version,
	}
}

// ID returns the store-assigned surrogate identifier, zero before first save.
func (e Entity) ID() int64 {
	return e.id
}

// CreatedAt returns the UTC instant the entity was first persisted.
func (e Entity) CreatedAt() time.Time {
	return e.createdAt
}

// ModifiedAt returns the UTC instant of the last persisted mutation.
func (e Entity) ModifiedAt() time.Time {
	return e.modifiedAt
}

// Version returns the optimistic-concurrency counter. It increments on every
// successful mutation; a stale value on update surfaces as a conflict, never
// a silent overwrite.
func (e Entity) Version() int {
	return e.version
}

// IsPersisted reports whether the entity has been stored at least once.
func (e Entity) IsPersisted() bool {
	return e.id != 0
}
