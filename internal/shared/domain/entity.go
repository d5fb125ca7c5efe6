// Package domain holds building blocks shared by domain packages.
package domain

import "time"

// BaseEntity provides common entity functionality: an integer identity and
// creation and modification timestamps in local time at second precision.
type BaseEntity struct {
	id        int
	createdAt time.Time
	updatedAt time.Time
}

// Now returns the current local time truncated to whole seconds, the
// precision entity timestamps are kept at.
func Now() time.Time {
	return time.Now().Truncate(time.Second)
}

// NewBaseEntityWithID creates a new entity with a specific ID and both
// timestamps set to now.
func NewBaseEntityWithID(id int) BaseEntity {
	now := Now()
	return BaseEntity{
		id:        id,
		createdAt: now,
		updatedAt: now,
	}
}

// RehydrateBaseEntity recreates an entity from persisted state.
func RehydrateBaseEntity(id int, createdAt, updatedAt time.Time) BaseEntity {
	return BaseEntity{
		id:        id,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (e BaseEntity) ID() int              { return e.id }
func (e BaseEntity) CreatedAt() time.Time { return e.createdAt }
func (e BaseEntity) UpdatedAt() time.Time { return e.updatedAt }

// Touch updates the updatedAt timestamp. It never moves it before createdAt.
func (e *BaseEntity) Touch() {
	now := Now()
	if now.Before(e.createdAt) {
		now = e.createdAt
	}
	e.updatedAt = now
}
