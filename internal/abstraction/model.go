package abstraction

import (
	"time"
)

// EntityJustCreated suits link rows that are created once and never touched
// again, like project assignments.
type EntityJustCreated struct {
	CreatedAt time.Time `json:"created_at"`
}

type Entity struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// EntityWithBy additionally tracks which user wrote the row; attendance and
// work reports carry it.
type EntityWithBy struct {
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
	CreatedBy int        `json:"created_by"`
	UpdatedBy *int       `json:"updated_by"`
}
