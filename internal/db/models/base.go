package models

import (
	"github.com/google/uuid"
)

// newID returns a random UUID in its canonical string form.
func newID() string {
	return uuid.NewString()
}

// All returns every model in dependency order, used for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Media{},
		&SystemSettings{},
		&Service{},
	}
}
