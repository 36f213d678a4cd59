// internal/domain/errors.go
package domain

import "fmt"

// ReferentialIntegrityError reports a record referencing a product or
// supplier id that is absent from its collection. The joins in the
// engine assume integrity, so a single broken reference fails the whole
// analysis pass.
type ReferentialIntegrityError struct {
	Collection string
	Field      string
	ID         int64
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s references unknown %s %d", e.Collection, e.Field, e.ID)
}
