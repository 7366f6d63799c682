// Package transactor propagates a database transaction through the
// context so repositories stay unaware of transaction boundaries.
package transactor

import (
	"context"
)

// Transactor runs the given function within a single transaction
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
