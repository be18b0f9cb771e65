package transactor

import (
	"context"
)

// Transactor runs function within single unit of work
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}

type nopTransactor struct{}

// NewNopTransactor builds Transactor for stores without multi-statement transactions,
// function is called directly with provided context
func NewNopTransactor() Transactor {
	return nopTransactor{}
}

func (nopTransactor) WithinTransaction(ctx context.Context, txFunc func(context.Context) error) error {
	return txFunc(ctx)
}
