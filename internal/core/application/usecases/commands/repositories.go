// Package commands contains the business operations that mutate delivery
// state. It implements the Command pattern for the write side of the CQRS
// architecture: every operation is a constructor-validated command paired with
// a handler that manages the transaction and persistence.
//
// All order mutation funnels through these handlers; there is no other write
// path. The repository's version-conditional update is the only serialization
// point between concurrent handlers touching the same order.
package commands

import (
	"context"

	"github.com/TenZ001/cure-cart25-sub001/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	// Handlers create a fresh unit of work per attempt so that conflict
	// retries never reuse an aborted transaction.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
