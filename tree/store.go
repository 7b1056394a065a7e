package tree

import (
	"context"
)

/*
Store is an interface to manage a store
where trees can be saved, loaded and
deleted by key.

All it methods take a context that may allow
cancelling the operation (thus forcing the return
of an error) if the implementation allows it.
*/
type Store interface {
	// Save takes a key and the root of a tree and
	// stores the tree under the key, replacing any
	// tree previously stored with it. It returns an
	// error if the tree cannot be stored.
	Save(ctx context.Context, key string, n *Node) error
	// Load takes a key and returns the root of the
	// tree stored under it (or nil if there is none)
	// or an error if the store cannot be queried.
	Load(ctx context.Context, key string) (*Node, error)
	// Delete takes a key and removes the tree stored
	// under it, if any. It returns an error if the
	// deletion cannot be performed.
	Delete(ctx context.Context, key string) error
	// Close closes the store, implementations should
	// free any resources in use as well as ensure
	// any pending changes are applied before returning
	// (unless the context expires). It returns an error
	// if the Close cannot be completed (because of the
	// context or another error)
	Close(ctx context.Context) error
}
