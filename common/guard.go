package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// ErrReentrantCall is thrown when a guarded method is entered again
// before the previous invocation has returned.
const ErrReentrantCall = "reentrant call"

// EnterGuard sets the reentrancy lock stored under the key. It panics with
// ErrReentrantCall message if the lock is already held. A fault anywhere in
// the guarded method reverts the lock together with the rest of the
// transaction, so the failure path needs no explicit release.
func EnterGuard(ctx storage.Context, key interface{}) {
	if storage.Get(ctx, key) != nil {
		panic(ErrReentrantCall)
	}

	storage.Put(ctx, key, 1)
}

// LeaveGuard releases the reentrancy lock stored under the key. Must be
// called at the end of every method that called EnterGuard.
func LeaveGuard(ctx storage.Context, key interface{}) {
	storage.Delete(ctx, key)
}
