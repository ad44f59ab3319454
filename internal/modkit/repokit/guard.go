package repokit

import (
	"context"
	"time"

	perr "tutorhub/internal/platform/errors"
)

// GuardTimeout bounds startup pings when ctx has no deadline of its own
const GuardTimeout = 5 * time.Second

type guarder interface {
	Guard(context.Context) error
}

// Guard pings every backend st holds; failures come back as Unavailable
func Guard(ctx context.Context, st guarder) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, GuardTimeout)
		defer cancel()
	}
	return perr.WrapIf(st.Guard(ctx), perr.ErrorCodeUnavailable, "dependency guard failed")
}

// MustGuard is Guard for service startup, it panics on error
func MustGuard(ctx context.Context, st guarder) {
	if err := Guard(ctx, st); err != nil {
		panic(err)
	}
}
