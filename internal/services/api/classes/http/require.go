package http

import (
	"context"
	stdhttp "net/http"
	"strconv"

	"tutorhub/internal/modkit/httpkit"
	perr "tutorhub/internal/platform/errors"
)

type classIDKey struct{}

// Checker is the part of the service RequireClass needs
type Checker interface {
	Exists(ctx context.Context, id int) error
}

// RequireClass runs next only when {classID} names exactly one class
// an id that is not an integer or a failed count is 400; any integer that
// does not name a class, zero and negatives included, is 412
func RequireClass(c Checker) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			raw := httpkit.Param(r, "classID")
			id, err := strconv.Atoi(raw)
			if err != nil {
				httpkit.WriteError(w, r, perr.WithField(perr.BadRequestf("invalid class id %q", raw), "classID"))
				return
			}
			if err := c.Exists(r.Context(), id); err != nil {
				httpkit.WriteError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), classIDKey{}, id)))
		})
	}
}

// ClassID returns the id RequireClass resolved, 0 outside it
func ClassID(r *stdhttp.Request) int {
	id, _ := r.Context().Value(classIDKey{}).(int)
	return id
}
