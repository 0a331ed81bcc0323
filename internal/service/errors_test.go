package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusOf(t *testing.T) {
	cases := []struct {
		name  string
		err   error
		code  int
		known bool
	}{
		{"not found", ErrContentNotFound, NotFound, true},
		{"bad request", ErrRatingValue, BadRequest, true},
		{"wrapped", fmt.Errorf("load: %w", ErrUserNotFound), NotFound, true},
		{"unknown", errors.New("database is locked"), InternalServerError, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, known := StatusOf(tc.err)
			if code != tc.code || known != tc.known {
				t.Fatalf("StatusOf = (%d, %v), want (%d, %v)", code, known, tc.code, tc.known)
			}
		})
	}
}
