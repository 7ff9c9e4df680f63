package outcome

import (
	"errors"
	"fmt"
	"strconv"
	"testing"

	"pgregory.net/rapid"
)

func TestProperty_NormalizeStringVerbatim(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")

		err := Normalize(s)
		if err == nil || err.Error() != s {
			t.Fatalf("expected message %q, got %v", s, err)
		}

		var ve *ValueError
		if !errors.As(err, &ve) {
			t.Fatalf("expected a ValueError")
		}
		if ve.Value() != any(s) {
			t.Fatalf("expected the original payload to stay reachable, got %v", ve.Value())
		}
	})
}

func TestProperty_NormalizeIntRendering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")

		err := Normalize(n)
		if err == nil || err.Error() != strconv.Itoa(n) {
			t.Fatalf("expected message %q, got %v", strconv.Itoa(n), err)
		}
	})
}

func TestProperty_NormalizeErrorIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		msg := rapid.String().Draw(t, "msg")
		orig := errors.New(msg)

		if got := Normalize(orig); got != orig {
			t.Fatalf("expected the error instance to pass through untouched, got %v", got)
		}

		wrapped := fmt.Errorf("while painting: %w", orig)
		if got := Normalize(wrapped); got != wrapped {
			t.Fatalf("expected the wrapped error to pass through untouched, got %v", got)
		}
	})
}

func TestNormalizeNil(t *testing.T) {
	t.Parallel()
	if got := Normalize(nil); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestNormalizeDefaultRendering(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   any
		want string
	}{
		{3.5, "3.5"},
		{true, "true"},
		{[]int{1, 2}, "[1 2]"},
		{map[string]int{"a": 1}, "map[a:1]"},
		{struct {
			Code int
			Name string
		}{418, "teapot"}, "{418 teapot}"},
	}

	for _, c := range cases {
		err := Normalize(c.in)
		if err == nil || err.Error() != c.want {
			t.Errorf("Normalize(%v): expected %q, got %v", c.in, c.want, err)
		}

		var ve *ValueError
		if !errors.As(err, &ve) {
			t.Errorf("Normalize(%v): expected a ValueError", c.in)
		}
	}
}
