package authctx

import (
	"context"
	"testing"

	"github.com/skillsenselab/authkit/token"
)

func TestSetGet(t *testing.T) {
	id := token.Identity{ID: "u1", Email: "a@x.com", Role: "customer"}
	ctx := Set(context.Background(), id)

	got, ok := Get(ctx)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if got != id {
		t.Errorf("got %+v, want %+v", got, id)
	}
}

func TestGet_Missing(t *testing.T) {
	if _, ok := Get(context.Background()); ok {
		t.Error("expected no identity in fresh context")
	}
}

func TestMustGet_PanicsWhenMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustGet(context.Background())
}

func TestGetOrError(t *testing.T) {
	if _, err := GetOrError(context.Background()); err != ErrNoIdentity {
		t.Errorf("expected ErrNoIdentity, got %v", err)
	}
	ctx := Set(context.Background(), token.Identity{ID: "u1"})
	if _, err := GetOrError(ctx); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
