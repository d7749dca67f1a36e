package identity_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/goliatone/go-blog/internal/identity"
)

func TestUUIDIsDeterministic(t *testing.T) {
	first := identity.UUID("go-blog:post:hello")
	second := identity.UUID("go-blog:post:hello")
	if first != second {
		t.Fatalf("expected stable id, got %s and %s", first, second)
	}
	if first == uuid.Nil {
		t.Fatal("expected non-nil id")
	}
}

func TestUUIDDistinguishesKeys(t *testing.T) {
	if identity.UUID("go-blog:post:a") == identity.UUID("go-blog:post:b") {
		t.Fatal("expected distinct ids for distinct keys")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if identity.UUID("  ") != uuid.Nil {
		t.Fatal("expected nil id for blank key")
	}
}

func TestPostAndUserNamespacesDiffer(t *testing.T) {
	if identity.PostUUID("same") == identity.UserUUID("same") {
		t.Fatal("expected post and user namespaces to differ")
	}
}

func TestPostUUIDNormalizesCase(t *testing.T) {
	if identity.PostUUID("Hello") != identity.PostUUID("hello") {
		t.Fatal("expected case-insensitive post ids")
	}
}
