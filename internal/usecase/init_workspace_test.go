package usecase

import (
	"errors"
	"testing"

	"github.com/aalvaropc/calckit/internal/domain"
)

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec, f.force = spec, force
	return f.err
}

func TestInitWorkspacePassesRootAndForce(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.spec.Root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %+v force=%v", fi.spec, fi.force)
	}

	fi.err = errors.New("boom")
	if err := NewInitWorkspace(fi).Execute(".", false); err == nil {
		t.Fatalf("expected initializer error")
	}
}
