package picker

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/nextcore/mediakit/pkg/provider"
)

// fakeStorage maps transient URIs to scripted outcomes and records calls.
type fakeStorage struct {
	mu      sync.Mutex
	fail    map[string]bool
	failErr map[string]error
	calls   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		fail:    make(map[string]bool),
		failErr: make(map[string]error),
	}
}

func (s *fakeStorage) CopyToPermanentStorage(ctx context.Context, uri, filename string) (provider.CopyResult, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	if err := s.failErr[uri]; err != nil {
		return provider.CopyResult{}, err
	}
	if s.fail[uri] {
		return provider.CopyResult{OK: false}, nil
	}
	return provider.CopyResult{OK: true, URI: "permanent://" + uri}, nil
}

func TestPersistPicked(t *testing.T) {
	storage := newFakeStorage()
	p := New(granted(), WithStorage(storage))

	permanent, ok := p.PersistPicked(context.Background(), "tmp/a.jpg", "a.jpg")
	if !ok {
		t.Fatal("expected copy to succeed")
	}
	if permanent != "permanent://tmp/a.jpg" {
		t.Errorf("permanent = %q", permanent)
	}
}

func TestPersistPickedReportedFailure(t *testing.T) {
	storage := newFakeStorage()
	storage.fail["tmp/a.jpg"] = true
	p := New(granted(), WithStorage(storage))

	if _, ok := p.PersistPicked(context.Background(), "tmp/a.jpg", ""); ok {
		t.Error("expected failure when the provider reports success=false")
	}
}

func TestPersistPickedError(t *testing.T) {
	storage := newFakeStorage()
	storage.failErr["tmp/a.jpg"] = errors.New("disk full")
	p := New(granted(), WithStorage(storage))

	if _, ok := p.PersistPicked(context.Background(), "tmp/a.jpg", ""); ok {
		t.Error("expected failure when the provider raises")
	}
}

func TestPersistPickedWithoutStorage(t *testing.T) {
	p := New(granted())

	if _, ok := p.PersistPicked(context.Background(), "tmp/a.jpg", ""); ok {
		t.Error("expected failure without a storage provider")
	}
}

func TestPersistBatchEmptyInput(t *testing.T) {
	storage := newFakeStorage()
	p := New(granted(), WithStorage(storage))

	for _, uris := range [][]string{nil, {}} {
		got := p.PersistPickedBatch(context.Background(), uris)
		if got == nil {
			t.Error("expected empty non-nil slice")
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	}
	if storage.calls != 0 {
		t.Errorf("storage invoked %d times, want 0", storage.calls)
	}
}

func TestPersistBatchDropsFailuresSilently(t *testing.T) {
	storage := newFakeStorage()
	storage.fail["tmp/u2"] = true
	p := New(granted(), WithStorage(storage))

	got := p.PersistPickedBatch(context.Background(), []string{"tmp/u1", "tmp/u2"})

	want := []string{"permanent://tmp/u1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if storage.calls != 2 {
		t.Errorf("storage invoked %d times, want 2", storage.calls)
	}
}

func TestPersistBatchPreservesInputOrder(t *testing.T) {
	storage := newFakeStorage()
	storage.fail["tmp/u3"] = true
	p := New(granted(), WithStorage(storage))

	uris := []string{"tmp/u1", "tmp/u2", "tmp/u3", "tmp/u4", "tmp/u5"}
	got := p.PersistPickedBatch(context.Background(), uris)

	want := []string{
		"permanent://tmp/u1",
		"permanent://tmp/u2",
		"permanent://tmp/u4",
		"permanent://tmp/u5",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

// panickyStorage models a storage provider with a crashing implementation.
type panickyStorage struct{}

func (panickyStorage) CopyToPermanentStorage(ctx context.Context, uri, filename string) (provider.CopyResult, error) {
	panic("storage backend fault")
}

func TestPersistPickedStoragePanicFoldsToFailure(t *testing.T) {
	p := New(granted(), WithStorage(panickyStorage{}))

	permanent, ok := p.PersistPicked(context.Background(), "tmp/a.jpg", "")
	if ok {
		t.Error("expected failure when the provider panics")
	}
	if permanent != "" {
		t.Errorf("permanent = %q, want empty", permanent)
	}
}

func TestPersistBatchStoragePanicUnderReturns(t *testing.T) {
	p := New(granted(), WithStorage(panickyStorage{}))

	got := p.PersistPickedBatch(context.Background(), []string{"tmp/u1", "tmp/u2"})

	if got == nil {
		t.Fatal("expected empty non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestPersistBatchAllFail(t *testing.T) {
	storage := newFakeStorage()
	storage.failErr["tmp/u1"] = errors.New("gone")
	storage.fail["tmp/u2"] = true
	p := New(granted(), WithStorage(storage))

	got := p.PersistPickedBatch(context.Background(), []string{"tmp/u1", "tmp/u2"})

	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}
