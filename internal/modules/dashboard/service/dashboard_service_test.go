package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"coachdash/internal/modules/dashboard/domain"
	"coachdash/internal/modules/dashboard/service"
	apperrors "coachdash/internal/platform/errors"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemStore(values map[string]string) *memStore {
	if values == nil {
		values = map[string]string{}
	}
	return &memStore{values: values}
}

func (m *memStore) Get(_ context.Context, key string) (string, error) {
	if m.getErr != nil {
		return "", m.getErr
	}
	v, ok := m.values[key]
	if !ok {
		return "", apperrors.ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func newService(store *memStore, demo bool) (*service.DashboardService, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)
	return service.NewDashboardService(store, logger, service.Options{DemoMode: demo, DefaultClientName: "Welcome"}), buf
}

const sarah = `{"clientName":"Sarah","readinessScores":{"a":[40],"b":[38]},"wheelOfLife":{"spirituality":7,"career":8,"family":6,"relationships":7,"health":5,"personal":8,"leisure":6,"contribution":7},"actionPlan":"Task A\nTask B"}`

func TestLoadProfileFromStoredEntry(t *testing.T) {
	t.Parallel()
	svc, _ := newService(newMemStore(map[string]string{domain.SessionEntryKey: sarah}), true)
	profile := svc.LoadProfile(context.Background())
	if profile.Origin != domain.OriginStored || profile.ClientName != "Sarah" || profile.Readiness != 49 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if diff := cmp.Diff([]string{"Task A", "Task B"}, profile.ActionItems); diff != "" {
		t.Fatalf("action items mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadProfileAbsentUsesDefaultsOrDemo(t *testing.T) {
	t.Parallel()
	plain, _ := newService(newMemStore(nil), false)
	profile := plain.LoadProfile(context.Background())
	if profile.Origin != domain.OriginDefault || profile.ClientName != "Welcome" || profile.Readiness != 0 || len(profile.ActionItems) != 0 {
		t.Fatalf("unexpected default profile: %+v", profile)
	}

	demo, _ := newService(newMemStore(nil), true)
	profile = demo.LoadProfile(context.Background())
	if profile.Origin != domain.OriginDemo || profile.ClientName != "Champion" {
		t.Fatalf("expected demo profile, got %+v", profile)
	}
}

func TestLoadProfileBlankEntryCountsAsAbsent(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"", "  \n\t"} {
		demo, logs := newService(newMemStore(map[string]string{domain.SessionEntryKey: raw}), true)
		profile := demo.LoadProfile(context.Background())
		if profile.Origin != domain.OriginDemo || profile.ClientName != "Champion" {
			t.Fatalf("blank %q with demo mode must load the demo record, got %+v", raw, profile)
		}
		if strings.Contains(logs.String(), "warn") {
			t.Fatalf("blank %q must not be logged as malformed, got %q", raw, logs.String())
		}

		plain, _ := newService(newMemStore(map[string]string{domain.SessionEntryKey: raw}), false)
		if profile := plain.LoadProfile(context.Background()); profile.Origin != domain.OriginDefault || profile.ClientName != "Welcome" {
			t.Fatalf("blank %q without demo mode must load defaults, got %+v", raw, profile)
		}
	}
}

func TestLoadProfileMalformedLogsAndKeepsDefaults(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{`{"clientName":`, `null`, `[1,2]`, `{"readinessScores":{"a":"x"}}`} {
		svc, logs := newService(newMemStore(map[string]string{domain.SessionEntryKey: raw}), true)
		profile := svc.LoadProfile(context.Background())
		if profile.Origin != domain.OriginDefault || profile.ClientName != "Welcome" {
			t.Fatalf("malformed %q must keep defaults, never demo: %+v", raw, profile)
		}
		if !strings.Contains(logs.String(), "parse session entry") {
			t.Fatalf("malformed %q must be logged, got %q", raw, logs.String())
		}
	}
}

func TestLoadProfileReadFailureFallsBack(t *testing.T) {
	t.Parallel()
	store := newMemStore(nil)
	store.getErr = errors.New("disk gone")
	svc, logs := newService(store, true)
	profile := svc.LoadProfile(context.Background())
	if profile.Origin != domain.OriginDefault {
		t.Fatalf("read failure must fall back to defaults: %+v", profile)
	}
	if !strings.Contains(logs.String(), "disk gone") {
		t.Fatalf("read failure must be logged, got %q", logs.String())
	}
}

func TestLoadCompleted(t *testing.T) {
	t.Parallel()
	svc, _ := newService(newMemStore(map[string]string{domain.CompletedTasksEntryKey: "[5,0,5]"}), false)
	if diff := cmp.Diff(domain.CompletedSet{5, 0, 5}, svc.LoadCompleted(context.Background())); diff != "" {
		t.Fatalf("stored indices must be used verbatim (-want +got):\n%s", diff)
	}

	absent, logs := newService(newMemStore(nil), false)
	if got := absent.LoadCompleted(context.Background()); len(got) != 0 {
		t.Fatalf("absent entry must be empty, got %v", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("absent entry must not be logged, got %q", logs.String())
	}

	bad, logs := newService(newMemStore(map[string]string{domain.CompletedTasksEntryKey: `{"0":true}`}), false)
	if got := bad.LoadCompleted(context.Background()); len(got) != 0 {
		t.Fatalf("malformed entry must be empty, got %v", got)
	}
	if !strings.Contains(logs.String(), "parse completed tasks") {
		t.Fatalf("malformed entry must be logged, got %q", logs.String())
	}
}

func TestLoadCompletedReadFailureAndBlankEntry(t *testing.T) {
	t.Parallel()
	store := newMemStore(map[string]string{domain.CompletedTasksEntryKey: "[1]"})
	store.getErr = errors.New("disk gone")
	svc, logs := newService(store, false)
	if got := svc.LoadCompleted(context.Background()); len(got) != 0 {
		t.Fatalf("read failure must yield an empty set, got %v", got)
	}
	if !strings.Contains(logs.String(), "read completed tasks") || !strings.Contains(logs.String(), "disk gone") {
		t.Fatalf("read failure must be logged, got %q", logs.String())
	}

	blank, logs := newService(newMemStore(map[string]string{domain.CompletedTasksEntryKey: " "}), false)
	if got := blank.LoadCompleted(context.Background()); len(got) != 0 {
		t.Fatalf("blank entry must be empty, got %v", got)
	}
	if logs.Len() != 0 {
		t.Fatalf("blank entry must not be logged, got %q", logs.String())
	}
}

func TestSaveCompletedWritesWholeArray(t *testing.T) {
	t.Parallel()
	store := newMemStore(nil)
	svc, _ := newService(store, false)
	if err := svc.SaveCompleted(context.Background(), domain.CompletedSet{2, 9}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if store.values[domain.CompletedTasksEntryKey] != "[2,9]" {
		t.Fatalf("unexpected payload %q", store.values[domain.CompletedTasksEntryKey])
	}
	if err := svc.SaveCompleted(context.Background(), nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	if store.values[domain.CompletedTasksEntryKey] != "[]" {
		t.Fatalf("nil set must persist as [], got %q", store.values[domain.CompletedTasksEntryKey])
	}

	store.setErr = errors.New("read-only")
	if err := svc.SaveCompleted(context.Background(), domain.CompletedSet{1}); err == nil {
		t.Fatalf("write failure must be returned")
	}
}

func TestStoreSessionValidates(t *testing.T) {
	t.Parallel()
	store := newMemStore(nil)
	svc, _ := newService(store, false)
	if err := svc.StoreSession(context.Background(), []byte("not json")); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
	if _, ok := store.values[domain.SessionEntryKey]; ok {
		t.Fatalf("invalid session must not be stored")
	}
	if err := svc.StoreSession(context.Background(), []byte(sarah+"\n")); err != nil {
		t.Fatalf("store session: %v", err)
	}
	if store.values[domain.SessionEntryKey] != sarah {
		t.Fatalf("session stored with unexpected payload %q", store.values[domain.SessionEntryKey])
	}
}

func TestParseErrorsWrapMalformedEntry(t *testing.T) {
	t.Parallel()
	if _, err := service.ParseSessionRecord("{"); !errors.Is(err, apperrors.ErrMalformedEntry) {
		t.Fatalf("expected malformed entry, got %v", err)
	}
	if _, err := service.ParseCompletedSet("[1.5]"); !errors.Is(err, apperrors.ErrMalformedEntry) {
		t.Fatalf("expected malformed entry, got %v", err)
	}
	_, err := service.ParseSessionRecord("")
	if !errors.Is(err, apperrors.ErrMalformedEntry) || !strings.Contains(err.Error(), "empty") {
		t.Fatalf("expected empty-entry error, got %v", err)
	}
	if _, err := service.ParseSessionRecord("null"); err == nil || !strings.Contains(err.Error(), "null") {
		t.Fatalf("expected null-entry error, got %v", err)
	}
}
