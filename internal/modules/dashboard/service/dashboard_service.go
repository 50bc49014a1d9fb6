package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"coachdash/internal/modules/dashboard/domain"
	dashboardout "coachdash/internal/modules/dashboard/port/out"
	apperrors "coachdash/internal/platform/errors"
)

type Options struct {
	DemoMode          bool
	DefaultClientName string
}

type DashboardService struct {
	store  dashboardout.EntryStore
	logger zerolog.Logger
	opts   Options
}

func NewDashboardService(store dashboardout.EntryStore, logger zerolog.Logger, opts Options) *DashboardService {
	if opts.DefaultClientName == "" {
		opts.DefaultClientName = "Welcome"
	}
	return &DashboardService{store: store, logger: logger, opts: opts}
}

// LoadProfile never fails: an absent or blank entry yields the default or demo
// profile, an unreadable or malformed one is logged and yields the default.
func (s *DashboardService) LoadProfile(ctx context.Context) domain.Profile {
	raw, err := s.store.Get(ctx, domain.SessionEntryKey)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.logger.Warn().Err(err).Str("key", domain.SessionEntryKey).Msg("read session entry")
		return domain.DefaultProfile(s.opts.DefaultClientName)
	}
	// A blank entry means no record, same as an absent one.
	if err != nil || isBlank(raw) {
		if s.opts.DemoMode {
			s.logger.Debug().Msg("no session entry, using demo record")
			return domain.NewProfile(domain.DemoRecord(), domain.OriginDemo, s.opts.DefaultClientName)
		}
		return domain.DefaultProfile(s.opts.DefaultClientName)
	}
	record, err := ParseSessionRecord(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", domain.SessionEntryKey).Msg("parse session entry")
		return domain.DefaultProfile(s.opts.DefaultClientName)
	}
	return domain.NewProfile(record, domain.OriginStored, s.opts.DefaultClientName)
}

// LoadCompleted returns the stored indices verbatim, or an empty set.
func (s *DashboardService) LoadCompleted(ctx context.Context) domain.CompletedSet {
	raw, err := s.store.Get(ctx, domain.CompletedTasksEntryKey)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn().Err(err).Str("key", domain.CompletedTasksEntryKey).Msg("read completed tasks")
		}
		return domain.CompletedSet{}
	}
	if isBlank(raw) {
		return domain.CompletedSet{}
	}
	set, err := ParseCompletedSet(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("key", domain.CompletedTasksEntryKey).Msg("parse completed tasks")
		return domain.CompletedSet{}
	}
	return set
}

// SaveCompleted rewrites the whole completed-task entry.
func (s *DashboardService) SaveCompleted(ctx context.Context, set domain.CompletedSet) error {
	if set == nil {
		set = domain.CompletedSet{}
	}
	payload, err := json.Marshal([]int(set))
	if err != nil {
		return fmt.Errorf("marshal completed tasks: %w", err)
	}
	if err := s.store.Set(ctx, domain.CompletedTasksEntryKey, string(payload)); err != nil {
		return fmt.Errorf("write completed tasks: %w", err)
	}
	return nil
}

// StoreSession validates payload as a session record and stores it as is.
func (s *DashboardService) StoreSession(ctx context.Context, payload []byte) error {
	raw := string(payload)
	if _, err := ParseSessionRecord(raw); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := s.store.Set(ctx, domain.SessionEntryKey, strings.TrimSpace(raw)); err != nil {
		return fmt.Errorf("write session entry: %w", err)
	}
	return nil
}

func ParseSessionRecord(raw string) (domain.SessionRecord, error) {
	if isBlank(raw) {
		return domain.SessionRecord{}, fmt.Errorf("%w: session entry is empty", apperrors.ErrMalformedEntry)
	}
	if isNull(raw) {
		return domain.SessionRecord{}, fmt.Errorf("%w: session entry is null", apperrors.ErrMalformedEntry)
	}
	record := domain.SessionRecord{}
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("%w: %v", apperrors.ErrMalformedEntry, err)
	}
	return record, nil
}

func ParseCompletedSet(raw string) (domain.CompletedSet, error) {
	if isBlank(raw) {
		return nil, fmt.Errorf("%w: completed tasks entry is empty", apperrors.ErrMalformedEntry)
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: completed tasks entry is null", apperrors.ErrMalformedEntry)
	}
	var indices []int
	if err := json.Unmarshal([]byte(raw), &indices); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedEntry, err)
	}
	return domain.CompletedSet(indices), nil
}

func isBlank(raw string) bool {
	return strings.TrimSpace(raw) == ""
}

func isNull(raw string) bool {
	return strings.TrimSpace(raw) == "null"
}
