package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pampered-pooch/site-api/internal/domain"
	"github.com/pampered-pooch/site-api/internal/pkg/otp"
)

// VerificationStore keeps at most one pending code per email address in a
// process-local map. Records are lost on restart. Each issued code gets a
// one-shot deferred sweep scheduled just past its expiry; the sweep only
// removes the record if it has not been consumed or replaced in the meantime.
type VerificationStore struct {
	mu      sync.Mutex
	records map[string]*entry
	seq     uint64

	// test seams, default to the real clock
	now       func() time.Time
	afterFunc func(d time.Duration, f func())
}

type entry struct {
	rec domain.VerificationRecord
	seq uint64
}

func NewVerificationStore() *VerificationStore {
	return &VerificationStore{
		records:   make(map[string]*entry),
		now:       time.Now,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// Issue generates a uniformly random 6-digit code for email, overwriting any
// prior unconsumed record for the same address. It does not send email.
func (s *VerificationStore) Issue(_ context.Context, email, name string) (string, error) {
	code, err := otp.NewCode()
	if err != nil {
		return "", err
	}

	key := normalize(email)

	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.records[key] = &entry{
		rec: domain.VerificationRecord{
			Email:     key,
			Code:      code,
			Name:      name,
			ExpiresAt: s.now().Add(domain.CodeTTL).Unix(),
		},
		seq: seq,
	}
	s.mu.Unlock()

	// Passive cleanup one second past expiry. The seq guard makes the sweep a
	// no-op if the record was consumed or overwritten by a newer issue.
	s.afterFunc(domain.CodeTTL+time.Second, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if e, ok := s.records[key]; ok && e.seq == seq && e.rec.ExpiresAt <= s.now().Unix() {
			delete(s.records, key)
		}
	})

	return code, nil
}

// Check compares a submitted code against the active record for email.
// Verified and Expired both delete the record; Mismatch retains it so the
// caller may retry. Check-then-delete happens under one lock so no two
// concurrent checks can consume the same code.
func (s *VerificationStore) Check(_ context.Context, email, code string) (domain.CheckResult, error) {
	key := normalize(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[key]
	if !ok {
		return domain.CheckNotFound, nil
	}
	if s.now().Unix() > e.rec.ExpiresAt {
		delete(s.records, key)
		return domain.CheckExpired, nil
	}
	if e.rec.Code != code {
		return domain.CheckMismatch, nil
	}
	delete(s.records, key)
	return domain.CheckVerified, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
