// Package validation collects rejections reported while checking and executing transactions.
package validation

import (
	"sync"

	"go.uber.org/zap"

	"github.com/spacemeshos/go-rewardtx/rewardtx"
)

// State accumulates rejections. The zero value is ready to use.
type State struct {
	logger *zap.Logger

	mu         sync.Mutex
	rejections []rewardtx.Rejection
}

// NewState returns State that also logs every rejection.
func NewState(logger *zap.Logger) *State {
	return &State{logger: logger}
}

// Reject implements rewardtx.ValidationState.
func (s *State) Reject(r rewardtx.Rejection) {
	s.mu.Lock()
	s.rejections = append(s.rejections, r)
	s.mu.Unlock()
	if s.logger != nil {
		s.logger.Debug("rejected",
			zap.Int("score", r.Score),
			zap.String("code", r.Code),
			zap.Error(r.Err),
		)
	}
}

// IsValid is true if nothing was rejected.
func (s *State) IsValid() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rejections) == 0
}

// Score returns the highest reported score.
func (s *State) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	score := 0
	for _, r := range s.rejections {
		score = max(score, r.Score)
	}
	return score
}

// Rejections returns a copy of reported rejections in order.
func (s *State) Rejections() []rewardtx.Rejection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]rewardtx.Rejection(nil), s.rejections...)
}

// Reset drops reported rejections.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejections = nil
}
