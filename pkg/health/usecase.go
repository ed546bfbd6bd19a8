package health

import (
	"context"
	"fmt"
	"time"
)

// Checker represents a dependency health check.
type Checker interface {
	Name() string
	Check(ctx context.Context) error
}

// CheckResult is the outcome of one checker.
type CheckResult struct {
	Name      string `json:"name"`
	OK        bool   `json:"ok"`
	Error     string `json:"error,omitempty"`
	LatencyMS int64  `json:"latencyMs"`

	err error
}

// Report lists every checker in registration order.
type Report struct {
	Ready  bool          `json:"ready"`
	Checks []CheckResult `json:"checks"`
}

// Err returns the first failing check as "name: cause", or nil.
func (r Report) Err() error {
	for _, c := range r.Checks {
		if c.err != nil {
			return fmt.Errorf("%s: %w", c.Name, c.err)
		}
	}
	return nil
}

// ReadinessUseCase describes readiness verification.
type ReadinessUseCase interface {
	Ready(ctx context.Context) error
	Report(ctx context.Context) Report
}

type service struct {
	checkers []Checker
}

// NewService aggregates dependency checkers. Nil checkers are skipped so
// optional backends can be passed unconditionally.
func NewService(checkers ...Checker) ReadinessUseCase {
	s := &service{}
	for _, ch := range checkers {
		if ch != nil {
			s.checkers = append(s.checkers, ch)
		}
	}
	return s
}

func (s *service) Ready(ctx context.Context) error {
	return s.Report(ctx).Err()
}

// Report runs all checkers, including those after a failure.
func (s *service) Report(ctx context.Context) Report {
	rep := Report{Ready: true, Checks: make([]CheckResult, 0, len(s.checkers))}
	for _, ch := range s.checkers {
		start := time.Now()
		err := ch.Check(ctx)
		res := CheckResult{Name: ch.Name(), OK: err == nil, LatencyMS: time.Since(start).Milliseconds(), err: err}
		if err != nil {
			res.Error = err.Error()
			rep.Ready = false
		}
		rep.Checks = append(rep.Checks, res)
	}
	return rep
}
