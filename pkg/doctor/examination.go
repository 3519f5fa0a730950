package doctor

import (
	"context"
	"sync"
	"time"

	"github.com/arthur-debert/bitdoctor/pkg/errors"
	"github.com/arthur-debert/bitdoctor/pkg/logging"
)

// State is the lifecycle position of an Examination
type State int

const (
	NotRun State = iota
	Running
	Valid
	Invalid
	Errored
)

func (s State) String() string {
	switch s {
	case NotRun:
		return "not-run"
	case Running:
		return "running"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// MarshalText renders the state by name in JSON and YAML output
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Done reports whether s is a terminal state
func (s State) Done() bool {
	return s == Valid || s == Invalid || s == Errored
}

// Examination is one run of a diagnosis. It moves from NotRun through Running
// to exactly one of Valid, Invalid or Errored, and never runs again.
type Examination struct {
	diagnosis Diagnosis

	mu       sync.Mutex
	state    State
	result   *Result
	err      error
	duration time.Duration
}

// NewExamination prepares a run of d
func NewExamination(d Diagnosis) *Examination {
	return &Examination{diagnosis: d}
}

// Diagnosis returns the diagnosis being examined
func (e *Examination) Diagnosis() Diagnosis {
	return e.diagnosis
}

// Run examines the diagnosis. It may only be called once.
func (e *Examination) Run(ctx context.Context) error {
	e.mu.Lock()
	if e.state != NotRun {
		state := e.state
		e.mu.Unlock()
		return errors.Newf(errors.ErrInternal, "examination of %q already %s", e.diagnosis.Info().ID, state).
			WithDetail("state", state.String())
	}
	e.state = Running
	e.mu.Unlock()

	info := e.diagnosis.Info()
	logger := logging.GetLogger("doctor").With().Str("diagnosis", info.ID).Logger()
	done := logging.LogOperationStart(logger, "examine")
	defer done()

	start := time.Now()
	result, err := e.diagnosis.Examine(ctx)
	elapsed := time.Since(start)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.duration = elapsed

	switch {
	case err != nil:
		e.state = Errored
		e.err = errors.Wrapf(err, errors.ErrDiagnosisFailed, "diagnosis %q failed", info.Name)
		logger.Error().Err(err).Msg("examination errored")
		return e.err
	case result == nil:
		e.state = Errored
		e.err = errors.Newf(errors.ErrInternal, "diagnosis %q returned no result", info.Name)
		return e.err
	case result.Valid:
		e.state = Valid
	default:
		e.state = Invalid
	}
	e.result = result

	logger.Info().Stringer("state", e.state).Int("errors", len(result.Errors)).Msg("examination finished")
	return nil
}

// State returns the current state
func (e *Examination) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Result returns the result of a completed run, or nil
func (e *Examination) Result() *Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.result
}

// Err returns the error of an errored run
func (e *Examination) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Duration returns how long Examine took
func (e *Examination) Duration() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration
}

// Symptoms formats the symptoms of the stored result
func (e *Examination) Symptoms() (string, error) {
	result, err := e.completedResult()
	if err != nil {
		return "", err
	}
	return e.diagnosis.FormatSymptoms(result)
}

// ManualRemedy formats the manual remedy for the stored result
func (e *Examination) ManualRemedy() (string, error) {
	result, err := e.completedResult()
	if err != nil {
		return "", err
	}
	return e.diagnosis.FormatManualRemedy(result)
}

func (e *Examination) completedResult() (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.result == nil {
		return nil, errors.Newf(errors.ErrInternal, "examination of %q has no result (state %s)", e.diagnosis.Info().ID, e.state)
	}
	return e.result, nil
}
