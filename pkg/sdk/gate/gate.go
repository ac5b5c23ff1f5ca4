// Package gate admits or refuses protected views based on an asynchronous
// role check. A gate fails closed: errors deny access.
package gate

import (
	"context"
	"sync"
)

// State of a gate. Unknown is the only non-terminal state.
type State int

const (
	Unknown State = iota
	Denied
	Granted
)

func (s State) String() string {
	switch s {
	case Denied:
		return "denied"
	case Granted:
		return "granted"
	default:
		return "unknown"
	}
}

// DefaultFallback is where a denied view sends the user unless WithFallback
// says otherwise.
const DefaultFallback = "/"

// CheckFunc answers "is the caller allowed", for example IsCallerAdmin.
type CheckFunc func(ctx context.Context) (bool, error)

// Denial is passed to View.Denied.
type Denial struct {
	// Err is the check failure, nil when the check answered false.
	Err error
	// Fallback is the safe view to offer instead of the protected one.
	Fallback string
}

// View is what a consumer renders for each state.
type View struct {
	Pending func()
	Denied  func(Denial)
	Granted func()
}

// Gate resolves its check once. A role change after resolution is not
// observed; build a new Gate per navigation to re-check.
type Gate struct {
	check    CheckFunc
	fallback string

	once sync.Once
	done chan struct{}

	mu    sync.RWMutex
	state State
	err   error
}

// Option configures a Gate.
type Option func(*Gate)

// WithFallback sets the safe view offered on denial.
func WithFallback(path string) Option {
	return func(g *Gate) {
		g.fallback = path
	}
}

// New returns an unresolved gate over check.
func New(check CheckFunc, opts ...Option) *Gate {
	g := &Gate{
		check:    check,
		fallback: DefaultFallback,
		done:     make(chan struct{}),
	}
	for _, fn := range opts {
		fn(g)
	}
	return g
}

// RequireIdentity gates by authentication rather than role.
func RequireIdentity(authenticated bool) State {
	if authenticated {
		return Granted
	}
	return Denied
}

// State returns the current state without waiting.
func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Err returns the check error that caused a denial, if any.
func (g *Gate) Err() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.err
}

// Resolve runs the check on first use and waits for the outcome. Later calls
// return the same outcome without checking again. If ctx ends first the gate
// stays Unknown for this caller while the check keeps running.
func (g *Gate) Resolve(ctx context.Context) State {
	g.once.Do(func() {
		go g.run(context.WithoutCancel(ctx))
	})

	select {
	case <-g.done:
	case <-ctx.Done():
	}
	return g.State()
}

func (g *Gate) run(ctx context.Context) {
	defer close(g.done)

	state, err := Denied, error(nil)
	func() {
		defer func() {
			if r := recover(); r != nil {
				state = Denied
			}
		}()
		ok, checkErr := g.check(ctx)
		if checkErr != nil {
			err = checkErr
			return
		}
		if ok {
			state = Granted
		}
	}()

	g.mu.Lock()
	g.state = state
	g.err = err
	g.mu.Unlock()
}

// Render calls v.Pending while the check is unresolved, then exactly one of
// v.Denied or v.Granted. Protected content is never rendered unless the
// check answered true. Nil callbacks are skipped. It returns the state it
// rendered; Unknown means ctx ended before the check resolved.
func (g *Gate) Render(ctx context.Context, v View) State {
	if g.State() == Unknown && v.Pending != nil {
		v.Pending()
	}

	switch state := g.Resolve(ctx); state {
	case Granted:
		if v.Granted != nil {
			v.Granted()
		}
		return Granted
	case Denied:
		if v.Denied != nil {
			v.Denied(Denial{Err: g.Err(), Fallback: g.fallback})
		}
		return Denied
	default:
		return Unknown
	}
}
