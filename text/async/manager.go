package async

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/textkit"
	"github.com/gogpu/textkit/internal/parallel"
	"github.com/gogpu/textkit/text"
)

// State is the lifecycle state of a task.
type State int

const (
	// StateUnknown is reported for ids the manager does not track.
	StateUnknown State = iota
	// StateWaiting means the task waits for an idle loader.
	StateWaiting
	// StateRunning means a loader works on the task or its result waits
	// for Dispatch.
	StateRunning
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "Waiting"
	case StateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

type task struct {
	id        TaskID
	params    Parameters
	observer  Observer
	cancelled bool
	slot      int
}

// slot is one loader and its pending maintenance.
type slot struct {
	loader Loader
	task   *task

	// set by OnLocaleChanged while the loader runs
	localeNeeded bool
	clearNeeded  bool
}

type completion struct {
	task *task
	info RenderInfo
}

// Manager schedules tasks on a bounded set of loaders.
//
// Observers are only called from Dispatch and Run, outside the manager's
// lock, so they may call back into the manager. Requests, cancellation and
// queries are safe from any goroutine. ObserverDestroyed belongs to the
// goroutine delivering results: from there, inside an observer included,
// it is ordered with every delivery.
type Manager struct {
	pool      *parallel.Pool
	completed chan completion
	done      chan struct{}
	queued    func()

	mu      sync.Mutex
	slots   []*slot
	idle    []int
	waiting []*task
	running map[TaskID]*task
	nextID  TaskID
	locale  string
	closed  bool
}

// NewManager creates a manager whose loaders are made by factory.
func NewManager(factory LoaderFactory, opts ...Option) *Manager {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	n := min(max(cfg.loaders, MinLoaders), MaxLoaders)

	m := &Manager{
		pool: parallel.NewPool(n, 1),
		// A loader has at most one undispatched result.
		completed: make(chan completion, n),
		done:      make(chan struct{}),
		queued:    cfg.queued,
		slots:     make([]*slot, n),
		idle:      make([]int, 0, n),
		running:   make(map[TaskID]*task),
		locale:    cfg.locale,
	}
	for i := range n {
		l := factory()
		if cfg.locale != "" {
			if err := l.SetLocale(cfg.locale); err != nil {
				textkit.Logger().Warn("async: loader rejected locale", "locale", cfg.locale, "error", err)
			}
		}
		m.slots[i] = &slot{loader: l}
		m.idle = append(m.idle, i)
	}
	textkit.Logger().Info("async: manager started", "loaders", n)
	return m
}

// Loaders returns the number of loaders.
func (m *Manager) Loaders() int {
	return len(m.slots)
}

// RequestLoad queues a task for observer and returns its id. The task
// runs immediately when a loader is idle. A closed manager returns
// EmptyTaskID.
func (m *Manager) RequestLoad(params Parameters, observer Observer) TaskID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		textkit.Logger().Warn("async: request on closed manager", "error", text.ErrManagerClosed)
		return EmptyTaskID
	}
	m.nextID++
	if m.nextID == EmptyTaskID {
		m.nextID++
	}
	t := &task{id: m.nextID, params: params, observer: observer}

	if len(m.idle) > 0 {
		m.startLocked(t)
	} else {
		m.waiting = append(m.waiting, t)
		textkit.Logger().Debug("async: task waiting", "id", t.id, "waiting", len(m.waiting))
	}
	return t.id
}

// startLocked runs t on the next idle loader.
func (m *Manager) startLocked(t *task) {
	i := m.idle[len(m.idle)-1]
	m.idle = m.idle[:len(m.idle)-1]
	s := m.slots[i]
	s.task = t
	t.slot = i
	m.running[t.id] = t
	textkit.Logger().Debug("async: task running", "id", t.id, "loader", i, "request", t.params.RequestType)

	loader, params := s.loader, t.params
	if !m.pool.SubmitTo(i, func() {
		m.post(completion{task: t, info: runLoader(loader, params)})
	}) {
		textkit.Logger().Error("async: loader refused task", "id", t.id, "loader", i)
	}
}

func (m *Manager) post(c completion) {
	m.completed <- c
	if m.queued != nil {
		m.queued()
	}
}

// runLoader calls l.Load and turns a panic into a failed result.
func runLoader(l Loader, p Parameters) (info RenderInfo) {
	defer func() {
		if r := recover(); r != nil {
			info = RenderInfo{
				RequestType: p.RequestType,
				Err:         fmt.Errorf("%w: %v", text.ErrLoaderPanic, r),
			}
		}
	}()
	return l.Load(p)
}

// RequestCancel cancels a task. A waiting task is dropped, a running task
// finishes but its result is discarded. Unknown ids are ignored.
func (m *Manager) RequestCancel(id TaskID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := slices.IndexFunc(m.waiting, func(t *task) bool { return t.id == id }); i >= 0 {
		m.waiting = slices.Delete(m.waiting, i, i+1)
		textkit.Logger().Debug("async: waiting task cancelled", "id", id)
		return
	}
	if t, ok := m.running[id]; ok {
		t.cancelled = true
		textkit.Logger().Debug("async: running task cancelled", "id", id)
	}
}

// ObserverDestroyed cancels every task of observer. Called from the
// goroutine running Dispatch or Run, the observer is never called again.
// From another goroutine a delivery already handed to the observer may
// still run.
func (m *Manager) ObserverDestroyed(observer Observer) {
	if observer == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	before := len(m.waiting)
	m.waiting = slices.DeleteFunc(m.waiting, func(t *task) bool { return t.observer == observer })
	cancelled := before - len(m.waiting)
	for _, t := range m.running {
		if t.observer == observer {
			t.cancelled = true
			t.observer = nil
			cancelled++
		}
	}
	if cancelled > 0 {
		textkit.Logger().Debug("async: observer destroyed", "cancelled", cancelled)
	}
}

// State returns the state of task id.
func (m *Manager) State(id TaskID) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.running[id]; ok {
		return StateRunning
	}
	if slices.ContainsFunc(m.waiting, func(t *task) bool { return t.id == id }) {
		return StateWaiting
	}
	return StateUnknown
}

// RunningTasks returns the number of tasks holding a loader.
func (m *Manager) RunningTasks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.running)
}

// WaitingTasks returns the number of tasks waiting for a loader.
func (m *Manager) WaitingTasks() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiting)
}

// Locale returns the locale last passed to OnLocaleChanged or WithLocale.
func (m *Manager) Locale() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locale
}

// OnLocaleChanged propagates a new locale to the loaders. Idle loaders are
// updated now, running loaders when their task completes.
func (m *Manager) OnLocaleChanged(locale string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || locale == m.locale {
		return
	}
	m.locale = locale
	for i, s := range m.slots {
		s.localeNeeded, s.clearNeeded = true, true
		if s.task == nil {
			m.maintainLocked(i)
		}
	}
	textkit.Logger().Debug("async: locale changed", "locale", locale, "running", len(m.running))
}

// maintainLocked applies pending locale work to the idle loader i.
func (m *Manager) maintainLocked(i int) {
	s := m.slots[i]
	if s.clearNeeded {
		s.loader.ClearCache()
		s.clearNeeded = false
	}
	if s.localeNeeded {
		if err := s.loader.SetLocale(m.locale); err != nil {
			textkit.Logger().Warn("async: loader rejected locale", "locale", m.locale, "loader", i, "error", err)
		}
		s.localeNeeded = false
	}
}

// Dispatch delivers every queued result without blocking and returns the
// number of results processed.
func (m *Manager) Dispatch() int {
	n := 0
	for {
		select {
		case c := <-m.completed:
			m.complete(c)
			n++
		default:
			return n
		}
	}
}

// Run delivers results as they arrive until ctx is done or the manager is
// closed.
func (m *Manager) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.done:
			return text.ErrManagerClosed
		case c := <-m.completed:
			m.complete(c)
		}
	}
}

// complete delivers c, frees its loader and promotes the next waiting task.
func (m *Manager) complete(c completion) {
	t := c.task
	success := c.info.Err == nil

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	delete(m.running, t.id)
	observer := t.observer
	deliver := !t.cancelled && observer != nil
	m.mu.Unlock()

	if !success {
		textkit.Logger().Warn("async: task failed", "id", t.id, "request", t.params.RequestType, "error", c.info.Err)
	}
	if deliver {
		textkit.Logger().Debug("async: task completed", "id", t.id, "success", success)
		observer.LoadComplete(t.id, success, c.info)
	} else {
		textkit.Logger().Debug("async: cancelled result discarded", "id", t.id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.slots[t.slot].task = nil
	m.maintainLocked(t.slot)
	m.idle = append(m.idle, t.slot)
	if len(m.waiting) > 0 {
		next := m.waiting[0]
		m.waiting = slices.Delete(m.waiting, 0, 1)
		m.startLocked(next)
	}
}

// Close stops the loaders after their current work. Waiting tasks are
// dropped and no observer is called after Close returns.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	dropped := len(m.waiting) + len(m.running)
	m.waiting = nil
	clear(m.running)
	close(m.done)
	m.mu.Unlock()

	m.pool.Close()
drain:
	for {
		select {
		case <-m.completed:
		default:
			break drain
		}
	}
	textkit.Logger().Info("async: manager closed", "dropped", dropped)
}
