package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/textkit/text"
)

// fakeLoader blocks every Load until gate is closed.
type fakeLoader struct {
	gate   chan struct{}
	fail   bool
	panics bool

	mu      sync.Mutex
	locale  string
	clears  int
	loading bool
}

func (l *fakeLoader) Load(p Parameters) RenderInfo {
	l.mu.Lock()
	l.loading = true
	l.mu.Unlock()
	defer func() {
		l.mu.Lock()
		l.loading = false
		l.mu.Unlock()
	}()

	if l.gate != nil {
		<-l.gate
	}
	if l.panics {
		panic("boom")
	}
	if l.fail {
		return RenderInfo{RequestType: p.RequestType, Err: errors.New("load failed")}
	}
	return RenderInfo{RequestType: p.RequestType, Width: int(p.Width)}
}

func (l *fakeLoader) SetLocale(locale string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.loading {
		panic("SetLocale during Load")
	}
	l.locale = locale
	return nil
}

func (l *fakeLoader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clears++
}

func (l *fakeLoader) state() (string, int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locale, l.clears
}

// newFakeManager returns a manager of n fake loaders sharing gate.
func newFakeManager(t *testing.T, n int, gate chan struct{}, opts ...Option) (*Manager, []*fakeLoader) {
	t.Helper()
	var loaders []*fakeLoader
	factory := func() Loader {
		l := &fakeLoader{gate: gate}
		loaders = append(loaders, l)
		return l
	}
	m := NewManager(factory, append([]Option{WithLoaders(n)}, opts...)...)
	t.Cleanup(func() {
		select {
		case <-gate:
		default:
			if gate != nil {
				close(gate)
			}
		}
		m.Close()
	})
	return m, loaders
}

type delivery struct {
	id      TaskID
	success bool
	info    RenderInfo
}

// recorder is an Observer collecting deliveries.
type recorder struct {
	mu  sync.Mutex
	got []delivery
}

func (r *recorder) LoadComplete(id TaskID, success bool, info RenderInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, delivery{id, success, info})
}

func (r *recorder) deliveries() []delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]delivery(nil), r.got...)
}

func (r *recorder) ids() []TaskID {
	var ids []TaskID
	for _, d := range r.deliveries() {
		ids = append(ids, d.id)
	}
	return ids
}

// dispatchUntil calls Dispatch until n results were processed.
func dispatchUntil(t *testing.T, m *Manager, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	done := 0
	for done < n {
		if time.Now().After(deadline) {
			t.Fatalf("dispatched %d results, want %d", done, n)
		}
		done += m.Dispatch()
		if done < n {
			time.Sleep(time.Millisecond)
		}
	}
}

func params(tag float32) Parameters {
	return Parameters{RequestType: RenderFixedSize, Width: tag}
}

func TestNewManager_Loaders(t *testing.T) {
	tests := []struct {
		name string
		env  string
		opts []Option
		want int
	}{
		{"default", "", nil, DefaultLoaders},
		{"option", "", []Option{WithLoaders(3)}, 3},
		{"option clamped low", "", []Option{WithLoaders(0)}, MinLoaders},
		{"option clamped high", "", []Option{WithLoaders(100)}, MaxLoaders},
		{"env", "2", nil, 2},
		{"env clamped", "64", nil, MaxLoaders},
		{"env invalid", "many", nil, DefaultLoaders},
		{"option wins over env", "2", []Option{WithLoaders(5)}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LoadersEnv, tt.env)
			created := 0
			m := NewManager(func() Loader {
				created++
				return &fakeLoader{}
			}, tt.opts...)
			defer m.Close()
			if m.Loaders() != tt.want || created != tt.want {
				t.Errorf("Loaders() = %d, created %d, want %d", m.Loaders(), created, tt.want)
			}
		})
	}
}

func TestManager_RunningAndWaiting(t *testing.T) {
	const loaders, tasks = 2, 5
	gate := make(chan struct{})
	m, _ := newFakeManager(t, loaders, gate)
	obs := &recorder{}

	var ids []TaskID
	for i := range tasks {
		ids = append(ids, m.RequestLoad(params(float32(i)), obs))
	}
	for i, id := range ids {
		if id != TaskID(i+1) {
			t.Errorf("task %d id = %d, want %d", i, id, i+1)
		}
	}
	if got := m.RunningTasks(); got != loaders {
		t.Errorf("RunningTasks() = %d, want %d", got, loaders)
	}
	if got := m.WaitingTasks(); got != tasks-loaders {
		t.Errorf("WaitingTasks() = %d, want %d", got, tasks-loaders)
	}
	if got := m.State(ids[0]); got != StateRunning {
		t.Errorf("State(first) = %v, want Running", got)
	}
	if got := m.State(ids[tasks-1]); got != StateWaiting {
		t.Errorf("State(last) = %v, want Waiting", got)
	}

	close(gate)
	dispatchUntil(t, m, tasks)

	got := obs.deliveries()
	if len(got) != tasks {
		t.Fatalf("delivered %d results, want %d", len(got), tasks)
	}
	for _, d := range got {
		if !d.success || d.info.Err != nil {
			t.Errorf("task %d: success = %v, err = %v", d.id, d.success, d.info.Err)
		}
		if d.info.Width != int(d.id)-1 {
			t.Errorf("task %d delivered the result of task %d", d.id, d.info.Width+1)
		}
	}
	if m.RunningTasks() != 0 || m.WaitingTasks() != 0 {
		t.Errorf("running %d, waiting %d after dispatch", m.RunningTasks(), m.WaitingTasks())
	}
}

func TestManager_WaitingTasksRunInOrder(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 1, gate)
	obs := &recorder{}
	for i := range 4 {
		m.RequestLoad(params(float32(i)), obs)
	}
	close(gate)
	dispatchUntil(t, m, 4)

	got := obs.ids()
	for i, id := range got {
		if id != TaskID(i+1) {
			t.Fatalf("delivery order = %v, want 1 2 3 4", got)
		}
	}
}

func TestManager_CancelWaiting(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 1, gate)
	obs := &recorder{}

	first := m.RequestLoad(params(0), obs)
	second := m.RequestLoad(params(1), obs)
	m.RequestCancel(second)
	if got := m.State(second); got != StateUnknown {
		t.Errorf("State(cancelled) = %v, want Unknown", got)
	}
	if got := m.WaitingTasks(); got != 0 {
		t.Errorf("WaitingTasks() = %d, want 0", got)
	}

	close(gate)
	dispatchUntil(t, m, 1)
	time.Sleep(10 * time.Millisecond)
	m.Dispatch()

	if got := obs.ids(); len(got) != 1 || got[0] != first {
		t.Errorf("delivered %v, want only %d", got, first)
	}
}

func TestManager_CancelRunning(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 1, gate)
	obs := &recorder{}

	first := m.RequestLoad(params(0), obs)
	second := m.RequestLoad(params(1), obs)
	m.RequestCancel(first)
	if got := m.State(first); got != StateRunning {
		t.Errorf("State(cancelled running) = %v, want Running until its loader finishes", got)
	}

	close(gate)
	dispatchUntil(t, m, 2)

	if got := obs.ids(); len(got) != 1 || got[0] != second {
		t.Errorf("delivered %v, want only %d", got, second)
	}
	if got := m.State(first); got != StateUnknown {
		t.Errorf("State(first) = %v after dispatch, want Unknown", got)
	}
}

func TestManager_CancelUnknown(t *testing.T) {
	m, _ := newFakeManager(t, 1, nil)
	m.RequestCancel(EmptyTaskID)
	m.RequestCancel(42)
}

func TestManager_ObserverDestroyed(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 2, gate)
	gone, alive := &recorder{}, &recorder{}

	m.RequestLoad(params(0), gone) // running
	kept := m.RequestLoad(params(1), alive)
	m.RequestLoad(params(2), gone) // waiting
	m.ObserverDestroyed(gone)

	if got := m.WaitingTasks(); got != 0 {
		t.Errorf("WaitingTasks() = %d, want 0", got)
	}

	close(gate)
	dispatchUntil(t, m, 2)

	if got := gone.deliveries(); len(got) != 0 {
		t.Errorf("destroyed observer got %d deliveries", len(got))
	}
	if got := alive.ids(); len(got) != 1 || got[0] != kept {
		t.Errorf("alive observer got %v, want %d", got, kept)
	}
}

func TestManager_ObserverDestroyedFromCallback(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 2, gate)

	// Each observer destroys the other, so only the first delivered runs.
	var calls atomic.Int32
	var a, b ObserverFunc
	a = func(TaskID, bool, RenderInfo) {
		calls.Add(1)
		m.ObserverDestroyed(&b)
	}
	b = func(TaskID, bool, RenderInfo) {
		calls.Add(1)
		m.ObserverDestroyed(&a)
	}
	m.RequestLoad(params(0), &a)
	m.RequestLoad(params(1), &b)

	close(gate)
	dispatchUntil(t, m, 2)
	if got := calls.Load(); got != 1 {
		t.Errorf("observer calls = %d, want 1", got)
	}
	if got := m.RunningTasks(); got != 0 {
		t.Errorf("RunningTasks() = %d, want 0", got)
	}
}

func TestManager_Failures(t *testing.T) {
	tests := []struct {
		name    string
		loader  *fakeLoader
		wantErr error
	}{
		{"error", &fakeLoader{fail: true}, nil},
		{"panic", &fakeLoader{panics: true}, text.ErrLoaderPanic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(func() Loader { return tt.loader }, WithLoaders(1))
			defer m.Close()
			obs := &recorder{}
			m.RequestLoad(params(7), obs)
			// The loader keeps serving after a failure.
			m.RequestLoad(params(8), obs)
			dispatchUntil(t, m, 2)

			got := obs.deliveries()
			if len(got) != 2 {
				t.Fatalf("delivered %d results, want 2", len(got))
			}
			for _, d := range got {
				if d.success || d.info.Err == nil {
					t.Errorf("task %d: success = %v, err = %v, want a failure", d.id, d.success, d.info.Err)
				}
				if tt.wantErr != nil && !errors.Is(d.info.Err, tt.wantErr) {
					t.Errorf("err = %v, want %v", d.info.Err, tt.wantErr)
				}
				if d.info.RequestType != RenderFixedSize {
					t.Errorf("RequestType = %v, want RenderFixedSize", d.info.RequestType)
				}
			}
		})
	}
}

func TestManager_OnLocaleChanged(t *testing.T) {
	gate := make(chan struct{})
	m, loaders := newFakeManager(t, 2, gate, WithLocale("en-US"))
	for _, l := range loaders {
		if locale, _ := l.state(); locale != "en-US" {
			t.Fatalf("initial locale = %q, want en-US", locale)
		}
	}

	obs := &recorder{}
	m.RequestLoad(params(0), obs) // occupies one loader
	m.OnLocaleChanged("ko-KR")

	var idle, busy *fakeLoader
	for _, l := range loaders {
		if locale, _ := l.state(); locale == "ko-KR" {
			idle = l
		} else {
			busy = l
		}
	}
	if idle == nil || busy == nil {
		t.Fatal("want exactly one loader updated while the other runs")
	}
	if _, clears := idle.state(); clears != 1 {
		t.Errorf("idle loader cache clears = %d, want 1", clears)
	}

	close(gate)
	dispatchUntil(t, m, 1)
	if locale, clears := busy.state(); locale != "ko-KR" || clears != 1 {
		t.Errorf("busy loader after completion: locale %q, clears %d", locale, clears)
	}
	if got := m.Locale(); got != "ko-KR" {
		t.Errorf("Locale() = %q, want ko-KR", got)
	}

	// Same locale again is a no-op.
	m.OnLocaleChanged("ko-KR")
	if _, clears := idle.state(); clears != 1 {
		t.Errorf("repeated locale cleared the cache again")
	}
}

func TestManager_QueueCallback(t *testing.T) {
	var queued atomic.Int32
	m, _ := newFakeManager(t, 2, nil, WithQueueCallback(func() { queued.Add(1) }))
	obs := &recorder{}
	for i := range 3 {
		m.RequestLoad(params(float32(i)), obs)
	}
	dispatchUntil(t, m, 3)
	if got := queued.Load(); got != 3 {
		t.Errorf("queue callback called %d times, want 3", got)
	}
}

func TestManager_Run(t *testing.T) {
	m, _ := newFakeManager(t, 2, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	obs := ObserverFunc(func(id TaskID, success bool, info RenderInfo) {
		close(done)
	})
	errc := make(chan error, 1)
	go func() { errc <- m.Run(ctx) }()

	m.RequestLoad(params(0), &obs)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not deliver the result")
	}

	cancel()
	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestManager_Close(t *testing.T) {
	gate := make(chan struct{})
	m, _ := newFakeManager(t, 1, gate)
	obs := &recorder{}
	m.RequestLoad(params(0), obs)
	m.RequestLoad(params(1), obs)

	errc := make(chan error, 1)
	go func() { errc <- m.Run(context.Background()) }()

	// Release the loader once Close has started waiting for it.
	go func() {
		for {
			m.mu.Lock()
			closed := m.closed
			m.mu.Unlock()
			if closed {
				close(gate)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()
	m.Close()
	m.Close()

	if err := <-errc; !errors.Is(err, text.ErrManagerClosed) {
		t.Errorf("Run() = %v, want ErrManagerClosed", err)
	}
	if id := m.RequestLoad(params(2), obs); id != EmptyTaskID {
		t.Errorf("RequestLoad after Close = %d, want EmptyTaskID", id)
	}
	m.Dispatch()
	if got := obs.deliveries(); len(got) != 0 {
		t.Errorf("delivered %d results after Close", len(got))
	}
	if m.RunningTasks() != 0 || m.WaitingTasks() != 0 {
		t.Errorf("running %d, waiting %d after Close", m.RunningTasks(), m.WaitingTasks())
	}
}

func TestManager_ReentrantObserver(t *testing.T) {
	m, _ := newFakeManager(t, 1, nil)
	var second TaskID
	results := &recorder{}
	var obs ObserverFunc
	obs = func(id TaskID, success bool, info RenderInfo) {
		results.LoadComplete(id, success, info)
		if second == EmptyTaskID {
			second = m.RequestLoad(params(1), &obs)
		}
	}
	m.RequestLoad(params(0), &obs)
	dispatchUntil(t, m, 2)

	if got := results.ids(); len(got) != 2 || got[1] != second {
		t.Errorf("delivered %v, want 1 then %d", got, second)
	}
}

func TestStringers(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{RenderFixedSize.String(), "RenderFixedSize"},
		{RenderFixedWidth.String(), "RenderFixedWidth"},
		{RenderConstraint.String(), "RenderConstraint"},
		{ComputeNaturalSize.String(), "ComputeNaturalSize"},
		{ComputeHeightForWidth.String(), "ComputeHeightForWidth"},
		{RequestType(99).String(), "Unknown"},
		{StateWaiting.String(), "Waiting"},
		{StateRunning.String(), "Running"},
		{StateUnknown.String(), "Unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
}
