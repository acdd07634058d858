// Package controller resolves the active theme from a persisted selection and
// publishes it to observers.
package controller

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/duotone/duotone/internal/logging"
	"github.com/duotone/duotone/internal/store"
	"github.com/duotone/duotone/internal/system"
	"github.com/duotone/duotone/internal/theme"
)

// ErrEmptyRegistry is returned by New when no theme is registered.
var ErrEmptyRegistry = errors.New("theme registry is empty")

// Options configures a Controller. Registry is required.
type Options struct {
	Registry       *theme.Registry
	Store          store.Store     // defaults to an in-memory store
	System         system.Provider // defaults to system.Terminal{}
	DefaultThemeID theme.ThemeID
	Logger         *slog.Logger
}

// Controller owns the current theme state. Writers are serialised; readers
// never block.
type Controller struct {
	registry  *theme.Registry
	store     store.Store
	system    system.Provider
	defaultID theme.ThemeID
	logger    *slog.Logger

	mu    sync.Mutex // serialises selection changes
	state atomic.Pointer[theme.State]
	gen   uint64

	subMu   sync.Mutex
	subs    map[int]chan theme.State
	nextSub int

	saveMu   sync.Mutex
	savedGen uint64

	wg     sync.WaitGroup
	loaded chan struct{}
}

// New resolves the default selection immediately and starts loading the
// persisted selection in the background.
func New(opts Options) (*Controller, error) {
	if opts.Registry.Len() == 0 {
		return nil, ErrEmptyRegistry
	}
	c := &Controller{
		registry:  opts.Registry,
		store:     opts.Store,
		system:    opts.System,
		defaultID: opts.DefaultThemeID,
		logger:    opts.Logger,
		subs:      make(map[int]chan theme.State),
		loaded:    make(chan struct{}),
	}
	if c.store == nil {
		c.store = store.NewMemory()
	}
	if c.system == nil {
		c.system = system.Terminal{}
	}
	if c.logger == nil {
		c.logger = logging.Discard()
	}

	c.publish(c.resolve(theme.DefaultSelection()))

	c.wg.Add(1)
	go c.load()
	return c, nil
}

func (c *Controller) load() {
	defer c.wg.Done()
	defer close(c.loaded)

	sel, ok, err := c.store.Load(context.Background())
	if err != nil {
		c.logger.Error("load theme selection", slog.Any("err", err))
		return
	}
	if !ok {
		sel = theme.DefaultSelection()
	}

	c.mu.Lock()
	st := c.resolve(sel)
	c.publish(st)
	c.mu.Unlock()
	c.logger.Debug("theme selection loaded",
		slog.Bool("saved", ok),
		slog.String("mode", sel.Mode.String()),
		slog.String("theme", string(st.Theme.ID)))
}

// Loaded is closed once the initial load has finished, successfully or not.
func (c *Controller) Loaded() <-chan struct{} {
	return c.loaded
}

// State returns the most recently resolved state.
func (c *Controller) State() theme.State {
	return *c.state.Load()
}

// SetMode changes the mode and keeps any explicit theme.
func (c *Controller) SetMode(mode theme.Mode) theme.State {
	return c.update(func(s theme.Selection) theme.Selection { return s.WithMode(mode) })
}

// SetExplicitTheme overrides the theme. An empty id reverts to the mode's default.
func (c *Controller) SetExplicitTheme(id theme.ThemeID) theme.State {
	return c.update(func(s theme.Selection) theme.Selection { return s.WithExplicit(id) })
}

// RefreshSystem re-resolves the current selection, picking up a change in
// the host's dark/light preference.
func (c *Controller) RefreshSystem() theme.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.resolve(c.State().Selection)
	c.publish(st)
	return st
}

func (c *Controller) update(change func(theme.Selection) theme.Selection) theme.State {
	c.mu.Lock()
	st := c.resolve(change(c.State().Selection))
	c.publish(st)
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.logger.Info("theme selection changed",
		slog.String("mode", st.Selection.Mode.String()),
		slog.String("explicit", string(st.Selection.Explicit)),
		slog.String("theme", string(st.Theme.ID)))
	c.persist(gen, st.Selection)
	return st
}

// persist saves in the background.
func (c *Controller) persist(gen uint64, sel theme.Selection) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.save(gen, sel)
	}()
}

// save writes sel unless a newer generation has already been written, so the
// store always ends with the latest selection.
func (c *Controller) save(gen uint64, sel theme.Selection) {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()
	if gen < c.savedGen {
		c.logger.Debug("skip stale theme save", slog.Uint64("gen", gen), slog.Uint64("saved", c.savedGen))
		return
	}
	if err := c.store.Save(context.Background(), sel); err != nil {
		c.logger.Error("save theme selection", slog.Any("err", err))
		return
	}
	c.savedGen = gen
}

// Subscribe returns a channel holding the latest state. The current state is
// available immediately; intermediate states may be skipped by slow readers.
// Call the returned func to unsubscribe.
func (c *Controller) Subscribe() (<-chan theme.State, func()) {
	ch := make(chan theme.State, 1)

	c.subMu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = ch
	ch <- c.State()
	c.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.subMu.Lock()
			defer c.subMu.Unlock()
			if _, ok := c.subs[id]; ok {
				delete(c.subs, id)
				close(ch)
			}
		})
	}
}

func (c *Controller) publish(st theme.State) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	c.state.Store(&st)
	for _, ch := range c.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}

// Close waits for the initial load and any pending saves, then closes every
// subscription.
func (c *Controller) Close() error {
	c.wg.Wait()
	c.subMu.Lock()
	defer c.subMu.Unlock()
	for id, ch := range c.subs {
		delete(c.subs, id)
		close(ch)
	}
	return nil
}

// AvailableThemes returns every registered definition.
func (c *Controller) AvailableThemes() []theme.Definition {
	return c.registry.All()
}

// AvailableThemeFamilies returns every registered family.
func (c *Controller) AvailableThemeFamilies() []theme.Family {
	return c.registry.Families()
}

// AvailableThemeFamiliesInOrder returns every family with preferred first.
// The remaining families keep registration order.
func (c *Controller) AvailableThemeFamiliesInOrder(preferred theme.ThemeID) []theme.Family {
	fams := c.registry.Families()
	sort.SliceStable(fams, func(i, j int) bool {
		return fams[i].ID == preferred && fams[j].ID != preferred
	})
	return fams
}

// CurrentFamily returns the family owning the resolved theme, if any.
func (c *Controller) CurrentFamily() (theme.Family, bool) {
	return c.registry.FamilyOf(c.State().Theme.ID)
}
