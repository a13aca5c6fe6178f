// Package stdlib defines the native functions available to every program.
// Functions are grouped so a project manifest can switch whole groups off.
package stdlib

import (
	"fmt"
	"math/rand"
	"net/http"
	"sort"
	"time"

	"kaynat/interpreter-go/pkg/runtime"
)

// Group names accepted by WithDisabled.
const (
	GroupMath    = "math"
	GroupBig     = "big"
	GroupString  = "string"
	GroupList    = "list"
	GroupFile    = "file"
	GroupDate    = "date"
	GroupRandom  = "random"
	GroupNetwork = "http"
	GroupJSON    = "json"
	GroupCrypto  = "crypto"
	GroupPattern = "pattern"
)

type config struct {
	disabled map[string]bool
	client   *http.Client
	now      func() time.Time
	location *time.Location
	seed     *int64
}

// Option configures Register.
type Option func(*config)

// WithDisabled leaves the named groups out of the global scope.
func WithDisabled(groups ...string) Option {
	return func(c *config) {
		for _, g := range groups {
			c.disabled[g] = true
		}
	}
}

// WithHTTPClient sets the client used by http_get and http_post.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) { c.client = client }
}

// WithClock replaces time.Now for the date functions.
func WithClock(now func() time.Time) Option {
	return func(c *config) { c.now = now }
}

// WithLocation sets the time zone date_format and date_parse work in.
func WithLocation(loc *time.Location) Option {
	return func(c *config) { c.location = loc }
}

// WithSeed makes the random functions deterministic.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = &seed }
}

// library holds the per-interpreter state natives close over.
type library struct {
	cfg *config
	rng *rand.Rand
}

type group struct {
	name  string
	funcs []runtime.NativeFunctionValue
}

func native(name string, arity int, impl runtime.NativeFunc) runtime.NativeFunctionValue {
	return runtime.NativeFunctionValue{Name: name, Arity: arity, Impl: impl}
}

func (l *library) groups() []group {
	return []group{
		{GroupMath, l.mathFuncs()},
		{GroupBig, l.bigFuncs()},
		{GroupString, l.stringFuncs()},
		{GroupList, l.listFuncs()},
		{GroupFile, l.fileFuncs()},
		{GroupDate, l.dateFuncs()},
		{GroupRandom, l.randomFuncs()},
		{GroupNetwork, l.networkFuncs()},
		{GroupJSON, l.jsonFuncs()},
		{GroupCrypto, l.cryptoFuncs()},
		{GroupPattern, l.patternFuncs()},
	}
}

// Groups returns every group name in registration order.
func Groups() []string {
	l := &library{cfg: &config{}}
	var names []string
	for _, g := range l.groups() {
		names = append(names, g.name)
	}
	return names
}

// Register defines the enabled groups' functions in env. The bindings are
// ordinary variables, so programs may shadow or reassign them.
func Register(env *runtime.Environment, opts ...Option) error {
	cfg := &config{
		disabled: make(map[string]bool),
		client:   &http.Client{Timeout: 30 * time.Second},
		now:      time.Now,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	seed := time.Now().UnixNano()
	if cfg.seed != nil {
		seed = *cfg.seed
	}
	lib := &library{cfg: cfg, rng: rand.New(rand.NewSource(seed))}

	groups := lib.groups()
	known := make(map[string]bool, len(groups))
	for _, g := range groups {
		known[g.name] = true
	}
	var unknown []string
	for name := range cfg.disabled {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown stdlib group(s) %v", unknown)
	}

	for _, g := range groups {
		if cfg.disabled[g.name] {
			continue
		}
		for _, fn := range g.funcs {
			if err := env.Define(fn.Name, fn, false); err != nil {
				return fmt.Errorf("register %s: %w", fn.Name, err)
			}
		}
	}
	return nil
}
