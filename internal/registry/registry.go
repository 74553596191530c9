// ============================================================================
// textkit - Text Engine
// ============================================================================
//
// Package:     registry
// Description: Named text operations: built-ins, macros, aliases and
//              unique-prefix abbreviations
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package registry

import (
	"sort"
	"strings"
	"sync"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
	"github.com/msto63/textkit/foundation/utils/stringx"

	"github.com/msto63/textkit/pkg/core/cache"
)

// Operation transforms input text. Args carries named parameters such as
// width=20 that override configured defaults.
type Operation func(input string, args Args) (string, error)

// Kind distinguishes built-in operations from user macros
type Kind int

const (
	KindBuiltin Kind = iota
	KindMacro
)

func (k Kind) String() string {
	if k == KindMacro {
		return "macro"
	}
	return "builtin"
}

// Definition describes a registered operation
type Definition struct {
	Name      string
	Summary   string
	Kind      Kind
	Template  string // Source template of a template macro
	Pure      bool   // Result depends only on input and args, so it may be cached
	Operation Operation
}

// Options configures a Registry
type Options struct {
	Logger              *log.Logger
	EnableAliases       bool
	EnableAbbreviations bool                 // Accept any unique prefix of a name
	Cache               *cache.Cache[string] // Memoizes results of pure operations; nil disables
}

// Registry maps operation names to operations. It is safe for concurrent use.
type Registry struct {
	ops     map[string]*Definition
	aliases map[string]string
	logger  *log.Logger
	mutex   sync.RWMutex
	options Options
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.Discard()
	}
	return &Registry{
		ops:     make(map[string]*Definition),
		aliases: make(map[string]string),
		logger:  opts.Logger.WithField("component", "registry"),
		options: opts,
	}
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Register adds a built-in operation
func (r *Registry) Register(def Definition) error {
	def.Kind = KindBuiltin
	return r.add(&def, false)
}

// RegisterMacro adds a user operation. Existing names, built-in or not,
// are refused; use ReplaceMacro to override one on purpose.
func (r *Registry) RegisterMacro(name, summary string, op Operation) error {
	return r.add(&Definition{Name: name, Summary: summary, Kind: KindMacro, Operation: op}, false)
}

// ReplaceMacro adds a user operation, replacing whatever had the name before
func (r *Registry) ReplaceMacro(name, summary string, op Operation) error {
	return r.add(&Definition{Name: name, Summary: summary, Kind: KindMacro, Operation: op}, true)
}

func (r *Registry) add(def *Definition, replace bool) error {
	name := normalize(def.Name)
	if stringx.IsBlank(name) {
		return errors.InvalidInput(errors.ModuleRegistry, "register", def.Name, "non-empty operation name")
	}
	if strings.ContainsAny(name, " \t,") {
		return errors.InvalidInput(errors.ModuleRegistry, "register", def.Name, "name without spaces or commas")
	}
	if def.Operation == nil {
		return errors.InvalidInput(errors.ModuleRegistry, "register", def.Name, "operation function")
	}
	def.Name = name

	r.mutex.Lock()
	defer r.mutex.Unlock()

	previous, exists := r.ops[name]
	if exists && !replace {
		return errors.Duplicate(errors.ModuleRegistry, "register", name).
			WithDetail("kind", previous.Kind.String())
	}
	r.ops[name] = def

	fields := log.Fields{"name": name, "kind": def.Kind.String()}
	if exists {
		fields["replaced"] = previous.Kind.String()
		r.logger.Info("operation replaced", fields)
	} else {
		r.logger.Debug("operation registered", fields)
	}
	return nil
}

// Unregister removes a macro. Built-ins cannot be removed.
func (r *Registry) Unregister(name string) error {
	name = normalize(name)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	def, exists := r.ops[name]
	if !exists {
		return errors.NotFound(errors.ModuleRegistry, "unregister", name)
	}
	if def.Kind == KindBuiltin {
		return errors.NewErrorBuilder(errors.ModuleRegistry).
			Operation("unregister").
			Messagef("built-in operation %s cannot be removed", name).
			Code(tkerror.CodeInvalidOperation).
			Detail("name", name).
			Build()
	}
	delete(r.ops, name)
	for alias, target := range r.aliases {
		if target == name {
			delete(r.aliases, alias)
		}
	}

	r.logger.Debug("operation removed", log.Fields{"name": name})
	return nil
}

// RegisterAlias makes alias another name for an existing operation
func (r *Registry) RegisterAlias(alias, name string) error {
	if !r.options.EnableAliases {
		return errors.NewErrorBuilder(errors.ModuleRegistry).
			Operation("alias").
			Message("aliases are disabled in this registry").
			Code(tkerror.CodeInvalidOperation).
			Build()
	}
	alias, name = normalize(alias), normalize(name)
	if stringx.IsBlank(alias) {
		return errors.InvalidInput(errors.ModuleRegistry, "alias", alias, "non-empty alias")
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.ops[name]; !exists {
		return errors.NotFound(errors.ModuleRegistry, "alias", name)
	}
	if _, exists := r.ops[alias]; exists {
		return errors.Duplicate(errors.ModuleRegistry, "alias", alias)
	}
	r.aliases[alias] = name

	r.logger.Debug("alias registered", log.Fields{"alias": alias, "name": name})
	return nil
}

// Has reports whether name or an alias of it is registered. Abbreviations
// are not considered.
func (r *Registry) Has(name string) bool {
	name = normalize(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[name]; ok {
		name = target
	}
	_, exists := r.ops[name]
	return exists
}

// Resolve maps a name, alias or abbreviation to the registered name
func (r *Registry) Resolve(name string) (string, error) {
	key := normalize(name)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	if target, ok := r.aliases[key]; ok {
		key = target
	}
	if _, ok := r.ops[key]; ok {
		return key, nil
	}

	if r.options.EnableAbbreviations && key != "" {
		var candidates []string
		for registered := range r.ops {
			if strings.HasPrefix(registered, key) {
				candidates = append(candidates, registered)
			}
		}
		switch len(candidates) {
		case 1:
			return candidates[0], nil
		case 0:
		default:
			sort.Strings(candidates)
			return "", errors.InvalidInput(errors.ModuleRegistry, "resolve", name, "unambiguous operation name").
				WithDetail("candidates", candidates)
		}
	}

	return "", errors.NotFound(errors.ModuleRegistry, "resolve", name)
}

// Get returns a copy of the definition registered under name
func (r *Registry) Get(name string) (Definition, error) {
	resolved, err := r.Resolve(name)
	if err != nil {
		return Definition{}, err
	}

	r.mutex.RLock()
	defer r.mutex.RUnlock()
	def, exists := r.ops[resolved]
	if !exists {
		return Definition{}, errors.NotFound(errors.ModuleRegistry, "get", name)
	}
	return *def, nil
}

// Names returns all operation names in sorted order
func (r *Registry) Names() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns copies of all definitions sorted by name
func (r *Registry) Definitions() []Definition {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	defs := make([]Definition, 0, len(r.ops))
	for _, def := range r.ops {
		defs = append(defs, *def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Aliases returns a copy of the alias table
func (r *Registry) Aliases() map[string]string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	result := make(map[string]string, len(r.aliases))
	for alias, name := range r.aliases {
		result[alias] = name
	}
	return result
}

// Call runs the operation registered under name
func (r *Registry) Call(name, input string, args Args) (string, error) {
	def, err := r.Get(name)
	if err != nil {
		return "", err
	}

	if def.Pure && r.options.Cache != nil {
		return r.options.Cache.GetOrSet(cache.Key(def.Name, input, args), func() (string, error) {
			return r.invoke(def, input, args)
		})
	}
	return r.invoke(def, input, args)
}

func (r *Registry) invoke(def Definition, input string, args Args) (string, error) {
	timer := r.logger.StartTimer("call " + def.Name).
		WithLevel(log.LevelTrace).
		WithField("inputLength", stringx.Length(input))
	out, err := def.Operation(input, args)
	timer.StopWithError(err)
	return out, err
}

// Chain runs the named operations in order, feeding each output into the
// next operation. All steps receive the same args.
func (r *Registry) Chain(names []string, input string, args Args) (string, error) {
	if len(names) == 0 {
		return "", errors.InvalidInput(errors.ModuleRegistry, "chain", names, "at least one operation")
	}

	out := input
	for i, name := range names {
		var err error
		out, err = r.Call(name, out, args)
		if err != nil {
			return "", errors.NewErrorBuilder(errors.ModuleRegistry).
				Operation("chain").
				Messagef("step %d (%s) failed", i+1, name).
				Cause(err).
				Code(tkerror.GetCode(err)).
				Detail("step", i+1).
				Detail("name", name).
				Build()
		}
	}
	return out, nil
}
