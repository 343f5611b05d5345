package keymap

import "github.com/samber/lo"

// Resolver maps key strings to actions, per binding context.
type Resolver struct {
	contexts []string                     // in binding order
	byKey    map[string]map[string]Action // context -> key -> action
	byAction map[Action][]string
}

// NewResolver indexes bindings. Within a context the first binding of a key wins.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		byKey:    make(map[string]map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		keys, ok := r.byKey[b.Context]
		if !ok {
			keys = make(map[string]Action)
			r.byKey[b.Context] = keys
			r.contexts = append(r.contexts, b.Context)
		}
		for _, key := range b.Keys {
			if _, taken := keys[key]; !taken {
				keys[key] = b.Action
			}
		}
		r.byAction[b.Action] = lo.Uniq(append(r.byAction[b.Action], b.Keys...))
	}
	return r
}

// Resolve returns the action bound to key in the first of contexts that binds
// it. Without contexts every context is searched in binding order. Unbound
// keys resolve to "".
func (r *Resolver) Resolve(key string, contexts ...string) Action {
	if len(contexts) == 0 {
		contexts = r.contexts
	}
	for _, c := range contexts {
		if action, ok := r.byKey[c][key]; ok {
			return action
		}
	}
	return ""
}

// KeysFor returns every key bound to action, across contexts.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}
