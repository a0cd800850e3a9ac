package engine

import (
	"fmt"
	"sort"
)

// ComponentFactory creates a Component from props decoded out of a scene
// file or config. Unknown props are ignored.
type ComponentFactory func(props map[string]any) Component

// ComponentSerializer converts a Component back to props. It returns nil
// for components it does not own.
type ComponentSerializer func(c Component) map[string]any

// PropertyApplier applies a single property value to a component.
// Returns true if the property was applied successfully.
type PropertyApplier func(c Component, propName string, value any) bool

type componentEntry struct {
	factory    ComponentFactory
	serializer ComponentSerializer
	applier    PropertyApplier
}

var componentRegistry = map[string]componentEntry{}

// RegisterComponent registers a named component. The serializer and applier
// may be nil. Registering the same name twice panics.
func RegisterComponent(name string, factory ComponentFactory, serializer ComponentSerializer, applier PropertyApplier) {
	if _, exists := componentRegistry[name]; exists {
		panic(fmt.Sprintf("component %q already registered", name))
	}
	componentRegistry[name] = componentEntry{factory: factory, serializer: serializer, applier: applier}
}

// CreateComponent looks up a registered component by name and creates it with the given props.
func CreateComponent(name string, props map[string]any) (Component, error) {
	entry, ok := componentRegistry[name]
	if !ok {
		return nil, fmt.Errorf("unknown component %q", name)
	}
	if props == nil {
		props = map[string]any{}
	}
	return entry.factory(props), nil
}

// SerializeComponent finds the registered serializer that owns c.
// Returns (name, props, true) if found, ("", nil, false) otherwise.
func SerializeComponent(c Component) (string, map[string]any, bool) {
	for _, name := range RegisteredComponents() {
		entry := componentRegistry[name]
		if entry.serializer == nil {
			continue
		}
		if props := entry.serializer(c); props != nil {
			return name, props, true
		}
	}
	return "", nil, false
}

// RegisteredComponents returns a sorted list of all registered component names.
func RegisteredComponents() []string {
	names := make([]string, 0, len(componentRegistry))
	for name := range componentRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyProperty applies a property value to a component through the first
// applier that accepts it.
func ApplyProperty(c Component, propName string, value any) bool {
	for _, name := range RegisteredComponents() {
		entry := componentRegistry[name]
		if entry.applier == nil {
			continue
		}
		if entry.applier(c, propName, value) {
			return true
		}
	}
	return false
}

// ApplyProperties applies every entry of props and returns the names that
// no applier accepted.
func ApplyProperties(c Component, props map[string]any) []string {
	var rejected []string
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if !ApplyProperty(c, k, props[k]) {
			rejected = append(rejected, k)
		}
	}
	return rejected
}
