package adapter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dop251/goja"

	m "github.com/mouse-blink/modegen/internal/model"
)

// apiMethods are the members every generated object must expose.
var apiMethods = []string{"getMode", "getTheme", "setMode", "watchMode", "watchTheme"}

// ScriptRunner executes a generated script to prove it works before it is
// shipped.
type ScriptRunner interface {
	Smoke(script string, variableName string) (m.SmokeReport, error)
}

// GojaScriptRunner runs scripts inside a fresh Browser per call.
type GojaScriptRunner struct {
	options []BrowserOption
}

// NewGojaScriptRunner constructs a GojaScriptRunner. The options configure
// every Browser it creates.
func NewGojaScriptRunner(options ...BrowserOption) *GojaScriptRunner {
	return &GojaScriptRunner{options: options}
}

// Smoke runs script, checks the API object it installs and flips the mode
// to dark and light to make sure the theme follows.
func (r *GojaScriptRunner) Smoke(script string, variableName string) (m.SmokeReport, error) {
	browser := NewBrowser(r.options...)

	if err := browser.Run(script); err != nil {
		return m.SmokeReport{}, fmt.Errorf("running script: %w", err)
	}

	methods, err := browser.Members(variableName)
	if err != nil {
		return m.SmokeReport{}, err
	}

	for _, want := range apiMethods {
		if !contains(methods, want) {
			return m.SmokeReport{}, fmt.Errorf("window[%q] has no %s()", variableName, want)
		}
	}

	report := m.SmokeReport{VariableName: variableName, Methods: methods}

	if report.Mode, err = browser.CallString(variableName, "getMode"); err != nil {
		return m.SmokeReport{}, err
	}

	if report.Theme, err = browser.CallString(variableName, "getTheme"); err != nil {
		return m.SmokeReport{}, err
	}

	report.Cookie = browser.Cookie()
	report.Classes = browser.AllClasses()

	for _, mode := range []m.Mode{m.ModeDark, m.ModeLight} {
		if _, err := browser.Call(variableName, "setMode", string(mode)); err != nil {
			return m.SmokeReport{}, err
		}

		theme, err := browser.CallString(variableName, "getTheme")
		if err != nil {
			return m.SmokeReport{}, err
		}

		if theme != string(mode) {
			return m.SmokeReport{}, fmt.Errorf("setMode(%q) left theme %q", mode, theme)
		}
	}

	return report, nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}

	return false
}

// BrowserOption configures a Browser.
type BrowserOption func(*Browser)

// WithSystemDark sets the initial prefers-color-scheme: dark match state.
func WithSystemDark(dark bool) BrowserOption {
	return func(b *Browser) {
		b.dark = dark
	}
}

// WithCookie preloads a cookie.
func WithCookie(name, value string) BrowserOption {
	return func(b *Browser) {
		b.setCookie(name, value)
	}
}

// WithStorageItem preloads an entry of localStorage or sessionStorage.
func WithStorageItem(storage m.PersistType, key, value string) BrowserOption {
	return func(b *Browser) {
		b.storageFor(string(storage))[key] = value
	}
}

type cookie struct {
	name  string
	value string
}

// Browser is a minimal window/document environment on top of goja: a
// prefers-color-scheme media query, a cookie jar, Web Storage and element
// class lists.
type Browser struct {
	vm        *goja.Runtime
	dark      bool
	listeners []goja.Value
	cookies   []cookie
	storage   map[string]map[string]string
	classes   map[string]map[string]bool
}

// NewBrowser creates a Browser with the given options applied.
func NewBrowser(options ...BrowserOption) *Browser {
	b := &Browser{
		vm:      goja.New(),
		storage: make(map[string]map[string]string),
		classes: make(map[string]map[string]bool),
	}

	for _, opt := range options {
		opt(b)
	}

	b.install()

	return b
}

func (b *Browser) install() {
	vm := b.vm
	global := vm.GlobalObject()

	_ = vm.Set("window", global)
	_ = vm.Set("matchMedia", func(goja.FunctionCall) goja.Value {
		return b.mediaQueryList()
	})

	document := vm.NewObject()
	_ = document.DefineAccessorProperty("cookie",
		vm.ToValue(func(goja.FunctionCall) goja.Value {
			return vm.ToValue(b.Cookie())
		}),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			b.writeCookie(call.Argument(0).String())
			return goja.Undefined()
		}),
		goja.FLAG_TRUE, goja.FLAG_TRUE)
	_ = document.Set("querySelector", func(call goja.FunctionCall) goja.Value {
		return b.element(call.Argument(0).String())
	})
	_ = vm.Set("document", document)

	for _, name := range []m.PersistType{m.PersistLocalStorage, m.PersistSessionStorage} {
		_ = vm.Set(string(name), b.storageObject(string(name)))
	}
}

func (b *Browser) mediaQueryList() *goja.Object {
	vm := b.vm
	mql := vm.NewObject()

	_ = mql.DefineAccessorProperty("matches",
		vm.ToValue(func(goja.FunctionCall) goja.Value {
			return vm.ToValue(b.dark)
		}),
		nil, goja.FLAG_TRUE, goja.FLAG_TRUE)
	_ = mql.Set("addEventListener", func(call goja.FunctionCall) goja.Value {
		fn := call.Argument(1)
		if b.listenerIndex(fn) < 0 {
			b.listeners = append(b.listeners, fn)
		}

		return goja.Undefined()
	})
	_ = mql.Set("removeEventListener", func(call goja.FunctionCall) goja.Value {
		if i := b.listenerIndex(call.Argument(1)); i >= 0 {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
		}

		return goja.Undefined()
	})

	return mql
}

func (b *Browser) listenerIndex(fn goja.Value) int {
	for i, l := range b.listeners {
		if l.SameAs(fn) {
			return i
		}
	}

	return -1
}

func (b *Browser) element(selector string) *goja.Object {
	vm := b.vm
	set, ok := b.classes[selector]
	if !ok {
		set = make(map[string]bool)
		b.classes[selector] = set
	}

	classList := vm.NewObject()
	_ = classList.Set("add", func(call goja.FunctionCall) goja.Value {
		set[call.Argument(0).String()] = true
		return goja.Undefined()
	})
	_ = classList.Set("remove", func(call goja.FunctionCall) goja.Value {
		delete(set, call.Argument(0).String())
		return goja.Undefined()
	})
	_ = classList.Set("contains", func(call goja.FunctionCall) goja.Value {
		return vm.ToValue(set[call.Argument(0).String()])
	})

	el := vm.NewObject()
	_ = el.Set("classList", classList)

	return el
}

func (b *Browser) storageFor(name string) map[string]string {
	items, ok := b.storage[name]
	if !ok {
		items = make(map[string]string)
		b.storage[name] = items
	}

	return items
}

func (b *Browser) storageObject(name string) *goja.Object {
	vm := b.vm
	obj := vm.NewObject()

	_ = obj.Set("getItem", func(call goja.FunctionCall) goja.Value {
		value, ok := b.storageFor(name)[call.Argument(0).String()]
		if !ok {
			return goja.Null()
		}

		return vm.ToValue(value)
	})
	_ = obj.Set("setItem", func(call goja.FunctionCall) goja.Value {
		b.storageFor(name)[call.Argument(0).String()] = call.Argument(1).String()
		return goja.Undefined()
	})

	return obj
}

// writeCookie handles an assignment to document.cookie. Attributes after the
// first ';' are ignored.
func (b *Browser) writeCookie(assignment string) {
	pair, _, _ := strings.Cut(assignment, ";")

	name, value, ok := strings.Cut(pair, "=")
	if !ok {
		return
	}

	b.setCookie(strings.TrimSpace(name), value)
}

func (b *Browser) setCookie(name, value string) {
	for i := range b.cookies {
		if b.cookies[i].name == name {
			b.cookies[i].value = value
			return
		}
	}

	b.cookies = append(b.cookies, cookie{name: name, value: value})
}

// Run executes src in the global scope.
func (b *Browser) Run(src string) error {
	_, err := b.vm.RunString(src)
	return err
}

func (b *Browser) object(variableName string) (*goja.Object, error) {
	value := b.vm.GlobalObject().Get(variableName)
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, fmt.Errorf("window[%q] is not defined", variableName)
	}

	return value.ToObject(b.vm), nil
}

// Members returns the sorted property names of window[variableName].
func (b *Browser) Members(variableName string) ([]string, error) {
	obj, err := b.object(variableName)
	if err != nil {
		return nil, err
	}

	keys := obj.Keys()
	sort.Strings(keys)

	return keys, nil
}

// Call invokes window[variableName][method](args...) and exports the result.
func (b *Browser) Call(variableName, method string, args ...any) (any, error) {
	obj, err := b.object(variableName)
	if err != nil {
		return nil, err
	}

	fn, ok := goja.AssertFunction(obj.Get(method))
	if !ok {
		return nil, fmt.Errorf("window[%q].%s is not a function", variableName, method)
	}

	values := make([]goja.Value, len(args))
	for i, arg := range args {
		values[i] = b.vm.ToValue(arg)
	}

	result, err := fn(obj, values...)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	return result.Export(), nil
}

// CallString is Call for methods returning a string.
func (b *Browser) CallString(variableName, method string, args ...any) (string, error) {
	result, err := b.Call(variableName, method, args...)
	if err != nil {
		return "", err
	}

	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("%s returned %v, not a string", method, result)
	}

	return s, nil
}

// Subscription records the values delivered to a watchMode or watchTheme
// listener.
type Subscription struct {
	Values      []string
	unsubscribe goja.Callable
}

// Unsubscribe calls the function returned by the watch call.
func (s *Subscription) Unsubscribe() error {
	_, err := s.unsubscribe(goja.Undefined())
	return err
}

// Watch subscribes to window[variableName][method], which must be
// watchMode or watchTheme.
func (b *Browser) Watch(variableName, method string) (*Subscription, error) {
	obj, err := b.object(variableName)
	if err != nil {
		return nil, err
	}

	fn, ok := goja.AssertFunction(obj.Get(method))
	if !ok {
		return nil, fmt.Errorf("window[%q].%s is not a function", variableName, method)
	}

	sub := &Subscription{}
	listener := b.vm.ToValue(func(call goja.FunctionCall) goja.Value {
		sub.Values = append(sub.Values, call.Argument(0).String())
		return goja.Undefined()
	})

	result, err := fn(obj, listener)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}

	if sub.unsubscribe, ok = goja.AssertFunction(result); !ok {
		return nil, fmt.Errorf("%s did not return a function", method)
	}

	return sub, nil
}

// SetSystemDark changes the media query state and dispatches a change event.
func (b *Browser) SetSystemDark(dark bool) error {
	b.dark = dark

	event := b.vm.NewObject()
	_ = event.Set("matches", dark)

	for _, l := range append([]goja.Value(nil), b.listeners...) {
		fn, ok := goja.AssertFunction(l)
		if !ok {
			continue
		}

		if _, err := fn(goja.Undefined(), event); err != nil {
			return err
		}
	}

	return nil
}

// Listeners returns the number of registered media query listeners.
func (b *Browser) Listeners() int {
	return len(b.listeners)
}

// Cookie returns document.cookie.
func (b *Browser) Cookie() string {
	parts := make([]string, len(b.cookies))
	for i, c := range b.cookies {
		parts[i] = c.name + "=" + c.value
	}

	return strings.Join(parts, "; ")
}

// CookieValue returns the value of one cookie.
func (b *Browser) CookieValue(name string) (string, bool) {
	for _, c := range b.cookies {
		if c.name == name {
			return c.value, true
		}
	}

	return "", false
}

// StorageItem returns an entry of localStorage or sessionStorage.
func (b *Browser) StorageItem(storage m.PersistType, key string) (string, bool) {
	value, ok := b.storage[string(storage)][key]
	return value, ok
}

// Classes returns the sorted classes of the element matched by selector.
func (b *Browser) Classes(selector string) []string {
	classes := make([]string, 0, len(b.classes[selector]))
	for c := range b.classes[selector] {
		classes = append(classes, c)
	}

	sort.Strings(classes)

	return classes
}

// AllClasses returns "selector.class" for every class set on any element.
func (b *Browser) AllClasses() []string {
	var all []string

	for selector := range b.classes {
		for _, c := range b.Classes(selector) {
			all = append(all, selector+"."+c)
		}
	}

	sort.Strings(all)

	return all
}
