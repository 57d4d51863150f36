package domain

import (
	"fmt"
	"strings"

	"github.com/mouse-blink/modegen/internal/domain/codegen"
	m "github.com/mouse-blink/modegen/internal/model"
)

const (
	mediaQueryExpr = "window.matchMedia('(prefers-color-scheme: dark)')"
	cookieSuffix   = "; path=/"
)

// Assembler builds the theme-mode script for a validated configuration.
type Assembler interface {
	Assemble(cfg m.Config) m.Script
}

type assembler struct{}

// NewAssembler creates an Assembler. Each Assemble call builds its own scope
// and fragment graph, so one Assembler may be shared between goroutines.
func NewAssembler() Assembler {
	return &assembler{}
}

func (a *assembler) Assemble(cfg m.Config) m.Script {
	s := newModeScript(cfg)

	s.program.Activate()
	s.program.Prepare()

	text := s.program.Render()

	bindings := s.captures.Bindings()
	script := m.Script{
		Text:      text,
		Bindings:  make([]m.Binding, 0, len(bindings)),
		Fragments: make([]m.FragmentInfo, 0, len(s.labels)),
	}

	for _, b := range bindings {
		script.Bindings = append(script.Bindings, m.Binding{Name: b.Ident.Resolve(), Expr: b.Expr})
	}

	for _, l := range s.labels {
		script.Fragments = append(script.Fragments, m.FragmentInfo{Name: l.name, State: l.fragment.State().String()})
	}

	return script
}

type label struct {
	name     string
	fragment *codegen.Fragment
}

// modeScript is the fragment graph of one generated script.
type modeScript struct {
	cfg      m.Config
	root     *codegen.Scope
	captures *codegen.Captures
	labels   []label

	// Captured free variables.
	query          *codegen.Identifier
	modeListeners  *codegen.Identifier
	themeListeners *codegen.Identifier
	light          *codegen.Identifier
	dark           *codegen.Identifier
	system         *codegen.Identifier
	change         *codegen.Identifier
	key            *codegen.Identifier
	suffix         *codegen.Identifier
	systemKey      *codegen.Identifier
	selector       *codegen.Identifier
	darkClass      *codegen.Identifier
	lightClass     *codegen.Identifier

	// Names declared in the wrapper body.
	mode     *codegen.Identifier
	theme    *codegen.Identifier
	handler  *codegen.Identifier
	sanitize *codegen.Identifier
	setTheme *codegen.Identifier
	save     *codegen.Identifier
	setMode  *codegen.Identifier
	onChange *codegen.Identifier

	saveFn  *codegen.Fragment
	program *codegen.Fragment
}

func newModeScript(cfg m.Config) *modeScript {
	root := codegen.NewScope(nil)
	s := &modeScript{
		cfg:      cfg,
		root:     root,
		captures: codegen.NewCaptures(root),
	}

	s.captureFreeVariables()

	s.mode, s.theme, s.handler = root.Identifier(), root.Identifier(), root.Identifier()
	s.sanitize = root.Identifier()
	s.setTheme = root.Identifier()
	s.save = root.Identifier()
	s.setMode = root.Identifier()
	s.onChange = root.Identifier()

	state := active(codegen.NewFragment(func() string {
		return fmt.Sprintf("var %s,%s,%s;", s.mode, s.theme, s.handler)
	}, s.mode, s.theme, s.handler))

	s.saveFn = s.saveFunction()

	body := []*codegen.Fragment{
		state,
		s.sanitizer(),
		s.themeSetter(),
		s.saveFn,
		s.modeSetter(),
		s.changeHandler(),
		s.initializer(),
		s.api(),
	}

	s.program = codegen.NewFragment(func() string {
		wrapper := codegen.Func{
			Params: s.captures.Params(),
			Body:   []codegen.Node{codegen.Raw(codegen.Join("", body...))},
		}

		return codegen.Render(
			codegen.Raw(";window["+codegen.Quote(cfg.VariableName)+"]=("),
			wrapper,
			codegen.Raw(")("+strings.Join(s.captures.Args(), ",")+");"),
		)
	}, s.captures.Identifiers()...).Inline(body...)

	return s
}

func (s *modeScript) captureFreeVariables() {
	c := s.captures

	s.query = c.Value(mediaQueryExpr)
	s.modeListeners = c.Value("[]")
	s.themeListeners = c.Value("[]")
	s.light = c.Quoted(string(m.ModeLight))
	s.dark = c.Quoted(string(m.ModeDark))
	s.system = c.Quoted(string(m.ModeSystem))
	s.change = c.Quoted("change")

	if persist := s.cfg.Persist; !persist.Custom {
		if persist.Type.IsStorage() {
			s.key = c.Quoted(persist.Key)
		} else {
			s.key = c.Quoted(persist.Key + "=")
			s.suffix = c.Quoted(cookieSuffix)

			if persist.CookieSystemThemeKey != nil {
				s.systemKey = c.Quoted(*persist.CookieSystemThemeKey + "=")
			}
		}
	}

	if apply := s.cfg.Apply; !apply.Custom {
		s.selector = c.Quoted(apply.QuerySelector)
		s.darkClass = c.Quoted(apply.DarkClassName)

		if apply.LightClassName != nil {
			s.lightClass = c.Quoted(*apply.LightClassName)
		}
	}
}

func (s *modeScript) track(name string, f *codegen.Fragment) {
	s.labels = append(s.labels, label{name: name, fragment: f})
}

func active(f *codegen.Fragment) *codegen.Fragment {
	f.Activate()
	return f
}

// function declares a named function whose name lives in the wrapper scope
// and whose parameters are the identifiers declared by body.
func function(name *codegen.Identifier, body *codegen.Fragment) *codegen.Fragment {
	return codegen.NewFragment(func() string {
		return codegen.Render(codegen.Func{
			Name:   name.Resolve(),
			Params: body.Declared(),
			Body:   []codegen.Node{codegen.Raw(body.Render())},
		})
	}, name).Nest(active(body))
}

// callback renders an anonymous function passing its single argument to
// each listener: function(f){f(value)}.
func callback(scope *codegen.Scope, value *codegen.Identifier) *codegen.Fragment {
	fn := scope.Child().Identifier()

	return active(codegen.NewFragment(func() string {
		return codegen.Render(codegen.Func{
			Params: []string{fn.Resolve()},
			Body:   []codegen.Node{codegen.Raw(fmt.Sprintf("%s(%s)", fn, value))},
		})
	}, fn))
}
