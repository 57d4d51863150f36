package domain

import (
	"fmt"

	"github.com/mouse-blink/modegen/internal/domain/codegen"
	m "github.com/mouse-blink/modegen/internal/model"
)

// sanitizer clamps any value to light or dark, falling back to system.
func (s *modeScript) sanitizer() *codegen.Fragment {
	v := s.root.Child().Identifier()

	body := codegen.NewFragment(func() string {
		return fmt.Sprintf("return %s==%s||%s==%s?%s:%s", v, s.light, v, s.dark, v, s.system)
	}, v)

	return active(function(s.sanitize, body))
}

// themeSetter stores the effective theme, notifies theme listeners and, when
// markup is managed, toggles the configured classes.
func (s *modeScript) themeSetter() *codegen.Fragment {
	scope := s.root.Child()
	v := scope.Identifier()
	notify := callback(scope, s.theme)
	dom := s.domMutation(scope)

	body := codegen.NewFragment(func() string {
		code := fmt.Sprintf("%s=%s;%s.forEach(%s)", s.theme, v, s.themeListeners, notify.Render())
		if dom.Active() {
			code += ";" + dom.Render()
		}

		return code
	}, v).Inline(dom).Nest(notify)

	return active(function(s.setTheme, body))
}

// domMutation toggles the dark and light classes on the selected element.
// Its class list local is declared as an extra parameter of the enclosing
// function.
func (s *modeScript) domMutation(scope *codegen.Scope) *codegen.Fragment {
	list := scope.Identifier()

	dom := codegen.NewFragment(func() string {
		code := fmt.Sprintf("%s=document.querySelector(%s).classList;", list, s.selector) +
			toggle(list, s.theme, s.dark, s.darkClass)
		if s.lightClass != nil {
			code += ";" + toggle(list, s.theme, s.light, s.lightClass)
		}

		return code
	}, list)
	dom.ActivateIf(!s.cfg.Apply.Custom)
	s.track("dom", dom)

	return dom
}

func toggle(list, theme, want, class *codegen.Identifier) string {
	return fmt.Sprintf("if(%s==%s)%s.add(%s);else %s.remove(%s)", theme, want, list, class, list, class)
}

// saveFunction writes the current mode to the configured backend. Exactly
// one backend variant is activated.
func (s *modeScript) saveFunction() *codegen.Fragment {
	persist := s.cfg.Persist

	systemTheme := codegen.NewFragment(func() string {
		return fmt.Sprintf("document.cookie=%s+(%s.matches?%s:%s)+%s", s.systemKey, s.query, s.dark, s.light, s.suffix)
	})
	systemTheme.ActivateIf(!persist.Custom && persist.Type == m.PersistCookie && persist.CookieSystemThemeKey != nil)

	cookie := codegen.NewFragment(func() string {
		code := fmt.Sprintf("document.cookie=%s+%s+%s", s.key, s.mode, s.suffix)
		if systemTheme.Active() {
			code += ";" + systemTheme.Render()
		}

		return code
	}).Inline(systemTheme)
	cookie.ActivateIf(!persist.Custom && persist.Type == m.PersistCookie)

	storage := codegen.NewFragment(func() string {
		return fmt.Sprintf("%s.setItem(%s,%s)", persist.Type, s.key, s.mode)
	})
	storage.ActivateIf(!persist.Custom && persist.Type.IsStorage())

	body := codegen.NewFragment(func() string {
		return codegen.Join(";", cookie, storage)
	}).Inline(cookie, storage)

	fn := function(s.save, body)
	fn.ActivateIf(!persist.Custom)

	s.track("save", fn)
	s.track("save.cookie", cookie)
	s.track("save.cookieSystemTheme", systemTheme)
	s.track("save.storage", storage)

	return fn
}

// modeSetter stores the sanitized mode, notifies mode listeners, follows the
// media query while the mode is system and persists the result.
func (s *modeScript) modeSetter() *codegen.Fragment {
	scope := s.root.Child()
	v := scope.Identifier()
	notify := callback(scope, s.mode)

	body := codegen.NewFragment(func() string {
		code := fmt.Sprintf("%s=%s(%s);%s.forEach(%s);", s.mode, s.sanitize, v, s.modeListeners, notify.Render()) +
			fmt.Sprintf("if(%s)%s.removeEventListener(%s,%s);%s=0;", s.handler, s.query, s.change, s.handler, s.handler) +
			fmt.Sprintf("if(%s==%s){%s=%s;%s.addEventListener(%s,%s);%s(%s.matches?%s:%s)}else %s(%s)",
				s.mode, s.system, s.handler, s.onChange, s.query, s.change, s.handler,
				s.setTheme, s.query, s.dark, s.light, s.setTheme, s.mode)
		if s.saveFn.Active() {
			code += fmt.Sprintf(";%s()", s.save)
		}

		return code
	}, v).Nest(notify)

	return active(function(s.setMode, body))
}

// changeHandler re-derives the theme from a media query change event.
func (s *modeScript) changeHandler() *codegen.Fragment {
	e := s.root.Child().Identifier()

	body := codegen.NewFragment(func() string {
		return fmt.Sprintf("%s([%s,%s][+%s.matches])", s.setTheme, s.light, s.dark, e)
	}, e)

	return active(function(s.onChange, body))
}

// initializer applies the persisted (or default) mode and, with persistence
// enabled, saves again whenever the system theme changes.
func (s *modeScript) initializer() *codegen.Fragment {
	persist := s.cfg.Persist

	fallback := ""
	if s.cfg.DefaultMode != m.ModeSystem {
		fallback = "||" + codegen.Quote(string(s.cfg.DefaultMode))
	}

	scope := s.root.Child()
	cookies, i := scope.Identifier(), scope.Identifier()

	cookieLoad := codegen.NewFragment(func() string {
		scan := codegen.Func{
			Params: []string{cookies.Resolve(), i.Resolve()},
			Body: []codegen.Node{codegen.Raw(fmt.Sprintf(
				"for(;%s<%s.length;%s++)if(!%s[%s].indexOf(%s))return %s[%s].substring(%s.length)",
				i, cookies, i, cookies, i, s.key, cookies, i, s.key))},
		}

		return "(" + codegen.Render(scan) + ")(document.cookie.split('; '),0)" + fallback
	}, cookies, i)
	cookieLoad.ActivateIf(!persist.Custom && persist.Type == m.PersistCookie)

	storageLoad := codegen.NewFragment(func() string {
		return fmt.Sprintf("%s.getItem(%s)", persist.Type, s.key) + fallback
	})
	storageLoad.ActivateIf(!persist.Custom && persist.Type.IsStorage())

	s.track("load.cookie", cookieLoad)
	s.track("load.storage", storageLoad)

	return active(codegen.NewFragment(func() string {
		load := codegen.Join("", cookieLoad, storageLoad)
		if load == "" {
			load = codegen.Quote(string(s.cfg.DefaultMode))
		}

		code := fmt.Sprintf("%s(%s);", s.setMode, load)
		if s.saveFn.Active() {
			code += fmt.Sprintf("%s.addEventListener(%s,%s);", s.query, s.change, s.save)
		}

		return code
	}).Inline(storageLoad).Nest(cookieLoad))
}

// api returns the public object.
func (s *modeScript) api() *codegen.Fragment {
	watchMode := s.watcher(s.modeListeners, s.mode)
	watchTheme := s.watcher(s.themeListeners, s.theme)

	return active(codegen.NewFragment(func() string {
		return fmt.Sprintf("return{getMode:function(){return %s},getTheme:function(){return %s},setMode:%s,watchMode:%s,watchTheme:%s}",
			s.mode, s.theme, s.setMode, watchMode.Render(), watchTheme.Render())
	}).Nest(watchMode, watchTheme))
}

// watcher subscribes a listener to list, delivers current immediately and
// returns a function removing that subscription.
func (s *modeScript) watcher(list, current *codegen.Identifier) *codegen.Fragment {
	scope := s.root.Child()
	listener, wrapped := scope.Identifier(), scope.Identifier()

	arg := scope.Child().Identifier()
	wrap := active(codegen.NewFragment(func() string {
		return codegen.Render(codegen.Func{
			Params: []string{arg.Resolve()},
			Body:   []codegen.Node{codegen.Raw(fmt.Sprintf("%s(%s)", listener, arg))},
		})
	}, arg))

	index := scope.Child().Identifier()
	unsubscribe := active(codegen.NewFragment(func() string {
		return codegen.Render(codegen.Func{
			Params: []string{index.Resolve()},
			Body: []codegen.Node{codegen.Raw(fmt.Sprintf("%s=%s.indexOf(%s);%s>=0&&%s.splice(%s,1)",
				index, list, wrapped, index, list, index))},
		})
	}, index))

	return active(codegen.NewFragment(func() string {
		return codegen.Render(codegen.Func{
			Params: []string{listener.Resolve(), wrapped.Resolve()},
			Body: []codegen.Node{codegen.Raw(fmt.Sprintf("%s=%s;%s(%s);%s.push(%s);return %s",
				wrapped, wrap.Render(), wrapped, current, list, wrapped, unsubscribe.Render()))},
		})
	}, listener, wrapped).Nest(wrap, unsubscribe))
}
