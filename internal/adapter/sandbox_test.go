package adapter

import (
	"testing"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a hand-written stand-in for a generated snippet.
const fakeAPI = `window.api=(function(){
	var mode='system',theme=matchMedia('x').matches?'dark':'light';
	document.querySelector('html').classList.add(theme);
	document.cookie='seen=1; path=/';
	return{
		getMode:function(){return mode},
		getTheme:function(){return theme},
		setMode:function(v){mode=v;theme=v},
		watchMode:function(f){f(mode);return function(){}},
		watchTheme:function(f){f(theme);return function(){}}
	}
})();`

func TestBrowser_CookieJar(t *testing.T) {
	t.Parallel()

	b := NewBrowser(WithCookie("a", "1"))
	require.NoError(t, b.Run(`document.cookie='b=2; path=/';document.cookie='a=3'`))

	assert.Equal(t, "a=3; b=2", b.Cookie())

	value, ok := b.CookieValue("b")
	require.True(t, ok)
	assert.Equal(t, "2", value)

	require.NoError(t, b.Run(`if(document.cookie!=='a=3; b=2')throw new Error(document.cookie)`))
}

func TestBrowser_Storage(t *testing.T) {
	t.Parallel()

	b := NewBrowser(WithStorageItem(m.PersistLocalStorage, "k", "v"))
	require.NoError(t, b.Run(`sessionStorage.setItem('s',localStorage.getItem('k')+localStorage.getItem('missing'))`))

	value, ok := b.StorageItem(m.PersistSessionStorage, "s")
	require.True(t, ok)
	assert.Equal(t, "vnull", value)
}

func TestBrowser_MediaQueryListeners(t *testing.T) {
	t.Parallel()

	b := NewBrowser()
	require.NoError(t, b.Run(`
		var q=window.matchMedia('(prefers-color-scheme: dark)'),seen=[];
		function h(e){seen.push(e.matches+':'+q.matches)}
		q.addEventListener('change',h);
		q.addEventListener('change',h);
	`))
	assert.Equal(t, 1, b.Listeners())

	require.NoError(t, b.SetSystemDark(true))
	require.NoError(t, b.Run(`q.removeEventListener('change',h)`))
	assert.Equal(t, 0, b.Listeners())

	require.NoError(t, b.Run(`if(seen.join()!=='true:true')throw new Error(seen.join())`))
}

func TestBrowser_Classes(t *testing.T) {
	t.Parallel()

	b := NewBrowser()
	require.NoError(t, b.Run(`
		var l=document.querySelector('body').classList;
		l.add('x');l.add('y');l.remove('x');
		if(!document.querySelector('body').classList.contains('y'))throw new Error('lost class');
	`))

	assert.Equal(t, []string{"y"}, b.Classes("body"))
	assert.Equal(t, []string{"body.y"}, b.AllClasses())
}

func TestBrowser_CallErrors(t *testing.T) {
	t.Parallel()

	b := NewBrowser()
	require.NoError(t, b.Run(`window.o={n:1}`))

	_, err := b.Call("missing", "x")
	assert.Error(t, err)

	_, err = b.Call("o", "n")
	assert.Error(t, err)

	assert.Error(t, b.Run(`throw new Error('boom')`))
}

func TestGojaScriptRunner_Smoke(t *testing.T) {
	t.Parallel()

	report, err := NewGojaScriptRunner(WithSystemDark(true)).Smoke(fakeAPI, "api")
	require.NoError(t, err)

	assert.Equal(t, "api", report.VariableName)
	assert.Equal(t, []string{"getMode", "getTheme", "setMode", "watchMode", "watchTheme"}, report.Methods)
	assert.Equal(t, "system", report.Mode)
	assert.Equal(t, "dark", report.Theme)
	assert.Equal(t, "seen=1", report.Cookie)
	assert.Equal(t, []string{"html.dark"}, report.Classes)
}

func TestGojaScriptRunner_SmokeFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		script string
	}{
		{"syntax error", `window.api=(`},
		{"no object", `var x=1`},
		{"missing method", `window.api={getMode:function(){return 'system'}}`},
		{"theme ignores mode", `window.api={getMode:function(){return 'system'},getTheme:function(){return 'light'},setMode:function(){},watchMode:function(){},watchTheme:function(){}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGojaScriptRunner().Smoke(tt.script, "api")
			assert.Error(t, err)
		})
	}
}
