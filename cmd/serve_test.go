package cmd

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	m "github.com/mouse-blink/modegen/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCmd_BuildsRouter(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)
	mockWorkflow.On("ScriptFor", m.Path("site.json")).Return(m.Script{Text: ";window['m']=1;"}, nil)

	original := serveHTTP
	t.Cleanup(func() { serveHTTP = original })

	var gotAddr string
	serveHTTP = func(_ context.Context, addr string, handler http.Handler) error {
		gotAddr = addr

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/mode.js", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ";window['m']=1;", rec.Body.String())

		return nil
	}

	cmd := newTestRootCmd(newServeCmd())
	cmd.SetArgs([]string{"serve", "-c", "site.json", "--addr", ":9999", "--rate", "0"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, ":9999", gotAddr)
	mockWorkflow.AssertExpectations(t)
}

func TestServeCmd_Defaults(t *testing.T) {
	cmd := newServeCmd()

	assert.Equal(t, "127.0.0.1:8080", cmd.Flags().Lookup("addr").DefValue)
	assert.Equal(t, "5", cmd.Flags().Lookup("rate").DefValue)
	assert.Equal(t, "10", cmd.Flags().Lookup("burst").DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("allow-origin"))
}

func freeAddr(t *testing.T) string {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	return addr
}

func TestListenAndServe_ShutsDownOnCancel(t *testing.T) {
	addr := freeAddr(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- listenAndServe(ctx, addr, handler) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return string(body) == "ok"
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not stop")
	}
}

func TestListenAndServe_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	err = listenAndServe(context.Background(), l.Addr().String(), http.NotFoundHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serve:")
}
