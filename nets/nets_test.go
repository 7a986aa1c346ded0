package nets

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		ctx := t.Context()
		for _, addr := range []string{
			"127.0.0.1:10000",
			"[::1]:80",
			"10.0.0.1",
			"192.168.1.1:8080",
		} {
			if !isLocalAddr(ctx, addr) {
				t.Fatalf("%s should be local", addr)
			}
		}
		for _, addr := range []string{
			"8.8.8.8:53",
			"no-such-host.invalid:80",
		} {
			if isLocalAddr(ctx, addr) {
				t.Fatalf("%s should not be local", addr)
			}
		}
	})
}

func TestGetProxyURL(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() ProxyAddr {
			return "socks://127.0.0.1:1080"
		},
	).Call(func(
		getURL GetProxyURL,
		getDialer GetProxyDialer,
	) {
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u.String() != "socks5://127.0.0.1:1080" {
			t.Fatalf("got %v", u)
		}
		if _, err := getDialer(); err != nil {
			t.Fatal(err)
		}
	})
}

func TestNoProxyInDevelopment(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil {
			t.Fatal(err)
		}
		if u != nil {
			t.Fatalf("got %v", u)
		}
	})
}

func TestHTTPClientLocal(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, "+++.")
		}),
	}
	go server.Serve(ln)
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		// unreachable proxy, local addresses must bypass it
		func() ProxyAddr {
			return "socks5://127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
	) {
		req, err := http.NewRequestWithContext(context.Background(), "GET", "http://"+ln.Addr().String(), nil)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "+++." {
			t.Fatalf("got %q", body)
		}
	})
}
