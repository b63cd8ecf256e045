package ipc

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/odvcencio/browserd/pkg/session"
)

// startServer serves the service on a loopback listener and returns a
// connected client.
func startServer(t *testing.T, eng *fakeEngine) *grpc.ClientConn {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	server := NewGRPCServer(session.NewRegistry(eng, nil), nil)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.GracefulStop)

	conn, err := grpc.NewClient(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestServerHealthRoundTrip(t *testing.T) {
	conn := startServer(t, &fakeEngine{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var resp StringResponse
	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/Health", &emptypb.Empty{}, &resp); err != nil {
		t.Fatalf("Health: %v", err)
	}
	if resp.Body != "OK" {
		t.Errorf("Health = %q, want OK", resp.Body)
	}
}

func TestServerSessionLifecycleRoundTrip(t *testing.T) {
	conn := startServer(t, &fakeEngine{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var ack Ack
	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/OpenBrowser",
		&OpenBrowserRequest{Browser: "chrome"}, &ack); err != nil {
		t.Fatalf("OpenBrowser: %v", err)
	}

	var url StringResponse
	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/GetUrl", &emptypb.Empty{}, &url); err != nil {
		t.Fatalf("GetUrl: %v", err)
	}
	if url.Body != "about:blank" {
		t.Errorf("GetUrl = %q, want about:blank", url.Body)
	}

	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/GoTo",
		&URLRequest{URL: "https://example.com"}, &ack); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/GetUrl", &emptypb.Empty{}, &url); err != nil {
		t.Fatalf("GetUrl: %v", err)
	}
	if url.Body != "https://example.com" {
		t.Errorf("GetUrl = %q, want https://example.com", url.Body)
	}

	if err := conn.Invoke(ctx, "/browserd.v1.BrowserService/CloseBrowser", &emptypb.Empty{}, &ack); err != nil {
		t.Fatalf("CloseBrowser: %v", err)
	}
	if ack.Log != "Closed browser" {
		t.Errorf("CloseBrowser log = %q", ack.Log)
	}
}

func TestServerStatusCodesOverWire(t *testing.T) {
	conn := startServer(t, &fakeEngine{})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	t.Run("no session is FailedPrecondition", func(t *testing.T) {
		var ack Ack
		err := conn.Invoke(ctx, "/browserd.v1.BrowserService/ClickButton",
			&SelectorRequest{Selector: "button"}, &ack)
		if got := status.Code(err); got != codes.FailedPrecondition {
			t.Errorf("code = %v, want FailedPrecondition (err: %v)", got, err)
		}
		if msg := status.Convert(err).Message(); msg != "Tried to click button, no open browser" {
			t.Errorf("message = %q", msg)
		}
	})

	t.Run("unsupported kind is InvalidArgument", func(t *testing.T) {
		var ack Ack
		err := conn.Invoke(ctx, "/browserd.v1.BrowserService/OpenBrowser",
			&OpenBrowserRequest{Browser: "netscape"}, &ack)
		if got := status.Code(err); got != codes.InvalidArgument {
			t.Errorf("code = %v, want InvalidArgument (err: %v)", got, err)
		}
	})
}
