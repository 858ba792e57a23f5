package ws

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/tracking"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// manualSource hands each Run invocation to the test. A run blocks until
// its release channel closes, so feed lifetimes are fully scripted.
type manualSource struct {
	started chan *manualRun
}

type manualRun struct {
	ctx     context.Context
	emit    func(tracking.Status)
	release chan struct{}
}

func (s *manualSource) Run(ctx context.Context, tr *tracking.Tracker, onChange func(tracking.Status)) {
	r := &manualRun{ctx: ctx, emit: onChange, release: make(chan struct{})}
	s.started <- r
	<-r.release
}

func newTrackHubServer(t *testing.T, src tracking.StatusSource) (*TrackHub, *tracking.Registry, *httptest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	trackers := tracking.NewRegistry()
	hub := NewTrackHub(trackers, src)
	r := gin.New()
	r.GET("/ws/track", func(c *gin.Context) { c.Set("userId", uint(1)) }, hub.HandleWebSocket)
	return hub, trackers, httptest.NewServer(r)
}

func dialTrack(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/track"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	var snap StatusUpdate
	if err := conn.ReadJSON(&snap); err != nil {
		t.Fatalf("snapshot frame: %v", err)
	}
	return conn
}

func waitRun(t *testing.T, src *manualSource) *manualRun {
	t.Helper()
	select {
	case r := <-src.started:
		return r
	case <-time.After(time.Second):
		t.Fatal("status feed did not start")
		return nil
	}
}

func TestFeedStopsWhenLastSocketCloses(t *testing.T) {
	src := &manualSource{started: make(chan *manualRun, 2)}
	_, _, srv := newTrackHubServer(t, src)
	defer srv.Close()

	conn := dialTrack(t, srv)
	run := waitRun(t, src)

	conn.Close()
	select {
	case <-run.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("closing the last socket did not cancel the feed")
	}
	close(run.release)
}

func TestReconnectGetsItsOwnLiveFeed(t *testing.T) {
	src := &manualSource{started: make(chan *manualRun, 2)}
	_, _, srv := newTrackHubServer(t, src)
	defer srv.Close()

	conn1 := dialTrack(t, srv)
	run1 := waitRun(t, src)

	// close, wait for the hub to cancel the first feed, then reconnect
	conn1.Close()
	select {
	case <-run1.ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("first feed not cancelled")
	}

	conn2 := dialTrack(t, srv)
	defer conn2.Close()
	run2 := waitRun(t, src)

	// the first feed's goroutine finishes only now, after the reconnect;
	// its cleanup must leave the second feed alone
	close(run1.release)

	select {
	case <-run2.ctx.Done():
		t.Fatal("live feed for the open socket was cancelled by the finished feed's cleanup")
	case <-time.After(100 * time.Millisecond):
	}

	// the surviving feed still reaches the socket
	run2.emit(tracking.StatusPreparing)
	var upd StatusUpdate
	conn2.SetReadDeadline(time.Now().Add(time.Second))
	if err := conn2.ReadJSON(&upd); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if upd.Status != string(tracking.StatusPreparing) {
		t.Errorf("status = %q, want preparing", upd.Status)
	}
	close(run2.release)
}

func TestRestartBeginsFreshFeedForOpenSocket(t *testing.T) {
	src := &manualSource{started: make(chan *manualRun, 2)}
	hub, trackers, srv := newTrackHubServer(t, src)
	defer srv.Close()

	conn := dialTrack(t, srv)
	defer conn.Close()
	run1 := waitRun(t, src)

	// lifecycle completed while the socket stayed open
	trackers.Get(1).Set(tracking.StatusDelivered)
	close(run1.release)

	// a new order resets the tracker and restarts the feed
	trackers.Get(1).Reset()
	hub.Restart(1)
	run2 := waitRun(t, src)

	run2.emit(tracking.StatusPreparing)
	var upd StatusUpdate
	conn.SetReadDeadline(time.Now().Add(time.Second))
	if err := conn.ReadJSON(&upd); err != nil {
		t.Fatalf("read update: %v", err)
	}
	if upd.Status != string(tracking.StatusPreparing) {
		t.Errorf("status = %q, want preparing", upd.Status)
	}
	close(run2.release)
}
