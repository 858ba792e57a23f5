package ws

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/pkg/tracking"
	"github.com/Khalidabdulkadir/Dhadhan-App-sub000/utils"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// TrackHub pushes delivery-status updates to connected tracking views.
// One status feed runs per user; every socket that user has open gets the
// same updates. When the last socket closes the feed is cancelled, so no
// simulation ticks on for a view nobody is watching.
type TrackHub struct {
	mu      sync.Mutex
	clients map[uint]map[*websocket.Conn]bool
	feeds   map[uint]*feed

	trackers *tracking.Registry
	source   tracking.StatusSource
}

// feed is one running status source. Feeds carry identity: a finished
// feed's cleanup must not touch a newer feed started by a reconnect.
type feed struct {
	cancel context.CancelFunc
}

// StatusUpdate is the frame written to clients.
type StatusUpdate struct {
	Status string `json:"status"`
}

func NewTrackHub(trackers *tracking.Registry, source tracking.StatusSource) *TrackHub {
	return &TrackHub{
		clients:  make(map[uint]map[*websocket.Conn]bool),
		feeds:    make(map[uint]*feed),
		trackers: trackers,
		source:   source,
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/track
func (h *TrackHub) HandleWebSocket(c *gin.Context) {
	userID := utils.CurrentUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	tr := h.trackers.Get(userID)

	h.register(userID, conn, tr)

	go h.listenClose(userID, conn)
}

func (h *TrackHub) register(userID uint, conn *websocket.Conn, tr *tracking.Tracker) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]bool)
	}
	h.clients[userID][conn] = true

	// snapshot so a reconnecting view renders the current step immediately;
	// written under the lock so it cannot interleave with a broadcast
	if err := conn.WriteJSON(StatusUpdate{Status: string(tr.Current())}); err != nil {
		delete(h.clients[userID], conn)
		conn.Close()
		return
	}

	// first socket for this user starts the feed
	h.startFeedLocked(userID, tr)
}

// startFeedLocked starts a status feed for the user unless one is already
// running or the lifecycle is over. Caller holds h.mu.
func (h *TrackHub) startFeedLocked(userID uint, tr *tracking.Tracker) {
	if _, running := h.feeds[userID]; running || tr.Current() == tracking.StatusDelivered {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	f := &feed{cancel: cancel}
	h.feeds[userID] = f
	go func() {
		h.source.Run(ctx, tr, func(st tracking.Status) {
			h.broadcast(userID, st)
		})
		h.mu.Lock()
		f.cancel()
		// a reconnect may have started a newer feed; only clear our own entry
		if h.feeds[userID] == f {
			delete(h.feeds, userID)
		}
		h.mu.Unlock()
	}()
}

// Restart drops any running feed and starts a fresh one for the user's
// open sockets. Called when a new order resets the tracker, so a tracking
// view that stayed connected through checkout keeps receiving updates.
func (h *TrackHub) Restart(userID uint) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.clients[userID]) == 0 {
		return
	}
	if f, ok := h.feeds[userID]; ok {
		f.cancel()
		delete(h.feeds, userID)
	}
	h.startFeedLocked(userID, h.trackers.Get(userID))
}

func (h *TrackHub) unregister(userID uint, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[userID][conn]; ok {
		delete(h.clients[userID], conn)
		conn.Close()
	}
	// last view gone: stop the feed instead of leaking the timer
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
		if f, ok := h.feeds[userID]; ok {
			f.cancel()
			delete(h.feeds, userID)
		}
	}
}

func (h *TrackHub) broadcast(userID uint, st tracking.Status) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients[userID] {
		if err := conn.WriteJSON(StatusUpdate{Status: string(st)}); err != nil {
			log.Printf("ws write error: %v", err)
			conn.Close()
			delete(h.clients[userID], conn)
		}
	}
}

// listenClose drains the socket until the peer goes away.
func (h *TrackHub) listenClose(userID uint, conn *websocket.Conn) {
	defer h.unregister(userID, conn)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
