package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"nhooyr.io/websocket"
)

func makeWSHandler(
	handler func(context.Context, *websocket.Conn, *http.Request),
) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			log.Printf("connect error: %v", err)
			return
		}
		log.Printf("connect: %s %s %s", r.URL.Path, r.RemoteAddr, c.Subprotocol())
		defer log.Printf("disconnect: %s", r.RemoteAddr)
		defer c.Close(websocket.StatusInternalError, "")
		handler(r.Context(), c, r)
	}
}

// watchWindow streams watchdog events for one window as JSON text
// frames until the peer goes away.
func (as *APIServer) watchWindow(ctx context.Context, c *websocket.Conn, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		c.Close(websocket.StatusUnsupportedData, "bad window id")
		return
	}

	events := make(chan xgb.Event, 64)
	watchdog := as.display.NewWatchdog(xproto.Window(id))
	err = watchdog.Start(
		[]byte{
			xproto.PropertyNotify,
			xproto.ConfigureNotify,
			xproto.MapNotify,
			xproto.UnmapNotify,
			xproto.DestroyNotify,
		},
		xproto.EventMaskStructureNotify|
			xproto.EventMaskSubstructureNotify|
			xproto.EventMaskPropertyChange,
		func(ev xgb.Event) {
			select {
			case events <- ev:
			default: // slow consumer; drop rather than stall the poller
			}
		},
	)
	if err != nil {
		c.Close(websocket.StatusInternalError, err.Error())
		return
	}
	defer watchdog.Stop()

	for {
		select {
		case <-ctx.Done():
			c.Close(websocket.StatusNormalClosure, "")
			return
		case ev := <-events:
			msg := fmt.Sprintf(`{"type":%q,"event":%q}`,
				fmt.Sprintf("%T", ev), ev.String())
			if err := c.Write(ctx, websocket.MessageText, []byte(msg)); err != nil {
				return
			}
		}
	}
}
