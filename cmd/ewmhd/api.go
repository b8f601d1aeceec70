package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/intio/ewmh"
)

type APIServer struct {
	server  *http.Server
	display *ewmh.Display
	root    *ewmh.Root
}

func jsonResponse(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	log.Printf("%d %s", status, r.URL.Path)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	e := json.NewEncoder(w)
	e.Encode(data)
}

// windowItem is the JSON shape of one client window.
type windowItem struct {
	ID      uint32   `json:"id"`
	Name    string   `json:"name"`
	Desktop *uint32  `json:"desktop,omitempty"`
	Pid     *uint32  `json:"pid,omitempty"`
	States  []string `json:"states,omitempty"`
	Types   []string `json:"types,omitempty"`
	Actions []string `json:"actions,omitempty"`
	Active  bool     `json:"active"`
}

func (as *APIServer) windowItem(id xproto.Window, detailed bool) windowItem {
	win := as.display.Window(id)
	item := windowItem{ID: uint32(id)}
	item.Name, _ = win.Name()
	if d, ok, _ := win.Desktop(); ok {
		item.Desktop = &d
	}
	if p, ok, _ := win.Pid(); ok {
		item.Pid = &p
	}
	item.States, _ = win.StateNames()
	if active, ok, _ := as.root.ActiveWindow(); ok {
		item.Active = active == id
	}
	if detailed {
		item.Types, _ = win.Types()
		item.Actions, _ = win.AllowedActions()
	}
	return item
}

func NewAPIServer(display *ewmh.Display, listenAddr string) (as *APIServer) {
	router := mux.NewRouter()
	server := &http.Server{
		Addr:           listenAddr,
		Handler:        router,
		ReadTimeout:    1 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 16,
	}
	as = &APIServer{
		server:  server,
		display: display,
		root:    display.RootWindow(),
	}

	router.HandleFunc("/displays/", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, r, 200,
			map[string]interface{}{
				"items": ewmh.EnumerateDisplays(),
			},
		)
	}).Methods("GET")

	router.HandleFunc("/wm", func(w http.ResponseWriter, r *http.Request) {
		name, _ := as.root.WMName()
		supported, _ := as.root.SupportedNames()
		jsonResponse(w, r, 200,
			map[string]interface{}{
				"name":      name,
				"supported": supported,
			},
		)
	}).Methods("GET")

	router.HandleFunc("/desktops/", func(w http.ResponseWriter, r *http.Request) {
		count, _, _ := as.root.NumberOfDesktops()
		current, _, _ := as.root.CurrentDesktop()
		names, _ := as.root.DesktopNames()
		workarea, _ := as.root.WorkArea()
		showing, _, _ := as.root.ShowingDesktop()
		jsonResponse(w, r, 200,
			map[string]interface{}{
				"count":          count,
				"current":        current,
				"names":          names,
				"workarea":       workarea,
				"showingDesktop": showing,
			},
		)
	}).Methods("GET")

	router.HandleFunc("/desktops/current", func(w http.ResponseWriter, r *http.Request) {
		var data map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			jsonResponse(w, r, http.StatusUnprocessableEntity, nil)
			return
		}
		index := getInt("index", data)
		if index == nil {
			jsonResponse(w, r, http.StatusUnprocessableEntity, nil)
			return
		}
		if err := as.root.SetCurrentDesktop(*index); err != nil {
			log.Print(err)
			jsonResponse(w, r, http.StatusBadGateway, nil)
			return
		}
		jsonResponse(w, r, 200, nil)
	}).Methods("POST")

	router.HandleFunc("/windows/", func(w http.ResponseWriter, r *http.Request) {
		clients, err := as.root.ClientList()
		if err != nil {
			log.Print(err)
		}
		items := make([]windowItem, 0, len(clients))
		for _, id := range clients {
			items = append(items, as.windowItem(id, false))
		}
		jsonResponse(w, r, 200,
			map[string]interface{}{
				"items": items,
			},
		)
	}).Methods("GET")

	router.HandleFunc("/windows/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		id := getIDUint(r)
		if id == nil {
			jsonResponse(w, r, http.StatusNotFound, nil)
			return
		}
		win := as.display.Window(xproto.Window(*id))
		switch r.Method {
		case "GET":
			break
		case "POST":
			var data map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
				jsonResponse(w, r, http.StatusUnprocessableEntity, nil)
				return
			}
			log.Print("update window ", *id, " with ", data)
			if err := as.updateWindow(win, data); err != nil {
				log.Print(err)
				jsonResponse(w, r, http.StatusBadGateway, nil)
				return
			}
		case "DELETE":
			if err := win.Close(ewmh.SourcePager); err != nil {
				log.Print(err)
			}
			jsonResponse(w, r, 200, nil)
			return
		default:
			panic("unreachable")
		}
		jsonResponse(w, r, 200,
			map[string]interface{}{
				"item": as.windowItem(xproto.Window(*id), true),
			},
		)
	}).Methods("GET", "POST", "DELETE")

	router.HandleFunc("/windows/{id:[0-9]+}/events",
		makeWSHandler(as.watchWindow)).Methods("GET")

	router.PathPrefix("/").Handler(http.NotFoundHandler())
	return as
}

// updateWindow applies the requested mutations in EWMH terms: geometry
// through _NET_MOVERESIZE_WINDOW, everything else through its own
// request.
func (as *APIServer) updateWindow(win *ewmh.Window, data map[string]interface{}) error {
	x := getCoord("x", data)
	y := getCoord("y", data)
	width := getCoord("w", data)
	height := getCoord("h", data)
	if x != nil || y != nil || width != nil || height != nil {
		if err := win.MoveResize(x, y, width, height, ewmh.SourcePager); err != nil {
			return err
		}
	}
	if d := getInt("desktop", data); d != nil {
		if err := win.SetDesktop(*d, ewmh.SourcePager); err != nil {
			return err
		}
	}
	if name, ok := data["name"].(string); ok {
		if err := win.SetName(name); err != nil {
			return err
		}
	}
	horz := getBool("maximizedHorz", data)
	vert := getBool("maximizedVert", data)
	if horz != nil || vert != nil {
		h, v := false, false
		if horz != nil {
			h = *horz
		}
		if vert != nil {
			v = *vert
		}
		if err := win.SetMaximized(h, v); err != nil {
			return err
		}
	}
	if m := getBool("minimize", data); m != nil && *m {
		if err := win.Minimize(); err != nil {
			return err
		}
	}
	if a := getBool("activate", data); a != nil && *a {
		if err := win.Activate(ewmh.SourcePager); err != nil {
			return err
		}
	}
	return nil
}

func (as *APIServer) Start() error {
	log.Printf("Listening on http://%s", as.server.Addr)
	return as.server.ListenAndServe()
}

func getIDUint(r *http.Request) *uint64 {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return nil
	}
	return &id
}

func getInt(key string, data map[string]interface{}) *uint32 {
	if value, ok := data[key]; ok {
		if f, ok := value.(float64); ok {
			u := uint32(f)
			return &u
		}
	}
	return nil
}

func getCoord(key string, data map[string]interface{}) *int {
	if value, ok := data[key]; ok {
		if f, ok := value.(float64); ok {
			i := int(f)
			return &i
		}
	}
	return nil
}

func getBool(key string, data map[string]interface{}) *bool {
	if value, ok := data[key]; ok {
		if b, ok := value.(bool); ok {
			return &b
		}
	}
	return nil
}
