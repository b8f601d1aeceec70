package main

import (
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	log "github.com/sirupsen/logrus"

	"github.com/intio/ewmh"
)

var (
	version     string
	listenAddr  string = "127.0.0.1:8080"
	displayName string
)

func main() {
	opts, _, err := getopt.Getopts(os.Args, "l:d:v")
	if err != nil {
		log.Fatal(err)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'l':
			listenAddr = opt.Value
		case 'd':
			displayName = opt.Value
		case 'v':
			log.SetLevel(log.DebugLevel)
		}
	}
	if version != "" {
		log.Printf("version: %s", version)
	}

	display, err := ewmh.Open(displayName)
	if err != nil {
		log.Fatal(err)
	}
	defer display.Close()

	if name, err := display.RootWindow().WMName(); err == nil && name != "" {
		log.Printf("window manager: %s", name)
	}

	api := NewAPIServer(display, listenAddr)
	log.Fatal(api.Start())
}
