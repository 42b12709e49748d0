//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	// Serve the embedded page at root, everything else (the compiled game
	// script, assets) from disk.
	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		http.FileServer(http.Dir(*staticDir)).ServeHTTP(w, r)
	})

	http.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Skyhoops server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}
