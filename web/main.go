package main

import (
	"flag"
	"log"
	"os"

	"github.com/df07/go-torus-raytracer/pkg/scene"
	"github.com/df07/go-torus-raytracer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port to serve on")
	flag.Parse()

	webServer := server.NewServer(*port)

	log.Printf("Torus Raytracer Web Server (scenes: %v)", scene.Names())
	for _, route := range server.Routes {
		log.Printf("  http://localhost:%d%s", *port, route)
	}

	if err := webServer.Start(); err != nil {
		log.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
