package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-torus-raytracer/pkg/core"
	"github.com/df07/go-torus-raytracer/pkg/renderer"
	"github.com/df07/go-torus-raytracer/pkg/scene"
	"github.com/df07/go-torus-raytracer/pkg/writers"
)

// ProgressUpdate reports how many rows have finished
type ProgressUpdate struct {
	RowsCompleted int   `json:"rowsCompleted"`
	TotalRows     int   `json:"totalRows"`
	ElapsedMs     int64 `json:"elapsedMs"`
}

// RenderComplete carries the finished image
type RenderComplete struct {
	ImageData string `json:"imageData"` // Base64 encoded PNG
	Stats     Stats  `json:"stats"`
	ElapsedMs int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels int     `json:"totalPixels"`
	LitPixels   int     `json:"litPixels"`
	Coverage    float64 `json:"coverage"`
}

type renderResult struct {
	img   *image.RGBA
	stats renderer.RenderStats
	err   error
}

// setupRaytracer resolves the requested scene and builds a raytracer for it
func (s *Server) setupRaytracer(req *RenderRequest, logger core.Logger) (*scene.Scene, *renderer.Raytracer, error) {
	sceneObj, err := scene.Lookup(req.Scene)
	if err != nil {
		return nil, nil, err
	}

	screenConfig := renderer.MergeScreenConfig(sceneObj.Screen, renderer.ScreenConfig{
		Width:  req.Width,
		Height: req.Height,
	})
	config := renderer.DefaultConfig()
	config.Workers = req.Workers
	config.Mode = sceneObj.Mode

	return sceneObj, renderer.NewRaytracer(sceneObj.World, renderer.NewScreen(screenConfig), config, logger), nil
}

// handleRender renders a scene and streams row progress, console output and
// the final PNG as Server-Sent Events.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	s.setSSEHeaders(w)
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming not supported", http.StatusInternalServerError)
		return
	}

	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.sendSSEEvent(w, flusher, "error", fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan := make(chan ConsoleMessage, 50)
	_, raytracer, err := s.setupRaytracer(req, NewWebLogger(s.logOut, consoleChan))
	if err != nil {
		s.sendSSEEvent(w, flusher, "error", err.Error())
		return
	}

	// Buffered for every row so workers never wait on the client
	rows := make(chan int, req.Height)
	raytracer.SetRowCallback(func(y int) { rows <- y })

	startTime := time.Now()
	resultChan := make(chan renderResult, 1)
	go func() {
		img, stats, err := raytracer.Render(r.Context())
		close(rows)
		resultChan <- renderResult{img: img, stats: stats, err: err}
	}()

	step := max(1, req.Height/20)
	completed := 0
	for range rows {
		completed++
		s.drainConsole(w, flusher, consoleChan)
		if completed%step == 0 || completed == req.Height {
			s.sendSSEJSON(w, flusher, "progress", ProgressUpdate{
				RowsCompleted: completed,
				TotalRows:     req.Height,
				ElapsedMs:     time.Since(startTime).Milliseconds(),
			})
		}
	}

	result := <-resultChan
	s.drainConsole(w, flusher, consoleChan)
	if result.err != nil {
		s.sendSSEEvent(w, flusher, "error", fmt.Sprintf("Render error: %v", result.err))
		return
	}

	imageData, err := s.imageToBase64PNG(result.img)
	if err != nil {
		s.sendSSEEvent(w, flusher, "error", fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	s.sendSSEJSON(w, flusher, "complete", RenderComplete{
		ImageData: imageData,
		Stats: Stats{
			TotalPixels: result.stats.TotalPixels,
			LitPixels:   result.stats.LitPixels,
			Coverage:    result.stats.Coverage(),
		},
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// handleImage renders a scene and returns it as a PNG or PPM body
func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	format := writers.FormatPNG
	contentType := "image/png"
	switch r.URL.Query().Get("format") {
	case "", "png":
	case "ppm":
		format = writers.FormatPPM
		contentType = "image/x-portable-pixmap"
	default:
		writeJSONError(w, http.StatusBadRequest, "format must be png or ppm")
		return
	}

	_, raytracer, err := s.setupRaytracer(req, NewWebLogger(s.logOut, nil))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, _, err := raytracer.Render(r.Context())
	if err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := writers.Write(&buf, img, format); err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Write(buf.Bytes())
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// drainConsole forwards any pending log lines without blocking
func (s *Server) drainConsole(w http.ResponseWriter, flusher http.Flusher, consoleChan chan ConsoleMessage) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendSSEJSON(w, flusher, "console", msg)
		default:
			return
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img *image.RGBA) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *Server) sendSSEJSON(w http.ResponseWriter, flusher http.Flusher, event string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		s.sendSSEEvent(w, flusher, "error", err.Error())
		return
	}
	s.sendSSEEvent(w, flusher, event, string(data))
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event, data string) {
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
	flusher.Flush()
}
