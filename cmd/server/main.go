// Command server exposes the cohort-stream parser as a JSON REST API.
//
// Endpoints:
//
//	POST /api/parse    body: raw cohort-stream text → {"cohorts":[...]}
//	POST /api/format   body: {"cohorts":[...]} → canonical stream text
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"net/http"

	"github.com/rs/cors"

	cgstream "github.com/nlp-pipelines/cgstream"
)

// ---- JSON request/response types -----------------------------------------

type parseResponse struct {
	Cohorts []cgstream.Cohort `json:"cohorts"`
}

type formatRequest struct {
	Cohorts []cgstream.Cohort `json:"cohorts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers --------------------------------------------------------------

// maxBody bounds request bodies. Whole-document annotation streams fit
// comfortably under this.
const maxBody = 64 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers ---------------------------------------------------------------

func handleParse() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
		if err != nil {
			writeError(w, http.StatusBadRequest, "read body: "+err.Error())
			return
		}
		// Parse is total: any body yields a (possibly empty) cohort list.
		writeJSON(w, http.StatusOK, parseResponse{Cohorts: cgstream.Parse(string(body))})
	}
}

func handleFormat() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var req formatRequest
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "body must be JSON with a 'cohorts' field")
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if err := cgstream.SerializeTo(w, req.Cohorts); err != nil {
			log.Printf("write response: %v", err)
		}
	}
}

// ---- main -------------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse())
	mux.HandleFunc("/api/format", handleFormat())

	handler := cors.Default().Handler(mux)

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
