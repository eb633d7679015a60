package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/logging"
	"github.com/jonathan/letter-studio/internal/types"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// LetterEvent is one generated letter in a batch stream
type LetterEvent struct {
	BatchID string              `json:"batch_id"`
	Index   int                 `json:"index"`
	Letter  types.LetterContent `json:"letter"`
}

// BatchErrorEvent reports the letter that stopped a batch stream
type BatchErrorEvent struct {
	BatchID string `json:"batch_id"`
	Index   int    `json:"index"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// BatchCompleteEvent closes a batch stream
type BatchCompleteEvent struct {
	BatchID string `json:"batch_id"`
	Status  string `json:"status"`
	Count   int    `json:"count"`
}

// handleBatchStream composes letters one at a time, emitting a "letter" event
// per result. The first failure emits "error" and ends the stream; a client
// disconnect ends it silently.
func (s *Server) handleBatchStream(w http.ResponseWriter, r *http.Request) {
	batch, err := s.decodeBatch(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	batchID := uuid.NewString()
	log := logging.FromContext(r.Context()).With(zap.String("batch_id", batchID))
	log.Debug("batch stream started", zap.Int("letters", len(batch.Letters)))

	for i, in := range batch.Letters {
		if r.Context().Err() != nil {
			log.Info("batch stream cancelled", zap.Int("sent", i))
			return
		}

		content, err := s.generate(in)
		if err != nil {
			//nolint:errcheck // the stream ends either way
			sse.WriteEvent("error", BatchErrorEvent{BatchID: batchID, Index: i, Error: err.Error(), Status: HTTPStatus(err)})
			return
		}
		if err := sse.WriteEvent("letter", LetterEvent{BatchID: batchID, Index: i, Letter: *content}); err != nil {
			log.Warn("batch stream write failed", zap.Error(err))
			return
		}
	}

	//nolint:errcheck // last event
	sse.WriteEvent("complete", BatchCompleteEvent{BatchID: batchID, Status: "completed", Count: len(batch.Letters)})
}
