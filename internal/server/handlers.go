package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/jonathan/letter-studio/internal/catalog"
	"github.com/jonathan/letter-studio/internal/logging"
	"github.com/jonathan/letter-studio/internal/rendering"
	"github.com/jonathan/letter-studio/internal/schemas"
	"github.com/jonathan/letter-studio/internal/types"
)

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// handleOptions returns the tone and language catalogs
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, catalog.All())
}

// handleSample returns the sample inputs dated today
func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, r, http.StatusOK, types.SampleInputs(types.FormatLetterDate(s.now())))
}

// readBody reads at most MaxBodyBytes of the request body.
func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	limit := s.cfg.Server.MaxBodyBytes
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, &ErrBodyTooLarge{Limit: limit}
		}
		return nil, &ErrValidation{Field: "body", Message: err.Error()}
	}
	return body, nil
}

// generate composes one letter and records the outcome.
func (s *Server) generate(in types.LetterInputs) (*types.LetterContent, error) {
	content, err := s.composer.Generate(in)
	paragraphs := 0
	if content != nil {
		paragraphs = len(content.BodyParagraphs)
	}
	s.metrics.ObserveLetter(in.Tone, in.Language, paragraphs, err)
	return content, err
}

// handleGenerate composes a single letter
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	in, err := schemas.DecodeLetterInputs(body)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	content, err := s.generate(in)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	logging.FromContext(r.Context()).Debug("letter generated",
		zap.String("tone", in.Tone),
		zap.String("language", in.Language),
		zap.Int("paragraphs", len(content.BodyParagraphs)),
	)
	s.jsonResponse(w, r, http.StatusOK, content)
}

// decodeBatch reads and validates a batch body, enforcing the batch size limit.
func (s *Server) decodeBatch(w http.ResponseWriter, r *http.Request) (types.LetterBatch, error) {
	body, err := s.readBody(w, r)
	if err != nil {
		return types.LetterBatch{}, err
	}

	batch, err := schemas.DecodeLetterBatch(body)
	if err != nil {
		return types.LetterBatch{}, err
	}

	if limit := s.cfg.Letter.BatchLimit; limit > 0 && len(batch.Letters) > limit {
		return types.LetterBatch{}, &ErrValidation{
			Field:   "letters",
			Message: fmt.Sprintf("at most %d letters per batch, got %d", limit, len(batch.Letters)),
		}
	}
	return batch, nil
}

// handleBatch composes several letters concurrently, answering in request order
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	batch, err := s.decodeBatch(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	letters, err := s.composer.GenerateBatch(r.Context(), batch.Letters)
	for i, in := range batch.Letters {
		if err != nil {
			s.metrics.ObserveLetter(in.Tone, in.Language, 0, err)
			continue
		}
		s.metrics.ObserveLetter(in.Tone, in.Language, len(letters[i].BodyParagraphs), nil)
	}
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	s.jsonResponse(w, r, http.StatusOK, types.LetterContents{Letters: letters})
}

// handleRender composes a letter and returns it as a document in ?format=
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = string(rendering.FormatHTML)
	}
	format, err := rendering.ParseFormat(formatName)
	if err != nil {
		s.errorResponse(w, r, &ErrValidation{Field: "format", Message: err.Error()})
		return
	}

	body, err := s.readBody(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	in, err := schemas.DecodeLetterInputs(body)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	content, err := s.generate(in)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	doc, err := rendering.Render(content, format, rendering.Options{
		TemplatePath: s.cfg.Letter.TemplateFor(string(format)),
		Language:     in.Language,
	})
	s.metrics.ObserveRender(string(format), err)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="letter%s"`, format.Extension()))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, doc); err != nil {
		logging.FromContext(r.Context()).Warn("failed to write rendered letter", zap.Error(err))
	}
}
