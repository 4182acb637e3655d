package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mohammed-shakir/geojson-validator/geojson"
	"github.com/mohammed-shakir/geojson-validator/internal/events"
	"github.com/mohammed-shakir/geojson-validator/internal/logger"
	"github.com/mohammed-shakir/geojson-validator/internal/observability"
	"github.com/mohammed-shakir/geojson-validator/internal/store"
)

const maxBodyBytes = 10 << 20

type Handlers struct {
	log    *slog.Logger
	store  *store.Store
	events events.Publisher
}

func NewHandlers(log *slog.Logger, st *store.Store, pub events.Publisher) *Handlers {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Handlers{log: log, store: st, events: pub}
}

// Validate decodes the body polymorphically and returns the validation
// result. Decode failures are 400s; validation outcomes, valid or not, are
// 200s carrying the error set.
func (h *Handlers) Validate(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result := doc.Validate()
	observability.ObserveValidation(doc.GeoJSONType(), !result.HasErrors())
	writeJSON(w, http.StatusOK, result)
}

// Echo decodes and re-encodes the body, proving the round trip is lossless.
func (h *Handlers) Echo(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// Create stores a valid document and returns its generated id. Invalid
// documents are rejected with the full error set.
func (h *Handlers) Create(w http.ResponseWriter, r *http.Request) {
	doc, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	result := doc.Validate()
	observability.ObserveValidation(doc.GeoJSONType(), !result.HasErrors())
	if result.HasErrors() {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	body, err := geojson.Marshal(doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "encode document")
		return
	}

	id := logger.NewID()
	if err := h.store.Put(r.Context(), id, body); err != nil {
		h.log.ErrorContext(r.Context(), "store put failed", "err", err)
		writeError(w, http.StatusInternalServerError, "store document")
		return
	}

	ev := events.WireEvent{Op: events.OpCreate, ID: id, DocType: doc.GeoJSONType()}
	if err := h.events.Publish(r.Context(), ev); err != nil {
		h.log.WarnContext(r.Context(), "publish create event failed", "id", id, "err", err)
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	body, err := h.store.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "store get failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "load document")
		return
	}
	w.Header().Set("Content-Type", "application/geo+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func (h *Handlers) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.store.List(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "store list failed", "err", err)
		writeError(w, http.StatusInternalServerError, "list documents")
		return
	}
	out := make(map[string]json.RawMessage, len(docs))
	for id, body := range docs {
		out[id] = body
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "store delete failed", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "delete document")
		return
	}

	ev := events.WireEvent{Op: events.OpDelete, ID: id}
	if err := h.events.Publish(r.Context(), ev); err != nil {
		h.log.WarnContext(r.Context(), "publish delete event failed", "id", id, "err", err)
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeBody reads and polymorphically decodes the request body. On failure
// it writes the 400 response and returns ok=false.
func (h *Handlers) decodeBody(w http.ResponseWriter, r *http.Request) (geojson.GeoJSON, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "read body: "+err.Error())
		return nil, false
	}
	doc, err := geojson.Unmarshal(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
