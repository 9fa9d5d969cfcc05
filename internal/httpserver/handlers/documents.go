package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"github.com/MrSnakeDoc/docstore/internal/domain"
	"github.com/MrSnakeDoc/docstore/internal/httpserver/deps"
	"github.com/MrSnakeDoc/docstore/internal/logger"
)

// SaveDocument upserts the posted document.
// New documents answer 201, updates 200, unknown IDs 404.
func SaveDocument(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc domain.Document
		if err := decodeBody(w, r, d.MaxBodyBytes, &doc); err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid document body")
			return
		}

		isNew := doc.IsNew()
		saved, err := d.Store.Save(doc)
		if err != nil {
			if errors.Is(err, domain.ErrDocumentNotFound) {
				d.Logger.Info("save rejected, unknown document id",
					logger.String("id", doc.ID),
					logger.String("request_id", middleware.GetReqID(r.Context())))
				respondError(w, r, http.StatusNotFound, err.Error())
				return
			}
			d.Logger.Error("save failed", logger.Error(err))
			respondError(w, r, http.StatusInternalServerError, "failed to save document")
			return
		}

		d.Logger.Debug("document saved",
			logger.String("id", saved.ID),
			logger.Bool("created", isNew))

		status := http.StatusOK
		if isNew {
			status = http.StatusCreated
		}
		respondJSON(w, r, status, saved)
	}
}

// GetDocument returns the document named by the {id} URL parameter.
func GetDocument(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		doc, ok := d.Store.FindByID(id)
		if !ok {
			respondError(w, r, http.StatusNotFound, "document not found")
			return
		}
		respondJSON(w, r, http.StatusOK, doc)
	}
}

// SearchDocuments filters documents with the posted search request.
func SearchDocuments(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.SearchRequest
		if err := decodeBody(w, r, d.MaxBodyBytes, &req); err != nil {
			respondError(w, r, http.StatusBadRequest, "invalid search request")
			return
		}

		docs := d.Store.Search(req)

		d.Logger.Debug("search request",
			logger.Strings("title_prefixes", req.TitlePrefixes),
			logger.Strings("contains", req.ContainsContents),
			logger.Strings("author_ids", req.AuthorIDs),
			logger.Int("results", len(docs)))

		respondJSON(w, r, http.StatusOK, docs)
	}
}

// decodeBody decodes a JSON body, allowing an empty body to mean the zero value.
func decodeBody(w http.ResponseWriter, r *http.Request, limit int64, v interface{}) error {
	if limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}
	if r.ContentLength == 0 {
		return nil
	}
	return render.DecodeJSON(r.Body, v)
}
