package asset

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/assetbox/service/internal/response"
)

// maxUploadBytes limits upload request bodies to 50 MiB.
const maxUploadBytes = 50 << 20

// Handler holds HTTP handlers for asset endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new asset Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload godoc
//
//	@Summary		Upload a media file
//	@Description	Stores the uploaded file in the media area of the bucket and records its metadata.
//	@Tags			assets
//	@Accept			multipart/form-data
//	@Produce		json
//	@Security		BearerAuth
//	@Param			file	formData	file	true	"file to upload"
//	@Success		201	{object}	response.Envelope{data=Asset}
//	@Failure		400	{object}	response.Envelope
//	@Failure		401	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/assets [post]
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "multipart field \"file\" is required")
		return
	}
	defer file.Close()

	a, err := h.svc.Upload(r.Context(), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		response.InternalError(w)
		return
	}

	response.Created(w, a)
}

// List godoc
//
//	@Summary		List assets
//	@Description	Returns the most recently uploaded assets, newest first.
//	@Tags			assets
//	@Produce		json
//	@Success		200	{object}	response.Envelope{data=[]Asset}
//	@Failure		500	{object}	response.Envelope
//	@Router			/assets [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	assets, err := h.svc.List(r.Context())
	if err != nil {
		response.InternalError(w)
		return
	}
	response.OK(w, assets)
}

// Get godoc
//
//	@Summary		Get asset metadata
//	@Tags			assets
//	@Produce		json
//	@Param			id	path		string	true	"asset ID"
//	@Success		200	{object}	response.Envelope{data=Asset}
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/assets/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, a)
}

// Content godoc
//
//	@Summary		Download asset content
//	@Description	Streams the object bytes back from the store.
//	@Tags			assets
//	@Produce		octet-stream
//	@Param			id	path	string	true	"asset ID"
//	@Success		200
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/assets/{id}/content [get]
func (h *Handler) Content(w http.ResponseWriter, r *http.Request) {
	a, rc, err := h.svc.Open(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Length", strconv.FormatInt(a.SizeBytes, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", a.OriginalName))
	// Headers are already written; a copy error here can only be logged by
	// the server, not reported to the client.
	_, _ = io.Copy(w, rc)
}

// Delete godoc
//
//	@Summary		Delete an asset
//	@Description	Removes the object from the bucket and its database record.
//	@Tags			assets
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path	string	true	"asset ID"
//	@Success		204
//	@Failure		401	{object}	response.Envelope
//	@Failure		404	{object}	response.Envelope
//	@Failure		500	{object}	response.Envelope
//	@Router			/assets/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "asset not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}
