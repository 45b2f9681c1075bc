package apis

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// maxUploadBytes bounds the in-memory portion of a multipart parse; larger
// payloads spill to disk.
const maxUploadBytes = 10 << 20

// upload forwards a multipart file payload to the image-hosting collaborator
// and returns the collaborator-assigned public URL. A collaborator failure is
// reported as an embedded error field on a 200, not as an HTTP error code —
// that is the contract the existing frontend expects.
func (h *Handlers) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		SendError(w, http.StatusBadRequest, "invalid multipart body")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		SendError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.Uploader.Upload(ctx, header.Filename, file)
	if err != nil {
		SendJSON(w, http.StatusOK, map[string]string{"error": "image upload failed: " + err.Error()})
		return
	}
	log.Ctx(ctx).Info().Str("filename", header.Filename).Msg("image uploaded")
	SendJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}
