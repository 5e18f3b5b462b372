package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/go-chi/chi/v5"
)

const msgUpdatedPost = "updated post"

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.CreateBlogInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.createPost", err)
		return
	}

	postID, err := h.services.BlogService.CreatePost(r.Context(), caller, input)
	if err != nil {
		writeError(w, r, "*Handler.createPost", err)
		return
	}

	utils.WriteJSON(w, models.CreatedResponse{ID: postID}, http.StatusOK)
}

func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.UpdateBlogInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.updatePost", err)
		return
	}

	if err := h.services.BlogService.UpdatePost(r.Context(), caller, input); err != nil {
		writeError(w, r, "*Handler.updatePost", err)
		return
	}

	utils.WriteJSON(w, msgUpdatedPost, http.StatusOK)
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.services.BlogService.ListPosts(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listPosts", err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

// getPost answers 404 for an unknown post and 411 for every other failure.
func (h *Handler) getPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "id")

	post, err := h.services.BlogService.GetPost(r.Context(), postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			writeError(w, r, "*Handler.getPost", err)
			return
		}
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getPost").Str("post_id", postID).Msg("error fetching post")
		utils.WriteJSON(w, models.MessageResponse{Message: msgFetchingPostFailed}, http.StatusLengthRequired)
		return
	}

	utils.WriteJSON(w, post, http.StatusOK)
}
