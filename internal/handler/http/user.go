package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/service"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

const (
	msgUpdatedUser   = "updated user"
	msgFollowed      = "success"
	msgUnfollowed    = "unfollowed successfully"
	msgPostSaved     = "post saved"
	savedPostsUserID = "user_id"
)

// decodeInput reads the JSON body into dst. Any decoding problem is reported
// as invalid input.
func decodeInput(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		return fmt.Errorf("%w: %w", validators.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input models.SignupInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.signup", err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, input)
	if err != nil {
		if !errors.Is(err, validators.ErrInvalidInput) {
			err = fmt.Errorf("%w: %w", service.ErrSignupFailed, err)
		}
		writeError(w, r, "*Handler.signup", err)
		return
	}

	h.writeAuthResponse(w, r, user)
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input models.SigninInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.signin", err)
		return
	}

	user, err := h.services.AuthService.Signin(ctx, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.FromRequest(r).Debug().Err(err).Msg("signin rejected")
			utils.WriteJSON(w, models.ErrorResponse{Error: service.ErrInvalidCredentials.Error()}, http.StatusForbidden)
			return
		}
		writeError(w, r, "*Handler.signin", err)
		return
	}

	h.writeAuthResponse(w, r, user)
}

func (h *Handler) writeAuthResponse(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "*Handler.writeAuthResponse", err)
		return
	}

	utils.WriteJSON(w, models.AuthResponse{JWT: token.String(), Username: user.Username}, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	user, err := h.services.UserService.GetProfile(r.Context(), caller)
	if err != nil {
		writeError(w, r, "*Handler.getProfile", err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.UpdateUserInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	if err := h.services.UserService.UpdateProfile(r.Context(), caller, input); err != nil {
		writeError(w, r, "*Handler.updateProfile", err)
		return
	}

	utils.WriteJSON(w, msgUpdatedUser, http.StatusOK)
}

func (h *Handler) follow(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.FollowInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.follow", err)
		return
	}

	if err := h.services.UserService.Follow(r.Context(), caller, input); err != nil {
		writeError(w, r, "*Handler.follow", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgFollowed}, http.StatusOK)
}

func (h *Handler) unfollow(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.FollowInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.unfollow", err)
		return
	}

	if err := h.services.UserService.Unfollow(r.Context(), caller, input); err != nil {
		writeError(w, r, "*Handler.unfollow", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgUnfollowed}, http.StatusOK)
}

func (h *Handler) listFollowers(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	followers, err := h.services.UserService.ListFollowers(r.Context(), caller)
	if err != nil {
		writeError(w, r, "*Handler.listFollowers", err)
		return
	}

	utils.WriteJSON(w, followers, http.StatusOK)
}

func (h *Handler) listFollowing(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	following, err := h.services.UserService.ListFollowing(r.Context(), caller)
	if err != nil {
		writeError(w, r, "*Handler.listFollowing", err)
		return
	}

	utils.WriteJSON(w, following, http.StatusOK)
}

// listSavedPosts takes the user from the user_id query parameter and falls
// back to the identity bound by optionalAuth.
func (h *Handler) listSavedPosts(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get(savedPostsUserID)
	if userID == "" {
		var ok bool
		if userID, ok = utils.GetUserIDFromContext(r.Context()); !ok {
			writeError(w, r, "*Handler.listSavedPosts", ErrNoUserIDForSavedPosts)
			return
		}
	}

	posts, err := h.services.UserService.ListSavedPosts(r.Context(), userID)
	if err != nil {
		writeError(w, r, "*Handler.listSavedPosts", err)
		return
	}

	utils.WriteJSON(w, posts, http.StatusOK)
}

func (h *Handler) savePost(w http.ResponseWriter, r *http.Request, caller models.Caller) {
	var input models.SavePostInput
	if err := decodeInput(r, &input); err != nil {
		writeError(w, r, "*Handler.savePost", err)
		return
	}

	if err := h.services.UserService.SavePost(r.Context(), caller, input); err != nil {
		writeError(w, r, "*Handler.savePost", err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgPostSaved}, http.StatusOK)
}
