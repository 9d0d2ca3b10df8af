package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/commonshub/signup/internal/directus"
	"github.com/commonshub/signup/internal/email"
	"github.com/commonshub/signup/internal/form"
	"github.com/commonshub/signup/pkg/logger"
	"github.com/commonshub/signup/pkg/sanitizer"
)

// MemberStore is the slice of the CMS client the signup flow needs.
type MemberStore interface {
	CreateMember(ctx context.Context, req form.SignupRequest) (string, error)
	MemberExistsByEmail(ctx context.Context, email string) (bool, error)
}

// emailTimeout bounds the background email sends spawned per signup.
const emailTimeout = 30 * time.Second

// SignupHandler processes community signup submissions.
type SignupHandler struct {
	store      MemberStore
	sender     email.Sender
	adminEmail string
	log        *slog.Logger
}

func NewSignupHandler(store MemberStore, sender email.Sender, adminEmail string, log *slog.Logger) *SignupHandler {
	return &SignupHandler{
		store:      store,
		sender:     sender,
		adminEmail: adminEmail,
		log:        log,
	}
}

// signupResponse echoes the sanitized member back to the client. Optional
// fields are always present, empty when not provided.
type signupResponse struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	ExperienceLevel int    `json:"experienceLevel"`
	ProjectInterest string `json:"projectInterest"`
	ProjectDetails  string `json:"projectDetails"`
	GithubUsername  string `json:"githubUsername"`
	LinkedinURL     string `json:"linkedinUrl"`
	DiscordUsername string `json:"discordUsername"`
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	started := time.Now()

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Request body must be form-encoded")
		return
	}

	req, fieldErrs := form.ValidateSignup(r.PostForm)
	if fieldErrs != nil {
		h.log.WarnContext(ctx, "signup validation failed",
			logger.Component("signup"),
			logger.RequestID(requestIDFromContext(ctx)),
			slog.Int("field_count", len(fieldErrs)),
		)
		respondFieldErrors(w, fieldErrs)
		return
	}

	exists, err := h.store.MemberExistsByEmail(ctx, req.Email)
	if err != nil {
		logger.ServiceError(ctx, h.log, "directus", "member_exists", err,
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusBadGateway, "Signup is temporarily unavailable, please try again later")
		return
	}
	if exists {
		logger.SecurityEvent(ctx, h.log, "duplicate_signup_attempt", logger.SeverityLow,
			slog.String("email", sanitizer.MaskEmail(req.Email)),
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusConflict, "A member with this email already exists")
		return
	}

	id, err := h.store.CreateMember(ctx, req)
	if err != nil {
		if errors.Is(err, directus.ErrDuplicate) {
			respondError(w, http.StatusConflict, "A member with this email already exists")
			return
		}
		logger.ServiceError(ctx, h.log, "directus", "create_member", err,
			logger.RequestID(requestIDFromContext(ctx)),
		)
		respondError(w, http.StatusBadGateway, "Signup is temporarily unavailable, please try again later")
		return
	}

	h.log.InfoContext(ctx, "member created",
		logger.Component("signup"),
		logger.RequestID(requestIDFromContext(ctx)),
		slog.String("member_id", id),
		slog.String("email", sanitizer.MaskEmail(req.Email)),
	)

	h.notifyAsync(req)

	logger.Performance(ctx, h.log, "signup", time.Since(started),
		logger.RequestID(requestIDFromContext(ctx)),
	)

	respondJSON(w, http.StatusCreated, signupResponse{
		ID:              id,
		Email:           req.Email,
		Name:            req.Name,
		ExperienceLevel: req.ExperienceLevel,
		ProjectInterest: req.ProjectInterest,
		ProjectDetails:  req.ProjectDetails,
		GithubUsername:  req.GithubUsername,
		LinkedinURL:     req.LinkedinURL,
		DiscordUsername: req.DiscordUsername,
	})
}

// notifyAsync sends the welcome and admin emails in the background.
// Failures are logged, never surfaced: the member is already created and
// a lost email must not turn a successful signup into an error.
func (h *SignupHandler) notifyAsync(req form.SignupRequest) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), emailTimeout)
		defer cancel()

		welcome, err := email.WelcomeMessage(req)
		if err == nil {
			err = h.sender.Send(ctx, welcome)
		}
		if err != nil {
			logger.ServiceError(ctx, h.log, "email", "welcome", err,
				slog.String("to", sanitizer.MaskEmail(req.Email)),
			)
		}

		notification, err := email.AdminNotification(h.adminEmail, req)
		if err == nil {
			err = h.sender.Send(ctx, notification)
		}
		if err != nil {
			logger.ServiceError(ctx, h.log, "email", "admin_notification", err)
		}
	}()
}
