package mybank

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

type userResponse struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	User    *userResponse `json:"user,omitempty"`
}

func RegisterHandler(logger *slog.Logger, svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		req, err := decodeRegisterRequest(r)
		if err != nil {
			// an unreadable body and an absent field are the same
			// thing to the caller
			encodeError(logger, ErrMissingField, w)
			return
		}

		acc, err := svc.Register(r.Context(), req)
		if err != nil {
			encodeError(logger, err, w)
			return
		}

		w.WriteHeader(http.StatusCreated)
		writeJSON(logger, w, response{Success: true, Message: "account created", User: projectAccount(acc)})
	})
}

func LoginHandler(logger *slog.Logger, svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		req, err := decodeLoginRequest(r)
		if err != nil {
			encodeError(logger, ErrMissingField, w)
			return
		}

		acc, err := svc.Login(r.Context(), req)
		if err != nil {
			encodeError(logger, err, w)
			return
		}

		writeJSON(logger, w, response{Success: true, Message: "login successful", User: projectAccount(acc)})
	})
}

func LogoutHandler(logger *slog.Logger, svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		if err := svc.Logout(r.Context()); err != nil {
			encodeError(logger, err, w)
			return
		}

		writeJSON(logger, w, response{Success: true, Message: "logged out"})
	})
}

// projectAccount builds the caller-facing view of an account. The
// password hash stays behind.
func projectAccount(acc *Account) *userResponse {
	return &userResponse{ID: acc.ID, Name: acc.Name, Email: acc.Email, CreatedAt: acc.CreatedAt}
}

func encodeError(logger *slog.Logger, err error, w http.ResponseWriter) {
	msg := err.Error()
	switch {
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateEmail):
		w.WriteHeader(http.StatusConflict)
	case errors.Is(err, ErrInvalidCredentials):
		w.WriteHeader(http.StatusUnauthorized)
	default:
		// store and hashing detail stays in the log, never in the body
		logger.Error("request failed", slog.Any("error", err))
		msg = ErrInternal.Error()
		w.WriteHeader(http.StatusInternalServerError)
	}
	writeJSON(logger, w, response{Success: false, Message: msg})
}

func writeJSON(logger *slog.Logger, w http.ResponseWriter, res response) {
	if err := json.NewEncoder(w).Encode(res); err != nil {
		logger.Error("encode response", slog.Any("error", err))
	}
}

func decodeRegisterRequest(r *http.Request) (registerRequest, error) {
	req := registerRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return registerRequest{}, err
	}
	return req, nil
}

func decodeLoginRequest(r *http.Request) (loginRequest, error) {
	req := loginRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return loginRequest{}, err
	}
	return req, nil
}
