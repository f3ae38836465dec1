package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Goofygiraffe06/breachcheck/internal/breach"
	"github.com/Goofygiraffe06/breachcheck/internal/checker"
	"github.com/Goofygiraffe06/breachcheck/internal/logging"
	"github.com/Goofygiraffe06/breachcheck/internal/models"
	"github.com/Goofygiraffe06/breachcheck/internal/status"
	"github.com/Goofygiraffe06/breachcheck/internal/utils"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// runCheck executes one check against a fresh display and returns what it shows.
func runCheck(r *http.Request, client checker.Checker, in models.FormInputs) status.Status {
	start := time.Now()
	rec := status.NewRecorder()
	err := checker.New(client, rec, checker.WithLogger(logging.GetLogger())).CheckPassword(r.Context(), in)

	result, _ := rec.Current()
	fields := []zap.Field{
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.String("name", utils.HashName(in.Name)),
		zap.String("phone", utils.HashPhone(in.Phone)),
		zap.Duration("duration", time.Since(start)),
	}

	var apiErr *breach.APIError
	switch {
	case errors.Is(err, checker.ErrMissingFields):
		logging.Debug("Check rejected: missing fields", fields...)
	case errors.As(err, &apiErr):
		logging.Warn("Check failed: backend error", append(fields, zap.Int("status", apiErr.StatusCode))...)
	case err != nil:
		logging.Error("Check failed: transport", append(fields, zap.Error(err))...)
	default:
		logging.Info("Check success", fields...)
	}
	return result
}

// bodyTooLarge reports whether err came from the request size limit.
func bodyTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	return errors.As(err, &maxErr)
}

// FormSubmitHandler runs a check from the form post and re-renders the page.
// The password is never echoed back.
func FormSubmitHandler(client checker.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			if bodyTooLarge(err) {
				logging.WarnLog("Form submission rejected: body too large")
				http.Error(w, http.StatusText(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge)
				return
			}
			logging.WarnLog("Form submission failed: %v", err)
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		in := models.FormInputs{
			Name:     r.PostForm.Get(FieldName),
			Phone:    r.PostForm.Get(FieldPhone),
			Password: r.PostForm.Get(FieldPassword),
		}
		result := runCheck(r, client, in)
		renderPage(w, http.StatusOK, pageData{Name: in.Name, Phone: in.Phone, Result: result})
	}
}

// APICheckHandler accepts {name, phone, password} and returns the status
// display as {text, color}. Every handled outcome is a 200; a body that
// does not decode is a 400, one over the size limit a 413.
func APICheckHandler(client checker.Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			if bodyTooLarge(err) {
				logging.WarnLog("API check rejected: body too large")
				respondJSON(w, http.StatusRequestEntityTooLarge, models.ErrorResponse{Error: "Request body too large"})
				return
			}
			logging.WarnLog("API check failed: invalid request")
			respondJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON"})
			return
		}

		result := runCheck(r, client, req.Inputs())
		respondJSON(w, http.StatusOK, models.CheckResultResponse{Text: result.Text, Color: string(result.Color)})
	}
}

// HealthHandler reports liveness.
func HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, models.StatusResponse{Status: "ok"})
	}
}
