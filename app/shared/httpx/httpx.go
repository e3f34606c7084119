package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	authdomain "github.com/Black-And-White-Club/roomly/app/modules/auth/domain"
	"github.com/Black-And-White-Club/roomly/app/shared/apperr"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// WriteJSON encodes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteDetail writes an error response with a client-facing detail.
func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJSON(w, status, ErrorBody{Detail: detail})
}

// StatusFor maps a domain error kind to an HTTP status code.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindInvalid:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err. Domain errors keep their detail; anything else is
// logged and hidden behind a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	detail, ok := apperr.DetailOf(err)
	if !ok {
		if logger != nil {
			logger.ErrorContext(r.Context(), "Request failed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Any("error", err),
			)
		}
		WriteDetail(w, http.StatusInternalServerError, "internal server error")
		return
	}

	status := StatusFor(apperr.KindOf(err))
	if status >= http.StatusInternalServerError && logger != nil {
		logger.ErrorContext(r.Context(), "Request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
	}
	WriteDetail(w, status, detail)
}

// Decode reads a JSON body into dst and runs struct validation on it.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperr.Invalid("request body required")
		}
		return apperr.Wrap(apperr.Invalid("invalid request body"), err)
	}
	return Validate(dst)
}

// Validate runs the struct validation tags on v.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Wrap(apperr.Invalid("invalid request body"), err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return apperr.Invalid(fe.Field() + " required")
	case "min", "gte":
		return apperr.Invalid(fe.Field() + " too short")
	case "max", "lte":
		return apperr.Invalid(fe.Field() + " too long")
	default:
		return apperr.Invalid("invalid " + fe.Field())
	}
}

// PathInt64 parses an integer chi URL parameter.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Invalid(fmt.Sprintf("invalid %s", name))
	}
	return id, nil
}

// QueryInt64 parses a required integer query parameter.
func QueryInt64(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, apperr.Invalid(name + " required")
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Invalid(fmt.Sprintf("invalid %s", name))
	}
	return v, nil
}

// QueryString returns a required, non-empty query parameter.
func QueryString(r *http.Request, name string) (string, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return "", apperr.Invalid(name + " required")
	}
	return v, nil
}

// Principal returns the caller stored by the authentication middleware.
func Principal(r *http.Request) (authdomain.Principal, error) {
	p, ok := authdomain.PrincipalFromContext(r.Context())
	if !ok {
		return p, apperr.Unauthorized("missing token")
	}
	return p, nil
}
