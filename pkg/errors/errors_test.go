package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/KaminaDuck/hd2-tracker/pkg/errors"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "player",
			ID:       "Helldiver1",
		}
		assert.Equal(t, "player with ID Helldiver1 not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("achievement", "bug-stomper")
		assert.Equal(t, "achievement with ID bug-stomper not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("player", "test")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "stats",
			Message: "confidence keyset mismatch",
		}
		assert.Equal(t, "validation failed for field stats: confidence keyset mismatch", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid record",
		}
		assert.Equal(t, "validation failed: invalid record", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("images", 5, "exceeds maximum")
		assert.Contains(t, err.Error(), "images")
		assert.Contains(t, err.Error(), "exceeds maximum")
	})
}

func TestAPIError(t *testing.T) {
	t.Run("with status code", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Provider:   "gemini",
			StatusCode: 429,
			Message:    "rate limit exceeded",
		}
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "429")
		assert.Contains(t, err.Error(), "rate limit exceeded")
		assert.True(t, errors.Is(err, pkgerrors.ErrRateLimited))
	})

	t.Run("server error maps to engine unavailable", func(t *testing.T) {
		err := &pkgerrors.APIError{
			Provider:   "gemini",
			StatusCode: 503,
			Message:    "overloaded",
		}
		assert.True(t, pkgerrors.IsEngineUnavailable(err))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("connection timeout")
		err := &pkgerrors.APIError{
			Provider: "gemini",
			Message:  "request failed",
			Err:      baseErr,
		}
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "request failed")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewAPIError("gemini", 500, "internal server error")
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "500")
	})
}

func TestConfigError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ConfigError{
			Component: "engine",
			Message:   "no OCR engine configured",
		}
		assert.Contains(t, err.Error(), "engine")
		assert.Contains(t, err.Error(), "no OCR engine configured")
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewConfigError("roster", "path cannot be empty", nil)
		assert.Contains(t, err.Error(), "roster")
		assert.Contains(t, err.Error(), "cannot be empty")
	})
}

func TestIOError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.IOError{
			Operation: "read",
			Path:      "/tmp/roster/helldiver1.yaml",
			Message:   "permission denied",
			Err:       errors.New("permission denied"),
		}
		assert.Contains(t, err.Error(), "read")
		assert.Contains(t, err.Error(), "/tmp/roster/helldiver1.yaml")
		assert.Contains(t, err.Error(), "permission denied")
	})

	t.Run("unwrap", func(t *testing.T) {
		baseErr := errors.New("disk full")
		err := pkgerrors.NewIOError("write", "/data/roster", baseErr)
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("wrap helper", func(t *testing.T) {
		baseErr := errors.New("no such file")
		err := pkgerrors.WrapIO("open", "screenshot.png", baseErr)
		ioErr, ok := err.(*pkgerrors.IOError)
		require.True(t, ok)
		assert.Equal(t, "open", ioErr.Operation)
		assert.Equal(t, "screenshot.png", ioErr.Path)
	})
}

func TestResourceError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.ResourceError{
			Operation: "save",
			Resource:  "player",
			ID:        "Helldiver1",
			Message:   "already exists",
			Err:       pkgerrors.ErrAlreadyExists,
		}
		assert.Contains(t, err.Error(), "save")
		assert.Contains(t, err.Error(), "player")
		assert.Contains(t, err.Error(), "Helldiver1")
		assert.True(t, errors.Is(err, pkgerrors.ErrAlreadyExists))
	})

	t.Run("wrap helper", func(t *testing.T) {
		err := pkgerrors.WrapResource("delete", "player", "Helldiver1", errors.New("locked"))
		resErr, ok := err.(*pkgerrors.ResourceError)
		require.True(t, ok)
		assert.Equal(t, "delete", resErr.Operation)
		assert.Equal(t, "player", resErr.Resource)
	})
}

func TestParseError(t *testing.T) {
	t.Run("with file and position", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "achievements.yaml",
			Line:    10,
			Column:  5,
			Message: "unexpected token",
		}
		assert.Contains(t, err.Error(), "yaml")
		assert.Contains(t, err.Error(), "achievements.yaml")
		assert.Contains(t, err.Error(), "10:5")
		assert.Contains(t, err.Error(), "unexpected token")
	})

	t.Run("with file only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "yaml",
			File:    "helldiver1.yaml",
			Message: "invalid indentation",
		}
		assert.Contains(t, err.Error(), "yaml")
		assert.Contains(t, err.Error(), "helldiver1.yaml")
		assert.Contains(t, err.Error(), "invalid indentation")
	})

	t.Run("format only", func(t *testing.T) {
		err := &pkgerrors.ParseError{
			Format:  "json",
			Message: "syntax error",
		}
		assert.Contains(t, err.Error(), "json parse error")
		assert.Contains(t, err.Error(), "syntax error")
	})

	t.Run("constructor and wrap", func(t *testing.T) {
		baseErr := errors.New("EOF")
		err := pkgerrors.NewParseError("json", "reply.json", "unexpected end", baseErr)
		assert.Contains(t, err.Error(), "json")
		assert.Equal(t, baseErr, err.Unwrap())

		wrapped := pkgerrors.WrapParse("yaml", "roster.yaml", baseErr)
		parseErr, ok := wrapped.(*pkgerrors.ParseError)
		require.True(t, ok)
		assert.Equal(t, "yaml", parseErr.Format)
		assert.Equal(t, "roster.yaml", parseErr.File)
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Provider: "gemini",
			Method:   "api_key",
			Message:  "invalid API key format",
		}
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "api_key")
		assert.Contains(t, err.Error(), "invalid API key format")
		assert.True(t, errors.Is(err, pkgerrors.ErrAPIKeyInvalid))
	})

	t.Run("with wrapped error", func(t *testing.T) {
		baseErr := errors.New("token expired")
		err := pkgerrors.NewAuthenticationError("gemini", "api_key", "authentication failed", baseErr)
		assert.Contains(t, err.Error(), "gemini")
		assert.Equal(t, baseErr, err.Unwrap())
	})

	t.Run("is API key error", func(t *testing.T) {
		err := &pkgerrors.AuthenticationError{
			Provider: "gemini",
			Method:   "api_key",
			Message:  "missing",
		}
		assert.True(t, pkgerrors.IsAPIKeyError(err))
	})
}

func TestTimeoutError(t *testing.T) {
	t.Run("with duration", func(t *testing.T) {
		err := &pkgerrors.TimeoutError{
			Operation: "scan screenshot",
			Duration:  "60s",
			Message:   "model not responding",
		}
		assert.Contains(t, err.Error(), "scan screenshot")
		assert.Contains(t, err.Error(), "60s")
		assert.True(t, errors.Is(err, pkgerrors.ErrTimeout))
	})

	t.Run("without duration", func(t *testing.T) {
		err := pkgerrors.NewTimeoutError("scan", "", "connection lost")
		assert.Contains(t, err.Error(), "scan")
		assert.Contains(t, err.Error(), "connection lost")
		assert.NotContains(t, err.Error(), "after")
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("IsNotFound", func(t *testing.T) {
		err1 := pkgerrors.NewNotFoundError("player", "test")
		err2 := errors.New("not found")
		err3 := pkgerrors.ErrNotFound

		assert.True(t, pkgerrors.IsNotFound(err1))
		assert.False(t, pkgerrors.IsNotFound(err2))
		assert.True(t, pkgerrors.IsNotFound(err3))
	})

	t.Run("IsAlreadyExists", func(t *testing.T) {
		err1 := &pkgerrors.ResourceError{Err: pkgerrors.ErrAlreadyExists}
		err2 := pkgerrors.ErrAlreadyExists

		assert.True(t, pkgerrors.IsAlreadyExists(err1))
		assert.True(t, pkgerrors.IsAlreadyExists(err2))
	})

	t.Run("IsRateLimited", func(t *testing.T) {
		assert.True(t, pkgerrors.IsRateLimited(pkgerrors.ErrRateLimited))
	})

	t.Run("IsCanceled", func(t *testing.T) {
		assert.True(t, pkgerrors.IsCanceled(pkgerrors.ErrCanceled))
	})

	t.Run("IsEngineUnavailable", func(t *testing.T) {
		assert.True(t, pkgerrors.IsEngineUnavailable(pkgerrors.ErrEngineUnavailable))
	})
}

func TestWrapHelpers(t *testing.T) {
	t.Run("WrapValidation", func(t *testing.T) {
		err := pkgerrors.WrapValidation("playerName", errors.New("too long"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "playerName")
		assert.Contains(t, err.Error(), "too long")

		// nil error returns nil
		assert.Nil(t, pkgerrors.WrapValidation("field", nil))
	})

	t.Run("WrapIO", func(t *testing.T) {
		err := pkgerrors.WrapIO("write", "/tmp/file", errors.New("disk full"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "write")
		assert.Contains(t, err.Error(), "/tmp/file")

		assert.Nil(t, pkgerrors.WrapIO("read", "file", nil))
	})

	t.Run("WrapResource", func(t *testing.T) {
		err := pkgerrors.WrapResource("delete", "player", "Helldiver1", errors.New("in use"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "delete")
		assert.Contains(t, err.Error(), "player")

		assert.Nil(t, pkgerrors.WrapResource("create", "player", "test", nil))
	})

	t.Run("WrapParse", func(t *testing.T) {
		err := pkgerrors.WrapParse("json", "reply.json", errors.New("invalid syntax"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "json")
		assert.Contains(t, err.Error(), "reply.json")

		assert.Nil(t, pkgerrors.WrapParse("yaml", "file.yaml", nil))
	})

	t.Run("WrapAPI", func(t *testing.T) {
		err := pkgerrors.WrapAPI("gemini", 429, errors.New("rate limit"))
		assert.NotNil(t, err)
		assert.Contains(t, err.Error(), "gemini")
		assert.Contains(t, err.Error(), "429")

		assert.Nil(t, pkgerrors.WrapAPI("gemini", 200, nil))
	})
}

func TestErrorChaining(t *testing.T) {
	t.Run("multiple wrapping", func(t *testing.T) {
		baseErr := errors.New("connection refused")
		ioErr := pkgerrors.WrapIO("connect", "generativelanguage.googleapis.com", baseErr)
		apiErr := &pkgerrors.APIError{
			Provider: "gemini",
			Message:  "failed to connect",
			Err:      ioErr,
		}
		resErr := &pkgerrors.ResourceError{
			Operation: "scan",
			Resource:  "screenshot",
			Err:       apiErr,
		}

		// Check unwrapping chain
		assert.Equal(t, apiErr, resErr.Unwrap())
		assert.Equal(t, ioErr, apiErr.Unwrap())

		// errors.As should work through the chain
		var targetIOErr *pkgerrors.IOError
		assert.True(t, errors.As(resErr, &targetIOErr))
		assert.Equal(t, "connect", targetIOErr.Operation)
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", pkgerrors.ErrNotFound},
		{"ErrAlreadyExists", pkgerrors.ErrAlreadyExists},
		{"ErrInvalidInput", pkgerrors.ErrInvalidInput},
		{"ErrAPIKeyRequired", pkgerrors.ErrAPIKeyRequired},
		{"ErrAPIKeyInvalid", pkgerrors.ErrAPIKeyInvalid},
		{"ErrEngineUnavailable", pkgerrors.ErrEngineUnavailable},
		{"ErrRateLimited", pkgerrors.ErrRateLimited},
		{"ErrTimeout", pkgerrors.ErrTimeout},
		{"ErrCanceled", pkgerrors.ErrCanceled},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotNil(t, tc.err)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}
