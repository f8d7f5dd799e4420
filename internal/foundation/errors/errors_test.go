package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := NewError(CategoryProvider, "invalid provider").
			WithSeverity(SeverityFatal).
			WithContext("file", "stripe.json").
			Build()

		if err.Category() != CategoryProvider {
			t.Errorf("expected category %s, got %s", CategoryProvider, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Message() != "invalid provider" {
			t.Errorf("expected message 'invalid provider', got %s", err.Message())
		}

		file, exists := err.Context().GetString("file")
		if !exists || file != "stripe.json" {
			t.Errorf("expected context file=stripe.json, got %v", file)
		}
	})

	t.Run("Error detection", func(t *testing.T) {
		err := ConfigError("test error").Build()

		if !IsClassified(err) {
			t.Error("expected error to be classified")
		}
		if !HasCategory(err, CategoryConfig) {
			t.Error("expected error to have config category")
		}
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
	})

	t.Run("Detection through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("render_index: %w", TemplateError("missing field").Build())

		if GetCategory(wrapped) != CategoryTemplate {
			t.Errorf("expected template category, got %s", GetCategory(wrapped))
		}
		if GetSeverity(wrapped) != SeverityFatal {
			t.Errorf("expected fatal severity, got %s", GetSeverity(wrapped))
		}
		if GetCategory(errors.New("plain")) != CategoryInternal {
			t.Error("expected unclassified errors to map to internal")
		}
	})

	t.Run("WithContext copies", func(t *testing.T) {
		base := FileSystemError("write failed").Build()
		derived := base.WithContext("path", "site/index.html")

		if _, ok := base.Context().Get("path"); ok {
			t.Error("expected original context to stay unchanged")
		}
		if p, _ := derived.Context().GetString("path"); p != "site/index.html" {
			t.Errorf("expected derived path context, got %q", p)
		}
	})
}

func TestErrorBuilder(t *testing.T) {
	t.Run("Fluent API", func(t *testing.T) {
		originalErr := errors.New("original error")
		err := WrapError(originalErr, CategoryFileSystem, "copy failed").
			Warning().
			WithContext("src", "assets/style.css").
			WithContextMap(ErrorContext{"dst": "site/assets/style.css"}).
			Build()

		if err.Severity() != SeverityWarning {
			t.Errorf("expected severity %s, got %s", SeverityWarning, err.Severity())
		}
		if !errors.Is(err, originalErr) {
			t.Error("expected error to wrap original error")
		}
		if dst, _ := err.Context().GetString("dst"); dst != "site/assets/style.css" {
			t.Errorf("expected dst context, got %s", dst)
		}
	})

	t.Run("Convenience constructors", func(t *testing.T) {
		tests := []struct {
			name     string
			builder  *ErrorBuilder
			category ErrorCategory
		}{
			{"ConfigError", ConfigError("test"), CategoryConfig},
			{"ValidationError", ValidationError("test"), CategoryValidation},
			{"ProviderError", ProviderError("test"), CategoryProvider},
			{"TemplateError", TemplateError("test"), CategoryTemplate},
			{"FileSystemError", FileSystemError("test"), CategoryFileSystem},
			{"BuildError", BuildError("test"), CategoryBuild},
			{"InternalError", InternalError("test"), CategoryInternal},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.builder.Build()
				if err.Category() != tt.category {
					t.Errorf("expected category %s, got %s", tt.category, err.Category())
				}
				if !err.IsFatal() {
					t.Errorf("expected %s to be fatal", tt.name)
				}
			})
		}
	})
}

func TestErrorContext(t *testing.T) {
	ctx1 := ErrorContext{}.Set("key1", "value1").Set("shared", "original")
	ctx2 := ErrorContext{}.Set("key2", 42).Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	if v, _ := merged.GetString("key1"); v != "value1" {
		t.Errorf("expected key1=value1, got %s", v)
	}
	if v, _ := merged.Get("key2"); v != 42 {
		t.Errorf("expected key2=42, got %v", v)
	}
	if v, _ := merged.GetString("shared"); v != "overridden" {
		t.Errorf("expected shared=overridden, got %s", v)
	}
	if _, ok := merged.GetString("key2"); ok {
		t.Error("expected GetString to reject non-string values")
	}
}
