package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorRendersLocalizedMessage(t *testing.T) {
	err := Newf(CodeEventNotActive, map[string]string{"EventID": "7"})
	if !strings.Contains(err.Error(), "7") {
		t.Fatalf("message %q missing event id", err.Error())
	}
	if !strings.Contains(err.Localize("pt-BR"), "Evento") {
		t.Fatalf("pt-BR message = %q", err.Localize("pt-BR"))
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(CodePersistenceFailure, cause)
	if !stderrors.Is(err, cause) {
		t.Fatal("expected wrapped cause to satisfy errors.Is")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("message %q missing cause", err.Error())
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(New(CodeLedgerNotFound)); got != CodeLedgerNotFound {
		t.Fatalf("code = %q, want %q", got, CodeLedgerNotFound)
	}
	if got := CodeOf(stderrors.New("plain")); got != CodeUnknown {
		t.Fatalf("code = %q, want %q", got, CodeUnknown)
	}
}
