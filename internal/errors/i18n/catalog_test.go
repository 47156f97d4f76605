package i18n

import (
	"strings"
	"testing"
)

func TestGetCatalogFallsBackToBaseLocale(t *testing.T) {
	c := GetCatalog("fr-FR")
	if c.Locale() != BaseLocale {
		t.Fatalf("locale = %q, want %q", c.Locale(), BaseLocale)
	}
}

func TestGetCatalogMatchesRegionlessTag(t *testing.T) {
	c := GetCatalog("pt")
	if c.Locale() != "pt-BR" {
		t.Fatalf("locale = %q, want pt-BR", c.Locale())
	}
}

func TestGetCatalogHandlesMalformedLocale(t *testing.T) {
	c := GetCatalog("!!")
	if c.Locale() != BaseLocale {
		t.Fatalf("locale = %q, want %q", c.Locale(), BaseLocale)
	}
}

func TestFormatRendersMetadata(t *testing.T) {
	msg := GetCatalog("en-US").Format(CodeEventNotActive, map[string]string{"EventID": "42"})
	if !strings.Contains(msg, "42") {
		t.Fatalf("message %q does not contain event id", msg)
	}
}

func TestFormatFallsBackToCode(t *testing.T) {
	msg := GetCatalog("en-US").Format("NO_SUCH_CODE", nil)
	if msg != "NO_SUCH_CODE" {
		t.Fatalf("message = %q, want the raw code", msg)
	}
}
