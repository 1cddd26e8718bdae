package cli

import (
	"strings"
	"testing"
)

func TestDecodeProblem_UsesDetail(t *testing.T) {
	t.Parallel()

	body := []byte(`{"type":"https://gambit-api.forgo.software/errors/not-found","title":"Not Found","status":404,"detail":"card with token 7 not found"}`)

	err := decodeProblem(404, body)
	if err == nil {
		t.Fatal("expected an error")
	}
	if err.Error() != "card with token 7 not found" {
		t.Errorf("expected detail message, got %q", err.Error())
	}
}

func TestDecodeProblem_IncludesFieldErrors(t *testing.T) {
	t.Parallel()

	body := []byte(`{"title":"Validation Failed","status":422,"detail":"attack must be at most 1000000","errors":[{"field":"attack","message":"must be at most 1000000"}]}`)

	err := decodeProblem(422, body)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "attack: must be at most 1000000") {
		t.Errorf("expected field errors in message, got %q", err.Error())
	}
}

func TestDecodeProblem_NonJSONBody_FallsBackToStatusText(t *testing.T) {
	t.Parallel()

	err := decodeProblem(503, []byte("upstream exploded"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "Service Unavailable") {
		t.Errorf("expected status text fallback, got %q", err.Error())
	}
}
