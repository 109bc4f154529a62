package errors

import (
	stderrs "errors"
	"net/http"
	"testing"
)

func TestWrapAndRoot(t *testing.T) {
	cause := stderrs.New("boom")
	err := Wrapf(cause, ErrorCodeData, "loading %s", "events.csv")

	if got := err.Error(); got != "loading events.csv: boom" {
		t.Fatalf("message %q", got)
	}
	if Root(err) != cause {
		t.Fatalf("root must be the original cause, got %v", Root(err))
	}
	if !IsCode(err, ErrorCodeData) {
		t.Fatalf("code lost in wrapping: %v", CodeOf(err))
	}
	if !stderrs.Is(err, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
}

func TestCodeOfForeignError(t *testing.T) {
	if CodeOf(stderrs.New("plain")) != ErrorCodeUnknown {
		t.Fatal("foreign errors default to unknown")
	}
	if CodeOf(nil) != ErrorCodeUnknown {
		t.Fatal("nil defaults to unknown")
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{NotFoundf("missing"), http.StatusNotFound},
		{InvalidArgf("bad"), http.StatusUnprocessableEntity},
		{Validationf("invalid"), http.StatusBadRequest},
		{JSONErrf("broken"), http.StatusBadRequest},
		{Dataf("shape"), http.StatusInternalServerError},
		{PanicErrf("recovered"), http.StatusInternalServerError},
		{stderrs.New("foreign"), http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := HTTPStatus(c.err); got != c.want {
			t.Fatalf("HTTPStatus(%v) = %d want %d", c.err, got, c.want)
		}
	}
}

func TestWithFieldCopyOnWrite(t *testing.T) {
	base := Validationf("chunks must evenly divide 24")
	withField := WithField(base, "chunks")

	be, _ := As(base)
	fe, _ := As(withField)
	if be.Field() != "" {
		t.Fatal("original must stay untouched")
	}
	if fe.Field() != "chunks" {
		t.Fatalf("field %q", fe.Field())
	}

	w := WireFrom(withField)
	if w.Field != "chunks" || w.Code != ErrorCodeValidation {
		t.Fatalf("wire %+v", w)
	}
}

func TestWithFieldForeignError(t *testing.T) {
	plain := stderrs.New("plain")
	if WithField(plain, "x") != plain {
		t.Fatal("foreign errors pass through unchanged")
	}
}

func TestWireFromNil(t *testing.T) {
	if w := WireFrom(nil); w.Code != ErrorCodeUnknown || w.Message != "" {
		t.Fatalf("nil must map to the zero wire, got %+v", w)
	}
}

func TestWrapIf(t *testing.T) {
	if WrapIf(nil, ErrorCodeData, "ignored") != nil {
		t.Fatal("nil stays nil")
	}
	if err := WrapIf(stderrs.New("x"), ErrorCodeData, "ctx"); !IsCode(err, ErrorCodeData) {
		t.Fatalf("wrap lost code: %v", err)
	}
}
