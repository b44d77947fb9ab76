package drafts

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/aimeevoice/aimee-web-app/internal/models"
)

func TestAddAndConfirm(t *testing.T) {
	r := New(15 * time.Minute)

	p, err := r.Add(models.EmailDraft{Recipient: "maria@corkandbarrel.com", Body: "Hi Maria"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if p.ID == uuid.Nil || p.Code == "" {
		t.Fatalf("pending draft must carry id and code: %+v", p)
	}

	d, err := r.Confirm(p.ID, p.Code)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if d.Recipient != "maria@corkandbarrel.com" {
		t.Fatalf("unexpected draft: %+v", d)
	}

	// Повторное подтверждение — черновик уже израсходован.
	if _, err := r.Confirm(p.ID, p.Code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound on second confirm, got %v", err)
	}
}

func TestConfirmRejectsWrongCode(t *testing.T) {
	r := New(15 * time.Minute)

	p, err := r.Add(models.EmailDraft{Recipient: "x@y.z", Body: "b"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, err := r.Confirm(p.ID, "000000"); !errors.Is(err, ErrBadCode) {
		t.Fatalf("want ErrBadCode, got %v", err)
	}
	// Неверный код не сжигает черновик.
	if _, err := r.Confirm(p.ID, p.Code); err != nil {
		t.Fatalf("draft must survive a wrong code: %v", err)
	}
}

func TestConfirmUnknownDraft(t *testing.T) {
	r := New(15 * time.Minute)
	if _, err := r.Confirm(uuid.New(), "123456"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestConfirmExpiredDraft(t *testing.T) {
	r := New(10 * time.Minute)

	p, err := r.Add(models.EmailDraft{Recipient: "x@y.z", Body: "b"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	r.now = func() time.Time { return p.CreatedAt.Add(11 * time.Minute) }

	if _, err := r.Confirm(p.ID, p.Code); !errors.Is(err, ErrExpired) {
		t.Fatalf("want ErrExpired, got %v", err)
	}
}

func TestSweepDropsStaleDrafts(t *testing.T) {
	r := New(10 * time.Minute)

	stale, err := r.Add(models.EmailDraft{Recipient: "a@b.c", Body: "old"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	r.now = func() time.Time { return stale.CreatedAt.Add(time.Hour) }
	if _, err := r.Add(models.EmailDraft{Recipient: "d@e.f", Body: "new"}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if _, ok := r.items[stale.ID]; ok {
		t.Fatal("stale draft must be swept on the next Add")
	}
}

func TestWrongCodeDoesNotExistAfterBadCodeThenExpiry(t *testing.T) {
	r := New(time.Minute)

	p, err := r.Add(models.EmailDraft{Recipient: "x@y.z", Body: "b"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	r.now = func() time.Time { return p.CreatedAt.Add(2 * time.Minute) }

	// Просроченный черновик удаляется при первой же попытке подтверждения.
	if _, err := r.Confirm(p.ID, p.Code); !errors.Is(err, ErrExpired) {
		t.Fatalf("want ErrExpired, got %v", err)
	}
	if _, err := r.Confirm(p.ID, p.Code); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after expiry cleanup, got %v", err)
	}
}
