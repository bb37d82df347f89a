package repository

import (
	"testing"

	"backend/internal/model"
)

func TestNotificationPrependOrder(t *testing.T) {
	s := newTestStore(t)
	repo := NewNotificationRepository(s)

	repo.Add(model.Notification{Title: "first", Message: "m1"})
	repo.Add(model.Notification{Title: "second", Message: "m2"})

	feed := repo.List()
	if len(feed) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(feed))
	}
	if feed[0].Title != "second" || feed[1].Title != "first" {
		t.Fatalf("expected newest first, got %q then %q", feed[0].Title, feed[1].Title)
	}
}

func TestNotificationAddStampsDefaults(t *testing.T) {
	s := newTestStore(t)
	repo := NewNotificationRepository(s)

	added := repo.Add(model.Notification{Title: "t", Message: "m", Read: true})
	if added.ID == 0 {
		t.Fatal("expected an id")
	}
	if added.Read {
		t.Fatal("expected new entries unread regardless of input")
	}
	if added.Type != model.NotifInfo {
		t.Fatalf("type = %q, want info default", added.Type)
	}
	if added.CreatedAt == "" {
		t.Fatal("expected a creation timestamp")
	}
}

func TestNotificationReadFlags(t *testing.T) {
	s := newTestStore(t)
	repo := NewNotificationRepository(s)
	a := repo.Add(model.Notification{Title: "a", Message: "m"})
	repo.Add(model.Notification{Title: "b", Message: "m"})

	repo.MarkRead(a.ID)
	feed := repo.List()
	for _, n := range feed {
		if n.ID == a.ID && !n.Read {
			t.Fatal("expected entry a read")
		}
		if n.ID != a.ID && n.Read {
			t.Fatal("expected entry b untouched")
		}
	}

	// Unknown id is a no-op.
	repo.MarkRead(a.ID + 99)

	repo.MarkAllRead()
	for _, n := range repo.List() {
		if !n.Read {
			t.Fatalf("expected all read, %d is not", n.ID)
		}
	}

	repo.Clear()
	if len(repo.List()) != 0 {
		t.Fatal("expected empty feed after clear")
	}
}
