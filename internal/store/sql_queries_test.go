package store

import (
	"strings"
	"testing"
	"time"

	"bookshelf/models"
)

func TestBuildListBooksQuery(t *testing.T) {
	query, args, err := buildListBooksQuery(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "user_id = $1") {
		t.Errorf("expected owner filter in query, got: %s", query)
	}
	if !strings.Contains(query, "ORDER BY id DESC") {
		t.Errorf("expected ordering in query, got: %s", query)
	}
	if len(args) != 1 || args[0] != int64(10) {
		t.Errorf("expected single owner arg, got: %v", args)
	}
}

func TestBuildGetBookQuery(t *testing.T) {
	query, args, err := buildGetBookQuery(10, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "id = $") || !strings.Contains(query, "user_id = $") {
		t.Errorf("expected both id and owner predicates, got: %s", query)
	}
	if len(args) != 2 {
		t.Errorf("expected two args, got: %v", args)
	}
}

func TestBuildUpdateBookQuery_PartialFields(t *testing.T) {
	title := "IT"
	price := 55000.0
	update := models.BookUpdate{Title: &title, Price: &price}

	query, args, err := buildUpdateBookQuery(10, 1, update, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "title = $") {
		t.Errorf("expected title in SET clause, got: %s", query)
	}
	if !strings.Contains(query, "price = $") {
		t.Errorf("expected price in SET clause, got: %s", query)
	}
	if strings.Contains(query, "author = $") {
		t.Errorf("author was not provided, must not appear in SET clause: %s", query)
	}
	if !strings.Contains(query, "updated_at = $") {
		t.Errorf("expected updated_at in SET clause, got: %s", query)
	}
	if !strings.Contains(query, "user_id = $") {
		t.Errorf("expected owner predicate in WHERE clause, got: %s", query)
	}
	if !strings.Contains(query, "RETURNING") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}

	// title, price, updated_at + two WHERE args
	if len(args) != 5 {
		t.Errorf("expected 5 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateBookQuery_NoFields(t *testing.T) {
	query, args, err := buildUpdateBookQuery(10, 1, models.BookUpdate{}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// only the timestamp touch plus WHERE args
	if !strings.Contains(query, "updated_at = $1") {
		t.Errorf("expected only updated_at in SET clause, got: %s", query)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d: %v", len(args), args)
	}
}

func TestBuildUpdateUserQuery(t *testing.T) {
	email := "new@example.com"
	update := models.UserUpdate{Email: &email}

	query, args, err := buildUpdateUserQuery(7, update, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "email = $1") {
		t.Errorf("expected email in SET clause, got: %s", query)
	}
	if strings.Contains(query, "name = $") {
		t.Errorf("name was not provided, must not appear in SET clause: %s", query)
	}
	if !strings.Contains(query, "user_id = $") {
		t.Errorf("expected user predicate in WHERE clause, got: %s", query)
	}

	// email, updated_at + WHERE arg
	if len(args) != 3 {
		t.Errorf("expected 3 args, got %d: %v", len(args), args)
	}
}
