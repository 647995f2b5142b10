package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/isprava/concierge/ent"
	"github.com/isprava/concierge/ent/enttest"
)

// newTestClient opens an isolated in-memory database per test.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", uuid.New().String())
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// createTestUser seeds one staff user.
func createTestUser(t *testing.T, client *ent.Client, email string, active, admin bool) *ent.StaffUser {
	t.Helper()
	user, err := client.StaffUser.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetName("Test User").
		SetAcls([]string{}).
		SetActive(active).
		SetAdmin(admin).
		Save(context.Background())
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}
