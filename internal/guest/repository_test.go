package guest

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"svoji/internal/database"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.SQL.Exec(`
		INSERT INTO couples (id, email, password_hash, created_at)
		VALUES ('couple-1', 'test@example.com', 'hash', ?)`, time.Now().UTC())
	require.NoError(t, err)

	return NewRepository(db.SQL)
}

func strPtr(s string) *string { return &s }

func TestCreateDefaultsToPending(t *testing.T) {
	repo := newTestRepository(t)

	g, err := repo.Create(context.Background(), &Guest{
		CoupleID: "couple-1",
		Name:     "Marie Dvořáková",
	}, time.Now())
	require.NoError(t, err)
	require.Equal(t, RSVPPending, g.RSVPStatus)
	require.NotEmpty(t, g.ID)
}

func TestUpsertRSVPCreatesAndUpdates(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	created, err := repo.UpsertRSVP(ctx, "couple-1", RSVPSubmission{
		Name:      "Jan Novák",
		Email:     "jan@example.com",
		Attending: true,
		Dietary:   "vegetarián",
	}, now)
	require.NoError(t, err)
	require.Equal(t, RSVPConfirmed, created.RSVPStatus)
	require.NotNil(t, created.RSVPDate)
	require.Equal(t, "vegetarián", *created.DietaryRequirements)

	// Same email again: the earlier answer is replaced, not duplicated.
	updated, err := repo.UpsertRSVP(ctx, "couple-1", RSVPSubmission{
		Name:      "Jan Novák",
		Email:     "jan@example.com",
		Attending: false,
	}, now.Add(time.Hour))
	require.NoError(t, err)
	require.Equal(t, created.ID, updated.ID)
	require.Equal(t, RSVPDeclined, updated.RSVPStatus)

	guests, err := repo.ListByCouple(ctx, "couple-1")
	require.NoError(t, err)
	require.Len(t, guests, 1)
}

func TestUpdateUnknownGuest(t *testing.T) {
	repo := newTestRepository(t)

	g, err := repo.Update(context.Background(), "couple-1", &Guest{ID: "no-such-guest", Name: "Nikdo"})
	require.NoError(t, err)
	require.Nil(t, g)
}

func TestDelete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	g, err := repo.Create(ctx, &Guest{CoupleID: "couple-1", Name: "Eva Malá"}, time.Now())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "couple-1", g.ID))

	guests, err := repo.ListByCouple(ctx, "couple-1")
	require.NoError(t, err)
	require.Empty(t, guests)
}

func TestWriteCSV(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &Guest{
		CoupleID:   "couple-1",
		Name:       "Jan Novák",
		Email:      strPtr("jan@example.com"),
		GroupName:  strPtr("rodina"),
		PlusOne:    true,
		RSVPStatus: RSVPConfirmed,
	}, time.Now())
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, repo.WriteCSV(ctx, "couple-1", &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "Jméno,E-mail,Telefon,Skupina,Doprovod,Dieta,RSVP,Stůl,Poznámky", lines[0])
	require.Contains(t, lines[1], "Jan Novák,jan@example.com,,rodina,ano,,confirmed,,")
}
