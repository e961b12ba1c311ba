package website

import (
	"context"
	"path/filepath"
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

func TestSlugify(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Anna & Petr", "anna-petr"},
		{"Kateřina a Ondřej", "katerina-a-ondrej"},
		{"Žofie + Tomáš", "zofie-tomas"},
		{"  Lucie   Nováková  ", "lucie-novakova"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUpsertKeepsSlugStable(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	created, err := repo.Upsert(ctx, &Website{
		CoupleID:    "couple-1",
		CoupleNames: "Anna & Petr",
	}, now)
	require.NoError(t, err)
	require.Equal(t, "anna-petr", created.Slug)
	require.Equal(t, "#8B5CF6", created.PrimaryColor)

	// Renaming the couple must not break the shared link.
	updated, err := repo.Upsert(ctx, &Website{
		CoupleID:    "couple-1",
		CoupleNames: "Anička & Petr",
		Published:   true,
	}, now)
	require.NoError(t, err)
	require.Equal(t, "anna-petr", updated.Slug)
	require.Equal(t, "Anička & Petr", updated.CoupleNames)
	require.True(t, updated.Published)
}

func TestGetBySlugPublishedOnly(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	now := time.Now()

	_, err := repo.Upsert(ctx, &Website{
		CoupleID:    "couple-1",
		CoupleNames: "Anna & Petr",
	}, now)
	require.NoError(t, err)

	// Draft sites are not publicly reachable.
	site, err := repo.GetBySlug(ctx, "anna-petr")
	require.NoError(t, err)
	require.Nil(t, site)

	_, err = repo.Upsert(ctx, &Website{
		CoupleID:    "couple-1",
		CoupleNames: "Anna & Petr",
		Published:   true,
	}, now)
	require.NoError(t, err)

	site, err = repo.GetBySlug(ctx, "anna-petr")
	require.NoError(t, err)
	require.NotNil(t, site)
	require.Equal(t, "couple-1", site.CoupleID)
}
