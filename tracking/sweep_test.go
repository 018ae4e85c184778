package tracking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"package-tracker-service/tracking/models"
)

func TestSweepDelayedMarksOverduePackages(t *testing.T) {
	store, notifier, _ := newTestStore(t)
	yesterday := fixedNow.Add(-24 * time.Hour)
	tomorrow := fixedNow.Add(24 * time.Hour)

	overdue, err := store.AddPackage(draft("PKT1", models.StatusPending, yesterday))
	require.NoError(t, err)
	delivered, err := store.AddPackage(draft("PKT2", models.StatusDelivered, tomorrow))
	require.NoError(t, err)
	notifier.success = nil

	require.Equal(t, 1, store.SweepDelayed(fixedNow))

	got, _ := store.Package(overdue.ID)
	require.Equal(t, models.StatusDelayed, got.Status)
	got, _ = store.Package(delivered.ID)
	require.Equal(t, models.StatusDelivered, got.Status)

	require.Equal(t, []string{"Package status updated to delayed"}, notifier.success)
	require.Equal(t, []string{"1 package(s) marked as delayed"}, notifier.warnings)

	acts := store.Activities()
	require.Equal(t, "Package delayed", acts[0].Action)
	require.Equal(t, models.SeverityError, acts[0].Type)
}

func TestSweepDelayedSkipsSettledPackages(t *testing.T) {
	store, notifier, _ := newTestStore(t)
	past := fixedNow.Add(-time.Hour)

	_, err := store.AddPackage(draft("PKT1", models.StatusDelivered, past))
	require.NoError(t, err)
	_, err = store.AddPackage(draft("PKT2", models.StatusDelayed, past))
	require.NoError(t, err)
	_, err = store.AddPackage(draft("PKT3", models.StatusInTransit, time.Time{}))
	require.NoError(t, err)

	require.Zero(t, store.SweepDelayed(fixedNow))
	require.Empty(t, notifier.warnings)
}

func TestSweepDelayedIsIdempotent(t *testing.T) {
	store, _, _ := newTestStore(t)
	_, err := store.AddPackage(draft("PKT1", models.StatusInTransit, fixedNow.Add(-time.Minute)))
	require.NoError(t, err)

	require.Equal(t, 1, store.SweepDelayed(fixedNow))
	require.Zero(t, store.SweepDelayed(fixedNow))
}
