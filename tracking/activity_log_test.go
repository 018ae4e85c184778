package tracking

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"package-tracker-service/tracking/models"
)

func TestActivityLogNewestFirst(t *testing.T) {
	log := NewActivityLog(3)

	first := log.Add("Package pending", "PKT1", models.SeverityInfo, fixedNow)
	second := log.Add("Package delivered", "PKT1", models.SeveritySuccess, fixedNow)

	require.NotEqual(t, first.ID, second.ID)
	require.Equal(t, []models.Activity{second, first}, log.List())
}

func TestActivityLogEvictsOldest(t *testing.T) {
	log := NewActivityLog(DefaultActivityLimit)

	for i := range DefaultActivityLimit + 1 {
		log.Add(fmt.Sprintf("action %d", i), "PKT1", models.SeverityInfo, fixedNow.Add(time.Duration(i)*time.Second))
	}

	entries := log.List()
	require.Len(t, entries, DefaultActivityLimit)
	require.Equal(t, fmt.Sprintf("action %d", DefaultActivityLimit), entries[0].Action)
	require.Equal(t, "action 1", entries[len(entries)-1].Action)
}

func TestActivityLogNonPositiveLimitFallsBack(t *testing.T) {
	require.Equal(t, DefaultActivityLimit, NewActivityLog(0).Limit())
	require.Equal(t, DefaultActivityLimit, NewActivityLog(-4).Limit())
}

func TestStoreActivityLogIsBounded(t *testing.T) {
	store, _, _ := newTestStore(t, WithActivityLimit(5))

	pkg, err := store.AddPackage(draft("PKT1", models.StatusPending, fixedNow))
	require.NoError(t, err)
	for range 10 {
		require.NoError(t, store.UpdatePackageStatus(pkg.ID, models.StatusInTransit))
	}

	acts := store.Activities()
	require.Len(t, acts, 5)
	for _, a := range acts {
		require.Equal(t, "Package in_transit", a.Action)
	}
}
