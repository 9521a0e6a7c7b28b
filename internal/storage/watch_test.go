// ABOUTME: Tests for live query subscriptions.
// ABOUTME: Validates signal delivery, coalescing, topic isolation, cancel.
package storage

import (
	"testing"
	"time"

	"github.com/harperreed/keto/internal/models"
)

func awaitSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for change signal")
	}
}

func TestWatchDeliversOnWrite(t *testing.T) {
	db := setupTestDB(t)

	ch, cancel := db.Watch(TopicFoods)
	defer cancel()

	if err := db.SaveFoodItem(models.NewFoodItem("Avocado", 1.8, 160)); err != nil {
		t.Fatalf("SaveFoodItem failed: %v", err)
	}

	awaitSignal(t, ch)
}

func TestWatchTopicsAreIsolated(t *testing.T) {
	db := setupTestDB(t)

	metricsCh, cancel := db.Watch(TopicMetrics)
	defer cancel()

	if err := db.SaveFoodItem(models.NewFoodItem("Butter", 0.1, 717)); err != nil {
		t.Fatalf("SaveFoodItem failed: %v", err)
	}

	select {
	case <-metricsCh:
		t.Error("food write must not signal the metrics topic")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchCoalescesSignals(t *testing.T) {
	db := setupTestDB(t)

	ch, cancel := db.Watch(TopicMetrics)
	defer cancel()

	// Multiple writes with no reader in between collapse into one pending
	// signal; the subscriber re-queries instead of counting events.
	db.SaveHealthMetric(models.NewHealthMetric("2025-08-14"))
	db.SaveHealthMetric(models.NewHealthMetric("2025-08-15"))
	db.SaveHealthMetric(models.NewHealthMetric("2025-08-16"))

	awaitSignal(t, ch)

	select {
	case <-ch:
		t.Error("expected coalesced signals, got a second pending one")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestWatchDeleteSignalsLogsTopic(t *testing.T) {
	db := setupTestDB(t)

	f := models.NewFoodItem("Lachs", 0, 208)
	db.SaveFoodItem(f)
	db.CreateDailyLog(models.NewDailyLog(f, 100, "2025-08-15"))

	logsCh, cancel := db.Watch(TopicLogs)
	defer cancel()

	// Deleting a food cascades into daily logs, so both topics signal.
	if err := db.DeleteFoodItem("Lachs"); err != nil {
		t.Fatalf("DeleteFoodItem failed: %v", err)
	}

	awaitSignal(t, logsCh)
}

func TestWatchCancel(t *testing.T) {
	db := setupTestDB(t)

	ch, cancel := db.Watch(TopicFoods)
	cancel()

	if _, open := <-ch; open {
		t.Error("expected channel to be closed after cancel")
	}

	// Cancel twice is safe, and writes after cancel do not panic.
	cancel()
	if err := db.SaveFoodItem(models.NewFoodItem("Brokkoli", 4.4, 34)); err != nil {
		t.Fatalf("SaveFoodItem failed: %v", err)
	}
}

func TestWatchChannelsCloseOnDBClose(t *testing.T) {
	db := setupTestDB(t)

	ch, _ := db.Watch(TopicLogs)

	if err := db.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	select {
	case _, open := <-ch:
		if open {
			t.Error("expected channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
