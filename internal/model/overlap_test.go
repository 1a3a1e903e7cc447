package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOverlapIndex(t *testing.T) {
	t.Run("Same day intersecting ranges", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "Monday", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "Monday", StartMin: 540, EndMin: 630},
			{ID: "T3", Day: "Monday", StartMin: 600, EndMin: 690},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		assert.True(t, index.Overlaps("T1", "T2"))
		assert.True(t, index.Overlaps("T2", "T3"))
		assert.False(t, index.Overlaps("T1", "T3"))
	})

	t.Run("Half-open ranges: touching slots do not overlap", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "Monday", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "Monday", StartMin: 570, EndMin: 660},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		assert.False(t, index.Overlaps("T1", "T2"))
		assert.False(t, index.Overlaps("T2", "T1"))
	})

	t.Run("Different days never overlap", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "Monday", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "Tuesday", StartMin: 480, EndMin: 570},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		assert.False(t, index.Overlaps("T1", "T2"))
	})

	t.Run("Day comparison is case-insensitive", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "monday", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "MONDAY", StartMin: 500, EndMin: 590},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		assert.True(t, index.Overlaps("T1", "T2"))
	})

	t.Run("Empty day never matches", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "", StartMin: 480, EndMin: 570},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		assert.False(t, index.Overlaps("T1", "T2"))
	})

	t.Run("Relation is symmetric and irreflexive", func(t *testing.T) {
		// Arrange
		slots := []TimeSlot{
			{ID: "T1", Day: "Monday", StartMin: 480, EndMin: 570},
			{ID: "T2", Day: "Monday", StartMin: 500, EndMin: 590},
			{ID: "T3", Day: "Monday", StartMin: 560, EndMin: 650},
			{ID: "T4", Day: "Tuesday", StartMin: 480, EndMin: 570},
		}

		// Act
		index := BuildOverlapIndex(slots)

		// Assert
		for _, a := range slots {
			assert.False(t, index.Overlaps(a.ID, a.ID))
			for _, b := range slots {
				assert.Equal(t, index.Overlaps(a.ID, b.ID), index.Overlaps(b.ID, a.ID))
			}
		}
	})
}
