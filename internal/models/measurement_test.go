package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestChanges(t *testing.T) {
	first := &Measurement{
		Date:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
		Weight: fptr(78),
		Chest:  fptr(100),
	}
	latest := &Measurement{
		Date:    time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Weight:  fptr(75),
		BodyFat: fptr(18),
	}

	c := Changes(latest, first)
	require.NotNil(t, c)
	require.NotNil(t, c.Weight)
	require.Equal(t, -3.0, *c.Weight)

	// metrics missing on either endpoint stay nil
	require.Nil(t, c.BodyFat)
	require.Nil(t, c.Chest)
	require.Nil(t, c.Hips)
}

func TestChangesNilEndpoints(t *testing.T) {
	require.Nil(t, Changes(nil, nil))
	require.Nil(t, Changes(&Measurement{}, nil))
	require.Nil(t, Changes(nil, &Measurement{}))
}

func TestChangesSingleRecordIsZeroDelta(t *testing.T) {
	m := &Measurement{Weight: fptr(80)}
	c := Changes(m, m)
	require.NotNil(t, c.Weight)
	require.Equal(t, 0.0, *c.Weight)
}
