package models

import "time"

// Measurement is one dated body-measurement record. Every metric is optional;
// nil means the metric was not taken that day.
type Measurement struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	Weight    *float64  `json:"weight"`
	BodyFat   *float64  `json:"bodyFat"`
	Chest     *float64  `json:"chest"`
	Waist     *float64  `json:"waist"`
	Hips      *float64  `json:"hips"`
	Arms      *float64  `json:"arms"`
	Thighs    *float64  `json:"thighs"`
	Calves    *float64  `json:"calves"`
	Shoulders *float64  `json:"shoulders"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// MeasurementChanges holds the per-metric delta between the latest and the
// earliest measurement. A metric is nil when either endpoint lacks it.
type MeasurementChanges struct {
	Weight    *float64 `json:"weight"`
	BodyFat   *float64 `json:"bodyFat"`
	Chest     *float64 `json:"chest"`
	Waist     *float64 `json:"waist"`
	Hips      *float64 `json:"hips"`
	Arms      *float64 `json:"arms"`
	Thighs    *float64 `json:"thighs"`
	Calves    *float64 `json:"calves"`
	Shoulders *float64 `json:"shoulders"`
}

func delta(latest, first *float64) *float64 {
	if latest == nil || first == nil {
		return nil
	}
	d := *latest - *first
	return &d
}

// Changes computes the element-wise delta latest minus first.
func Changes(latest, first *Measurement) *MeasurementChanges {
	if latest == nil || first == nil {
		return nil
	}
	return &MeasurementChanges{
		Weight:    delta(latest.Weight, first.Weight),
		BodyFat:   delta(latest.BodyFat, first.BodyFat),
		Chest:     delta(latest.Chest, first.Chest),
		Waist:     delta(latest.Waist, first.Waist),
		Hips:      delta(latest.Hips, first.Hips),
		Arms:      delta(latest.Arms, first.Arms),
		Thighs:    delta(latest.Thighs, first.Thighs),
		Calves:    delta(latest.Calves, first.Calves),
		Shoulders: delta(latest.Shoulders, first.Shoulders),
	}
}
