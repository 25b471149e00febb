// Package estimator helps users who do not read a meter per category: it
// turns device usage into an approximate monthly kWh figure.
package estimator

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"luzialabs/luzia/internal/models"

	"github.com/shopspring/decimal"
)

// ErrUnknownDevice is returned by Lookup for a name with no preset.
var ErrUnknownDevice = errors.New("unknown device")

// UsageUnit tells what one unit of a device's consumption figure covers.
type UsageUnit string

const (
	PerHour  UsageUnit = "hour"
	PerDay   UsageUnit = "day"
	PerCycle UsageUnit = "cycle"
)

// Device is a typical household appliance with its average consumption.
type Device struct {
	Key      string
	Name     string
	KWh      decimal.Decimal
	Unit     UsageUnit
	Category string
}

// Usage describes how a device is used over the estimated period. PerDay is
// hours per day for PerHour devices and cycles per day for PerCycle devices.
// It is ignored for PerDay devices, which run all day.
type Usage struct {
	Quantity decimal.Decimal
	PerDay   decimal.Decimal
	Days     decimal.Decimal
}

var presets = []Device{
	{Key: "ac", Name: "Air conditioner", KWh: decimal.RequireFromString("1.5"), Unit: PerHour, Category: models.CategoryAirConditioning},
	{Key: "led", Name: "LED bulb", KWh: decimal.RequireFromString("0.01"), Unit: PerHour, Category: models.CategoryLighting},
	{Key: "tv", Name: "TV", KWh: decimal.RequireFromString("0.15"), Unit: PerHour, Category: models.CategoryOther},
	{Key: "pc", Name: "Desktop PC", KWh: decimal.RequireFromString("0.25"), Unit: PerHour, Category: models.CategoryOther},
	{Key: "fridge", Name: "Fridge", KWh: decimal.RequireFromString("1.2"), Unit: PerDay, Category: models.CategoryOther},
	{Key: "washer", Name: "Washing machine", KWh: decimal.RequireFromString("0.6"), Unit: PerCycle, Category: models.CategoryOther},
}

// Devices returns the presets ordered by key.
func Devices() []Device {
	out := append([]Device(nil), presets...)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Lookup finds a preset by key or name, ignoring case.
func Lookup(name string) (Device, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, dev := range presets {
		if n == dev.Key || n == strings.ToLower(dev.Name) {
			return dev, nil
		}
	}
	return Device{}, fmt.Errorf("%w %q", ErrUnknownDevice, name)
}

// Estimate is the consumption of an appliance drawing powerKW for
// hoursPerDay over days: kW × hours × days.
func Estimate(powerKW, hoursPerDay, days decimal.Decimal) decimal.Decimal {
	return powerKW.Mul(hoursPerDay).Mul(days)
}

// Estimate returns the kWh used by u.Quantity units of dev.
func (dev Device) Estimate(u Usage) decimal.Decimal {
	perUnit := dev.KWh.Mul(u.Quantity)
	if dev.Unit == PerDay {
		return perUnit.Mul(u.Days)
	}
	return Estimate(perUnit, u.PerDay, u.Days)
}

// Rate renders the preset consumption, e.g. "1.5 kWh/hour".
func (dev Device) Rate() string {
	return fmt.Sprintf("%s kWh/%s", dev.KWh.String(), dev.Unit)
}
