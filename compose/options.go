package compose

import "time"

// Option is a functional option configuring a Composer.
type Option func(*config)

type config struct {
	accentR, accentG, accentB int
	systemTag                 string
	now                       func() time.Time
	qrCode                    bool
}

func defaultConfig() *config {
	return &config{
		accentR: 13, accentG: 71, accentB: 161,
		systemTag: "QualiPharm - Système Qualité Officinal",
		now:       time.Now,
		qrCode:    true,
	}
}

// WithAccentColor sets the color used for field labels, the classification
// badge and table header bands.
func WithAccentColor(r, g, b int) Option {
	return func(c *config) {
		c.accentR, c.accentG, c.accentB = r, g, b
	}
}

// WithSystemTag sets the caption stamped on every page footer and in the
// traceability block.
func WithSystemTag(tag string) Option {
	return func(c *config) {
		c.systemTag = tag
	}
}

// WithClock overrides the generation-timestamp source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithoutQRCode disables the traceability QR code.
func WithoutQRCode() Option {
	return func(c *config) {
		c.qrCode = false
	}
}
