package game

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tunable bounds, in milliseconds.
const (
	MinSequenceSpeedMs = 300
	MaxSequenceSpeedMs = 2000
	MinInputTimeMs     = 1000
	MaxInputTimeMs     = 30000

	defaultLives          = 3
	defaultSequenceSpeed  = 1000
	defaultMinSpeed       = 300
	defaultSpeedDecrement = 50
	defaultMaxInputTime   = 10000
)

// settings holds the runtime tunables. baseSpeed is the configured
// display speed; sequenceSpeed is the current one after per-level
// speed-ups and is restored from baseSpeed on every new game.
type settings struct {
	soundEnabled   bool
	baseSpeed      int
	sequenceSpeed  int
	minSpeed       int
	speedDecrement int
	maxInputTime   int
}

func newSettings(cfg Config) settings {
	s := settings{
		soundEnabled:   cfg.SoundEnabled,
		baseSpeed:      defaultSequenceSpeed,
		minSpeed:       defaultMinSpeed,
		speedDecrement: defaultSpeedDecrement,
		maxInputTime:   defaultMaxInputTime,
	}
	if cfg.SequenceSpeed != 0 {
		s.baseSpeed = clamp(cfg.SequenceSpeed, MinSequenceSpeedMs, MaxSequenceSpeedMs)
	}
	if cfg.MinSequenceSpeed != 0 {
		s.minSpeed = clamp(cfg.MinSequenceSpeed, MinSequenceSpeedMs, MaxSequenceSpeedMs)
	}
	if cfg.SpeedDecrement != 0 {
		s.speedDecrement = cfg.SpeedDecrement
	}
	if cfg.MaxInputTime != 0 {
		s.maxInputTime = clamp(cfg.MaxInputTime, MinInputTimeMs, MaxInputTimeMs)
	}
	s.sequenceSpeed = s.baseSpeed
	return s
}

func (s *settings) resetSpeed() {
	s.sequenceSpeed = s.baseSpeed
}

// advanceSpeed speeds up the display as the level climbs, never
// dropping below the floor.
func (s *settings) advanceSpeed(level int) {
	speed := s.baseSpeed - (level-1)*s.speedDecrement
	if speed < s.minSpeed {
		speed = s.minSpeed
	}
	s.sequenceSpeed = speed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SoundEnabled reports whether symbol notes are rendered.
func (c *Controller) SoundEnabled() bool { return c.settings.soundEnabled }

// SetSoundEnabled toggles symbol note rendering.
func (c *Controller) SetSoundEnabled(enabled bool) {
	c.settings.soundEnabled = enabled
}

// SequenceSpeed reports the current per-symbol display time in ms.
func (c *Controller) SequenceSpeed() int { return c.settings.sequenceSpeed }

// SetSequenceSpeed sets the base display speed, clamped to
// [300, 2000] ms, and applies it immediately.
func (c *Controller) SetSequenceSpeed(ms int) {
	c.settings.baseSpeed = clamp(ms, MinSequenceSpeedMs, MaxSequenceSpeedMs)
	c.settings.sequenceSpeed = c.settings.baseSpeed
}

// MaxInputTime reports the allowed input time per round in ms.
func (c *Controller) MaxInputTime() int { return c.settings.maxInputTime }

// SetMaxInputTime sets the input timeout, clamped to [1000, 30000] ms.
func (c *Controller) SetMaxInputTime(ms int) {
	c.settings.maxInputTime = clamp(ms, MinInputTimeMs, MaxInputTimeMs)
}

// MinSequenceSpeed reports the display speed floor in ms.
func (c *Controller) MinSequenceSpeed() int { return c.settings.minSpeed }

// SpeedDecrement reports the per-level display speed-up in ms.
func (c *Controller) SpeedDecrement() int { return c.settings.speedDecrement }

// ExportConfig renders the tunables as key=value lines.
func (c *Controller) ExportConfig() string {
	pairs := map[string]string{
		"soundEnabled":     strconv.FormatBool(c.settings.soundEnabled),
		"sequenceSpeed":    strconv.Itoa(c.settings.baseSpeed),
		"maxInputTime":     strconv.Itoa(c.settings.maxInputTime),
		"minSequenceSpeed": strconv.Itoa(c.settings.minSpeed),
		"speedDecrement":   strconv.Itoa(c.settings.speedDecrement),
	}

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(pairs[k])
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ImportConfig applies key=value lines to the tunables. Unknown keys
// are ignored. Any malformed value fails the whole import with no
// partial application.
func (c *Controller) ImportConfig(data string) error {
	next := c.settings

	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			return fmt.Errorf("game: malformed config line %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "soundEnabled":
			enabled, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("game: invalid soundEnabled value %q", value)
			}
			next.soundEnabled = enabled
		case "sequenceSpeed":
			ms, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("game: invalid sequenceSpeed value %q", value)
			}
			next.baseSpeed = clamp(ms, MinSequenceSpeedMs, MaxSequenceSpeedMs)
		case "maxInputTime":
			ms, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("game: invalid maxInputTime value %q", value)
			}
			next.maxInputTime = clamp(ms, MinInputTimeMs, MaxInputTimeMs)
		case "minSequenceSpeed":
			ms, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("game: invalid minSequenceSpeed value %q", value)
			}
			next.minSpeed = clamp(ms, MinSequenceSpeedMs, MaxSequenceSpeedMs)
		case "speedDecrement":
			ms, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("game: invalid speedDecrement value %q", value)
			}
			next.speedDecrement = ms
		}
	}

	next.sequenceSpeed = next.baseSpeed
	c.settings = next
	return nil
}
