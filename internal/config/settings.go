package config

import (
	"fmt"
	"os"
	"time"

	"github.com/abhisek/quizcard/internal/feedback"
	"github.com/abhisek/quizcard/internal/gesture"
	"github.com/abhisek/quizcard/internal/store"
)

// Settings is the resolved runtime configuration.
type Settings struct {
	SkipThreshold   float64
	CorrectDuration time.Duration
	ShakeOut        time.Duration
	ShakeBack       time.Duration

	// DBPath is the SQLite file holding history.
	DBPath string

	// CatalogPath is an optional catalog file replacing the embedded one.
	CatalogPath string
}

// Defaults returns settings with every value at its built-in default,
// except DBPath which is resolved by Resolve.
func Defaults() Settings {
	return Settings{
		SkipThreshold:   gesture.DefaultSkipThreshold,
		CorrectDuration: feedback.DefaultCorrectDuration,
		ShakeOut:        feedback.DefaultShakeOut,
		ShakeBack:       feedback.DefaultShakeBack,
	}
}

// Overrides holds values given on the command line. Empty means unset.
type Overrides struct {
	DBPath      string
	CatalogPath string
}

// Resolve merges file values over the defaults and flags over both. The
// database path follows flag, then QUIZCARD_DB, then the file, then the
// XDG data directory.
func Resolve(file FileConfig, flags Overrides) (Settings, error) {
	s := Defaults()

	if v := file.Session.SkipThreshold; v != nil {
		if *v >= 0 {
			return Settings{}, fmt.Errorf("session.skip_threshold must be negative, got %v", *v)
		}
		s.SkipThreshold = *v
	}

	durations := []struct {
		key string
		src *int
		dst *time.Duration
	}{
		{"feedback.correct_ms", file.Feedback.CorrectMs, &s.CorrectDuration},
		{"feedback.shake_ms", file.Feedback.ShakeMs, &s.ShakeOut},
		{"feedback.settle_ms", file.Feedback.SettleMs, &s.ShakeBack},
	}
	for _, d := range durations {
		if d.src == nil {
			continue
		}
		if *d.src < 0 {
			return Settings{}, fmt.Errorf("%s must not be negative, got %d", d.key, *d.src)
		}
		*d.dst = time.Duration(*d.src) * time.Millisecond
	}

	if file.Catalog.Path != nil {
		s.CatalogPath = *file.Catalog.Path
	}
	if flags.CatalogPath != "" {
		s.CatalogPath = flags.CatalogPath
	}

	dbPath, err := resolveDBPath(flags.DBPath, file.Storage.DB)
	if err != nil {
		return Settings{}, err
	}
	s.DBPath = dbPath
	return s, nil
}

func resolveDBPath(flag string, file *string) (string, error) {
	switch {
	case flag != "":
		return flag, store.EnsureDir(flag)
	case os.Getenv("QUIZCARD_DB") != "":
		return store.DefaultDBPath()
	case file != nil && *file != "":
		return *file, store.EnsureDir(*file)
	default:
		return store.DefaultDBPath()
	}
}

// Load reads the config file at path and resolves it with flags.
func Load(path string, flags Overrides) (Settings, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	file, err := LoadConfig(path)
	if err != nil {
		return Settings{}, err
	}
	return Resolve(file, flags)
}

// Gate builds the feedback gate configured by s.
func (s Settings) Gate(animator feedback.Animator) *feedback.Gate {
	return feedback.NewGate(animator,
		feedback.WithCorrect(feedback.Pulse(s.CorrectDuration)),
		feedback.WithShake(feedback.Shake(s.ShakeOut, s.ShakeBack)),
	)
}

// Navigator builds the gesture navigator configured by s.
func (s Settings) Navigator(opts ...gesture.Option) *gesture.Navigator {
	return gesture.New(append([]gesture.Option{gesture.WithThreshold(s.SkipThreshold)}, opts...)...)
}
