package config

import (
	"testing"
	"time"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/kids", "/photos/kids"},
		{"single trailing slash", "/photos/kids/", "/photos/kids"},
		{"multiple trailing slashes", "/photos/kids///", "/photos/kids"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBirthDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{"valid", "01-15-2023", time.Date(2023, 1, 15, 0, 0, 0, 0, time.Local), false},
		{"valid with spaces", " 12-31-1999 ", time.Date(1999, 12, 31, 0, 0, 0, 0, time.Local), false},
		{"iso order rejected", "2023-01-15", time.Time{}, true},
		{"day month swapped out of range", "15-01-2023", time.Time{}, true},
		{"garbage", "birthday", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBirthDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBirthDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("ParseBirthDate(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_ModeSelection(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"rename mode complete", func(c *Config) {
			c.Path, c.Name, c.Birth = "/photos", "Jane Doe", "01-15-2023"
		}, false},
		{"rename mode bad birth", func(c *Config) {
			c.Path, c.Name, c.Birth = "/photos", "Jane Doe", "2023/01/15"
		}, true},
		{"rename mode missing birth", func(c *Config) {
			c.Path, c.Name = "/photos", "Jane Doe"
		}, true},
		{"no path at all", func(c *Config) {}, true},
		{"undo with path only", func(c *Config) {
			c.Path, c.Undo = "/photos", true
		}, false},
		{"undo with extra positionals", func(c *Config) {
			c.Path, c.Name, c.Undo = "/photos", "Jane", true
		}, true},
		{"config alone", func(c *Config) {
			c.ConfigFile = "tasks.json"
		}, false},
		{"config with undo", func(c *Config) {
			c.ConfigFile, c.Undo = "tasks.json", true
		}, true},
		{"config with positional", func(c *Config) {
			c.ConfigFile, c.Path = "tasks.json", "/photos"
		}, true},
		{"invalid color mode", func(c *Config) {
			c.ConfigFile = "tasks.json"
			c.ColorMode = "rainbow"
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigTask(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Path = "/photos"
	cfg.Name = "Jane Doe"
	cfg.Birth = "01-15-2023"
	cfg.Recursive = true
	cfg.DryRun = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	task := cfg.Task()
	if task.Path != "/photos" || task.Name != "Jane Doe" {
		t.Errorf("task = %+v", task)
	}
	if !task.Recursive || !task.DryRun {
		t.Error("flags not carried into task")
	}
	want := time.Date(2023, 1, 15, 0, 0, 0, 0, time.Local)
	if !task.Birth.Equal(want) {
		t.Errorf("task.Birth = %v, want %v", task.Birth, want)
	}
}
