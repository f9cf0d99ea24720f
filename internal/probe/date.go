// Package probe resolves the capture date of an image file from its
// embedded EXIF metadata, falling back to the filesystem modification
// time. Resolution is total: every failure inside this boundary maps to
// the fallback, never to an error the pipeline has to handle.
package probe

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// exifTimeLayout is the timestamp format used by EXIF date tags.
const exifTimeLayout = "2006:01:02 15:04:05"

var errNoDateTag = errors.New("no usable EXIF date tag")

// rawExts are TIFF-based raw formats whose EXIF blocks also carry
// DateTimeDigitized as a usable source.
var rawExts = map[string]bool{
	".nef": true,
	".dng": true,
}

// CaptureDate returns the calendar date path was captured, as local-time
// midnight. EXIF tags are consulted first; any read or parse failure
// degrades silently to the file's modification time. The zero time is
// returned only when the file cannot even be stat'ed.
func CaptureDate(path string) time.Time {
	if t, err := exifDate(path); err == nil {
		return dateOnly(t)
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return dateOnly(info.ModTime())
}

// exifDate extracts the best available EXIF timestamp. Tag priority is
// DateTimeOriginal, then (raw formats only) DateTimeDigitized, then
// DateTime.
func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}

	fields := []exif.FieldName{exif.DateTimeOriginal, exif.DateTime}
	if rawExts[strings.ToLower(filepath.Ext(path))] {
		fields = []exif.FieldName{exif.DateTimeOriginal, exif.DateTimeDigitized, exif.DateTime}
	}

	for _, name := range fields {
		tag, err := x.Get(name)
		if err != nil {
			continue
		}
		s, err := tag.StringVal()
		if err != nil {
			continue
		}
		t, err := time.ParseInLocation(exifTimeLayout, strings.TrimSpace(s), time.Local)
		if err != nil {
			continue
		}
		return t, nil
	}
	return time.Time{}, errNoDateTag
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
