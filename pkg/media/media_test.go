package media

import (
	"reflect"
	"testing"
	"time"
)

func TestNativeTypes(t *testing.T) {
	tests := []struct {
		name string
		in   Type
		want []string
	}{
		{"image", TypeImage, []string{"images"}},
		{"video", TypeVideo, []string{"videos"}},
		{"all is a union", TypeAll, []string{"images", "videos"}},
		{"empty defaults to images", Type(""), []string{"images"}},
		{"unrecognized defaults to images", Type("audio"), []string{"images"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NativeTypes(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NativeTypes(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestTypeFromNative(t *testing.T) {
	tests := []struct {
		native string
		want   Type
	}{
		{"video", TypeVideo},
		{"videos", TypeVideo},
		{"image", TypeImage},
		{"images", TypeImage},
		{"", TypeImage},
		{"livePhoto", TypeImage},
		{"Video", TypeImage}, // not exactly "video"
	}

	for _, tt := range tests {
		t.Run(tt.native, func(t *testing.T) {
			if got := TypeFromNative(tt.native); got != tt.want {
				t.Errorf("TypeFromNative(%q) = %q, want %q", tt.native, got, tt.want)
			}
		})
	}
}

func TestPickerOptionsDefaults(t *testing.T) {
	got := PickerOptions{}.WithDefaults()

	if got.Types != TypeImage {
		t.Errorf("Types = %q, want %q", got.Types, TypeImage)
	}
	if got.Quality != QualityHigh {
		t.Errorf("Quality = %v, want %v", got.Quality, QualityHigh)
	}
	if got.SelectionLimit != DefaultSelectionLimit {
		t.Errorf("SelectionLimit = %d, want %d", got.SelectionLimit, DefaultSelectionLimit)
	}
	if got.AllowsEditing || got.AllowsMultipleSelection {
		t.Error("boolean options should default to false")
	}
	if got.Aspect != nil {
		t.Error("Aspect should have no default")
	}
}

func TestPickerOptionsDefaultsKeepExplicitValues(t *testing.T) {
	in := PickerOptions{
		Types:                   TypeVideo,
		AllowsMultipleSelection: true,
		Aspect:                  &Aspect{Width: 4, Height: 3},
		Quality:                 QualityLow,
		SelectionLimit:          3,
	}
	got := in.WithDefaults()

	if !reflect.DeepEqual(got, in) {
		t.Errorf("WithDefaults() = %+v, want unchanged %+v", got, in)
	}
}

func TestCameraOptionsDefaults(t *testing.T) {
	got := CameraOptions{}.WithDefaults()

	if got.Quality != QualityHigh {
		t.Errorf("Quality = %v, want %v", got.Quality, QualityHigh)
	}
	if got.VideoMaxDuration != 0 {
		t.Errorf("VideoMaxDuration = %v, want 0 (unbounded)", got.VideoMaxDuration)
	}

	explicit := CameraOptions{Quality: QualityMedium, VideoMaxDuration: 30 * time.Second}.WithDefaults()
	if explicit.Quality != QualityMedium {
		t.Errorf("Quality = %v, want %v", explicit.Quality, QualityMedium)
	}
	if explicit.VideoMaxDuration != 30*time.Second {
		t.Errorf("VideoMaxDuration = %v, want 30s", explicit.VideoMaxDuration)
	}
}

func TestQualityPresets(t *testing.T) {
	tests := []struct {
		preset Quality
		want   float64
	}{
		{QualityLow, 0.3},
		{QualityMedium, 0.7},
		{QualityHigh, 1.0},
	}

	for _, tt := range tests {
		if float64(tt.preset) != tt.want {
			t.Errorf("preset = %v, want %v", float64(tt.preset), tt.want)
		}
	}
}

func TestPickedNeverReturnsNilAssets(t *testing.T) {
	got := Picked(nil)
	if got.Canceled {
		t.Error("Picked result should not be canceled")
	}
	if got.Assets == nil {
		t.Error("Assets should be non-nil for a non-canceled result")
	}
	if len(got.Assets) != 0 {
		t.Errorf("len(Assets) = %d, want 0", len(got.Assets))
	}
}

func TestCanceled(t *testing.T) {
	got := Canceled()
	if !got.Canceled {
		t.Error("expected Canceled=true")
	}
}
