package media

import (
	"testing"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Kind
	}{
		{"jpg", "/photos/IMG_0001.jpg", KindImage},
		{"jpeg uppercase", "/photos/IMG_0002.JPEG", KindImage},
		{"png", "b.png", KindImage},
		{"heic", "IMG_0003.HEIC", KindImage},
		{"bmp", "scan.bmp", KindImage},
		{"mp4", "clip.mp4", KindVideo},
		{"mov uppercase", "CLIP.MOV", KindVideo},
		{"mts", "camcorder.mts", KindVideo},
		{"text file", "notes.txt", KindUnrecognized},
		{"no extension", "README", KindUnrecognized},
		{"dotfile", ".hidden", KindUnrecognized},
		{"raw not recognized", "IMG_0004.cr2", KindUnrecognized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.path); got != tt.want {
				t.Errorf("KindOf(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsHeic(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"IMG_0001.heic", true},
		{"IMG_0001.HEIC", true},
		{"IMG_0001.Heic", true},
		{"IMG_0001.jpg", false},
		{"heic", false},
	}
	for _, tt := range tests {
		if got := IsHeic(tt.path); got != tt.want {
			t.Errorf("IsHeic(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestExtensionLists(t *testing.T) {
	imgs := ImageExtensions()
	if len(imgs) != len(imageExtensions) {
		t.Errorf("ImageExtensions() returned %d entries, want %d", len(imgs), len(imageExtensions))
	}
	for i := 1; i < len(imgs); i++ {
		if imgs[i-1] >= imgs[i] {
			t.Errorf("ImageExtensions() not sorted: %v", imgs)
		}
	}
	vids := VideoExtensions()
	if len(vids) != len(videoExtensions) {
		t.Errorf("VideoExtensions() returned %d entries, want %d", len(vids), len(videoExtensions))
	}
}
