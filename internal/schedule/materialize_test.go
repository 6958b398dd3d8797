package schedule

import "testing"

func TestExtractMediaURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"plain url untouched", "https://x.com/a.jpg", "https://x.com/a.jpg"},
		{"css wrapper", "url(https://x.com/a.jpg)", "https://x.com/a.jpg"},
		{"css wrapper with double quotes", `url("https://x.com/a.jpg")`, "https://x.com/a.jpg"},
		{"css wrapper with single quotes", "url('https://x.com/a.jpg')", "https://x.com/a.jpg"},
		{"bare matching quotes", `"https://x.com/a.jpg"`, "https://x.com/a.jpg"},
		{"mismatched quotes kept", `"https://x.com/a.jpg'`, `"https://x.com/a.jpg'`},
		{"surrounding whitespace", "  url( https://x.com/a.jpg )  ", "https://x.com/a.jpg"},
		{"unclosed wrapper kept", "url(https://x.com/a.jpg", "url(https://x.com/a.jpg"},
		{"relative path wrapper", "url(../img/nuanu.png)", "../img/nuanu.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMediaURL(tt.input)
			if got != tt.want {
				t.Errorf("ExtractMediaURL(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// Unwrapping is idempotent.
			if again := ExtractMediaURL(got); again != got {
				t.Errorf("not idempotent: ExtractMediaURL(%q) = %q", got, again)
			}
		})
	}
}

func TestBuildImageSrc(t *testing.T) {
	tests := []struct {
		name      string
		imageType string
		rawValue  string
		dataValue string
		want      string
	}{
		{
			name:      "upload prefers data URI verbatim",
			imageType: "upload",
			rawValue:  "https://example.com/x.jpg",
			dataValue: "data:image/png;base64,AAA=",
			want:      "data:image/png;base64,AAA=",
		},
		{
			name:      "upload with legacy wrapped data",
			imageType: "upload",
			dataValue: `url("https://cdn.example.com/b.png")`,
			want:      "https://cdn.example.com/b.png",
		},
		{
			name:      "url type unwraps raw value",
			imageType: "url",
			rawValue:  `url("https://x.com/a.jpg")`,
			want:      "https://x.com/a.jpg",
		},
		{
			name:      "upload type with empty data falls back to raw",
			imageType: "upload",
			rawValue:  "https://x.com/a.jpg",
			want:      "https://x.com/a.jpg",
		},
		{
			name:      "untyped legacy row prefers data value",
			imageType: "",
			rawValue:  "https://x.com/a.jpg",
			dataValue: "data:image/gif;base64,BBB=",
			want:      "data:image/gif;base64,BBB=",
		},
		{
			name:      "untyped legacy row with only raw value",
			imageType: "",
			rawValue:  "url(../img/nuanu.png)",
			want:      "../img/nuanu.png",
		},
		{"everything empty", "url", "", "", ""},
		{"nothing displayable", "", "", "", ""},
		{
			name:      "type is case-insensitive",
			imageType: "URL",
			rawValue:  "url(https://x.com/c.jpg)",
			want:      "https://x.com/c.jpg",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildImageSrc(tt.imageType, tt.rawValue, tt.dataValue)
			if got != tt.want {
				t.Errorf("BuildImageSrc(%q, %q, %q) = %q, want %q",
					tt.imageType, tt.rawValue, tt.dataValue, got, tt.want)
			}
		})
	}
}

func TestMaterializeAdExcludesImagelessWindows(t *testing.T) {
	w := window(t, "2024-06-01", "00:00:00", "2024-06-10", "23:59:59", true)
	if materializeAd(w) != nil {
		t.Fatal("window without image must not materialize")
	}

	w.BackgroundImageType = "url"
	w.BackgroundImage = "url('https://x.com/a.jpg')"
	ad := materializeAd(w)
	if ad == nil {
		t.Fatal("window with image must materialize")
	}
	if ad.Image != "https://x.com/a.jpg" {
		t.Errorf("image = %q", ad.Image)
	}
	if ad.StartDate != "2024-06-01" || ad.EndTime != "23:59:59" {
		t.Errorf("serialized bounds wrong: %+v", ad)
	}
}
